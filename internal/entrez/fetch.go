// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entrez

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/pdiddy/pubmed-codelinks/pkg/types"
)

// articleSet mirrors the efetch PubmedArticleSet envelope. Each article is
// retained as a generic element tree so the link scan can reach every
// text-bearing node, not only the fields named in the schema.
type articleSet struct {
	Articles []element `xml:"PubmedArticle"`
}

// element is a generic XML element: name, character data, and children in
// document order.
type element struct {
	XMLName  xml.Name
	Text     string    `xml:",chardata"`
	Children []element `xml:",any"`
}

// find returns the first element named name in a depth-first walk of the
// subtree rooted at e, or nil when absent. The receiver itself is not
// matched.
func (e *element) find(name string) *element {
	for i := range e.Children {
		child := &e.Children[i]
		if child.XMLName.Local == name {
			return child
		}
		if found := child.find(name); found != nil {
			return found
		}
	}
	return nil
}

// text returns the element's trimmed character data, or "" for a nil element.
func (e *element) text() string {
	if e == nil {
		return ""
	}
	return strings.TrimSpace(e.Text)
}

// Fetch retrieves full records for the given PMIDs in one efetch call and
// parses each into a Publication. An empty ID list returns immediately
// without touching the network. Any non-2xx response is an error; the
// caller aborts the run on it.
func (c *Client) Fetch(ctx context.Context, ids []string) ([]types.Publication, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	params := c.commonParams()
	params.Set("id", strings.Join(ids, ","))

	reqURL := c.BaseURL + "/efetch.fcgi?" + params.Encode()
	c.log.Info().Int("ids", len(ids)).Msg("fetching record details")
	c.log.Debug().Str("url", reqURL).Msg("efetch request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("efetch request: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug().Int("status", resp.StatusCode).Msg("efetch response")
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("PubMed efetch returned HTTP %d", resp.StatusCode)
	}

	var set articleSet
	if err := xml.NewDecoder(resp.Body).Decode(&set); err != nil {
		return nil, fmt.Errorf("parsing efetch response: %w", err)
	}

	pubs := make([]types.Publication, 0, len(set.Articles))
	for i := range set.Articles {
		art := &set.Articles[i]

		pmid := art.find("PMID").text()
		if pmid == "" {
			return nil, fmt.Errorf("article %d has no PMID", i)
		}

		p := types.Publication{PMID: pmid}

		if p.Title = art.find("ArticleTitle").text(); p.Title == "" {
			c.log.Debug().Str("pmid", pmid).Msg("record has no title")
		}

		// First AbstractText within the first Abstract, matching the
		// layout of PubMed records with structured abstracts.
		if abs := art.find("Abstract"); abs != nil {
			p.Abstract = abs.find("AbstractText").text()
		}
		if p.Abstract == "" {
			c.log.Debug().Str("pmid", pmid).Msg("record has no abstract")
		}

		p.RepoURL = findRepoLink(art)
		p.HasRepoURL = p.RepoURL != ""

		pubs = append(pubs, p)
	}

	c.log.Info().Int("records", len(pubs)).Msg("efetch page parsed")
	return pubs, nil
}
