// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entrez

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
)

// SearchPage holds one page of esearch results.
type SearchPage struct {
	// IDs lists the PMIDs on this page, in server order.
	IDs []string

	// Count is the total result count the server reported for the whole
	// query. Valid only when HasCount is true.
	Count int

	// HasCount reports whether the response carried a Count element.
	HasCount bool
}

// eSearchResult mirrors the esearch XML envelope. Count is a pointer so a
// missing element is distinguishable from zero.
type eSearchResult struct {
	Count *int     `xml:"Count"`
	IDs   []string `xml:"IdList>Id"`
}

// Search requests one page of PMIDs matching term, starting at retstart and
// at most retmax long. Any non-2xx response is an error; the caller aborts
// the run on it.
func (c *Client) Search(ctx context.Context, term string, retstart, retmax int) (SearchPage, error) {
	if term == "" {
		return SearchPage{}, fmt.Errorf("empty search term")
	}
	if retstart < 0 {
		return SearchPage{}, fmt.Errorf("negative retstart %d", retstart)
	}
	if retmax <= 0 {
		return SearchPage{}, fmt.Errorf("non-positive retmax %d", retmax)
	}

	params := c.commonParams()
	params.Set("term", term)
	params.Set("retstart", fmt.Sprintf("%d", retstart))
	params.Set("retmax", fmt.Sprintf("%d", retmax))

	reqURL := c.BaseURL + "/esearch.fcgi?" + params.Encode()
	c.log.Info().Str("term", term).Int("retstart", retstart).Int("retmax", retmax).Msg("searching PubMed")
	c.log.Debug().Str("url", reqURL).Msg("esearch request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return SearchPage{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return SearchPage{}, fmt.Errorf("esearch request: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug().Int("status", resp.StatusCode).Msg("esearch response")
	if resp.StatusCode != http.StatusOK {
		return SearchPage{}, fmt.Errorf("PubMed esearch returned HTTP %d", resp.StatusCode)
	}

	var result eSearchResult
	if err := xml.NewDecoder(resp.Body).Decode(&result); err != nil {
		return SearchPage{}, fmt.Errorf("parsing esearch response: %w", err)
	}

	page := SearchPage{IDs: result.IDs}
	if result.Count != nil {
		page.Count = *result.Count
		page.HasCount = true
		c.log.Debug().Int("count", page.Count).Msg("server-reported total")
	}
	c.log.Info().Int("ids", len(page.IDs)).Msg("esearch page parsed")
	return page, nil
}
