// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entrez

import (
	"encoding/xml"
	"testing"
)

func parseArticle(t *testing.T, raw string) *element {
	t.Helper()
	var e element
	if err := xml.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatal(err)
	}
	return &e
}

func TestFindRepoLink(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want string
	}{
		{
			name: "link in abstract text",
			xml:  `<PubmedArticle><Abstract><AbstractText>see https://github.com/acme/tool for code</AbstractText></Abstract></PubmedArticle>`,
			want: "https://github.com/acme/tool",
		},
		{
			name: "http and www variant",
			xml:  `<PubmedArticle><Note>http://www.github.com/a/b</Note></PubmedArticle>`,
			want: "http://www.github.com/a/b",
		},
		{
			name: "uppercase scheme and host",
			xml:  `<PubmedArticle><Note>HTTPS://GitHub.com/Lab/Repo</Note></PubmedArticle>`,
			want: "HTTPS://GitHub.com/Lab/Repo",
		},
		{
			name: "first match wins in document order",
			xml:  `<PubmedArticle><Title>https://github.com/first/one</Title><Abstract><AbstractText>https://github.com/second/two</AbstractText></Abstract></PubmedArticle>`,
			want: "https://github.com/first/one",
		},
		{
			name: "no link",
			xml:  `<PubmedArticle><Abstract><AbstractText>no software here</AbstractText></Abstract></PubmedArticle>`,
			want: "",
		},
		{
			name: "owner without repo does not match",
			xml:  `<PubmedArticle><Note>https://github.com/acme</Note></PubmedArticle>`,
			want: "",
		},
		{
			name: "deeply nested text node",
			xml:  `<PubmedArticle><A><B><C>code: https://github.com/x/y</C></B></A></PubmedArticle>`,
			want: "https://github.com/x/y",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findRepoLink(parseArticle(t, tt.xml))
			if got != tt.want {
				t.Errorf("findRepoLink() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFindRepoLinkIdempotent(t *testing.T) {
	art := parseArticle(t,
		`<PubmedArticle><Abstract><AbstractText>at https://github.com/acme/tool and https://github.com/other/repo</AbstractText></Abstract></PubmedArticle>`)

	first := findRepoLink(art)
	second := findRepoLink(art)
	if first != second {
		t.Errorf("extraction not idempotent: %q then %q", first, second)
	}
	if first != "https://github.com/acme/tool" {
		t.Errorf("findRepoLink() = %q, want the first link", first)
	}
}
