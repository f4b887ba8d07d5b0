// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entrez

import "regexp"

// repoLinkPattern matches a GitHub repository URL: http or https scheme,
// optional www, then owner and repo segments of non-whitespace, non-slash
// characters. Case-insensitive.
var repoLinkPattern = regexp.MustCompile(`(?i)https?://(?:www\.)?github\.com/[^\s/]+/[^\s/]+`)

// findRepoLink walks the article subtree depth-first and returns the first
// GitHub repository URL found in any text node, or "" when none matches.
// Links can appear outside the abstract (data availability statements,
// comments), so every node is scanned.
func findRepoLink(e *element) string {
	if m := repoLinkPattern.FindString(e.Text); m != "" {
		return m
	}
	for i := range e.Children {
		if m := findRepoLink(&e.Children[i]); m != "" {
			return m
		}
	}
	return ""
}
