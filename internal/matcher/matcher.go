// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package matcher

import (
	"strings"

	"pdfsift/internal/extractor"
	"pdfsift/internal/keywords"
	"pdfsift/internal/report"
)

// Match scans page texts for every keyword in the set and returns one
// PageMatch per (page, keyword) pair with a non-zero count. Matching is
// purely lexical: case-insensitive, non-overlapping substring search with no
// word-boundary enforcement, so "cat" matches inside "category". Pages are
// processed in order and keywords in set order, which keeps page numbers
// non-decreasing in the result.
func Match(pages []extractor.PageText, set *keywords.Set) []report.PageMatch {
	kws := set.Keywords()
	foldedKws := make([]string, len(kws))
	for i, kw := range kws {
		foldedKws[i] = strings.ToLower(kw)
	}

	var matches []report.PageMatch
	for _, page := range pages {
		if page.Text == "" {
			continue
		}
		folded := strings.ToLower(page.Text)
		for i, kw := range kws {
			count := strings.Count(folded, foldedKws[i])
			if count == 0 {
				continue
			}
			matches = append(matches, report.PageMatch{
				Page:    page.Page,
				Keyword: kw,
				Count:   count,
			})
		}
	}
	return matches
}
