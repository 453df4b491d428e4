// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"time"
)

// PageMatch records the occurrences of one keyword on one page.
type PageMatch struct {
	Page    int    `json:"page"`
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// FileReport aggregates the matches found in a single PDF. Files that could
// not be read carry an Error and no matches.
type FileReport struct {
	Path    string         `json:"path"`
	Matches []PageMatch    `json:"matches"`
	Totals  map[string]int `json:"totals,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// RunReport is the complete output of one invocation.
type RunReport struct {
	GeneratedAt   time.Time    `json:"generated_at"`
	KeywordSource string       `json:"keyword_source"`
	Files         []FileReport `json:"files"`
}

// TotalMatches returns the number of (file, keyword, page) tuples with a
// non-zero count across the whole report.
func (r *RunReport) TotalMatches() int {
	total := 0
	for _, file := range r.Files {
		total += len(file.Matches)
	}
	return total
}

// ErrorCount returns the number of files that could not be scanned.
func (r *RunReport) ErrorCount() int {
	count := 0
	for _, file := range r.Files {
		if file.Error != "" {
			count++
		}
	}
	return count
}

// Builder accumulates one FileReport per scanned file, in the order files
// were processed. The caller is responsible for feeding files in a
// deterministic order.
type Builder struct {
	keywordSource string
	files         []FileReport
	now           func() time.Time
}

// NewBuilder creates a report builder. keywordSource is the path of the
// keyword list, recorded in the final report.
func NewBuilder(keywordSource string) *Builder {
	return &Builder{
		keywordSource: keywordSource,
		now:           time.Now,
	}
}

// WithClock overrides the clock used for the report timestamp. Tests use
// this to make serialized output reproducible.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// AddFile records a successfully scanned file and its matches. Per-keyword
// totals are derived from the matches.
func (b *Builder) AddFile(path string, matches []PageMatch) {
	if matches == nil {
		matches = []PageMatch{}
	}

	totals := make(map[string]int)
	for _, m := range matches {
		totals[m.Keyword] += m.Count
	}
	if len(totals) == 0 {
		totals = nil
	}

	b.files = append(b.files, FileReport{
		Path:    path,
		Matches: matches,
		Totals:  totals,
	})
}

// AddError records a file that could not be scanned.
func (b *Builder) AddError(path string, err error) {
	b.files = append(b.files, FileReport{
		Path:    path,
		Matches: []PageMatch{},
		Error:   err.Error(),
	})
}

// Finalize produces the RunReport. The builder should not be reused
// afterward.
func (b *Builder) Finalize() *RunReport {
	files := b.files
	if files == nil {
		files = []FileReport{}
	}
	return &RunReport{
		GeneratedAt:   b.now().UTC().Truncate(time.Second),
		KeywordSource: b.keywordSource,
		Files:         files,
	}
}
