// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfsift/internal/formatters"
	"pdfsift/internal/report"
)

func buildReport() *report.RunReport {
	b := report.NewBuilder("keywords.txt")
	b.AddFile("a.pdf", []report.PageMatch{
		{Page: 1, Keyword: "audit", Count: 2},
		{Page: 4, Keyword: "audit", Count: 1},
	})
	b.AddFile("empty.pdf", nil)
	b.AddError("broken.pdf", errors.New("not a readable PDF"))
	return b.Finalize()
}

func TestFormat_Summary(t *testing.T) {
	out, err := NewFormatter().Format(buildReport(), formatters.FormatterOptions{NoColor: true})
	require.NoError(t, err)

	assert.Contains(t, out, "a.pdf")
	assert.Contains(t, out, "audit")
	assert.Contains(t, out, "3 occurrence(s)")
	assert.Contains(t, out, "no matches")
	assert.Contains(t, out, "error: not a readable PDF")
	assert.Contains(t, out, "Files scanned: 3")
	assert.Contains(t, out, "Files with errors: 1")
	assert.Contains(t, out, "Total matches: 2")
}

func TestFormat_VerboseShowsPages(t *testing.T) {
	out, err := NewFormatter().Format(buildReport(), formatters.FormatterOptions{NoColor: true, Verbose: true})
	require.NoError(t, err)

	assert.Contains(t, out, "page 1")
	assert.Contains(t, out, "page 4")
	assert.Contains(t, out, "x2")
}

func TestFormat_NonVerboseOmitsPages(t *testing.T) {
	out, err := NewFormatter().Format(buildReport(), formatters.FormatterOptions{NoColor: true})
	require.NoError(t, err)

	assert.NotContains(t, out, "page 1")
}

func TestSortedKeywords(t *testing.T) {
	totals := map[string]int{"zulu": 1, "Alpha": 2, "mike": 3}
	assert.Equal(t, []string{"Alpha", "mike", "zulu"}, sortedKeywords(totals))
}
