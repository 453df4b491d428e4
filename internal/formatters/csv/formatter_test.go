// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfsift/internal/formatters"
	"pdfsift/internal/report"
)

func TestFormat_Header(t *testing.T) {
	rep := report.NewBuilder("keywords.txt").Finalize()

	out, err := NewFormatter().Format(rep, formatters.FormatterOptions{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "file,keyword,page,count", lines[0])
}

func TestFormat_OneRowPerMatchTuple(t *testing.T) {
	b := report.NewBuilder("keywords.txt")
	b.AddFile("a.pdf", []report.PageMatch{
		{Page: 1, Keyword: "audit", Count: 2},
		{Page: 2, Keyword: "audit", Count: 1},
		{Page: 2, Keyword: "invoice", Count: 3},
	})
	b.AddFile("b.pdf", []report.PageMatch{
		{Page: 7, Keyword: "audit", Count: 1},
	})
	b.AddError("c.pdf", errors.New("boom"))
	rep := b.Finalize()

	out, err := NewFormatter().Format(rep, formatters.FormatterOptions{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// header + 4 match tuples; error files contribute no rows
	require.Len(t, lines, 1+rep.TotalMatches())
	assert.Equal(t, "a.pdf,audit,1,2", lines[1])
	assert.Equal(t, "b.pdf,audit,7,1", lines[4])
}

func TestEscapeCSVField_Quoting(t *testing.T) {
	assert.Equal(t, `"with,comma"`, escapeCSVField("with,comma"))
	assert.Equal(t, `"say ""hi"""`, escapeCSVField(`say "hi"`))
	assert.Equal(t, "plain", escapeCSVField("plain"))
}

func TestEscapeCSVField_FormulaInjection(t *testing.T) {
	assert.Equal(t, "'=SUM(A1)", escapeCSVField("=SUM(A1)"))
	assert.Equal(t, "'+1234", escapeCSVField("+1234"))
	assert.Equal(t, "'@cmd", escapeCSVField("@cmd"))
}

func TestFormat_PathWithComma(t *testing.T) {
	b := report.NewBuilder("keywords.txt")
	b.AddFile("dir,with,commas/a.pdf", []report.PageMatch{
		{Page: 1, Keyword: "x", Count: 1},
	})
	rep := b.Finalize()

	out, err := NewFormatter().Format(rep, formatters.FormatterOptions{})
	require.NoError(t, err)
	assert.Contains(t, out, `"dir,with,commas/a.pdf",x,1,1`)
}
