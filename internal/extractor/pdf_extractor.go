// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFExtractor extracts per-page text from PDF files using ledongthuc/pdf,
// with a pdfcpu preflight pass that rejects invalid and encrypted documents
// before the text parser touches them.
type PDFExtractor struct {
	pdfConfig *model.Configuration
}

// NewPDFExtractor creates a PDF text extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{
		pdfConfig: model.NewDefaultConfiguration(),
	}
}

// Extract returns one PageText per page, 1-indexed, in page order. A page
// whose content cannot be decoded yields empty text for that page; only
// file-level failures return an UnreadableFileError.
func (e *PDFExtractor) Extract(path string) ([]PageText, error) {
	if err := e.preflight(path); err != nil {
		return nil, err
	}

	// The pdf library can panic while constructing the reader on files that
	// survive the preflight, so the whole pass runs under the guard.
	return guardedExtract(path, func() ([]PageText, error) {
		f, r, err := pdf.Open(path)
		if err != nil {
			return nil, &UnreadableFileError{Path: path, Message: "cannot open", Cause: err}
		}
		defer f.Close()

		pageCount := r.NumPage()
		if pageCount == 0 {
			return nil, &UnreadableFileError{Path: path, Message: "document has no pages"}
		}

		pages := make([]PageText, 0, pageCount)
		for i := 1; i <= pageCount; i++ {
			text := extractPageText(r.Page(i))
			pages = append(pages, PageText{Page: i, Text: cleanText(text)})
		}

		return pages, nil
	})
}

// guardedExtract converts a parser panic into an UnreadableFileError for
// path, so one malformed document never takes down the run.
func guardedExtract(path string, fn func() ([]PageText, error)) (pages []PageText, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = &UnreadableFileError{Path: path, Message: fmt.Sprintf("parser failure: %v", r)}
		}
	}()
	return fn()
}

// preflight validates the document with pdfcpu. Corrupt and encrypted
// documents fail here with a clear error instead of a deep parser failure
// later.
func (e *PDFExtractor) preflight(path string) error {
	if err := api.ValidateFile(path, e.pdfConfig); err != nil {
		return &UnreadableFileError{Path: path, Message: "not a readable PDF", Cause: err}
	}
	return nil
}

// extractPageText pulls the text of a single page. The pdf library panics on
// some malformed content streams, so failures are contained per page.
func extractPageText(p pdf.Page) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	if p.V.IsNull() {
		return ""
	}

	// Row-based extraction gives better spacing; fall back to the plain
	// reading order when the page has no usable row layout.
	rows, err := p.GetTextByRow()
	if err != nil || len(rows) == 0 {
		plain, err := p.GetPlainText(nil)
		if err != nil {
			return ""
		}
		return plain
	}

	sortedRows := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sortedRows = append(sortedRows, row)
		}
	}
	sort.Slice(sortedRows, func(i, j int) bool {
		return averageY(sortedRows[i].Content) < averageY(sortedRows[j].Content)
	})

	var buf bytes.Buffer
	for _, row := range sortedRows {
		rowText := reconstructRow(row.Content)
		if strings.TrimSpace(rowText) != "" {
			buf.WriteString(rowText)
			buf.WriteString("\n")
		}
	}
	return buf.String()
}

func averageY(elements []pdf.Text) float64 {
	if len(elements) == 0 {
		return 0
	}
	var total float64
	for _, element := range elements {
		total += element.Y
	}
	return total / float64(len(elements))
}

// reconstructRow joins the text elements of one row left to right, inserting
// spaces where the horizontal gap between elements is large relative to the
// font size.
func reconstructRow(elements []pdf.Text) string {
	if len(elements) == 0 {
		return ""
	}

	sorted := make([]pdf.Text, len(elements))
	copy(sorted, elements)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	var buf bytes.Buffer
	for i, element := range sorted {
		buf.WriteString(element.S)

		if i < len(sorted)-1 {
			gap := sorted[i+1].X - (element.X + element.W)

			fontSize := element.FontSize
			if fontSize <= 0 {
				fontSize = 12
			}
			if gap > fontSize*0.2 {
				buf.WriteString(" ")
			}
		}
	}
	return buf.String()
}

// cleanText trims lines, drops empty ones, and collapses runs of spaces
// within lines while preserving the line structure.
func cleanText(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\t", " "), "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for strings.Contains(line, "  ") {
			line = strings.ReplaceAll(line, "  ", " ")
		}
		cleaned = append(cleaned, line)
	}
	return strings.Join(cleaned, "\n")
}
