// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"fmt"
	"strings"

	"pdfsift/internal/formatters"
	"pdfsift/internal/report"
)

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values for spreadsheet import"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

// Format flattens the report into one row per (file, keyword, page, count)
// tuple. Files with errors contribute no rows; the JSON report carries their
// error details.
func (f *Formatter) Format(rep *report.RunReport, options formatters.FormatterOptions) (string, error) {
	rows := []string{"file,keyword,page,count"}

	for _, file := range rep.Files {
		for _, match := range file.Matches {
			row := []string{
				escapeCSVField(file.Path),
				escapeCSVField(match.Keyword),
				fmt.Sprintf("%d", match.Page),
				fmt.Sprintf("%d", match.Count),
			}
			rows = append(rows, strings.Join(row, ","))
		}
	}

	return strings.Join(rows, "\n") + "\n", nil
}

// escapeCSVField properly escapes a field for CSV format and prevents CSV injection
func escapeCSVField(field string) string {
	field = sanitizeFormulaInjection(field)

	// If field contains comma, quote, or newline, wrap in quotes and escape internal quotes
	if strings.ContainsAny(field, ",\"\n\r") {
		escaped := strings.ReplaceAll(field, "\"", "\"\"")
		return fmt.Sprintf("\"%s\"", escaped)
	}
	return field
}

// sanitizeFormulaInjection prevents CSV injection attacks by neutralizing
// leading formula characters before the field reaches a spreadsheet.
func sanitizeFormulaInjection(field string) string {
	if len(field) == 0 {
		return field
	}

	firstChar := field[0]
	if firstChar == '=' || firstChar == '+' || firstChar == '-' || firstChar == '@' {
		return "'" + field
	}

	return field
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
