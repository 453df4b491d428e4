// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"pdfsift/internal/formatters"
	"pdfsift/internal/report"
)

// Formatter implements the human-readable terminal summary
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable summary with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(rep *report.RunReport, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var sb strings.Builder

	sb.WriteString(f.colors["white"].Sprintf("Keyword scan results (%s)\n", rep.KeywordSource))
	sb.WriteString(strings.Repeat("=", 50) + "\n")

	for _, file := range rep.Files {
		sb.WriteString("\n")
		sb.WriteString(f.colors["cyan"].Sprintf("%s\n", file.Path))

		if file.Error != "" {
			sb.WriteString(f.colors["red"].Sprintf("  error: %s\n", file.Error))
			continue
		}

		if len(file.Matches) == 0 {
			sb.WriteString("  no matches\n")
			continue
		}

		if options.Verbose {
			for _, match := range file.Matches {
				sb.WriteString(fmt.Sprintf("  page %-4d %-30s %s\n",
					match.Page, match.Keyword, f.colors["green"].Sprintf("x%d", match.Count)))
			}
		}

		for _, keyword := range sortedKeywords(file.Totals) {
			sb.WriteString(fmt.Sprintf("  %-30s %s\n",
				keyword, f.colors["green"].Sprintf("%d occurrence(s)", file.Totals[keyword])))
		}
	}

	sb.WriteString("\n" + strings.Repeat("=", 50) + "\n")
	sb.WriteString(fmt.Sprintf("Files scanned: %d\n", len(rep.Files)))
	if errCount := rep.ErrorCount(); errCount > 0 {
		sb.WriteString(f.colors["yellow"].Sprintf("Files with errors: %d\n", errCount))
	}
	sb.WriteString(fmt.Sprintf("Total matches: %d\n", rep.TotalMatches()))

	return sb.String(), nil
}

// sortedKeywords returns the totals keys in case-insensitive sorted order,
// matching the ordering used in the JSON report.
func sortedKeywords(totals map[string]int) []string {
	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return strings.ToLower(keys[i]) < strings.ToLower(keys[j])
	})
	return keys
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
