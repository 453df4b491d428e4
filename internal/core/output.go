// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"fmt"
	"os"
	"path/filepath"

	"pdfsift/internal/config"
	"pdfsift/internal/formatters"
	"pdfsift/internal/report"
)

// WriteError indicates an output file could not be created or written. It is
// fatal: the run's purpose is producing the report.
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write output %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

// OutputPaths holds the resolved report destinations. CSV is empty when no
// CSV output was requested.
type OutputPaths struct {
	JSON string
	CSV  string
}

// ResolveOutputPaths derives the final output locations from the three
// output flags. outputDir wins when set and implies both default-named
// outputs inside it.
func ResolveOutputPaths(output, outputCSV, outputDir string) OutputPaths {
	if outputDir != "" {
		return OutputPaths{
			JSON: filepath.Join(outputDir, config.DefaultJSONName),
			CSV:  filepath.Join(outputDir, config.DefaultCSVName),
		}
	}

	if output == "" {
		output = config.DefaultJSONName
	}
	return OutputPaths{JSON: output, CSV: outputCSV}
}

// WriteReports renders and writes the JSON report and, when requested, the
// CSV projection. Parent directories are created as needed. Any failure is a
// WriteError.
func WriteReports(rep *report.RunReport, paths OutputPaths) error {
	if err := writeFormatted("json", rep, paths.JSON); err != nil {
		return err
	}
	if paths.CSV != "" {
		if err := writeFormatted("csv", rep, paths.CSV); err != nil {
			return err
		}
	}
	return nil
}

func writeFormatted(format string, rep *report.RunReport, path string) error {
	content, err := formatters.Export(format, rep, formatters.FormatterOptions{})
	if err != nil {
		return &WriteError{Path: path, Cause: err}
	}

	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return &WriteError{Path: path, Cause: err}
		}
	}

	if err := os.WriteFile(cleanPath, []byte(content), 0600); err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	return nil
}
