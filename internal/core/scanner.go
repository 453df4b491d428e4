// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"pdfsift/internal/extractor"
	"pdfsift/internal/keywords"
	"pdfsift/internal/matcher"
	"pdfsift/internal/observability"
	"pdfsift/internal/report"
)

// Scanner drives the scan: file discovery, per-file extraction and matching,
// and report accumulation. Files are processed strictly sequentially; one
// unreadable PDF is recorded in its FileReport and never aborts the run.
type Scanner struct {
	extractor extractor.Extractor
	observer  *observability.Observer
	clock     func() time.Time
}

// NewScanner creates a scanner using the given extractor and observer.
func NewScanner(ext extractor.Extractor, obs *observability.Observer) *Scanner {
	return &Scanner{
		extractor: ext,
		observer:  obs,
		clock:     time.Now,
	}
}

// WithClock overrides the report timestamp clock. Tests use this for
// reproducible output.
func (s *Scanner) WithClock(now func() time.Time) *Scanner {
	s.clock = now
	return s
}

// FindPDFs returns the PDF files under dir in lexicographic path order. By
// default only direct children are considered; recursive walks the whole
// tree. The suffix check is case-insensitive, so ".PDF" files are included.
func (s *Scanner) FindPDFs(dir string, recursive bool) ([]string, error) {
	var paths []string

	if recursive {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return fmt.Errorf("error accessing path %s: %w", path, err)
			}
			if info.IsDir() {
				s.observer.Debug("scanner", "scanning directory: %s", path)
				return nil
			}
			if isPDF(path) {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("error reading directory %s: %w", dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if isPDF(entry.Name()) {
				paths = append(paths, filepath.Join(dir, entry.Name()))
			}
		}
	}

	// Deterministic processing and report order
	sort.Strings(paths)
	return paths, nil
}

// ScanFiles extracts and matches each file in order and returns the finished
// report. keywordSource is the keyword list path recorded in the report.
func (s *Scanner) ScanFiles(paths []string, set *keywords.Set, keywordSource string) *report.RunReport {
	builder := report.NewBuilder(keywordSource).WithClock(s.clock)

	for _, path := range paths {
		done := s.observer.StartStep("scanner", "scan", path)

		pages, err := s.extractor.Extract(path)
		if err != nil {
			s.observer.Warn("skipping %s: %v", path, err)
			builder.AddError(path, err)
			done(false, err.Error())
			continue
		}

		matches := matcher.Match(pages, set)
		builder.AddFile(path, matches)
		done(true, fmt.Sprintf("%d pages, %d matches", len(pages), len(matches)))
	}

	return builder.Finalize()
}

func isPDF(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}
