// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package keywords

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ConfigError represents a problem with the keyword list that prevents a run
// from starting.
type ConfigError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("keywords file %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("keywords file %s: %s", e.Path, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Set holds the deduplicated keyword list for one run. Keywords compare
// case-insensitively; the first-seen casing is retained for display.
// A Set is built once by Load and read-only afterward.
type Set struct {
	display []string          // original casing, sorted case-insensitively
	folded  map[string]string // lower-cased form -> display form
}

// Load reads a keyword list from path. Entries may be separated by newlines,
// commas, or a mix of both. Entries are trimmed and empties dropped.
// Returns a ConfigError when the file cannot be read or contains no usable
// keywords.
func Load(path string) (*Set, error) {
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, &ConfigError{Path: path, Message: "cannot read", Cause: err}
	}

	set := newSet(splitEntries(string(data)))
	if set.Len() == 0 {
		return nil, &ConfigError{Path: path, Message: "no usable keywords found"}
	}
	return set, nil
}

// splitEntries breaks raw keyword file content on newlines and commas.
func splitEntries(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ','
	})
}

func newSet(entries []string) *Set {
	set := &Set{folded: make(map[string]string)}
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		folded := strings.ToLower(entry)
		if _, exists := set.folded[folded]; exists {
			continue
		}
		set.folded[folded] = entry
		set.display = append(set.display, entry)
	}

	// Deterministic iteration order for matching and report output
	sort.Slice(set.display, func(i, j int) bool {
		a, b := strings.ToLower(set.display[i]), strings.ToLower(set.display[j])
		if a == b {
			return set.display[i] < set.display[j]
		}
		return a < b
	})

	return set
}

// Len returns the number of distinct keywords.
func (s *Set) Len() int {
	return len(s.display)
}

// Keywords returns the display forms in case-insensitive sorted order.
func (s *Set) Keywords() []string {
	out := make([]string, len(s.display))
	copy(out, s.display)
	return out
}

// Contains reports whether the set holds keyword under case-insensitive
// comparison.
func (s *Set) Contains(keyword string) bool {
	_, ok := s.folded[strings.ToLower(keyword)]
	return ok
}
