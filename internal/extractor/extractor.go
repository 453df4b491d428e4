// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extractor

import "fmt"

// PageText is the plain-text content of one PDF page. Pages are 1-indexed.
type PageText struct {
	Page int
	Text string
}

// Extractor produces per-page plain text for a PDF file. Implementations own
// the details of the underlying PDF library; callers only see page texts in
// page order.
type Extractor interface {
	Extract(path string) ([]PageText, error)
}

// UnreadableFileError indicates a PDF that cannot be opened or parsed
// (corrupt, encrypted without a usable password, or empty). It is recorded
// per-file in the report rather than aborting the run.
type UnreadableFileError struct {
	Path    string
	Message string
	Cause   error
}

func (e *UnreadableFileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unreadable PDF %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("unreadable PDF %s: %s", e.Path, e.Message)
}

func (e *UnreadableFileError) Unwrap() error {
	return e.Cause
}
