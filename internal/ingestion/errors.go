// Package ingestion turns uploaded résumé documents into normalized plain text.
package ingestion

import "fmt"

// UnsupportedFormatError is returned for documents whose extension has no extractor.
type UnsupportedFormatError struct {
	Filename  string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Extension == "" {
		return fmt.Sprintf("unsupported file format: %q has no extension", e.Filename)
	}
	return fmt.Sprintf("unsupported file format: %s", e.Extension)
}

// ExtractionError represents a failure to read text out of a supported document.
type ExtractionError struct {
	Format  string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s extraction failed: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s extraction failed: %s", e.Format, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
