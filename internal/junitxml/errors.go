package junitxml

import "fmt"

// UnsafeDocumentError is returned when a document declares a DOCTYPE or
// entity definition. Such documents are rejected on the raw text, before any
// XML decoding, because external-entity resolution must never be reachable.
type UnsafeDocumentError struct {
	Construct string
}

func (e *UnsafeDocumentError) Error() string {
	return fmt.Sprintf("document declares %s: DOCTYPE/external-entity constructs are rejected before parsing", e.Construct)
}

// MalformedDocumentError is returned when the document is not well-formed
// XML. No partial summary is produced.
type MalformedDocumentError struct {
	Cause error
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("test report is not well-formed XML: %v", e.Cause)
}

func (e *MalformedDocumentError) Unwrap() error { return e.Cause }
