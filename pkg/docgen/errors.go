// Package docgen provides custom error types for document generation failures.
package docgen

import (
	"errors"
	"fmt"
)

// ErrNoDocumentsToMerge is returned when Merge is called with an empty input.
var ErrNoDocumentsToMerge = errors.New("no documents to merge")

// MalformedPackageError indicates that a buffer could not be opened as a
// document package, or that a required part is missing from it.
type MalformedPackageError struct {
	Reason string
	Cause  error
}

func (e *MalformedPackageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed package: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("malformed package: %s", e.Reason)
}

func (e *MalformedPackageError) Unwrap() error {
	return e.Cause
}

// NewMalformedPackageError creates a new malformed package error
func NewMalformedPackageError(reason string, cause error) error {
	return &MalformedPackageError{
		Reason: reason,
		Cause:  cause,
	}
}

// PartNotFoundError indicates that a named part is absent from a package.
type PartNotFoundError struct {
	Part string
}

func (e *PartNotFoundError) Error() string {
	return fmt.Sprintf("part %s not found", e.Part)
}

// NewPartNotFoundError creates a new part-not-found error
func NewPartNotFoundError(part string) error {
	return &PartNotFoundError{Part: part}
}

// RenderError indicates that the template engine could not substitute the
// supplied data into the template. The underlying engine message is carried
// verbatim for diagnostic value.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render failed: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// NewRenderError creates a new render error
func NewRenderError(message string, cause error) error {
	return &RenderError{
		Message: message,
		Cause:   cause,
	}
}

// DocumentStructureError indicates that a merge input did not contain a
// locatable document body. Index is the document's position in the input
// sequence, starting at zero.
type DocumentStructureError struct {
	Index   int
	Message string
}

func (e *DocumentStructureError) Error() string {
	return fmt.Sprintf("invalid document structure at index %d: %s", e.Index, e.Message)
}

// NewDocumentStructureError creates a new document structure error
func NewDocumentStructureError(index int, message string) error {
	return &DocumentStructureError{
		Index:   index,
		Message: message,
	}
}

// IsMalformedPackage checks if an error is a malformed package error
func IsMalformedPackage(err error) bool {
	var target *MalformedPackageError
	return errors.As(err, &target)
}

// IsRenderError checks if an error is a render error
func IsRenderError(err error) bool {
	var target *RenderError
	return errors.As(err, &target)
}

// IsDocumentStructureError checks if an error is a document structure error
func IsDocumentStructureError(err error) bool {
	var target *DocumentStructureError
	return errors.As(err, &target)
}
