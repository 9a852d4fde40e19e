// Package autolink inserts contextual internal links into HTML prose.
package autolink

import "fmt"

// MalformedContentError indicates the content fragment could not be linked
// safely (unclosed or mis-nested markup). Callers should emit the page with
// linking skipped rather than risk corrupted output.
type MalformedContentError struct {
	Message string
	Cause   error
}

func (e *MalformedContentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed content error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed content error: %s", e.Message)
}

func (e *MalformedContentError) Unwrap() error {
	return e.Cause
}

// InvalidTermError wraps a link-term validation failure.
type InvalidTermError struct {
	Surface string
	Cause   error
}

func (e *InvalidTermError) Error() string {
	return fmt.Sprintf("autolink error: invalid term %q: %v", e.Surface, e.Cause)
}

func (e *InvalidTermError) Unwrap() error {
	return e.Cause
}
