package seoaudit

import "fmt"

// AuditError represents a failure running the audit itself, as opposed to a
// quality violation found on a page.
type AuditError struct {
	Message string
	Cause   error
}

func (e *AuditError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("seo audit error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("seo audit error: %s", e.Message)
}

func (e *AuditError) Unwrap() error {
	return e.Cause
}
