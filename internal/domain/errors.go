package domain

import "fmt"

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// InputShapeErr represents a malformed upstream record, such as a missing
// sheet, column or required text field.
type InputShapeErr struct {
	domainErr
	Kind string
	Row  int
}

// NewInputShapeErr creates a new InputShapeErr for the record kind at row.
// A row lower than 1 means the error is not tied to a single record.
func NewInputShapeErr(kind string, row int, message string) *InputShapeErr {
	msg := fmt.Sprintf("%s: %s", kind, message)
	if row > 0 {
		msg = fmt.Sprintf("%s row %d: %s", kind, row, message)
	}
	return &InputShapeErr{
		domainErr: domainErr{message: msg},
		Kind:      kind,
		Row:       row,
	}
}

// ProviderErr represents a failed call to the embedding provider: rate limits,
// authentication, network failures or a malformed response.
type ProviderErr struct {
	domainErr
	cause error
}

// NewProviderErr creates a new ProviderErr wrapping cause.
func NewProviderErr(message string, cause error) *ProviderErr {
	msg := message
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", message, cause)
	}
	return &ProviderErr{
		domainErr: domainErr{message: "embedding provider: " + msg},
		cause:     cause,
	}
}

// Unwrap returns the underlying cause.
func (e *ProviderErr) Unwrap() error {
	return e.cause
}

// CacheWriteErr represents a failure to persist new embedding entries.
type CacheWriteErr struct {
	domainErr
	Entries int
	cause   error
}

// NewCacheWriteErr creates a new CacheWriteErr for a failed write of n entries.
func NewCacheWriteErr(entries int, cause error) *CacheWriteErr {
	return &CacheWriteErr{
		domainErr: domainErr{message: fmt.Sprintf("embedding cache: failed to store %d entries: %v", entries, cause)},
		Entries:   entries,
		cause:     cause,
	}
}

// Unwrap returns the underlying cause.
func (e *CacheWriteErr) Unwrap() error {
	return e.cause
}

// DimensionMismatchErr represents a comparison between vectors of different
// dimensionality.
type DimensionMismatchErr struct {
	domainErr
	Expected int
	Actual   int
}

// NewDimensionMismatchErr creates a new DimensionMismatchErr.
func NewDimensionMismatchErr(subject string, expected, actual int) *DimensionMismatchErr {
	return &DimensionMismatchErr{
		domainErr: domainErr{message: fmt.Sprintf("%s has %d dimensions, expected %d", subject, actual, expected)},
		Expected:  expected,
		Actual:    actual,
	}
}
