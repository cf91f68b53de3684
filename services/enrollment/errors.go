package enrollment

import (
	"errors"
	"fmt"
)

// Expected, user-facing failures.
var (
	// ErrDuplicateEnrollment is returned when the learner already holds an
	// active enrollment in the target sector, whether caught by the
	// admission pre-check or by the unique constraint under a race.
	ErrDuplicateEnrollment = errors.New("already enrolled in this sector")

	// ErrSectorNotFound is returned when the target sector does not exist
	// or is inactive; a caller-side mistake, not a data defect.
	ErrSectorNotFound = errors.New("sector not found or not active")

	// ErrNotEnrolled is returned by progress writes against a course the
	// learner holds no progress row for.
	ErrNotEnrolled = errors.New("not enrolled in this course")
)

// ValidationError rejects bad input before any database work.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// CatalogInconsistencyError means the reference data is broken (e.g. an
// active sector with no level 1). Not retryable without a data fix; callers
// should log it loudly rather than blame the user.
type CatalogInconsistencyError struct {
	SectorID uint
	Detail   string
}

func (e *CatalogInconsistencyError) Error() string {
	return fmt.Sprintf("catalog inconsistency on sector %d: %s", e.SectorID, e.Detail)
}

// TransactionError wraps a datastore failure during the atomic enrollment
// write. Nothing partial persists, so the operation is safe to retry.
type TransactionError struct {
	Err error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("enrollment transaction failed: %v", e.Err)
}

func (e *TransactionError) Unwrap() error { return e.Err }
