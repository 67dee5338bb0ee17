// Package errors provides common domain error types for the meetsum CLI.
//
// This package defines sentinel errors for conditions the workflow layer
// needs to distinguish, such as failed input validation or a summarization
// call that came back without a summary. Using typed errors enables
// consistent error handling patterns with errors.Is() checks.
//
// Usage:
//
//	import mserrors "github.com/otherjamesbrown/meetsum-cli/pkg/errors"
//
//	// Return a domain error with context
//	return fmt.Errorf("transcript is empty: %w", mserrors.ErrValidation)
//
//	// Check for domain errors
//	if mserrors.IsValidation(err) {
//	    // report to the user, no network call was made
//	}
package errors

import "errors"

// Domain errors - common sentinel errors for workflow conditions.
var (
	// ErrValidation indicates invalid input caught before any network call.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates the requested meeting was not found.
	ErrNotFound = errors.New("not found")

	// ErrBusy indicates the workflow already has a request in flight.
	ErrBusy = errors.New("operation already in progress")

	// ErrNoSummary indicates the backend completed the summarization call
	// but returned a meeting without a summary. This is a logical failure,
	// distinct from a transport failure, and is kept separate for
	// diagnostics even though both surface identically to the user.
	ErrNoSummary = errors.New("no summary produced")
)

// IsValidation reports whether any error in err's chain is ErrValidation.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFound reports whether any error in err's chain is ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsBusy reports whether any error in err's chain is ErrBusy.
func IsBusy(err error) bool {
	return errors.Is(err, ErrBusy)
}

// IsNoSummary reports whether any error in err's chain is ErrNoSummary.
func IsNoSummary(err error) bool {
	return errors.Is(err, ErrNoSummary)
}
