// Package errs provides standardized error types for the marketplace backend.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - ConflictError: For when an optimistic update loses a concurrent-write race
//   - IllegalTransitionError: For state machine guard failures
//   - Other specialized error types for specific validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The taxonomy maps directly onto the fulfillment engine's failure modes:
// validation failures are rejected before any state change, illegal transitions
// report the current and attempted state, and conflicts are retriable after the
// caller re-reads the aggregate.
package errs
