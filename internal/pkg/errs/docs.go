// Package errs provides standardized error types for the marketplace core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the four expected failure kinds of the order lifecycle:
//   - ObjectNotFoundError: a referenced actor, order, meal, or discount does
//     not exist or does not belong to the caller
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed or out-of-range input
//   - InvalidStateError: a status transition that is illegal from the order's
//     current state
//   - ConflictError: a concurrent claim or duplicate rating lost the race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Anything that does not unwrap to one of the sentinels is an unexpected
// infrastructure fault and is reported as a generic failure at the operation
// boundary.
package errs
