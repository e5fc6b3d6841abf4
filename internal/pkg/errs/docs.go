// Package errs provides standardized error types for the coffee order
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the domain model.
//
// The package includes error types for the validation failures the domain
// can produce:
//   - ValueIsInvalidError: a value outside its closed set of legal values
//   - ValueIsOutOfRangeError: a numeric value outside its inclusive bounds
//   - ValueIsRequiredError: a required value that is missing
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsInvalid)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// All failures surfaced by the order builder are local validation
// rejections; there is no fatal or retryable error class.
package errs
