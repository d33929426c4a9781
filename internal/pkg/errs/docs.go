// Package errs provides standardized error types for the hubfleet
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// Two groups of errors live here:
//
//   - Generic validation errors used by constructors of value objects,
//     commands, and queries: ValueIsRequiredError, ValueIsInvalidError,
//     ValueIsOutOfRangeError.
//
//   - The closed taxonomy of order-core failures. Every exit path of the
//     status transition use case is exactly one of: ObjectNotFoundError,
//     HubMismatchError, OrderFinalizedError, ConcurrentModificationError,
//     StoreReadError, StoreWriteError.
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type carrying the failure details
//   - Constructor functions, with and without cause where applicable
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Callers classify errors with errors.Is against the sentinels; the structs
// carry the detail for messages and logs. Store failures are never swallowed
// on the way up, only re-tagged into this taxonomy.
package errs
