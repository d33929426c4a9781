// Package kernel contains the shared value objects of the domain model.
//
// The kernel holds types that are used across aggregates but carry no
// aggregate-specific behavior themselves: UUID identifiers and HubID, the
// distribution-hub identity every order is bound to. All kernel types are
// immutable value objects constructed through factory functions; their zero
// values are invalid and fail Validate.
package kernel
