package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification via errors.Is. Each concrete error type
// below unwraps to exactly one of these.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")

	ErrObjectNotFound         = errors.New("object not found")
	ErrHubMismatch            = errors.New("hub mismatch")
	ErrOrderFinalized         = errors.New("order already finalized")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrStoreReadFailed        = errors.New("store read failed")
	ErrStoreWriteFailed       = errors.New("store write failed")
)

// sanitize strips newlines from values that end up in error messages,
// keeping log lines single-line.
func sanitize(v any) string {
	return strings.ReplaceAll(strings.ReplaceAll(fmt.Sprintf("%s", v), "\n", " "), "\r", " ")
}

// ValueIsRequiredError indicates a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric value fell outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsOutOfRange, e.Value, e.ParamName, e.Min, e.Max)
	if s, ok := e.Value.(string); ok {
		msg = fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
			ErrValueIsOutOfRange, sanitize(s), e.ParamName, e.Min, e.Max)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates a lookup by identifier matched no row.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// HubMismatchError indicates the caller's hub scope does not match the hub
// the order is routed through. Returned before any status inspection so a
// caller outside the hub learns nothing about the order's state.
type HubMismatchError struct {
	OrderHub  string
	CallerHub string
}

func NewHubMismatchError(orderHub, callerHub string) *HubMismatchError {
	return &HubMismatchError{OrderHub: orderHub, CallerHub: callerHub}
}

func (e *HubMismatchError) Error() string {
	return fmt.Sprintf("%s: order belongs to %s, caller is scoped to %s",
		ErrHubMismatch, sanitize(e.OrderHub), sanitize(e.CallerHub))
}

func (e *HubMismatchError) Unwrap() error {
	return ErrHubMismatch
}

// OrderFinalizedError indicates a transition was requested on an order that
// already reached a terminal status.
type OrderFinalizedError struct {
	ID     any
	Status string
}

func NewOrderFinalizedError(id any, status string) *OrderFinalizedError {
	return &OrderFinalizedError{ID: id, Status: status}
}

func (e *OrderFinalizedError) Error() string {
	return fmt.Sprintf("%s: %s is %s", ErrOrderFinalized, sanitize(e.ID), e.Status)
}

func (e *OrderFinalizedError) Unwrap() error {
	return ErrOrderFinalized
}

// ConcurrentModificationError indicates a conditional write matched zero rows:
// another actor changed the row between the caller's read and its write.
type ConcurrentModificationError struct {
	ParamName string
	ID        any
}

func NewConcurrentModificationError(paramName string, id any) *ConcurrentModificationError {
	return &ConcurrentModificationError{ParamName: paramName, ID: id}
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrConcurrentModification, sanitize(e.ID), e.ParamName)
}

func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}

// StoreReadError wraps an I/O failure on a store read. Not retried here;
// retry policy belongs to the caller.
type StoreReadError struct {
	Op    string
	Cause error
}

func NewStoreReadError(op string, cause error) *StoreReadError {
	return &StoreReadError{Op: op, Cause: cause}
}

func (e *StoreReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrStoreReadFailed, e.Op, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStoreReadFailed, e.Op)
}

func (e *StoreReadError) Unwrap() error {
	return ErrStoreReadFailed
}

// StoreWriteError wraps an I/O failure on a store write.
type StoreWriteError struct {
	Op    string
	Cause error
}

func NewStoreWriteError(op string, cause error) *StoreWriteError {
	return &StoreWriteError{Op: op, Cause: cause}
}

func (e *StoreWriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrStoreWriteFailed, e.Op, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStoreWriteFailed, e.Op)
}

func (e *StoreWriteError) Unwrap() error {
	return ErrStoreWriteFailed
}
