// Package errs provides the typed errors shared by the order service.
//
// Every error kind follows the same shape:
//   - a sentinel variable (e.g., ErrObjectNotFound) for errors.Is checks
//   - a struct type carrying the details (e.g., *ObjectNotFoundError) for errors.As
//   - New... / New...WithCause constructors
//   - Error() for the message and Unwrap() returning the sentinel
//
// Validation kinds (ValueIsRequired, ValueIsInvalid, ValueIsOutOfRange) guard
// domain constructors. The order lifecycle uses four more kinds that callers
// are expected to tell apart:
//   - InvalidState: creating an order that already has a number
//   - InvalidReference: the referenced waiter or establishment does not exist
//   - ObjectNotFound: no order with the requested number
//   - InvalidTransition: the current status does not allow the requested change
package errs
