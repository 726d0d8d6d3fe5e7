// Package kernel provides the identifier value objects shared by the order
// domain: the order number and the references to the waiter and the
// establishment an order belongs to.
//
// All three wrap a positive int64. Their zero value means "not set" and fails
// Validate, so an order that has not been numbered yet can be told apart from
// one that has.
package kernel
