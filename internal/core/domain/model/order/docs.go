// Package order provides the Order aggregate for the restaurant: its status
// state machine and the events it records when the status changes.
//
// The package includes:
//   - Order: the aggregate root holding number, references, payload and status
//   - Status: the state machine enforcing the order workflow
//   - Line: a product and quantity carried on the order
//   - StatusChanged: the event recorded by every successful transition
//
// Key business rules:
//   - An order is numbered exactly once, when it is created
//   - Status follows NEW -> IN_PROGRESS -> PENDING_DELIVERY -> DELIVERED
//   - Any status except DELIVERED and CANCELLED can move to CANCELLED
//   - A failed transition leaves the order unchanged
package order
