// Package staff holds the reference data an order points at: the waiters
// who take orders and the establishments orders are placed in.
package staff
