// Package ledger holds the business rules over the pending order
// sequence. All operations are pure: a rejected call returns the
// input sequence untouched.
package ledger

import (
	"errors"

	"github.com/avGenie/go-order-tracker/internal/app/entity"
)

var (
	ErrOrderIDExists = errors.New("order with given id already exists")
	ErrNoItems       = errors.New("order requires at least one item")
	ErrBadOrderIndex = errors.New("order index is out of range")
)

// Add appends the order to the pending sequence. The order id must be
// normalized by the caller; uniqueness is checked against the ids
// already present.
func Add(pending entity.Orders, order entity.Order) (entity.Orders, error) {
	if pending.Contains(order.OrderID) {
		return pending, ErrOrderIDExists
	}

	if len(order.Items) == 0 {
		return pending, ErrNoItems
	}

	return append(pending, order), nil
}

// Fulfill removes the order at the given 0-based index, preserving the
// relative order of the remaining entries, and returns it.
func Fulfill(pending entity.Orders, index int) (entity.Orders, entity.Order, error) {
	if index < 0 || index >= len(pending) {
		return pending, entity.Order{}, ErrBadOrderIndex
	}

	fulfilled := pending[index]

	rest := make(entity.Orders, 0, len(pending)-1)
	rest = append(rest, pending[:index]...)
	rest = append(rest, pending[index+1:]...)

	return rest, fulfilled, nil
}
