package model

import "errors"

// Domain errors propagated as distinguishable failure signals. Handlers map
// them to HTTP statuses with errors.Is.
var (
	// ErrProductNotFound indicates a referenced product code is absent from
	// the catalog. During order creation it aborts the whole order.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductAlreadyExists indicates a create collided with an existing
	// product code.
	ErrProductAlreadyExists = errors.New("product already exists")

	// ErrPackagingOptionNotFound indicates a referenced packaging option id
	// does not exist.
	ErrPackagingOptionNotFound = errors.New("packaging option not found")

	// ErrOrderNotFound indicates a referenced order id does not exist.
	ErrOrderNotFound = errors.New("order not found")
)
