package order

import "errors"

var (
	// ErrNameTooShort is returned when an item is added before the customer
	// has entered a usable name.
	ErrNameTooShort = errors.New("order: customer name must be at least 2 characters")

	// ErrSessionClosed is returned by any mutation after checkout has
	// finalized the session.
	ErrSessionClosed = errors.New("order: session is closed")
)
