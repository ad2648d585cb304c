package order

import (
	"unicode/utf8"

	"github.com/coffeffe/coffeehouse/internal/catalog"
)

// minNameLen is the shortest customer name accepted before items can be
// added. Checked at add time only; shortening the name later does not
// invalidate lines already in the cart.
const minNameLen = 2

// Session is one in-progress order: a customer name plus the selected items.
// A session accepts mutations until Close, after which every mutation fails
// with ErrSessionClosed. Not safe for concurrent use; the app is
// single-user.
type Session struct {
	customerName string
	lines        []catalog.Item
	closed       bool
}

// NewSession starts an empty open session.
func NewSession() *Session {
	return &Session{}
}

// SetCustomerName replaces the stored name. Any value is accepted here,
// including empty; the length rule applies when items are added.
func (s *Session) SetCustomerName(name string) {
	s.customerName = name
}

// CustomerName returns the current name.
func (s *Session) CustomerName() string {
	return s.customerName
}

// AddItem appends the item to the cart. Adding the same item twice yields
// two lines at the same price.
func (s *Session) AddItem(item catalog.Item) error {
	if s.closed {
		return ErrSessionClosed
	}
	if utf8.RuneCountInString(s.customerName) < minNameLen {
		return ErrNameTooShort
	}
	s.lines = append(s.lines, item)
	return nil
}

// RemoveItem drops every line whose item id matches. Removing an id that is
// not in the cart is a no-op. Line order is preserved for the rest.
func (s *Session) RemoveItem(itemID int) error {
	if s.closed {
		return ErrSessionClosed
	}
	kept := s.lines[:0]
	for _, l := range s.lines {
		if l.ID != itemID {
			kept = append(kept, l)
		}
	}
	s.lines = kept
	return nil
}

// IsEmpty reports whether the cart has no lines. Checkout is unreachable
// while true.
func (s *Session) IsEmpty() bool {
	return len(s.lines) == 0
}

// Lines returns a copy of the cart in insertion order.
func (s *Session) Lines() []catalog.Item {
	out := make([]catalog.Item, len(s.lines))
	copy(out, s.lines)
	return out
}

// Close finalizes the session. A second Close fails with ErrSessionClosed so
// a double-tapped submit cannot finalize twice.
func (s *Session) Close() error {
	if s.closed {
		return ErrSessionClosed
	}
	s.closed = true
	return nil
}

// Closed reports whether the session has been finalized.
func (s *Session) Closed() bool {
	return s.closed
}
