package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/coffeffe/coffeehouse/internal/database"
	"github.com/coffeffe/coffeehouse/internal/database/repository"
	"github.com/coffeffe/coffeehouse/internal/order"
)

// ErrInvalidPayment is returned when a submit is attempted with an
// incomplete or malformed payment form. The UI should keep the submit
// control disabled while CanSubmit is false, so hitting this at runtime
// means admission control was bypassed.
var ErrInvalidPayment = errors.New("checkout: payment form incomplete")

// CardNetwork is the card brand selected on the payment screen.
type CardNetwork string

const (
	NetworkVisa       CardNetwork = "visa"
	NetworkMastercard CardNetwork = "mastercard"
	NetworkAmex       CardNetwork = "amex"
	NetworkDiscover   CardNetwork = "discover"
)

// Networks lists the selectable card brands in picker order.
func Networks() []CardNetwork {
	return []CardNetwork{NetworkVisa, NetworkMastercard, NetworkAmex, NetworkDiscover}
}

// PaymentForm holds one checkout attempt's fields. A fresh form is created
// per attempt; no card data is ever persisted or sent anywhere.
type PaymentForm struct {
	Network    CardNetwork
	NameOnCard string
	Expiry     string // MM/YY
	CVV        string
	CardNumber string
}

// CanSubmit reports whether the form is complete enough to place the order:
// name, expiry and CVV non-empty and a 16-character card number. Length is
// the only constraint enforced on the number.
func CanSubmit(f PaymentForm) bool {
	return f.NameOnCard != "" && f.Expiry != "" && f.CVV != "" && len(f.CardNumber) == 16
}

// OrderSink records finalized orders. Persistence is fire-and-forget from
// the checkout's point of view; a sink failure never rolls back the
// in-memory finalized state.
type OrderSink interface {
	Record(ctx context.Context, o repository.Order) error
}

// CheckoutResult is what a successful submit produces. PersistErr carries a
// non-fatal sink failure for the UI to surface as a warning.
type CheckoutResult struct {
	Order      repository.Order
	PersistErr error
}

// CheckoutService validates the payment form and finalizes order sessions.
type CheckoutService struct {
	Orders  OrderSink
	TaxRate float64
}

// Submit finalizes the session. It fails with ErrInvalidPayment when the
// form is incomplete and with order.ErrSessionClosed when the session was
// already finalized, so a double-tapped submit cannot record twice.
func (s *CheckoutService) Submit(ctx context.Context, sess *order.Session, form PaymentForm) (CheckoutResult, error) {
	if sess.Closed() {
		return CheckoutResult{}, order.ErrSessionClosed
	}
	if !CanSubmit(form) {
		return CheckoutResult{}, ErrInvalidPayment
	}

	lines := sess.Lines()
	summary := order.Summarize(lines, s.taxRate())
	if err := sess.Close(); err != nil {
		return CheckoutResult{}, err
	}

	names := make([]string, len(lines))
	for i, l := range lines {
		names[i] = l.Name
	}
	o := repository.Order{
		ID:           uuid.NewString(),
		CustomerName: sess.CustomerName(),
		Drinks:       strings.Join(names, ", "),
		TotalCents:   summary.TotalCents,
		CreatedAt:    database.Now(),
	}

	res := CheckoutResult{Order: o}
	if s.Orders != nil {
		if err := s.Orders.Record(ctx, o); err != nil {
			res.PersistErr = fmt.Errorf("record order: %w", err)
		}
	}
	return res, nil
}

func (s *CheckoutService) taxRate() float64 {
	if s.TaxRate > 0 {
		return s.TaxRate
	}
	return order.DefaultTaxRate
}
