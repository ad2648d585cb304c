package order

import (
	"fmt"
	"math"

	"github.com/coffeffe/coffeehouse/internal/catalog"
)

// DefaultTaxRate is the sales tax applied when config does not override it.
const DefaultTaxRate = 0.07

// Summary holds the derived totals for a cart. Values are integer cents;
// nothing here is stored, callers recompute from the lines on every read.
type Summary struct {
	SubtotalCents int64
	TaxCents      int64
	TotalCents    int64
}

// Summarize derives subtotal, tax and total from the lines. The subtotal is
// exact in cents; tax is rounded once, from the unrounded subtotal, so
// repeated recomputation after removals cannot compound rounding error. An
// empty cart yields all zeros.
func Summarize(lines []catalog.Item, taxRate float64) Summary {
	var subtotal int64
	for _, l := range lines {
		subtotal += l.PriceCents
	}
	tax := int64(math.Round(float64(subtotal) * taxRate))
	return Summary{
		SubtotalCents: subtotal,
		TaxCents:      tax,
		TotalCents:    subtotal + tax,
	}
}

// FormatCents renders cents as a dollar amount without a currency symbol,
// e.g. 696 -> "6.96".
func FormatCents(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100)
}
