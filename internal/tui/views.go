package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/coffeffe/coffeehouse/internal/order"
	"github.com/coffeffe/coffeehouse/internal/service"
)

// styles
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	headerStyle   = lipgloss.NewStyle().Bold(true)
	disabledStyle = lipgloss.NewStyle().Faint(true)
	linkStyle     = lipgloss.NewStyle().Underline(true)
)

func (a *App) renderWelcome() string {
	title := titleStyle.Render(a.cfg.Shop.Name)
	out := title + "\n" + a.cfg.Shop.Greeting + "\n\n"
	out += headerStyle.Render("Location:") + "\n  " + a.cfg.Shop.Address + "\n"
	out += headerStyle.Render("Hours of Operation:") + "\n  " + a.cfg.Shop.Hours + "\n"
	out += headerStyle.Render("Phone Number:") + "\n  " + linkStyle.Render(a.cfg.Shop.Phone) + "\n\n"
	out += "Are You a Chocolate Lover?\nCheck out our partners at Lulubee Chocolates in Lincoln, NE!\n"
	out += "  " + linkStyle.Render(a.cfg.Shop.PartnerURL) + "\n"
	out += "\n[enter] Start Order  [o] Order Log  [p] Call Us  [w] Partner Site  [q] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderMenu() string {
	title := titleStyle.Render("Menu")
	out := title + "\n"

	name := a.session.CustomerName()
	if a.nameFocus {
		out += fmt.Sprintf("Name: %s▌  (enter to finish)\n", name)
	} else if name == "" {
		out += "Name: " + disabledStyle.Render("(press n to enter your name)") + "\n"
	} else {
		out += "Name: " + name + "\n"
	}
	if a.searchMode {
		out += fmt.Sprintf("Search: %s▌\n", a.search)
	} else if a.search != "" {
		out += fmt.Sprintf("Search: %s\n", a.search)
	}
	out += "\n"

	if len(a.menu) == 0 {
		out += "  no drinks match your search\n"
	}
	for i, it := range a.menu {
		marker := " "
		if i == a.menuCursor {
			marker = "▶"
		}
		out += fmt.Sprintf("%s %-16s %s%s\n", marker, it.Name, a.currency, order.FormatCents(it.PriceCents))
	}

	out += fmt.Sprintf("\nIn your order: %d item(s)\n", len(a.session.Lines()))
	checkout := "[c] Checkout"
	if a.session.IsEmpty() {
		checkout = disabledStyle.Render(checkout)
	}
	out += "[enter] Add to Order  " + checkout + "  [n] Name  [/] Search  [esc] Back  [q] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderConfirm() string {
	title := titleStyle.Render("Confirm Order")
	out := title + "\n"
	out += fmt.Sprintf("Nice %s! Does your order look correct?\n\n", a.session.CustomerName())
	out += headerStyle.Render("Order Summary:") + "\n"

	lines := a.session.Lines()
	if len(lines) == 0 {
		out += "  (empty)\n"
	}
	for i, l := range lines {
		marker := " "
		if i == a.confirmCursor {
			marker = "▶"
		}
		out += fmt.Sprintf("%s %-16s %s%s\n", marker, l.Name, a.currency, order.FormatCents(l.PriceCents))
	}

	sum := order.Summarize(lines, a.taxRate)
	out += strings.Repeat("-", 28) + "\n"
	out += fmt.Sprintf("Subtotal:        %s%s\n", a.currency, order.FormatCents(sum.SubtotalCents))
	out += fmt.Sprintf("Sales Tax (%.0f%%):  %s%s\n", a.taxRate*100, a.currency, order.FormatCents(sum.TaxCents))
	out += fmt.Sprintf("Total Due:       %s%s\n", a.currency, order.FormatCents(sum.TotalCents))

	checkout := "[c] Checkout"
	if a.session.IsEmpty() {
		checkout = disabledStyle.Render(checkout)
	}
	out += "\n[r] Remove Item  [m] Continue Shopping  " + checkout + "  [q] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderPayment() string {
	title := titleStyle.Render("Payment")
	out := title + "\n"

	networks := service.Networks()
	var picker []string
	for i, n := range networks {
		label := string(n)
		if i == a.netIdx {
			label = "[" + label + "]"
		}
		picker = append(picker, label)
	}
	out += a.paymentRow(fieldNetwork, "Card Type:      "+strings.Join(picker, " "))
	out += a.paymentRow(fieldNameOnCard, "Name on Card:   "+a.form.NameOnCard)
	out += a.paymentRow(fieldExpiry, "Expiry (MM/YY): "+a.form.Expiry)
	out += a.paymentRow(fieldCVV, "CVV2:           "+a.form.CVV)
	out += a.paymentRow(fieldCardNumber, fmt.Sprintf("Card Number:    %s (%d/16)", a.form.CardNumber, len(a.form.CardNumber)))

	place := "Place Order"
	if !service.CanSubmit(a.form) {
		place = disabledStyle.Render(place)
	}
	out += a.paymentRow(fieldPlaceOrder, place)

	out += "\n[tab] Next Field  [enter] Confirm Field  [esc] Back  [ctrl+c] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) paymentRow(field int, text string) string {
	marker := " "
	if a.payField == field {
		marker = "▶"
	}
	return fmt.Sprintf("%s %s\n", marker, text)
}

func (a *App) renderOrders() string {
	title := titleStyle.Render("Order Log")
	out := title + "\n"
	out += fmt.Sprintf("Orders today: %d\n\n", a.todayCount)
	if len(a.orders) == 0 {
		out += "  no orders recorded yet\n"
	}
	for i, o := range a.orders {
		marker := " "
		if i == a.ordersCursor {
			marker = "▶"
		}
		out += fmt.Sprintf("%s %s  %-12s %s%s  %s\n", marker,
			o.CreatedAt.Format("02/01 15:04"), o.CustomerName,
			a.currency, order.FormatCents(o.TotalCents), o.Drinks)
	}
	out += "\n[x] Clear Log  [esc] Back  [q] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalNotice:
		return titleStyle.Render(a.noticeTitle) + "\n" + a.noticeBody + "\n[any key] Dismiss"
	case modalConfirmClear:
		return titleStyle.Render("Clear order log?") + "\nThis will delete every recorded order.\n[y] Yes  [n] No"
	default:
		return ""
	}
}
