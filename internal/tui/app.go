package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/coffeffe/coffeehouse/internal/catalog"
	"github.com/coffeffe/coffeehouse/internal/config"
	"github.com/coffeffe/coffeehouse/internal/database/repository"
	"github.com/coffeffe/coffeehouse/internal/linkout"
	"github.com/coffeffe/coffeehouse/internal/order"
	"github.com/coffeffe/coffeehouse/internal/service"
)

// App ties together the storefront screens.
type App struct {
	ctx      context.Context
	cfg      config.Config
	repos    Repos
	services Services
	links    linkout.Opener

	state appState
	modal modalState

	// session is created when the menu is entered and destroyed when
	// checkout finalizes. Screens never hold their own copy of the cart.
	session *order.Session
	taxRate float64

	// menu screen
	menu       []catalog.Item
	menuCursor int
	nameFocus  bool
	searchMode bool
	search     string

	// confirm screen
	confirmCursor int

	// payment screen
	form     service.PaymentForm
	netIdx   int
	payField int

	// orders screen
	orders       []repository.Order
	ordersCursor int
	todayCount   int

	noticeTitle string
	noticeBody  string
	status      string
	currency    string
}

type Repos struct {
	Orders *repository.OrderRepo
}

type Services struct {
	Checkout    *service.CheckoutService
	Maintenance *service.MaintenanceService
}

type appState string

const (
	viewWelcome appState = "welcome"
	viewMenu    appState = "menu"
	viewConfirm appState = "confirm"
	viewPayment appState = "payment"
	viewOrders  appState = "orders"
)

type modalState string

const (
	modalNone         modalState = ""
	modalNotice       modalState = "notice"
	modalConfirmClear modalState = "confirmClear"
)

// payment form fields, in tab order
const (
	fieldNetwork = iota
	fieldNameOnCard
	fieldExpiry
	fieldCVV
	fieldCardNumber
	fieldPlaceOrder
)

func New(ctx context.Context, cfg config.Config, repos Repos, services Services, links linkout.Opener) *App {
	taxRate := cfg.Pricing.TaxRate
	if taxRate <= 0 {
		taxRate = order.DefaultTaxRate
	}
	return &App{
		ctx:      ctx,
		cfg:      cfg,
		repos:    repos,
		services: services,
		links:    links,
		state:    viewWelcome,
		taxRate:  taxRate,
		menu:     catalog.List(),
		currency: cfg.UI.CurrencySymbol,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		switch a.state {
		case viewWelcome:
			return a.handleWelcomeKey(m)
		case viewMenu:
			return a.handleMenuKey(m)
		case viewConfirm:
			return a.handleConfirmKey(m)
		case viewPayment:
			return a.handlePaymentKey(m)
		case viewOrders:
			return a.handleOrdersKey(m)
		}
	case ordersMsg:
		a.orders = m.list
		a.todayCount = m.today
		if a.ordersCursor >= len(a.orders) {
			a.ordersCursor = 0
		}
	case checkoutDoneMsg:
		a.session = nil
		a.form = service.PaymentForm{}
		a.netIdx = 0
		a.payField = 0
		a.state = viewWelcome
		a.noticeTitle = "Order Placed"
		a.noticeBody = fmt.Sprintf("Thanks %s! %s\nTotal charged: %s%s",
			m.Result.Order.CustomerName, m.Result.Order.Drinks,
			a.currency, order.FormatCents(m.Result.Order.TotalCents))
		a.modal = modalNotice
		if m.Result.PersistErr != nil {
			a.status = "warning: order not saved to log: " + m.Result.PersistErr.Error()
		} else {
			a.status = ""
		}
	case statusMsg:
		a.status = string(m)
	case errMsg:
		if errors.Is(m.error, order.ErrSessionClosed) {
			a.status = "this order was already placed"
		} else {
			a.status = "error: " + m.Error()
		}
	}
	return a, nil
}

func (a *App) View() string {
	var body string
	switch a.state {
	case viewMenu:
		body = a.renderMenu()
	case viewConfirm:
		body = a.renderConfirm()
	case viewPayment:
		body = a.renderPayment()
	case viewOrders:
		body = a.renderOrders()
	default:
		body = a.renderWelcome()
	}
	if a.modal != modalNone {
		body += "\n\n" + a.renderModal()
	}
	return body
}

// keys

func (a *App) handleWelcomeKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "enter", "s":
		a.startOrder()
	case "o":
		a.state = viewOrders
		a.status = ""
		return a, a.loadOrders()
	case "p":
		return a, a.dialCmd()
	case "w":
		return a, a.partnerCmd()
	}
	return a, nil
}

// startOrder enters the menu, creating a fresh session unless an open one is
// being resumed.
func (a *App) startOrder() {
	if a.session == nil || a.session.Closed() {
		a.session = order.NewSession()
	}
	a.state = viewMenu
	a.menu = catalog.List()
	a.menuCursor = 0
	a.search = ""
	a.searchMode = false
	a.nameFocus = a.session.CustomerName() == ""
	a.status = ""
}

func (a *App) handleMenuKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.nameFocus {
		return a.handleNameInput(m)
	}
	if a.searchMode {
		return a.handleSearchInput(m)
	}
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.state = viewWelcome
		a.status = ""
	case "n":
		a.nameFocus = true
	case "/":
		a.searchMode = true
		a.search = ""
		a.menu = catalog.List()
		a.menuCursor = 0
	case "up", "k":
		if a.menuCursor > 0 {
			a.menuCursor--
		}
	case "down", "j":
		if a.menuCursor < len(a.menu)-1 {
			a.menuCursor++
		}
	case "enter", "a":
		a.addSelected()
	case "c":
		if a.session.IsEmpty() {
			a.status = "add a drink before checking out"
			return a, nil
		}
		a.state = viewConfirm
		a.confirmCursor = 0
		a.status = ""
	}
	return a, nil
}

func (a *App) addSelected() {
	if len(a.menu) == 0 {
		return
	}
	item := a.menu[a.menuCursor]
	switch err := a.session.AddItem(item); {
	case errors.Is(err, order.ErrNameTooShort):
		a.noticeTitle = "Hey Friend"
		a.noticeBody = "Please enter a name to begin your order"
		a.modal = modalNotice
		a.nameFocus = true
	case err != nil:
		a.status = "error: " + err.Error()
	default:
		a.noticeTitle = "Sounds Good"
		a.noticeBody = item.Name + " has been added to your order"
		a.modal = modalNotice
	}
}

func (a *App) handleNameInput(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc, tea.KeyEnter:
		a.nameFocus = false
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		name := a.session.CustomerName()
		if len(name) > 0 {
			a.session.SetCustomerName(name[:len(name)-1])
		}
	case tea.KeySpace:
		a.session.SetCustomerName(a.session.CustomerName() + " ")
	case tea.KeyRunes:
		a.session.SetCustomerName(a.session.CustomerName() + string(m.Runes))
	}
	return a, nil
}

func (a *App) handleSearchInput(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.searchMode = false
		a.search = ""
		a.menu = catalog.List()
		a.menuCursor = 0
	case tea.KeyEnter:
		a.searchMode = false
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if len(a.search) > 0 {
			a.search = a.search[:len(a.search)-1]
		}
		a.applySearch()
	case tea.KeySpace:
		a.search += " "
		a.applySearch()
	case tea.KeyRunes:
		a.search += string(m.Runes)
		a.applySearch()
	}
	return a, nil
}

func (a *App) applySearch() {
	a.menu = catalog.Search(a.search)
	if a.menuCursor >= len(a.menu) {
		a.menuCursor = 0
	}
}

func (a *App) handleConfirmKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "esc", "m":
		// continue shopping
		a.state = viewMenu
		a.status = ""
	case "up", "k":
		if a.confirmCursor > 0 {
			a.confirmCursor--
		}
	case "down", "j":
		if a.confirmCursor < len(a.session.Lines())-1 {
			a.confirmCursor++
		}
	case "r", "backspace", "delete":
		a.removeSelected()
	case "c", "enter":
		if a.session.IsEmpty() {
			a.status = "your order is empty - continue shopping first"
			return a, nil
		}
		a.form = service.PaymentForm{Network: service.NetworkVisa}
		a.netIdx = 0
		a.payField = 0
		a.state = viewPayment
		a.status = ""
	}
	return a, nil
}

func (a *App) removeSelected() {
	lines := a.session.Lines()
	if len(lines) == 0 {
		return
	}
	item := lines[a.confirmCursor]
	if err := a.session.RemoveItem(item.ID); err != nil {
		a.status = "error: " + err.Error()
		return
	}
	if remaining := len(a.session.Lines()); a.confirmCursor >= remaining && remaining > 0 {
		a.confirmCursor = remaining - 1
	}
	a.status = item.Name + " removed"
}

func (a *App) handlePaymentKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.state = viewConfirm
		a.status = ""
		return a, nil
	case "tab", "down":
		if a.payField < fieldPlaceOrder {
			a.payField++
		}
		return a, nil
	case "shift+tab", "up":
		if a.payField > fieldNetwork {
			a.payField--
		}
		return a, nil
	}

	if a.payField == fieldNetwork {
		networks := service.Networks()
		switch m.String() {
		case "left", "h":
			a.netIdx = (a.netIdx + len(networks) - 1) % len(networks)
		case "right", "l", " ":
			a.netIdx = (a.netIdx + 1) % len(networks)
		case "enter":
			a.payField++
		}
		a.form.Network = networks[a.netIdx]
		return a, nil
	}

	if a.payField == fieldPlaceOrder {
		if m.Type == tea.KeyEnter {
			if !service.CanSubmit(a.form) {
				a.status = "complete all payment fields first"
				return a, nil
			}
			a.status = "placing order..."
			return a, a.submitCmd()
		}
		return a, nil
	}

	field := a.paymentField()
	switch m.Type {
	case tea.KeyEnter:
		a.payField++
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if len(*field) > 0 {
			*field = (*field)[:len(*field)-1]
		}
	case tea.KeySpace:
		*field += " "
	case tea.KeyRunes:
		*field += string(m.Runes)
	}
	return a, nil
}

func (a *App) paymentField() *string {
	switch a.payField {
	case fieldNameOnCard:
		return &a.form.NameOnCard
	case fieldExpiry:
		return &a.form.Expiry
	case fieldCVV:
		return &a.form.CVV
	default:
		return &a.form.CardNumber
	}
}

func (a *App) handleOrdersKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "esc", "h":
		a.state = viewWelcome
		a.status = ""
	case "up", "k":
		if a.ordersCursor > 0 {
			a.ordersCursor--
		}
	case "down", "j":
		if a.ordersCursor < len(a.orders)-1 {
			a.ordersCursor++
		}
	case "x":
		a.modal = modalConfirmClear
	}
	return a, nil
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.modal {
	case modalConfirmClear:
		switch m.String() {
		case "y", "Y":
			a.modal = modalNone
			return a, a.clearOrdersCmd()
		case "n", "N", "esc":
			a.modal = modalNone
		}
	default:
		// notices dismiss on any key
		a.modal = modalNone
	}
	return a, nil
}

// commands

func (a *App) loadOrders() tea.Cmd {
	return func() tea.Msg {
		if a.repos.Orders == nil {
			return ordersMsg{}
		}
		list, err := a.repos.Orders.List(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		midnight := time.Now().UTC().Truncate(24 * time.Hour)
		today, err := a.repos.Orders.CountSince(a.ctx, midnight)
		if err != nil {
			return errMsg{err}
		}
		return ordersMsg{list: list, today: today}
	}
}

func (a *App) submitCmd() tea.Cmd {
	sess, form := a.session, a.form
	return func() tea.Msg {
		res, err := a.services.Checkout.Submit(a.ctx, sess, form)
		if err != nil {
			return errMsg{err}
		}
		return checkoutDoneMsg{Result: res}
	}
}

func (a *App) clearOrdersCmd() tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			if a.services.Maintenance == nil {
				return errMsg{fmt.Errorf("maintenance not configured")}
			}
			if err := a.services.Maintenance.ClearOrders(a.ctx); err != nil {
				return errMsg{err}
			}
			a.ordersCursor = 0
			return statusMsg("order log cleared")
		},
		a.loadOrders(),
	)
}

func (a *App) dialCmd() tea.Cmd {
	phone := a.cfg.Shop.Phone
	return func() tea.Msg {
		if err := a.links.Dial(phone); err != nil {
			return errMsg{fmt.Errorf("open dialer: %w", err)}
		}
		return statusMsg("calling " + phone)
	}
}

func (a *App) partnerCmd() tea.Cmd {
	url := a.cfg.Shop.PartnerURL
	return func() tea.Msg {
		if err := a.links.Visit(url); err != nil {
			return errMsg{fmt.Errorf("open partner site: %w", err)}
		}
		return statusMsg("opening " + url)
	}
}

// messages

type ordersMsg struct {
	list  []repository.Order
	today int
}

type statusMsg string

type errMsg struct{ error }

type checkoutDoneMsg struct {
	Result service.CheckoutResult
}
