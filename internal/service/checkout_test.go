package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/coffeffe/coffeehouse/internal/catalog"
	"github.com/coffeffe/coffeehouse/internal/database"
	"github.com/coffeffe/coffeehouse/internal/database/repository"
	"github.com/coffeffe/coffeehouse/internal/order"
)

func completeForm() PaymentForm {
	return PaymentForm{
		Network:    NetworkVisa,
		NameOnCard: "Sam Smith",
		Expiry:     "04/28",
		CVV:        "123",
		CardNumber: "4111111111111111",
	}
}

func openTestDB(t *testing.T) *repository.OrderRepo {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("../database/migrations")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(dbPath, migrations))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return repository.NewOrderRepo(db)
}

func sessionWithDrinks(t *testing.T, name string, ids ...int) *order.Session {
	t.Helper()
	s := order.NewSession()
	s.SetCustomerName(name)
	for _, id := range ids {
		it, ok := catalog.ByID(id)
		require.True(t, ok, "catalog id %d", id)
		require.NoError(t, s.AddItem(it))
	}
	return s
}

func TestCanSubmit(t *testing.T) {
	t.Parallel()

	base := completeForm()
	require.True(t, CanSubmit(base))

	cases := []struct {
		name   string
		mutate func(*PaymentForm)
	}{
		{"empty name", func(f *PaymentForm) { f.NameOnCard = "" }},
		{"empty expiry", func(f *PaymentForm) { f.Expiry = "" }},
		{"empty cvv", func(f *PaymentForm) { f.CVV = "" }},
		{"15 digit number", func(f *PaymentForm) { f.CardNumber = "411111111111111" }},
		{"17 digit number", func(f *PaymentForm) { f.CardNumber = "41111111111111111" }},
		{"empty number", func(f *PaymentForm) { f.CardNumber = "" }},
	}
	for _, c := range cases {
		f := completeForm()
		c.mutate(&f)
		require.False(t, CanSubmit(f), c.name)
	}
}

func TestSubmitRecordsOrder(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	repo := openTestDB(t)
	svc := &CheckoutService{Orders: repo, TaxRate: 0.07}

	sess := sessionWithDrinks(t, "Sam", 1, 3) // Espresso + Latte
	res, err := svc.Submit(ctx, sess, completeForm())
	require.NoError(t, err)
	require.NoError(t, res.PersistErr)
	require.True(t, sess.Closed())

	require.Equal(t, "Sam", res.Order.CustomerName)
	require.Equal(t, "Espresso, Latte", res.Order.Drinks)
	require.Equal(t, int64(696), res.Order.TotalCents)

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, res.Order.ID, rows[0].ID)
	require.Equal(t, "Espresso, Latte", rows[0].Drinks)
	require.Equal(t, int64(696), rows[0].TotalCents)
}

func TestSubmitTwiceRecordsOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := openTestDB(t)
	svc := &CheckoutService{Orders: repo, TaxRate: 0.07}

	sess := sessionWithDrinks(t, "Sam", 1)
	_, err := svc.Submit(ctx, sess, completeForm())
	require.NoError(t, err)

	_, err = svc.Submit(ctx, sess, completeForm())
	require.ErrorIs(t, err, order.ErrSessionClosed)

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestSubmitRejectsIncompleteForm(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := openTestDB(t)
	svc := &CheckoutService{Orders: repo, TaxRate: 0.07}

	sess := sessionWithDrinks(t, "Sam", 1)
	form := completeForm()
	form.CardNumber = "411111111111111" // 15 digits

	_, err := svc.Submit(ctx, sess, form)
	require.ErrorIs(t, err, ErrInvalidPayment)
	require.False(t, sess.Closed(), "rejected submit must leave the session open")

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, rows)
}

type failingSink struct{}

func (failingSink) Record(context.Context, repository.Order) error {
	return errors.New("disk full")
}

func TestSubmitSurvivesPersistFailure(t *testing.T) {
	t.Parallel()

	svc := &CheckoutService{Orders: failingSink{}, TaxRate: 0.07}
	sess := sessionWithDrinks(t, "Sam", 1, 3)

	res, err := svc.Submit(context.Background(), sess, completeForm())
	require.NoError(t, err, "a sink failure is a warning, not a checkout failure")
	require.Error(t, res.PersistErr)
	require.True(t, sess.Closed())
	require.Equal(t, int64(696), res.Order.TotalCents)
}

func TestOrderRepoGetAndCount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := openTestDB(t)

	missing, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, missing)

	svc := &CheckoutService{Orders: repo, TaxRate: 0.07}
	res, err := svc.Submit(ctx, sessionWithDrinks(t, "Ada", 5), completeForm())
	require.NoError(t, err)

	got, err := repo.Get(ctx, res.Order.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Ada", got.CustomerName)

	n, err := repo.CountSince(ctx, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
