package order

import (
	"errors"
	"testing"

	"github.com/coffeffe/coffeehouse/internal/catalog"
)

func mustItem(t *testing.T, id int) catalog.Item {
	t.Helper()
	it, ok := catalog.ByID(id)
	if !ok {
		t.Fatalf("no catalog item with id %d", id)
	}
	return it
}

func TestAddItemRequiresName(t *testing.T) {
	s := NewSession()
	espresso := mustItem(t, 1)

	for _, name := range []string{"", "S", "é"} {
		s.SetCustomerName(name)
		if err := s.AddItem(espresso); !errors.Is(err, ErrNameTooShort) {
			t.Fatalf("AddItem with name %q: got %v, want ErrNameTooShort", name, err)
		}
		if !s.IsEmpty() {
			t.Fatalf("failed add with name %q mutated the cart", name)
		}
	}

	s.SetCustomerName("Sam")
	if err := s.AddItem(espresso); err != nil {
		t.Fatalf("AddItem with valid name: %v", err)
	}
	if got := len(s.Lines()); got != 1 {
		t.Fatalf("lines = %d, want 1", got)
	}
}

func TestLinesCountSuccessfulAddsOnly(t *testing.T) {
	s := NewSession()
	espresso := mustItem(t, 1)
	latte := mustItem(t, 3)

	s.SetCustomerName("Sam")
	_ = s.AddItem(espresso)
	_ = s.AddItem(latte)
	s.SetCustomerName("")
	if err := s.AddItem(espresso); !errors.Is(err, ErrNameTooShort) {
		t.Fatalf("expected ErrNameTooShort after name cleared, got %v", err)
	}

	// shortening the name does not retroactively invalidate earlier lines
	if got := len(s.Lines()); got != 2 {
		t.Fatalf("lines = %d, want 2", got)
	}
}

func TestAddDuplicateYieldsTwoLines(t *testing.T) {
	s := NewSession()
	s.SetCustomerName("Sam")
	espresso := mustItem(t, 1)
	_ = s.AddItem(espresso)
	_ = s.AddItem(espresso)
	lines := s.Lines()
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if lines[0].PriceCents != lines[1].PriceCents {
		t.Fatalf("duplicate lines priced differently: %v", lines)
	}
}

func TestRemoveItemDropsAllMatching(t *testing.T) {
	s := NewSession()
	s.SetCustomerName("Sam")
	espresso := mustItem(t, 1)
	latte := mustItem(t, 3)
	_ = s.AddItem(espresso)
	_ = s.AddItem(latte)
	_ = s.AddItem(espresso)

	if err := s.RemoveItem(espresso.ID); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	lines := s.Lines()
	if len(lines) != 1 || lines[0].ID != latte.ID {
		t.Fatalf("lines after removal = %v, want just the latte", lines)
	}
}

func TestRemoveAbsentItemIsNoOp(t *testing.T) {
	s := NewSession()
	s.SetCustomerName("Sam")
	_ = s.AddItem(mustItem(t, 1))
	before := s.Lines()

	if err := s.RemoveItem(999); err != nil {
		t.Fatalf("RemoveItem(999): %v", err)
	}
	after := s.Lines()
	if len(after) != len(before) || after[0] != before[0] {
		t.Fatalf("cart changed: before %v, after %v", before, after)
	}
}

func TestAddThenRemoveRestoresSequence(t *testing.T) {
	s := NewSession()
	s.SetCustomerName("Sam")
	latte := mustItem(t, 3)
	flatWhite := mustItem(t, 8)
	redEye := mustItem(t, 10)
	_ = s.AddItem(latte)
	_ = s.AddItem(flatWhite)
	before := s.Lines()

	_ = s.AddItem(redEye)
	if err := s.RemoveItem(redEye.ID); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	after := s.Lines()
	if len(after) != len(before) {
		t.Fatalf("lines = %d, want %d", len(after), len(before))
	}
	for i := range before {
		if after[i] != before[i] {
			t.Fatalf("line %d changed: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestClosedSessionRejectsMutation(t *testing.T) {
	s := NewSession()
	s.SetCustomerName("Sam")
	espresso := mustItem(t, 1)
	_ = s.AddItem(espresso)

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !s.Closed() {
		t.Fatal("Closed() = false after Close")
	}
	if err := s.AddItem(espresso); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("AddItem on closed session: got %v, want ErrSessionClosed", err)
	}
	if err := s.RemoveItem(espresso.ID); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("RemoveItem on closed session: got %v, want ErrSessionClosed", err)
	}
	if err := s.Close(); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("second Close: got %v, want ErrSessionClosed", err)
	}
	if got := len(s.Lines()); got != 1 {
		t.Fatalf("closed session lost lines: %d", got)
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	s := NewSession()
	s.SetCustomerName("Sam")
	_ = s.AddItem(mustItem(t, 1))

	lines := s.Lines()
	lines[0].Name = "mutated"
	if s.Lines()[0].Name == "mutated" {
		t.Fatal("Lines() exposed internal state")
	}
}
