package catalog

// Item is a drink on the menu. Prices are integer cents.
type Item struct {
	ID         int
	Name       string
	PriceCents int64
}

var menu = []Item{
	{ID: 1, Name: "Espresso", PriceCents: 250},
	{ID: 2, Name: "Americano", PriceCents: 300},
	{ID: 3, Name: "Latte", PriceCents: 400},
	{ID: 4, Name: "Cappuccino", PriceCents: 350},
	{ID: 5, Name: "Regular Coffee", PriceCents: 150},
	{ID: 6, Name: "Decaf Coffee", PriceCents: 150},
	{ID: 7, Name: "Macchiatto", PriceCents: 475},
	{ID: 8, Name: "Flat White", PriceCents: 450},
	{ID: 9, Name: "Irish Coffee", PriceCents: 525},
	{ID: 10, Name: "Red Eye", PriceCents: 375},
	{ID: 11, Name: "Cafe au Lait", PriceCents: 550},
}

// List returns the menu in display order. The returned slice is a copy and
// safe to hold or mutate.
func List() []Item {
	out := make([]Item, len(menu))
	copy(out, menu)
	return out
}

// ByID looks an item up by its id.
func ByID(id int) (Item, bool) {
	for _, it := range menu {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
