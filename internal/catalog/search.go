package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Search filters the menu by name. Substring matches (case-insensitive) come
// first; failing that, a word whose edit distance to the query is small
// relative to its length still matches, so "expresso" finds Espresso.
func Search(query string) []Item {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" {
		return List()
	}
	var out []Item
	for _, it := range menu {
		if matchesQuery(it.Name, q) {
			out = append(out, it)
		}
	}
	return out
}

func matchesQuery(name, q string) bool {
	upper := strings.ToUpper(name)
	if strings.Contains(upper, q) {
		return true
	}
	for _, word := range strings.Fields(upper) {
		dist := levenshtein.ComputeDistance(word, q)
		maxlen := float64(len(word))
		if len(q) > len(word) {
			maxlen = float64(len(q))
		}
		if float64(dist)/maxlen < 0.4 {
			return true
		}
	}
	return false
}
