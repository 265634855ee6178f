// Package classify maps raw column labels to their canonical form and to the
// role tags the numeric cleaning stages key off. Keeping the substring
// heuristics here means callers can swap in stricter matching without
// touching pipeline logic.
package classify

import (
	"regexp"
	"strings"
)

// nonWord matches every maximal run of characters outside [0-9A-Za-z_].
var nonWord = regexp.MustCompile(`\W+`)

// NormalizeName rewrites a column label to canonical form: surrounding
// whitespace stripped, lowercased, and each run of non-word characters
// collapsed into a single underscore. Idempotent.
func NormalizeName(name string) string {
	return nonWord.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "_")
}

// RoleSet marks which numeric-handling roles a column carries. A column can
// carry both roles when its name matches both heuristics.
type RoleSet struct {
	Price    bool
	Quantity bool
}

// Any reports whether the column carries at least one role.
func (r RoleSet) Any() bool { return r.Price || r.Quantity }

// Roles classifies a normalized column name: "price" anywhere in the name
// marks a price column, "qty" or "quantity" a quantity column.
func Roles(name string) RoleSet {
	return RoleSet{
		Price:    strings.Contains(name, "price"),
		Quantity: strings.Contains(name, "qty") || strings.Contains(name, "quantity"),
	}
}
