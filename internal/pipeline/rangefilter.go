package pipeline

import (
	"github.com/KaramelBytes/tabsweep-cli/internal/table"
)

// FilterNegative drops every row where a price or quantity column holds a
// negative value. A row survives only if all matched columns are
// non-negative. Classification is recomputed from the current header rather
// than reusing the sanitizer's column list.
type FilterNegative struct{}

func (FilterNegative) Name() string { return "filter-negative" }

func (FilterNegative) Apply(t table.Table) (table.Table, error) {
	matched := matchedColumns(t.Names())
	if len(matched) == 0 || t.Empty() {
		return t, nil
	}
	keep := make([]bool, t.Nrow())
	for i := range keep {
		keep[i] = true
	}
	for _, name := range matched {
		for i, v := range t.Col(name).Float() {
			// NaN also fails the comparison; standalone use still
			// drops rows the sanitizer would have removed.
			if !(v >= 0) {
				keep[i] = false
			}
		}
	}
	return t.KeepRows(keep), nil
}
