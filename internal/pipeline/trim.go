package pipeline

import (
	"fmt"
	"strings"

	"github.com/go-gota/gota/series"

	"github.com/KaramelBytes/tabsweep-cli/internal/table"
)

// TrimText converts the selected columns to text and strips leading and
// trailing whitespace from every value. With no explicit selection, every
// column the loader inferred as textual is trimmed. Selected columns are
// String-typed afterwards even when they held other types before.
type TrimText struct {
	Columns []string
}

func (TrimText) Name() string { return "trim-text" }

func (st TrimText) Apply(t table.Table) (table.Table, error) {
	names := t.Names()
	var selected []string
	if len(st.Columns) > 0 {
		have := make(map[string]bool, len(names))
		for _, n := range names {
			have[n] = true
		}
		for _, c := range st.Columns {
			if !have[c] {
				return table.Table{}, fmt.Errorf("no such column %q", c)
			}
		}
		selected = st.Columns
	} else {
		types := t.Types()
		for i, n := range names {
			if types[i] == series.String {
				selected = append(selected, n)
			}
		}
	}
	if t.Empty() {
		return t, nil
	}
	out := t
	for _, name := range selected {
		recs := out.Col(name).Records()
		trimmed := make([]string, len(recs))
		for i, r := range recs {
			trimmed[i] = strings.TrimSpace(r)
		}
		out = out.WithColumn(series.New(trimmed, series.String, name))
	}
	return out, nil
}
