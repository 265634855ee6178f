// Package table wraps gota dataframes behind an immutable Table value the
// cleaning stages pass between each other. Every operation returns a new
// Table, so intermediate results stay usable as snapshots.
//
// gota cannot represent a frame with zero rows; a header-only table is
// carried here as the column names alone so that empty inputs survive the
// whole pipeline and round-trip to an output file.
package table

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Table is an immutable snapshot of tabular data: ordered named columns with
// aligned rows.
type Table struct {
	df    dataframe.DataFrame
	names []string
	empty bool
}

// FromDataFrame wraps a gota DataFrame holding at least one row.
func FromDataFrame(df dataframe.DataFrame) Table {
	return Table{df: df, names: df.Names()}
}

// Empty returns a table with the given header and no rows.
func Empty(names []string) Table {
	return Table{names: append([]string(nil), names...), empty: true}
}

// Empty reports whether the table holds no rows.
func (t Table) Empty() bool { return t.empty }

// Nrow returns the number of data rows (the header does not count).
func (t Table) Nrow() int {
	if t.empty {
		return 0
	}
	return t.df.Nrow()
}

// Ncol returns the number of columns.
func (t Table) Ncol() int { return len(t.names) }

// Names returns a copy of the column labels in table order.
func (t Table) Names() []string { return append([]string(nil), t.names...) }

// Types reports gota's inferred type per column. A header-only table has no
// cells to infer from, so every column reports as String.
func (t Table) Types() []series.Type {
	if t.empty {
		ts := make([]series.Type, len(t.names))
		for i := range ts {
			ts[i] = series.String
		}
		return ts
	}
	return t.df.Types()
}

// Col returns the named column. The name must exist in the table.
func (t Table) Col(name string) series.Series {
	return t.df.Col(name)
}

// WithNames returns a copy of the table with the header replaced.
func (t Table) WithNames(names ...string) (Table, error) {
	if len(names) != len(t.names) {
		return Table{}, fmt.Errorf("rename: got %d names for %d columns", len(names), len(t.names))
	}
	if t.empty {
		return Empty(names), nil
	}
	df := t.df.Copy()
	if err := df.SetNames(names...); err != nil {
		return Table{}, fmt.Errorf("rename: %w", err)
	}
	return FromDataFrame(df), nil
}

// WithColumn returns a copy with the column matching the series name
// replaced by the series.
func (t Table) WithColumn(s series.Series) Table {
	if t.empty {
		return t
	}
	return FromDataFrame(t.df.Mutate(s))
}

// Select returns a copy holding only the columns at the given indices, in
// the order given.
func (t Table) Select(indices []int) Table {
	names := make([]string, len(indices))
	for i, ix := range indices {
		names[i] = t.names[ix]
	}
	if t.empty {
		return Empty(names)
	}
	return FromDataFrame(t.df.Select(indices))
}

// KeepRows returns a copy holding only the rows whose mask entry is true,
// preserving their relative order. The mask length must equal Nrow.
func (t Table) KeepRows(keep []bool) Table {
	if t.empty {
		return t
	}
	idx := make([]int, 0, len(keep))
	for i, k := range keep {
		if k {
			idx = append(idx, i)
		}
	}
	switch len(idx) {
	case t.df.Nrow():
		return t
	case 0:
		return Empty(t.names)
	}
	return FromDataFrame(t.df.Subset(idx))
}

// Head returns the first n rows, or the whole table when it is shorter.
func (t Table) Head(n int) Table {
	if t.empty || n >= t.df.Nrow() {
		return t
	}
	if n <= 0 {
		return Empty(t.names)
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return FromDataFrame(t.df.Subset(idx))
}

// Records renders the table as strings, header row first. Float cells use
// the shortest round-tripping decimal form; missing cells render as NaN.
func (t Table) Records() [][]string {
	out := make([][]string, 0, t.Nrow()+1)
	out = append(out, t.Names())
	if t.empty {
		return out
	}
	cols := make([][]string, t.Ncol())
	for ci, name := range t.names {
		s := t.df.Col(name)
		if s.Type() != series.Float {
			cols[ci] = s.Records()
			continue
		}
		vals := s.Float()
		recs := make([]string, len(vals))
		for i, v := range vals {
			if math.IsNaN(v) {
				recs[i] = "NaN"
				continue
			}
			recs[i] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		cols[ci] = recs
	}
	for r := 0; r < t.Nrow(); r++ {
		row := make([]string, t.Ncol())
		for c := range cols {
			row[c] = cols[c][r]
		}
		out = append(out, row)
	}
	return out
}

// String renders the table for terminal preview.
func (t Table) String() string {
	if t.empty {
		return fmt.Sprintf("[0x%d] header-only table %v", len(t.names), t.names)
	}
	return t.df.String()
}
