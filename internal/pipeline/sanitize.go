package pipeline

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/series"

	"github.com/KaramelBytes/tabsweep-cli/internal/classify"
	"github.com/KaramelBytes/tabsweep-cli/internal/table"
)

// SanitizeNumeric coerces every price/quantity-classified column to numbers
// and then drops any row left with a missing value in one of those columns.
// Zero matched columns is a valid no-op.
type SanitizeNumeric struct{}

func (SanitizeNumeric) Name() string { return "sanitize-numeric" }

func (SanitizeNumeric) Apply(t table.Table) (table.Table, error) {
	matched := matchedColumns(t.Names())
	if len(matched) == 0 || t.Empty() {
		return t, nil
	}
	keep := make([]bool, t.Nrow())
	for i := range keep {
		keep[i] = true
	}
	out := t
	for _, name := range matched {
		vals := coerceFloats(out.Col(name).Records())
		for i, v := range vals {
			if math.IsNaN(v) {
				keep[i] = false
			}
		}
		out = out.WithColumn(series.New(vals, series.Float, name))
	}
	return out.KeepRows(keep), nil
}

// matchedColumns returns, in table order, every column name carrying a price
// or quantity role. Each matched column appears exactly once even when its
// name matches both roles, so processing stays deterministic and idempotent.
func matchedColumns(names []string) []string {
	var out []string
	for _, n := range names {
		if classify.Roles(n).Any() {
			out = append(out, n)
		}
	}
	return out
}

// coerceFloats parses each record as a number; unparsable values become the
// missing marker. Existing missing cells render as "NaN" and stay missing.
func coerceFloats(records []string) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		v, err := strconv.ParseFloat(strings.TrimSpace(r), 64)
		if err != nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = v
	}
	return out
}
