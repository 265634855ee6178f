package report

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/tabsweep-cli/internal/classify"
	"github.com/KaramelBytes/tabsweep-cli/internal/table"
)

// ColumnProfile describes a single column for inspection: how its name
// normalizes, which cleaning roles it would carry, the inferred cell type,
// and how much of it is missing.
type ColumnProfile struct {
	Name       string
	Normalized string
	Kind       string
	Roles      classify.RoleSet
	Missing    int
	Samples    []string
}

// Profile inspects every column of a table. sampleRows caps the example
// values captured per column.
func Profile(t table.Table, sampleRows int) []ColumnProfile {
	names := t.Names()
	types := t.Types()
	profiles := make([]ColumnProfile, 0, len(names))
	for i, name := range names {
		p := ColumnProfile{
			Name:       name,
			Normalized: classify.NormalizeName(name),
			Kind:       string(types[i]),
		}
		p.Roles = classify.Roles(p.Normalized)
		if !t.Empty() {
			s := t.Col(name)
			for _, nan := range s.IsNaN() {
				if nan {
					p.Missing++
				}
			}
			recs := s.Records()
			if sampleRows > 0 && sampleRows < len(recs) {
				recs = recs[:sampleRows]
			}
			p.Samples = append(p.Samples, recs...)
		}
		profiles = append(profiles, p)
	}
	return profiles
}

// ProfileMarkdown renders column profiles as a compact report.
func ProfileMarkdown(path string, t table.Table, profiles []ColumnProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[COLUMN PROFILE] %s\n", path)
	fmt.Fprintf(&b, "rows: %d, columns: %d\n\n", t.Nrow(), t.Ncol())
	for _, p := range profiles {
		fmt.Fprintf(&b, "- %s -> %s: %s", p.Name, p.Normalized, p.Kind)
		if label := roleLabel(p.Roles); label != "" {
			fmt.Fprintf(&b, " [%s]", label)
		}
		fmt.Fprintf(&b, ", missing=%d", p.Missing)
		if len(p.Samples) > 0 {
			fmt.Fprintf(&b, ", e.g. %s", strings.Join(p.Samples, " | "))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func roleLabel(r classify.RoleSet) string {
	switch {
	case r.Price && r.Quantity:
		return "price+quantity"
	case r.Price:
		return "price"
	case r.Quantity:
		return "quantity"
	}
	return ""
}
