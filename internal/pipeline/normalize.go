package pipeline

import (
	"fmt"

	"github.com/KaramelBytes/tabsweep-cli/internal/classify"
	"github.com/KaramelBytes/tabsweep-cli/internal/table"
)

// CollisionPolicy decides what happens when normalization maps two column
// labels onto the same canonical name.
type CollisionPolicy string

const (
	// CollisionError fails the stage when normalized names collide.
	CollisionError CollisionPolicy = "error"
	// CollisionKeepLast keeps only the last of the colliding columns.
	CollisionKeepLast CollisionPolicy = "keep-last"
)

// ParseCollisionPolicy validates a policy string; empty means CollisionError.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch CollisionPolicy(s) {
	case "", CollisionError:
		return CollisionError, nil
	case CollisionKeepLast:
		return CollisionKeepLast, nil
	}
	return "", fmt.Errorf("unknown collision policy %q (use %q or %q)", s, CollisionError, CollisionKeepLast)
}

// NormalizeColumns rewrites every column label to its canonical form. Cell
// data is untouched; only the header changes.
type NormalizeColumns struct {
	OnCollision CollisionPolicy
}

func (NormalizeColumns) Name() string { return "normalize-columns" }

func (st NormalizeColumns) Apply(t table.Table) (table.Table, error) {
	names := t.Names()
	normalized := make([]string, len(names))
	last := make(map[string]int, len(names))
	for i, n := range names {
		normalized[i] = classify.NormalizeName(n)
		last[normalized[i]] = i
	}
	if len(last) == len(normalized) {
		return t.WithNames(normalized...)
	}
	if st.OnCollision != CollisionKeepLast {
		return table.Table{}, fmt.Errorf("normalized column names collide: %v", collisions(normalized))
	}
	keep := make([]int, 0, len(last))
	kept := make([]string, 0, len(last))
	for i, n := range normalized {
		if last[n] == i {
			keep = append(keep, i)
			kept = append(kept, n)
		}
	}
	return t.Select(keep).WithNames(kept...)
}

// collisions lists each duplicated normalized name once, in table order.
func collisions(names []string) []string {
	count := make(map[string]int, len(names))
	for _, n := range names {
		count[n]++
	}
	var out []string
	seen := make(map[string]bool)
	for _, n := range names {
		if count[n] > 1 && !seen[n] {
			out = append(out, n)
			seen[n] = true
		}
	}
	return out
}
