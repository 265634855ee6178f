// Package pipeline implements the cleaning stages and their fixed-order
// composition. Each stage is a pure function from table to table: it never
// mutates its input, so every intermediate table remains a usable snapshot
// for debugging and stage-level tests.
package pipeline

import (
	"fmt"

	"github.com/KaramelBytes/tabsweep-cli/internal/table"
)

// Stage is a single cleaning step.
type Stage interface {
	Name() string
	Apply(t table.Table) (table.Table, error)
}

// StageResult records what one stage did to the row count.
type StageResult struct {
	Stage   string
	RowsIn  int
	RowsOut int
}

// Dropped returns how many rows the stage removed.
func (r StageResult) Dropped() int { return r.RowsIn - r.RowsOut }

// Pipeline composes stages in fixed order.
type Pipeline struct {
	stages []Stage
}

// New builds a pipeline over the given stages.
func New(stages ...Stage) *Pipeline { return &Pipeline{stages: stages} }

// Default returns the standard cleaning sequence: normalize column names,
// trim text columns, coerce price/quantity columns and drop rows missing
// them, then drop rows with negative values in those columns.
func Default(onCollision CollisionPolicy, trimColumns []string) *Pipeline {
	return New(
		NormalizeColumns{OnCollision: onCollision},
		TrimText{Columns: trimColumns},
		SanitizeNumeric{},
		FilterNegative{},
	)
}

// Run applies every stage in order and reports per-stage row counts. The
// first stage error aborts the run; nothing is recovered or retried.
func (p *Pipeline) Run(t table.Table) (table.Table, []StageResult, error) {
	results := make([]StageResult, 0, len(p.stages))
	cur := t
	for _, s := range p.stages {
		in := cur.Nrow()
		out, err := s.Apply(cur)
		if err != nil {
			return table.Table{}, results, fmt.Errorf("stage %s: %w", s.Name(), err)
		}
		results = append(results, StageResult{Stage: s.Name(), RowsIn: in, RowsOut: out.Nrow()})
		cur = out
	}
	return cur, results, nil
}
