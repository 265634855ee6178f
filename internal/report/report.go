// Package report renders run summaries and column profiles for cleaned
// tables.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KaramelBytes/tabsweep-cli/internal/pipeline"
)

// Run summarizes one cleaning run.
type Run struct {
	ID        uuid.UUID
	Input     string
	Output    string
	StartedAt time.Time
	Duration  time.Duration
	RowsIn    int
	RowsOut   int
	Stages    []pipeline.StageResult
}

// NewRun starts a run summary for the given input and output paths.
func NewRun(input, output string) *Run {
	return &Run{ID: uuid.New(), Input: input, Output: output, StartedAt: time.Now()}
}

// Finish records the elapsed time and stage results.
func (r *Run) Finish(rowsIn, rowsOut int, stages []pipeline.StageResult) {
	r.Duration = time.Since(r.StartedAt)
	r.RowsIn = rowsIn
	r.RowsOut = rowsOut
	r.Stages = stages
}

// Markdown renders the run summary as a compact report.
func (r *Run) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[CLEANING RUN %s]\n", r.ID)
	fmt.Fprintf(&b, "input: %s\n", r.Input)
	fmt.Fprintf(&b, "output: %s\n", r.Output)
	fmt.Fprintf(&b, "started: %s\n", r.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "duration: %s\n", r.Duration.Round(time.Millisecond))
	fmt.Fprintf(&b, "rows: %d -> %d (dropped %d)\n", r.RowsIn, r.RowsOut, r.RowsIn-r.RowsOut)
	b.WriteString("\n[STAGES]\n")
	for _, s := range r.Stages {
		fmt.Fprintf(&b, "- %s: %d -> %d (dropped %d)\n", s.Stage, s.RowsIn, s.RowsOut, s.Dropped())
	}
	return b.String()
}
