package table

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/KaramelBytes/tabsweep-cli/internal/utils"
)

// LoadOptions control how a delimited file is read.
type LoadOptions struct {
	// Delimiter separates fields within a record.
	Delimiter rune
	// NAValues are cell contents treated as the missing-value marker.
	NAValues []string
}

// DefaultLoadOptions returns comma-separated parsing with the common NA
// spellings mapped to missing.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Delimiter: ',',
		NAValues:  []string{"", "NA", "N/A", "NaN", "null"},
	}
}

// Load reads a UTF-8 delimited file into a Table. The first row is the
// header; column types are inferred from the cells. A header-only file
// yields an empty table. A missing or unreadable path is a *FileAccessError,
// malformed content a *ParseError.
func Load(path string, opt LoadOptions) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	if opt.Delimiter != 0 {
		r.Comma = opt.Delimiter
	}
	records, err := r.ReadAll()
	if err != nil {
		return Table{}, &ParseError{Path: path, Err: err}
	}
	if len(records) == 0 {
		return Table{}, &ParseError{Path: path, Err: errors.New("missing header row")}
	}
	if len(records) == 1 {
		return Empty(records[0]), nil
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(opt.NAValues),
	)
	if df.Err != nil {
		return Table{}, &ParseError{Path: path, Err: df.Err}
	}
	return FromDataFrame(df), nil
}

// Write renders the table as comma-separated UTF-8 text at path, creating
// the parent directory when absent. The file is written atomically so a
// failed run never leaves a truncated output behind.
func (t Table) Write(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := utils.EnsureDir(dir); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(t.Records()); err != nil {
		return fmt.Errorf("encode csv: %w", err)
	}
	return utils.SafeWriteFile(path, buf.Bytes())
}
