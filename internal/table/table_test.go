package table_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/KaramelBytes/tabsweep-cli/internal/table"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadMissingFileIsFileAccessError(t *testing.T) {
	_, err := table.Load(filepath.Join(t.TempDir(), "nope.csv"), table.DefaultLoadOptions())
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	var fae *table.FileAccessError
	if !errors.As(err, &fae) {
		t.Fatalf("expected *FileAccessError, got %T: %v", err, err)
	}
}

func TestLoadRaggedRowsIsParseError(t *testing.T) {
	path := writeFixture(t, "ragged.csv", "a,b,c\n1,2,3\n4,5\n")
	_, err := table.Load(path, table.DefaultLoadOptions())
	if err == nil {
		t.Fatalf("expected error for ragged rows")
	}
	var pe *table.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
}

func TestLoadEmptyFileIsParseError(t *testing.T) {
	path := writeFixture(t, "empty.csv", "")
	_, err := table.Load(path, table.DefaultLoadOptions())
	var pe *table.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError for empty file, got %T: %v", err, err)
	}
}

func TestLoadHeaderOnlyYieldsEmptyTable(t *testing.T) {
	path := writeFixture(t, "header.csv", "Product Name,Unit Price,QTY\n")
	tab, err := table.Load(path, table.DefaultLoadOptions())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !tab.Empty() || tab.Nrow() != 0 {
		t.Fatalf("expected empty table, got %d rows", tab.Nrow())
	}
	want := []string{"Product Name", "Unit Price", "QTY"}
	if !reflect.DeepEqual(tab.Names(), want) {
		t.Fatalf("names = %v, want %v", tab.Names(), want)
	}
}

func TestLoadInfersTypesAndRows(t *testing.T) {
	path := writeFixture(t, "sales.csv", "product,price,qty\nApple,1.5,3\nPear,2,4\n")
	tab, err := table.Load(path, table.DefaultLoadOptions())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tab.Nrow() != 2 || tab.Ncol() != 3 {
		t.Fatalf("got %dx%d, want 2x3", tab.Nrow(), tab.Ncol())
	}
}

func TestKeepRowsPreservesOrderAndHandlesAllDropped(t *testing.T) {
	path := writeFixture(t, "rows.csv", "name,n\na,1\nb,2\nc,3\n")
	tab, err := table.Load(path, table.DefaultLoadOptions())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	kept := tab.KeepRows([]bool{true, false, true})
	recs := kept.Records()
	if len(recs) != 3 || recs[1][0] != "a" || recs[2][0] != "c" {
		t.Fatalf("unexpected records: %v", recs)
	}
	none := tab.KeepRows([]bool{false, false, false})
	if !none.Empty() {
		t.Fatalf("expected empty table when all rows dropped")
	}
	if !reflect.DeepEqual(none.Names(), tab.Names()) {
		t.Fatalf("header lost when all rows dropped: %v", none.Names())
	}
}

func TestHead(t *testing.T) {
	path := writeFixture(t, "rows.csv", "name\na\nb\nc\n")
	tab, err := table.Load(path, table.DefaultLoadOptions())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := tab.Head(2).Nrow(); got != 2 {
		t.Fatalf("Head(2) has %d rows", got)
	}
	if got := tab.Head(10).Nrow(); got != 3 {
		t.Fatalf("Head(10) has %d rows, want all 3", got)
	}
}

func TestWriteCreatesParentDirAndRoundTrips(t *testing.T) {
	in := writeFixture(t, "in.csv", "product,price\nApple,1.5\n")
	tab, err := table.Load(in, table.DefaultLoadOptions())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	out := filepath.Join(t.TempDir(), "processed", "out.csv")
	if err := tab.Write(out); err != nil {
		t.Fatalf("write: %v", err)
	}
	back, err := table.Load(out, table.DefaultLoadOptions())
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if back.Nrow() != 1 || !reflect.DeepEqual(back.Names(), []string{"product", "price"}) {
		t.Fatalf("round trip mismatch: %v rows=%d", back.Names(), back.Nrow())
	}
}

func TestWriteEmptyTableWritesHeaderOnly(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.csv")
	if err := table.Empty([]string{"product_name", "unit_price"}).Write(out); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "product_name,unit_price\n" {
		t.Fatalf("unexpected content: %q", string(b))
	}
}
