package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/tabsweep-cli/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	c, err := config.Load(cfgFile)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.InputPath != filepath.Join("data", "raw", "sales_data_raw.csv") {
		t.Fatalf("input_path default = %q", c.InputPath)
	}
	if c.OutputPath != filepath.Join("data", "processed", "sales_data_clean.csv") {
		t.Fatalf("output_path default = %q", c.OutputPath)
	}
	if c.PreviewRows != 5 {
		t.Fatalf("preview_rows default = %d", c.PreviewRows)
	}
	if c.OnNameCollision != "error" {
		t.Fatalf("on_name_collision default = %q", c.OnNameCollision)
	}
	if d, err := c.DelimiterRune(); err != nil || d != ',' {
		t.Fatalf("delimiter default = %q, %v", d, err)
	}
}

func TestSaveAndReload(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	c, err := config.Load(cfgFile)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	c.InputPath = "in.csv"
	c.OutputPath = "out.csv"
	c.Delimiter = ";"
	c.PreviewRows = 10
	if err := config.Save(c, cfgFile); err != nil {
		t.Fatalf("save: %v", err)
	}
	back, err := config.Load(cfgFile)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if back.InputPath != "in.csv" || back.OutputPath != "out.csv" || back.PreviewRows != 10 {
		t.Fatalf("reloaded config mismatch: %+v", back)
	}
	if d, err := back.DelimiterRune(); err != nil || d != ';' {
		t.Fatalf("delimiter = %q, %v", d, err)
	}
}

func TestDelimiterRuneRejectsUnknown(t *testing.T) {
	c := &config.Global{Delimiter: "##"}
	if _, err := c.DelimiterRune(); err == nil {
		t.Fatalf("expected error for unsupported delimiter")
	}
}

func TestEnvOverride(t *testing.T) {
	os.Setenv("TABSWEEP_INPUT_PATH", "env.csv")
	defer os.Unsetenv("TABSWEEP_INPUT_PATH")
	c, err := config.Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.InputPath != "env.csv" {
		t.Fatalf("env override ignored: %q", c.InputPath)
	}
}
