package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	InputPath       string   `mapstructure:"input_path" yaml:"input_path"`
	OutputPath      string   `mapstructure:"output_path" yaml:"output_path"`
	Delimiter       string   `mapstructure:"delimiter" yaml:"delimiter"`
	NAValues        []string `mapstructure:"na_values" yaml:"na_values"`
	TrimColumns     []string `mapstructure:"trim_columns" yaml:"trim_columns"`
	PreviewRows     int      `mapstructure:"preview_rows" yaml:"preview_rows"`
	OnNameCollision string   `mapstructure:"on_name_collision" yaml:"on_name_collision"`
	ReportPath      string   `mapstructure:"report_path" yaml:"report_path"`
}

// DelimiterRune maps the configured delimiter spelling to a rune.
func (c *Global) DelimiterRune() (rune, error) {
	switch c.Delimiter {
	case "", ",":
		return ',', nil
	case ";":
		return ';', nil
	case "\t", "tab":
		return '\t', nil
	}
	return 0, fmt.Errorf("unsupported delimiter: %q (use ','|';'|'tab')", c.Delimiter)
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.tabsweep/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".tabsweep")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("TABSWEEP")
	v.AutomaticEnv()

	// Defaults mirror the original fixed paths of the cleaning script.
	v.SetDefault("input_path", filepath.Join("data", "raw", "sales_data_raw.csv"))
	v.SetDefault("output_path", filepath.Join("data", "processed", "sales_data_clean.csv"))
	v.SetDefault("delimiter", ",")
	v.SetDefault("na_values", []string{"", "NA", "N/A", "NaN", "null"})
	v.SetDefault("trim_columns", []string{})
	v.SetDefault("preview_rows", 5)
	v.SetDefault("on_name_collision", "error")
	v.SetDefault("report_path", "")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".tabsweep")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
