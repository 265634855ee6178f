package cmd

import (
	"fmt"
	"strconv"
	"strings"

	cfgpkg "github.com/KaramelBytes/tabsweep-cli/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set TabSweep configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("input_path: %s\n", cfg.InputPath)
		fmt.Printf("output_path: %s\n", cfg.OutputPath)
		fmt.Printf("delimiter: %s\n", cfg.Delimiter)
		fmt.Printf("na_values: %s\n", strings.Join(cfg.NAValues, "|"))
		if len(cfg.TrimColumns) > 0 {
			fmt.Printf("trim_columns: %s\n", strings.Join(cfg.TrimColumns, ","))
		}
		fmt.Printf("preview_rows: %d\n", cfg.PreviewRows)
		fmt.Printf("on_name_collision: %s\n", cfg.OnNameCollision)
		if cfg.ReportPath != "" {
			fmt.Printf("report_path: %s\n", cfg.ReportPath)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "input_path":
			cfg.InputPath = val
		case "output_path":
			cfg.OutputPath = val
		case "delimiter":
			cfg.Delimiter = val
			if _, err := cfg.DelimiterRune(); err != nil {
				return err
			}
		case "na_values":
			cfg.NAValues = strings.Split(val, "|")
		case "trim_columns":
			if val == "" {
				cfg.TrimColumns = nil
			} else {
				cfg.TrimColumns = strings.Split(val, ",")
			}
		case "preview_rows":
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return fmt.Errorf("preview_rows must be a non-negative integer")
			}
			cfg.PreviewRows = n
		case "on_name_collision":
			switch val {
			case "error", "keep-last":
				cfg.OnNameCollision = val
			default:
				return fmt.Errorf("on_name_collision must be 'error' or 'keep-last'")
			}
		case "report_path":
			cfg.ReportPath = val
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("✓ Config saved")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
