package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tabsweep-cli/internal/report"
	"github.com/KaramelBytes/tabsweep-cli/internal/table"
)

var inspectSamples int

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Profile a CSV's columns without cleaning it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		delim, err := c.DelimiterRune()
		if err != nil {
			return err
		}
		opts := table.DefaultLoadOptions()
		opts.Delimiter = delim
		if len(c.NAValues) > 0 {
			opts.NAValues = c.NAValues
		}
		t, err := table.Load(args[0], opts)
		if err != nil {
			return err
		}
		profiles := report.Profile(t, inspectSamples)
		fmt.Print(report.ProfileMarkdown(args[0], t, profiles))
		return nil
	},
}

func init() {
	inspectCmd.Flags().IntVar(&inspectSamples, "samples", 3, "example values shown per column")
	rootCmd.AddCommand(inspectCmd)
}
