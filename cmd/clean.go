package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tabsweep-cli/internal/pipeline"
	"github.com/KaramelBytes/tabsweep-cli/internal/report"
	"github.com/KaramelBytes/tabsweep-cli/internal/table"
)

var (
	cleanInput      string
	cleanOutput     string
	cleanTrimCols   []string
	cleanCollision  string
	cleanReportPath string
	cleanPreview    int
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Run the cleaning pipeline from the input CSV to the output CSV",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		input := c.InputPath
		if cleanInput != "" {
			input = cleanInput
		}
		output := c.OutputPath
		if cleanOutput != "" {
			output = cleanOutput
		}
		trimCols := c.TrimColumns
		if cmd.Flags().Changed("trim-columns") {
			trimCols = cleanTrimCols
		}
		collision := c.OnNameCollision
		if cleanCollision != "" {
			collision = cleanCollision
		}
		policy, err := pipeline.ParseCollisionPolicy(collision)
		if err != nil {
			return err
		}
		reportPath := c.ReportPath
		if cleanReportPath != "" {
			reportPath = cleanReportPath
		}
		previewRows := c.PreviewRows
		if cleanPreview > 0 {
			previewRows = cleanPreview
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

		run := report.NewRun(input, output)
		raw, err := table.Load(input, opts)
		if err != nil {
			return err
		}
		cleaned, stages, err := pipeline.Default(policy, trimCols).Run(raw)
		if err != nil {
			return err
		}
		if err := cleaned.Write(output); err != nil {
			return err
		}
		run.Finish(raw.Nrow(), cleaned.Nrow(), stages)

		if debug {
			for _, s := range stages {
				fmt.Printf("  %s: %d -> %d rows (dropped %d)\n", s.Stage, s.RowsIn, s.RowsOut, s.Dropped())
			}
		}
		fmt.Printf("✓ Cleaning complete: %d of %d rows written to %s\n", cleaned.Nrow(), raw.Nrow(), output)
		fmt.Println("First rows of the cleaned table:")
		fmt.Println(cleaned.Head(previewRows))

		if reportPath != "" {
			if err := os.WriteFile(reportPath, []byte(run.Markdown()), 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Printf("✓ Run report written to %s\n", reportPath)
		}
		return nil
	},
}

func init() {
	cleanCmd.Flags().StringVarP(&cleanInput, "input", "i", "", "input CSV path (overrides config)")
	cleanCmd.Flags().StringVarP(&cleanOutput, "output", "o", "", "output CSV path (overrides config)")
	cleanCmd.Flags().StringSliceVar(&cleanTrimCols, "trim-columns", nil, "explicit columns to trim (default: all text columns)")
	cleanCmd.Flags().StringVar(&cleanCollision, "on-name-collision", "", "policy when normalized names collide: error|keep-last")
	cleanCmd.Flags().StringVar(&cleanReportPath, "report", "", "write a run report to this path")
	cleanCmd.Flags().IntVar(&cleanPreview, "preview-rows", 0, "rows shown in the completion preview (overrides config)")
	rootCmd.AddCommand(cleanCmd)
}
