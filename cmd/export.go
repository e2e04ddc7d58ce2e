package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/raxod502/hyposchedule/pkg/catalog"
	"github.com/raxod502/hyposchedule/pkg/config"
	"github.com/raxod502/hyposchedule/pkg/exporter"
	"github.com/raxod502/hyposchedule/pkg/planner"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your pinned schedule to an ICS file",
	Long: `Resolve the selection file against the catalog and export the pinned
sections as a semester's worth of calendar events. Use --all to export every
surviving section instead of just the pinned ones.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		all, _ := cmd.Flags().GetBool("all")

		startStr, _ := cmd.Flags().GetString("start")
		if startStr == "" {
			startStr = cfg.SemesterStart
		}
		if startStr == "" {
			return fmt.Errorf("no semester start date; pass --start or set it with 'hyposchedule config'")
		}
		start, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
		if err != nil {
			return fmt.Errorf("invalid semester start date %q: %w", startStr, err)
		}

		weeks, _ := cmd.Flags().GetInt("weeks")
		if weeks == 0 {
			weeks = cfg.SemesterWeeks
		}
		if weeks == 0 {
			weeks = 15
		}

		file, err := os.Open(cfg.Catalog())
		if err != nil {
			return fmt.Errorf("failed to open catalog %s: %w", cfg.Catalog(), err)
		}
		sections, err := catalog.ParseCatalog(file)
		file.Close()
		if err != nil {
			return err
		}

		selectedLines, err := readPatternLines(cfg.Selected())
		if err != nil {
			return err
		}

		var toExport []catalog.Section
		if all {
			blacklistedLines, err := readPatternLines(cfg.Blacklisted())
			if err != nil {
				return err
			}
			toExport, err = planner.Filter(sections, selectedLines, blacklistedLines)
			if err != nil {
				return err
			}
		} else {
			toExport, err = planner.Selected(sections, selectedLines)
			if err != nil {
				return err
			}
			if len(toExport) == 0 {
				return fmt.Errorf("nothing to export: %s has no patterns (or pass --all)", cfg.Selected())
			}
		}

		out, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer out.Close()

		var exportErr error
		_ = spinner.New().
			Title(fmt.Sprintf("Exporting %d sections to %s...", len(toExport), output)).
			Action(func() {
				exportErr = exporter.GenerateICS(toExport, start, weeks, out)
			}).
			Run()

		if exportErr != nil {
			return fmt.Errorf("failed to generate ICS: %w", exportErr)
		}

		fmt.Printf("Successfully exported %d sections to %s\n", len(toExport), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "schedule.ics", "Output file path")
	exportCmd.Flags().StringP("start", "s", "", "Semester start date (YYYY-MM-DD)")
	exportCmd.Flags().IntP("weeks", "w", 0, "Semester length in weeks (default 15)")
	exportCmd.Flags().Bool("all", false, "Export every surviving section, not just pinned ones")
}
