package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raxod502/hyposchedule/pkg/catalog"
	"github.com/raxod502/hyposchedule/pkg/config"
	"github.com/raxod502/hyposchedule/pkg/planner"
	"github.com/raxod502/hyposchedule/pkg/report"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Filter the catalog and print the conflict-free schedule report",
	Long: `Parse the course catalog, resolve the selection and blacklist files, and
print every surviving section grouped by meeting time. A missing selection
or blacklist file simply means "no patterns".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan(cmd)
	},
}

func runPlan(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	catalogPath := cfg.Catalog()
	selectedPath := cfg.Selected()
	blacklistedPath := cfg.Blacklisted()
	locations := false

	// Flags are registered on the plan subcommand; a bare root invocation
	// runs with config defaults.
	if f := cmd.Flags().Lookup("catalog"); f != nil {
		if v, _ := cmd.Flags().GetString("catalog"); v != "" {
			catalogPath = v
		}
		if v, _ := cmd.Flags().GetString("selected"); v != "" {
			selectedPath = v
		}
		if v, _ := cmd.Flags().GetString("blacklisted"); v != "" {
			blacklistedPath = v
		}
		locations, _ = cmd.Flags().GetBool("locations")
	}

	file, err := os.Open(catalogPath)
	if err != nil {
		return fmt.Errorf("failed to open catalog %s: %w", catalogPath, err)
	}
	defer file.Close()

	sections, err := catalog.ParseCatalog(file)
	if err != nil {
		return err
	}

	selectedLines, err := readPatternLines(selectedPath)
	if err != nil {
		return err
	}
	blacklistedLines, err := readPatternLines(blacklistedPath)
	if err != nil {
		return err
	}

	surviving, err := planner.Filter(sections, selectedLines, blacklistedLines)
	if err != nil {
		return err
	}

	report.Render(os.Stdout, planner.GroupByBlock(surviving), report.Options{
		Locations:   locations,
		AccentColor: cfg.AccentColor,
	})
	return nil
}

// readPatternLines reads one pattern per line. A missing file is the same as
// an empty one: the user just has not made any choices yet.
func readPatternLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringP("catalog", "c", "", "Catalog JSON file (default courses.json)")
	planCmd.Flags().StringP("selected", "s", "", "Selection file, one pattern per line (default selected.txt)")
	planCmd.Flags().StringP("blacklisted", "b", "", "Blacklist file, one pattern per line (default blacklisted.txt)")
	planCmd.Flags().BoolP("locations", "l", false, "Show meeting locations under each section")
}
