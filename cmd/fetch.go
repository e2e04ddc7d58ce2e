package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/raxod502/hyposchedule/pkg/catalog"
	"github.com/raxod502/hyposchedule/pkg/config"
	"github.com/raxod502/hyposchedule/pkg/scraper"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the course catalog from the portal",
	Long: `Scrape the consortium course portal and save the catalog as the JSON dump
that "hyposchedule plan" reads. Downloads are cached for 12 hours.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		portal, _ := cmd.Flags().GetString("portal")
		if portal == "" {
			portal = cfg.PortalURL
		}
		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = cfg.Catalog()
		}

		client := scraper.NewClient(portal)

		var records []catalog.Record
		var fetchErr error

		_ = spinner.New().
			Title(fmt.Sprintf("Fetching the course catalog into %s...", output)).
			Action(func() {
				records, fetchErr = client.FetchCatalog()
			}).
			Run()

		if fetchErr != nil {
			return fmt.Errorf("failed to fetch catalog: %w", fetchErr)
		}
		if len(records) == 0 {
			return fmt.Errorf("the portal returned no courses")
		}

		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize catalog: %w", err)
		}
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("failed to write catalog file: %w", err)
		}

		fmt.Printf("Successfully saved %d courses to %s\n", len(records), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringP("portal", "p", "", "Course portal base URL (defaults to the configured portal)")
	fetchCmd.Flags().StringP("output", "o", "", "Output catalog file (default courses.json)")
}
