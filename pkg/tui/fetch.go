package tui

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"

	"github.com/raxod502/hyposchedule/pkg/catalog"
	"github.com/raxod502/hyposchedule/pkg/config"
	"github.com/raxod502/hyposchedule/pkg/scraper"
)

// RunFetchTUI downloads the course catalog from the portal and saves it as
// the JSON dump the planner reads.
func RunFetchTUI() error {
	cfg, _ := config.Load()
	if cfg == nil {
		cfg = &config.AppConfig{}
	}

	client := scraper.NewClient(cfg.PortalURL)

	var records []catalog.Record
	var fetchErr error

	_ = spinner.New().
		Title("Fetching the course catalog from the portal...").
		Action(func() {
			records, fetchErr = client.FetchCatalog()
		}).
		Run()

	if fetchErr != nil {
		return fmt.Errorf("failed to fetch catalog: %w", fetchErr)
	}
	if len(records) == 0 {
		fmt.Println(errorStyle.Render("The portal returned no courses!"))
		return nil
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize catalog: %w", err)
	}
	if err := os.WriteFile(cfg.Catalog(), data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("✅ Saved %d courses to %s.", len(records), cfg.Catalog())))
	return nil
}
