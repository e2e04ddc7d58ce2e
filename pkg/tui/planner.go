package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"github.com/raxod502/hyposchedule/pkg/catalog"
	"github.com/raxod502/hyposchedule/pkg/config"
	"github.com/raxod502/hyposchedule/pkg/planner"
	"github.com/raxod502/hyposchedule/pkg/report"
)

// RunPlannerTUI runs the interactive flow for pinning and blacklisting
// sections, then prints the conflict-free schedule report.
func RunPlannerTUI() error {
	fmt.Println(accentStyle.Render("Welcome to the Hyposchedule Planner!"))

	cfg, _ := config.Load()
	if cfg == nil {
		cfg = &config.AppConfig{}
	}

	var sections []catalog.Section
	var loadErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Loading catalog from %s...", cfg.Catalog())).
		Action(func() {
			sections, loadErr = loadCatalog(cfg.Catalog())
		}).
		Run()

	if loadErr != nil {
		return loadErr
	}
	if len(sections) == 0 {
		fmt.Println(errorStyle.Render("The catalog is empty! Try `hyposchedule fetch` first."))
		return nil
	}

	// Options carry catalog indices so chosen sections go to the filter
	// directly instead of round-tripping through the pattern grammar.
	options := make([]huh.Option[int], len(sections))
	for i, s := range sections {
		label := fmt.Sprintf("%s  %s", s.Reference(), s.CourseName)
		options[i] = huh.NewOption(label, i)
	}

	var selectedIdx, blacklistedIdx []int

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title("Pin your sections").
				Description("Space = toggle, Enter = confirm. Everything that collides with a pinned section is dropped.").
				Options(options...).
				Value(&selectedIdx).
				Filterable(true).
				Height(12),
		),
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title("Blacklist sections").
				Description("These sections are excluded from the report outright.").
				Options(options...).
				Value(&blacklistedIdx).
				Filterable(true).
				Height(12),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	selected := sectionsAt(sections, selectedIdx)
	blacklisted := sectionsAt(sections, blacklistedIdx)
	surviving := planner.FilterSections(sections, selected, blacklisted)

	fmt.Println()
	report.Render(os.Stdout, planner.GroupByBlock(surviving), report.Options{
		Locations:   true,
		AccentColor: cfg.AccentColor,
	})

	if len(selected) == 0 && len(blacklisted) == 0 {
		return nil
	}

	var save bool
	confirm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Save these choices to %s and %s?", cfg.Selected(), cfg.Blacklisted())).
				Value(&save),
		),
	).WithTheme(GetTheme())

	if err := confirm.Run(); err != nil {
		return err
	}
	if !save {
		return nil
	}

	if err := writePatternFile(cfg.Selected(), referenceLines(selected)); err != nil {
		return err
	}
	if err := writePatternFile(cfg.Blacklisted(), referenceLines(blacklisted)); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("✅ Choices saved."))
	return nil
}

func sectionsAt(sections []catalog.Section, indices []int) []catalog.Section {
	var chosen []catalog.Section
	for _, i := range indices {
		chosen = append(chosen, sections[i])
	}
	return chosen
}

// referenceLines renders sections as the canonical reference lines the
// pattern grammar accepts, so saved choices survive a later plain `plan` run.
func referenceLines(sections []catalog.Section) []string {
	lines := make([]string, len(sections))
	for i, s := range sections {
		lines[i] = strings.ToLower(s.Reference())
	}
	return lines
}

func loadCatalog(path string) ([]catalog.Section, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer file.Close()
	return catalog.ParseCatalog(file)
}

func writePatternFile(path string, lines []string) error {
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
