package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/raxod502/hyposchedule/pkg/config"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Input Files", "files"),
						huh.NewOption("Set Semester (For ICS Export)", "semester"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		if action == "back" {
			return nil
		}

		if action == "theme" {
			err = runSetThemeTUI(cfg)
		} else if action == "files" {
			err = runSetFilesTUI(cfg)
		} else if action == "semester" {
			err = runSetSemesterTUI(cfg)
		} else if action == "view" {
			fmt.Printf("%+v\n", *cfg)
		}

		if err != nil {
			return err
		}
	}
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	color := cfg.AccentColor
	if color == "" {
		color = "99"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Accent color").
				Description("An ANSI 256 color code, e.g. 99 (purple) or 212 (pink).").
				Value(&color),
		),
	).WithTheme(GetCustomTheme(color))

	if err := form.Run(); err != nil {
		return err
	}

	cfg.AccentColor = color
	return config.Save(cfg)
}

func runSetFilesTUI(cfg *config.AppConfig) error {
	catalogPath := cfg.Catalog()
	selectedPath := cfg.Selected()
	blacklistedPath := cfg.Blacklisted()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Catalog JSON file").Value(&catalogPath),
			huh.NewInput().Title("Selection file").Value(&selectedPath),
			huh.NewInput().Title("Blacklist file").Value(&blacklistedPath),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.CatalogPath = catalogPath
	cfg.SelectedPath = selectedPath
	cfg.BlacklistedPath = blacklistedPath
	return config.Save(cfg)
}

func runSetSemesterTUI(cfg *config.AppConfig) error {
	start := cfg.SemesterStart
	weeks := fmt.Sprintf("%d", cfg.SemesterWeeks)
	if cfg.SemesterWeeks == 0 {
		weeks = "15"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Semester start date").
				Description("YYYY-MM-DD; anchors the first week of exported events.").
				Value(&start).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					_, err := time.Parse("2006-01-02", s)
					return err
				}),
			huh.NewInput().
				Title("Semester length in weeks").
				Value(&weeks).
				Validate(func(s string) error {
					var n int
					if _, err := fmt.Sscanf(s, "%d", &n); err != nil || n < 1 {
						return fmt.Errorf("enter a positive number of weeks")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.SemesterStart = start
	fmt.Sscanf(weeks, "%d", &cfg.SemesterWeeks)
	return config.Save(cfg)
}
