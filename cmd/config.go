package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raxod502/hyposchedule/pkg/config"
	"github.com/raxod502/hyposchedule/pkg/tui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage hyposchedule configuration",
	Long:  "View or edit your local configuration settings (input file locations, portal URL, semester dates, theme).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setPortal, _ := cmd.Flags().GetString("set-portal")
		if setPortal != "" {
			cfg.PortalURL = setPortal
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Printf("✅ Portal URL saved: %s\n", setPortal)
			return nil
		}

		setStart, _ := cmd.Flags().GetString("set-semester-start")
		if setStart != "" {
			cfg.SemesterStart = setStart
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Printf("✅ Semester start saved: %s\n", setStart)
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("set-portal", "p", "", "Set the course portal base URL")
	configCmd.Flags().StringP("set-semester-start", "s", "", "Set the semester start date (YYYY-MM-DD)")
}
