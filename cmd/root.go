package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hyposchedule",
	Short: "A conflict-free course schedule planner for the Claremont colleges",
	Long: `hyposchedule reads a course catalog dump, pins the sections you selected,
removes the ones you blacklisted, and reports every remaining section that
does not collide with your schedule.

Running it with no subcommand is the same as running "hyposchedule plan".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
