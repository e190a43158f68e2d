package cmd

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Run the pipeline through the Modifier Checker and report diagnostics",
	Long:  `check is shorthand for "spicy run --check-only"; it never executes the program.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		checkOnly = true
		return runFile(c, args)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
