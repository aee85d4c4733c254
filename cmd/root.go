package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var debug bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vitame",
	Short: "VitaMe BaZi reading service",
	Long: `VitaMe derives a BaZi chart from a birth date and time, composes
seeded template readings, scores wealth potential and optionally asks an
LLM for a personalized interpretation.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug mode")
}
