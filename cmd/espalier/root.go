package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "espalier",
	Short: "Espalier is a statechart graph analysis tool",
	Long:  `Espalier derives graph structure from hierarchical statechart definitions: state listings, transition edges, effective transition maps, and shortest event paths.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("file", "f", "machine.yaml", "Machine definition file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// loadChart builds a chart from the --file flag, or from the first
// positional argument when the flag was not set explicitly.
func loadChart(cmd *cobra.Command, args []string) (*espalier.Chart, error) {
	file, _ := cmd.Flags().GetString("file")
	if !cmd.Flags().Changed("file") && len(args) > 0 {
		file = args[0]
	}

	var opts []espalier.Option
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		opts = append(opts, espalier.WithLogger(logging.New(slog.LevelDebug)))
	}

	return espalier.Load(file, opts...)
}
