package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/espalier/internal/presentation/tui"
)

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Print a full analysis report",
	Long:  `Renders the complete analysis (states, transitions, effective transition maps, shortest paths) as a markdown report. Output is styled when stdout is a terminal and plain markdown otherwise.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runReport(cmd, args); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	chart, err := loadChart(cmd, args)
	if err != nil {
		return err
	}

	edges, err := chart.Edges()
	if err != nil {
		return err
	}
	adjacency, err := chart.Adjacency()
	if err != nil {
		return err
	}
	paths, err := chart.Paths()
	if err != nil {
		return err
	}

	markdown := tui.BuildReport(chart.Machine().ID(), chart.Nodes(), edges, adjacency, paths)

	// Styled output only makes sense on a real terminal; pipes get the
	// raw markdown.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(markdown)
		return nil
	}

	tui.PrintBanner()
	render := tui.NewRenderer()
	styled, err := render(markdown)
	if err != nil {
		fmt.Print(markdown)
		return nil
	}
	fmt.Print(styled)
	return nil
}
