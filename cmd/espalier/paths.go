package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:   "paths [file]",
	Short: "Print the shortest event path to every state",
	Long:  `Runs breadth-first search from the machine's initial state and prints the minimal event sequence reaching each state. Unreachable states are marked as such.`,
	Run: func(cmd *cobra.Command, args []string) {
		chart, err := loadChart(cmd, args)
		if err != nil {
			fmt.Printf("Error loading machine: %v\n", err)
			os.Exit(1)
		}

		paths, err := chart.Paths()
		if err != nil {
			fmt.Printf("Error computing paths: %v\n", err)
			os.Exit(1)
		}

		for _, node := range chart.Nodes() {
			path, ok := paths[node.RelativeID()]
			switch {
			case !ok && node.IsCompound():
				// Entering a compound state lands on its default leaf, so
				// the path map has no entry for the compound itself.
				continue
			case !ok:
				fmt.Printf("%-24s unreachable\n", node.RelativeID())
			case len(path) == 0:
				fmt.Printf("%-24s (initial)\n", node.RelativeID())
			default:
				steps := make([]string, len(path))
				for i, step := range path {
					steps[i] = fmt.Sprintf("%s:%s", step.FromState, step.Event)
				}
				fmt.Printf("%-24s %s\n", node.RelativeID(), strings.Join(steps, " -> "))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}
