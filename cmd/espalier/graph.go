package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [file]",
	Short: "Export the machine graph visualization",
	Long:  `Analyzes the machine definition and outputs a Mermaid diagram (graph TD) of its states and transitions.`,
	Run: func(cmd *cobra.Command, args []string) {
		chart, err := loadChart(cmd, args)
		if err != nil {
			fmt.Printf("Error loading machine: %v\n", err)
			os.Exit(1)
		}

		output, err := chart.Mermaid()
		if err != nil {
			fmt.Printf("Error generating graph: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(output)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
