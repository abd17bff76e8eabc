package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpAdapter "github.com/aretw0/espalier/pkg/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp [file]",
	Short: "Expose the analysis operations as MCP tools",
	Long:  `Starts an MCP server on stdio so agent tooling can query machine structure (nodes, edges, adjacency, shortest paths, Mermaid graph).`,
	Run: func(cmd *cobra.Command, args []string) {
		chart, err := loadChart(cmd, args)
		if err != nil {
			fmt.Printf("Error loading machine: %v\n", err)
			os.Exit(1)
		}

		server := mcpAdapter.NewServer(chart)
		if err := server.ServeStdio(); err != nil {
			fmt.Printf("MCP server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
