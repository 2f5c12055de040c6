package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gridpath",
	Short: "gridpath solves grid mazes with Iterative Deepening A*",
	Long: `gridpath is a command-line front end for the IDA* search library.
It reads text mazes ('#' walls, '.' floor, optional 'S'/'G' endpoints),
finds a route, and can stream the live search frontier to a visualizer.`,
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
	rootCmd.PersistentFlags().String("config", "", "Path to an optional YAML solver config")
}
