// Package main is the entry point for the arena gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-arena/cmd/server/client"
)

var envFiles []string

var rootCmd = &cobra.Command{
	Use:   "rpg-arena",
	Short: "RPG Arena gRPC Server",
	Long:  `RPG Arena provides a gRPC interface for creating characters and resolving spells, level-ups and group attacks between them.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load (default .env)")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
