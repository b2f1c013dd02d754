// Package main is the entry point for the chore-quest avatar server and tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/chore-quest/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "chore-quest",
	Short: "Chore Quest avatar service",
	Long:  `Chore Quest renders player avatars and their companions, and serves them over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
