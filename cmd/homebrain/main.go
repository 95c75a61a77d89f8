package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/homebrain/homebrain/homebrainservice"
)

var rootCmd = &cobra.Command{
	Use:   "homebrain",
	Short: "HomeBrain family assistant service",
}

func main() {
	// Local development convenience; real deployments set env directly.
	_ = godotenv.Load()

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return homebrainservice.Run()
		},
	}
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
