// Package main provides the entry point for the CareerHub HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careerhub",
	Short: "CareerHub HTTP API Server",
	Long:  "CareerHub manages resumes, analyzes them against job postings, searches live job listings, and serves an AI career chat via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
