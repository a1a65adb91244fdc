package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/LalaSkye/policy-lint/internal/cli"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "policy-lint: %v\n", err)
		os.Exit(1)
	}
}
