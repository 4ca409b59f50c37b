package main

import (
	"os"

	"github.com/nikm-ai/prompt-engineering-optimization/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
