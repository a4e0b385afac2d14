// main.go
//
// CLI entry point. Loads .env overrides, then dispatches to the cobra
// command tree defined in commands.go.

package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
