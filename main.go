package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/watzon/tintbox/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	commands.SetVersion(version, commit, date)
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
