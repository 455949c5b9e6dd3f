package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// A .env beside the binary is a developer convenience; absence is
	// the normal case.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
