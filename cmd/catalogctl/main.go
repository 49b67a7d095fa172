// Package main is the entry point for the catalogctl CLI.
package main

import (
	"os"

	"product-catalog-api/cmd/catalogctl/app"
)

func main() {
	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
