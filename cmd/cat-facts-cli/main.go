// Package main is the entry point for the cat-facts-cli CLI
package main

import (
	"github.com/kokjohn0824/cat-facts-cli/internal/cli"
)

func main() {
	cli.Execute()
}
