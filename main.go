package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/geocine/pandoc-jekyll/internal/cli"
)

func main() {
	cmd := cli.NewCmdRoot()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}
