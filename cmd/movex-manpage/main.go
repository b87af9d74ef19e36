package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/movex/cmd/movex"
	"github.com/spf13/cobra/doc"
)

func main() {
	rootCmd := movex.NewRootCmd()

	if err := doc.GenMan(rootCmd, movex.ManHeader(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
