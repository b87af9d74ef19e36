package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/movex/cmd/movex"
	"github.com/arthur-debert/movex/pkg/errors"
	"github.com/arthur-debert/movex/pkg/ui/output/styles"
)

func main() {
	rootCmd := movex.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

		code := errors.ExitCode(err)
		if code == errors.ExitUsage {
			fmt.Fprintln(os.Stderr, movex.MsgUsageSuggestion)
		}
		os.Exit(code)
	}
}
