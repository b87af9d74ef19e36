package console

import (
	"strings"

	"github.com/arthur-debert/movex/pkg/ui"
	"github.com/charmbracelet/glamour"
)

// RenderDiff renders a unified diff. Terminals get a syntax highlighted
// block through glamour; plain output gets the diff unchanged.
func RenderDiff(unified string, format ui.Format) string {
	if unified == "" {
		return ""
	}
	if !strings.HasSuffix(unified, "\n") {
		unified += "\n"
	}
	if format != ui.FormatTerminal {
		return unified
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		return unified
	}
	rendered, err := renderer.Render("```diff\n" + unified + "```\n")
	if err != nil {
		return unified
	}
	return rendered
}
