package movex

import (
	"embed"
	"io/fs"
	"os"

	"github.com/arthur-debert/movex/pkg/cobrax/topics"
	"github.com/arthur-debert/movex/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// installTopics adds `movex help <topic>` for the embedded topic files
func installTopics(root *cobra.Command) {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}

	var renderer topics.Renderer = topics.PlainRenderer{}
	if ui.IsTerminal(os.Stdout) {
		renderer = topics.NewGlamourRenderer()
	}

	manager, err := topics.Load(sub, topics.Options{Extensions: []string{".md"}, Renderer: renderer})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}
	manager.Install(root)
}
