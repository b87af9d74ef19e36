package topics

import "github.com/charmbracelet/glamour"

// Renderer formats topic content. ext is the file extension, e.g. ".md"
type Renderer interface {
	Render(content, ext string) string
}

// PlainRenderer returns content unchanged
type PlainRenderer struct{}

// Render implements Renderer
func (PlainRenderer) Render(content, _ string) string {
	return content
}

// GlamourRenderer renders markdown topics for the terminal
type GlamourRenderer struct {
	// Style is a glamour style name or path; empty means auto-detect
	Style string
	// Width wraps output; 0 keeps glamour's default
	Width int
}

// NewGlamourRenderer creates a renderer with auto-detected style
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{}
}

// Render implements Renderer. Non-markdown content and rendering errors
// fall back to the raw text.
func (r *GlamourRenderer) Render(content, ext string) string {
	if ext != ".md" {
		return content
	}

	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.Style != "" {
		options = []glamour.TermRendererOption{glamour.WithStylePath(r.Style)}
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
