// Package topics adds file-based help topics to a cobra command tree.
// Topics are read from an fs.FS, usually an embedded directory, so that
// `app help <topic>` works from any install location.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// optionPrefix marks topics that document a flag, e.g. option-dry-run
const optionPrefix = "option-"

// Topic is one help document
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Options configures a Manager
type Options struct {
	// Extensions considered topics. Defaults to .txt and .md
	Extensions []string
	// Renderer formats topic content. Defaults to PlainRenderer
	Renderer Renderer
}

// Manager holds the loaded topics and installs the help command
type Manager struct {
	topics   map[string]*Topic
	renderer Renderer
}

// Load reads every topic file found under fsys
func Load(fsys fs.FS, opts Options) (*Manager, error) {
	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = []string{".txt", ".md"}
	}
	m := &Manager{topics: make(map[string]*Topic), renderer: opts.Renderer}
	if m.renderer == nil {
		m.renderer = PlainRenderer{}
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !hasExtension(p, extensions) {
			return nil
		}
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		m.topics[name] = &Topic{Name: name, Path: p, Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	return m, nil
}

func hasExtension(p string, extensions []string) bool {
	ext := path.Ext(p)
	for _, valid := range extensions {
		if ext == valid {
			return true
		}
	}
	return false
}

// Get looks a topic up by name. Flag-style names such as --dry-run also
// match option-dry-run.
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	if topic, ok := m.topics[name]; ok {
		return topic, true
	}
	topic, ok := m.topics[optionPrefix+name]
	return topic, ok
}

// Names returns the sorted topic names
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats topic for display
func (m *Manager) Render(topic *Topic) string {
	return m.renderer.Render(topic.Content, path.Ext(topic.Path))
}

// Install replaces the help command of root with one that also knows the
// loaded topics. Unknown names fall back to the regular command help.
func (m *Manager) Install(root *cobra.Command) {
	defaultHelp := root.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: "Help provides help for any command or topic.\n\n" +
			"To list the available topics:\n  " + root.Name() + " help topics",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range root.Commands() {
				if c.IsAvailableCommand() {
					completions = append(completions, c.Name())
				}
			}
			return append(completions, m.Names()...), cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				defaultHelp(root, args)
				return
			}
			if args[0] == "topics" {
				m.writeIndex(cmd.OutOrStdout(), root.Name())
				return
			}
			if topic, ok := m.Get(args[0]); ok {
				fmt.Fprint(cmd.OutOrStdout(), m.Render(topic))
				return
			}
			target, _, err := root.Find(args)
			if err != nil || target == nil {
				defaultHelp(root, args)
				return
			}
			defaultHelp(target, args)
		},
	}

	for _, c := range root.Commands() {
		if c.Name() == "help" {
			root.RemoveCommand(c)
			break
		}
	}
	root.SetHelpCommand(helpCmd)
}

func (m *Manager) writeIndex(w io.Writer, app string) {
	names := m.Names()
	if len(names) == 0 {
		fmt.Fprintln(w, "No help topics available.")
		return
	}

	var general, options []string
	for _, name := range names {
		if strings.HasPrefix(name, optionPrefix) {
			options = append(options, strings.TrimPrefix(name, optionPrefix))
		} else {
			general = append(general, name)
		}
	}

	fmt.Fprintln(w, "Available help topics:")
	if len(general) > 0 {
		fmt.Fprintln(w, "\nGeneral topics:")
		for _, name := range general {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		fmt.Fprintln(w, "\nOption topics:")
		for _, name := range options {
			fmt.Fprintf(w, "  --%s\n", name)
		}
	}
	fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", app)
}
