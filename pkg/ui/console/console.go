// Package console is the terminal adapter behind types.Console. It reads
// replies line by line, shows menus with pterm when attached to a terminal
// and renders diffs with glamour.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arthur-debert/movex/pkg/errors"
	"github.com/arthur-debert/movex/pkg/logging"
	"github.com/arthur-debert/movex/pkg/types"
	"github.com/arthur-debert/movex/pkg/ui"
	"github.com/arthur-debert/movex/pkg/ui/output/styles"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// Options configures a Console
type Options struct {
	// Format controls styling; FormatAuto inspects Out
	Format ui.Format
	// Interactive enables arrow-key menus
	Interactive bool
}

// Console talks to the operator over a reader and a writer
type Console struct {
	in          *bufio.Reader
	out         io.Writer
	format      ui.Format
	interactive bool
	logger      zerolog.Logger

	// selectFn shows an arrow-key menu and returns the chosen option
	selectFn func(title string, options []string) (string, error)
}

var _ types.Console = (*Console)(nil)

// New creates a console over in and out
func New(in io.Reader, out io.Writer, opts Options) *Console {
	format := opts.Format
	if format == ui.FormatAuto {
		format = ui.FormatText
		if f, ok := out.(*os.File); ok {
			format = ui.DetectFormat(f)
		}
	}
	return &Console{
		in:          bufio.NewReader(in),
		out:         out,
		format:      format,
		interactive: opts.Interactive,
		logger:      logging.GetLogger("console"),
		selectFn:    ptermSelect,
	}
}

// NewStd creates a console over the process standard streams
func NewStd() *Console {
	return New(os.Stdin, os.Stdout, Options{
		Format:      ui.FormatAuto,
		Interactive: ui.IsInteractive(),
	})
}

// Format returns the resolved output format
func (c *Console) Format() ui.Format {
	return c.format
}

// Printf writes informational output
func (c *Console) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}

// Ask prints prompt and reads one line. A final line without a newline
// is still returned; io.EOF is only reported when nothing was read.
func (c *Console) Ask(prompt string) (string, error) {
	c.Printf("%s", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			c.Printf("\n")
		}
		return "", err
	}
	reply := strings.TrimRight(line, "\r\n")
	c.logger.Debug().Str("prompt", strings.TrimSpace(prompt)).Str("reply", reply).Msg("Operator reply")
	return reply, nil
}

// Choose presents options and returns the selected index. On a terminal an
// arrow-key menu is shown; otherwise the options are numbered and the
// operator types a number. An empty reply cancels with index -1.
func (c *Console) Choose(title string, options []string) (int, error) {
	if len(options) == 0 {
		return -1, errors.New(errors.ErrNoSelection, "nothing to choose from")
	}

	if c.interactive {
		selected, err := c.selectFn(title, options)
		if err != nil {
			return -1, err
		}
		for i, option := range options {
			if option == selected {
				return i, nil
			}
		}
		return -1, nil
	}

	c.Printf("%s\n", styles.Render("Header", title))
	width := len(strconv.Itoa(len(options)))
	for i, option := range options {
		c.Printf("  %*d) %s\n", width, i+1, option)
	}

	reply, err := c.Ask(fmt.Sprintf("Select [1-%d]: ", len(options)))
	if err != nil {
		return -1, err
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return -1, nil
	}
	n, err := strconv.Atoi(reply)
	if err != nil || n < 1 || n > len(options) {
		return -1, errors.Newf(errors.ErrInvalidInput, "invalid selection %q", reply).
			WithDetail("options", len(options))
	}
	return n - 1, nil
}

// ShowDiff prints the file name followed by its unified diff
func (c *Console) ShowDiff(name, unified string) {
	c.Printf("%s %s\n", styles.Render("Conflict", "conflict:"), styles.Render("FilePath", name))
	c.Printf("%s", RenderDiff(unified, c.format))
}

func ptermSelect(title string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithMaxHeight(15).
		Show(title)
}
