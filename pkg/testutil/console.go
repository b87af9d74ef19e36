package testutil

import (
	"fmt"
	"io"
	"strings"
)

// ScriptedConsole replays canned answers and menu choices. It implements
// types.Console.
type ScriptedConsole struct {
	// Answers are returned by Ask in order
	Answers []string
	// Choices are returned by Choose in order; -1 cancels the menu
	Choices []int

	Prompts []string
	Menus   [][]string
	Diffs   map[string]string
	out     strings.Builder
}

// NewScriptedConsole creates a console that answers prompts with answers
func NewScriptedConsole(answers ...string) *ScriptedConsole {
	return &ScriptedConsole{
		Answers: answers,
		Diffs:   make(map[string]string),
	}
}

// WithChoices queues menu selections
func (c *ScriptedConsole) WithChoices(choices ...int) *ScriptedConsole {
	c.Choices = append(c.Choices, choices...)
	return c
}

// Printf records formatted output
func (c *ScriptedConsole) Printf(format string, a ...any) {
	fmt.Fprintf(&c.out, format, a...)
}

// Ask records the prompt and returns the next scripted answer. An
// exhausted script behaves like a closed stdin.
func (c *ScriptedConsole) Ask(prompt string) (string, error) {
	c.Prompts = append(c.Prompts, prompt)
	if len(c.Answers) == 0 {
		return "", io.EOF
	}
	answer := c.Answers[0]
	c.Answers = c.Answers[1:]
	return answer, nil
}

// Choose records the menu and returns the next scripted index
func (c *ScriptedConsole) Choose(title string, options []string) (int, error) {
	c.Menus = append(c.Menus, append([]string{title}, options...))
	if len(c.Choices) == 0 {
		return -1, io.EOF
	}
	choice := c.Choices[0]
	c.Choices = c.Choices[1:]
	return choice, nil
}

// ShowDiff records the diff shown for name
func (c *ScriptedConsole) ShowDiff(name, unified string) {
	if c.Diffs == nil {
		c.Diffs = make(map[string]string)
	}
	c.Diffs[name] = unified
}

// Output returns everything printed so far
func (c *ScriptedConsole) Output() string {
	return c.out.String()
}

// Interactions counts prompts plus menus
func (c *ScriptedConsole) Interactions() int {
	return len(c.Prompts) + len(c.Menus)
}
