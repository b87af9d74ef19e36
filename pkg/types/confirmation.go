package types

import "strings"

// Answer is the interpretation of one raw confirmation reply
type Answer int

const (
	// AnswerInvalid is anything that is neither yes nor no
	AnswerInvalid Answer = iota
	AnswerYes
	AnswerNo
)

// String returns a readable form of the answer
func (a Answer) String() string {
	switch a {
	case AnswerYes:
		return "yes"
	case AnswerNo:
		return "no"
	default:
		return "invalid"
	}
}

// ParseAnswer interprets a raw reply. Only "y" and "n" are accepted,
// case-insensitively and ignoring surrounding whitespace.
func ParseAnswer(raw string) Answer {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y":
		return AnswerYes
	case "n":
		return AnswerNo
	default:
		return AnswerInvalid
	}
}

// Console is the operator-facing side of every interactive operation.
// Core packages decide what to do from the raw replies it returns;
// the console only shows text and collects input.
type Console interface {
	// Printf writes informational output for the operator
	Printf(format string, a ...any)
	// Ask shows prompt and returns the raw reply line
	Ask(prompt string) (string, error)
	// Choose presents options under title and returns the selected index
	Choose(title string, options []string) (int, error)
	// ShowDiff displays a unified diff for the named file
	ShowDiff(name, unified string)
}
