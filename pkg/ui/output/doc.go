// Package output groups the presentation assets of movex.
//
// The styles subpackage holds the lipgloss style registry used by the
// console adapter and the error printer in main.
package output
