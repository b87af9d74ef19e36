// Package executor runs external programs on behalf of movex.
//
// Every block-device operation and the containerised build go through the
// Runner interface so that callers can be tested with a recording fake and
// so that --dry-run is handled in one place.
package executor
