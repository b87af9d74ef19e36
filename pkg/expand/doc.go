// Package expand grows a partition and its ext filesystem to fill the
// disk, by running four external tools in a fixed order:
//
//	unmount -> check -> grow-partition -> grow-filesystem
//
// Unmount failures are advisory since the device is often not mounted.
// A failed check is advisory unless strict checking is configured. A
// failure to grow stops the sequence and every later step is recorded as
// skipped. Completed steps are never undone and nothing is retried.
package expand
