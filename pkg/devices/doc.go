// Package devices resolves the target of a move or expand run: either a
// path the operator typed, or a block device picked from the enumeration
// tool's listing.
//
// Devices are listed fresh on every call; nothing is cached.
package devices
