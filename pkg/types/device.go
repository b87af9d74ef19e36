package types

import "strings"

// SelectorMode picks which field of a chosen device is returned
type SelectorMode string

const (
	// ModeName returns the canonical device path, e.g. /dev/sda2
	ModeName SelectorMode = "name"
	// ModeMountpoint returns the first mountpoint of the device
	ModeMountpoint SelectorMode = "mountpoint"
)

// Device identifies a block device or partition as reported by the
// enumeration tool. Devices are read fresh on every selection.
type Device struct {
	// Path is the canonical device path under the device-namespace root
	Path string
	// Name is the raw name column, including any tree markers
	Name string
	// Size is the human-readable size column
	Size string
	// Mountpoints lists every mountpoint, in enumeration order
	Mountpoints []string
	// Line is the raw line as printed by the enumeration tool
	Line string
}

// Mounted reports whether the device has at least one mountpoint
func (d Device) Mounted() bool {
	return len(d.Mountpoints) > 0
}

// Label renders the device for a selection list
func (d Device) Label() string {
	if d.Line != "" {
		return d.Line
	}
	return strings.TrimSpace(strings.Join(append([]string{d.Name, d.Size}, d.Mountpoints...), " "))
}
