package devices

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/movex/pkg/types"
)

// DefaultPrefix is the usual device-namespace root
const DefaultPrefix = "/dev/"

// ParseDeviceList parses the output of `lsblk -o NAME,SIZE,MOUNTPOINTS`.
//
// The first line is the column header and is skipped. Every other line is
// NAME SIZE [MOUNTPOINT...]. A line holding a single absolute path is an
// additional mountpoint of the previous device, which is how lsblk prints
// devices mounted more than once. Blank lines are ignored. Any other line
// with fewer than two fields is returned in malformed and otherwise
// ignored. Device paths are built with NormalizeDeviceName and prefix.
func ParseDeviceList(output, prefix string) (devices []types.Device, malformed []string) {
	lines := strings.Split(strings.ReplaceAll(output, "\r\n", "\n"), "\n")
	if len(lines) > 0 {
		lines = lines[1:]
	}

	for _, line := range lines {
		fields := strings.Fields(line)
		switch {
		case len(fields) == 0:
			continue
		case len(fields) == 1 && filepath.IsAbs(fields[0]) && len(devices) > 0:
			last := &devices[len(devices)-1]
			last.Mountpoints = append(last.Mountpoints, fields[0])
			last.Line = strings.TrimRight(last.Line, " ") + " " + fields[0]
		case len(fields) < 2:
			malformed = append(malformed, line)
		default:
			name := NormalizeDeviceName(fields[0], "")
			if name == "" {
				malformed = append(malformed, line)
				continue
			}
			devices = append(devices, types.Device{
				Path:        NormalizeDeviceName(fields[0], prefix),
				Name:        fields[0],
				Size:        fields[1],
				Mountpoints: fields[2:],
				Line:        strings.TrimSpace(line),
			})
		}
	}
	return devices, malformed
}

// NormalizeDeviceName reduces raw to its ASCII letters and digits and
// prepends prefix. lsblk decorates child devices with tree markers such
// as "├─" or "`-", which this strips.
func NormalizeDeviceName(raw, prefix string) string {
	var b strings.Builder
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return prefix + b.String()
}
