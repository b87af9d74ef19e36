package devices

import (
	"github.com/arthur-debert/movex/pkg/errors"
	"github.com/arthur-debert/movex/pkg/types"
)

// DecideSelection turns the confirmation reply for a picked device into
// an outcome: nil to use the device, ErrNoSelection when declined and a
// usage error for anything else.
func DecideSelection(answer types.Answer) error {
	switch answer {
	case types.AnswerYes:
		return nil
	case types.AnswerNo:
		return errors.New(errors.ErrNoSelection, "device selection declined")
	default:
		return errors.New(errors.ErrUsage, "confirmation must be y or n")
	}
}

// Target returns the field of device named by mode
func Target(device types.Device, mode types.SelectorMode) (string, error) {
	switch mode {
	case types.ModeName:
		return device.Path, nil
	case types.ModeMountpoint:
		if !device.Mounted() {
			return "", errors.Newf(errors.ErrNoMountpoint, "%s is not mounted", device.Path).
				WithDetail("device", device.Path)
		}
		return device.Mountpoints[0], nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown selector mode %q", mode)
	}
}
