package split

import "strings"

// Device names a satellite messenger with a fixed per-message character limit.
type Device string

const (
	DeviceZoleo   Device = "zoleo"
	DeviceInReach Device = "inreach"
)

// DefaultDevice is used when a request names no device or an unknown one.
const DefaultDevice = DeviceZoleo

var deviceLimits = map[Device]int{
	DeviceZoleo:   200,
	DeviceInReach: 160,
}

// ParseDevice resolves a device name. The boolean is false for unknown
// names, in which case DefaultDevice is returned.
func ParseDevice(s string) (Device, bool) {
	d := Device(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := deviceLimits[d]; ok {
		return d, true
	}
	return DefaultDevice, false
}

// Profile resolves the character limit for one delivery.
type Profile struct {
	Device Device
	// CustomLimit overrides the device preset when it is at least MinCustomLimit.
	CustomLimit int
}

// Limit returns the per-message character limit.
func (p Profile) Limit() int {
	if p.CustomLimit >= MinCustomLimit {
		return p.CustomLimit
	}
	if l, ok := deviceLimits[p.Device]; ok {
		return l
	}
	return deviceLimits[DefaultDevice]
}
