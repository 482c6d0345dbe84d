package nircmd

// NirCmd protocol constants
const (
	// DefaultToolName is the resource name of the bundled NirCmd executable
	DefaultToolName = "nircmd.exe"

	// VolumeScale is the tool's native maximum volume value.
	// NirCmd addresses volume as an integer in [0, 65535]; all public
	// operations take percentages and convert through this constant.
	VolumeScale = 65535

	// MuteTrueToken is the first-line token the tool prints when a
	// mute query reports a muted device.
	MuteTrueToken = "1"

	// MuteFalseToken is the first-line token for an unmuted device.
	MuteFalseToken = "0"
)

// Tool command verbs
const (
	// CmdSetVolume sets the absolute volume of a device
	CmdSetVolume = "setsysvolume"

	// CmdChangeVolume adjusts the volume of a device by a signed delta
	CmdChangeVolume = "changesysvolume"

	// CmdMute sets, clears, or toggles the mute state of a device
	CmdMute = "mutesysvolume"

	// CmdGetVolume prints the current native volume as the first stdout line
	CmdGetVolume = "getsysvolume"

	// CmdGetMute prints the current mute state as the first stdout line
	CmdGetMute = "getsysmute"
)

// Mute command arguments
const (
	// muteArgOff clears the mute state
	muteArgOff = "0"

	// muteArgOn sets the mute state
	muteArgOn = "1"

	// muteArgToggle flips the mute state
	muteArgToggle = "2"
)

// File modes
const (
	// ToolMode is the mode for the extracted tool executable
	ToolMode = 0o755
)

// VolumeUnknown is the sentinel returned by Volume when the query or
// its parsing fails.
const VolumeUnknown = -1

// Device identifies the logical audio output device an operation targets
type Device int

const (
	// DeviceDefaultRender is the system default render device
	DeviceDefaultRender Device = iota
	// DeviceSpeakers is the built-in or wired speaker endpoint
	DeviceSpeakers
	// DeviceHeadphones is the headphone endpoint
	DeviceHeadphones
)

// Device string constants
const (
	deviceDefaultRenderStr = "default_render"
	deviceSpeakersStr      = "speakers"
	deviceHeadphonesStr    = "headphones"
)

// Token returns the protocol token the tool expects for this device
func (d Device) Token() string {
	return d.String()
}

// String returns the string representation of a Device
func (d Device) String() string {
	switch d {
	case DeviceSpeakers:
		return deviceSpeakersStr
	case DeviceHeadphones:
		return deviceHeadphonesStr
	default:
		return deviceDefaultRenderStr
	}
}

// ParseDevice converts a device name into a Device value
func ParseDevice(s string) (Device, error) {
	switch s {
	case deviceDefaultRenderStr, "default":
		return DeviceDefaultRender, nil
	case deviceSpeakersStr:
		return DeviceSpeakers, nil
	case deviceHeadphonesStr:
		return DeviceHeadphones, nil
	default:
		return DeviceDefaultRender, &OpError{Op: OpUnknown, Err: errInvalidf("unknown device %q", s)}
	}
}

// Devices returns all addressable devices
func Devices() []Device {
	return []Device{DeviceDefaultRender, DeviceSpeakers, DeviceHeadphones}
}

// Operation represents a volume control operation type
type Operation int

const (
	// OpUnknown represents an unknown operation
	OpUnknown Operation = iota
	// OpSetVolume sets the volume to an absolute percentage
	OpSetVolume
	// OpIncreaseVolume raises the volume by a percentage step
	OpIncreaseVolume
	// OpDecreaseVolume lowers the volume by a percentage step
	OpDecreaseVolume
	// OpMute mutes the device
	OpMute
	// OpUnmute unmutes the device
	OpUnmute
	// OpToggleMute flips the mute state
	OpToggleMute
	// OpGetVolume queries the current volume
	OpGetVolume
	// OpGetMute queries the current mute state
	OpGetMute
)

// Operation string constants
const (
	opUnknownStr        = "unknown"
	opSetVolumeStr      = "set-volume"
	opIncreaseVolumeStr = "increase-volume"
	opDecreaseVolumeStr = "decrease-volume"
	opMuteStr           = "mute"
	opUnmuteStr         = "unmute"
	opToggleMuteStr     = "toggle-mute"
	opGetVolumeStr      = "get-volume"
	opGetMuteStr        = "get-mute"
)

// String returns the string representation of an Operation
func (op Operation) String() string {
	switch op {
	case OpSetVolume:
		return opSetVolumeStr
	case OpIncreaseVolume:
		return opIncreaseVolumeStr
	case OpDecreaseVolume:
		return opDecreaseVolumeStr
	case OpMute:
		return opMuteStr
	case OpUnmute:
		return opUnmuteStr
	case OpToggleMute:
		return opToggleMuteStr
	case OpGetVolume:
		return opGetVolumeStr
	case OpGetMute:
		return opGetMuteStr
	default:
		return opUnknownStr
	}
}
