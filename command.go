package nircmd

import (
	"math"
	"strconv"
	"strings"
)

// commandRequest is a single tool invocation: the argument vector after
// the tool path, and whether the first stdout line carries a result.
type commandRequest struct {
	op            Operation
	args          []string
	captureOutput bool
}

// scaleToNative converts a 0-100 percentage into the tool's native
// volume unit.
func scaleToNative(percent int) int {
	return int(math.Round(float64(percent) / 100 * VolumeScale))
}

// scaleToPercent converts a native volume value back into a percentage,
// clamped into [0, 100]. The tool occasionally reports values a step past
// the nominal maximum after rounding, hence the clamp.
func scaleToPercent(native float64) int {
	pct := int(math.Round(native / VolumeScale * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// setVolumeCommand builds the argv for an absolute volume change
func setVolumeCommand(d Device, percent int) (commandRequest, error) {
	if percent < 0 || percent > 100 {
		return commandRequest{}, errInvalidf("volume %d%% outside [0, 100]", percent)
	}
	return commandRequest{
		op:   OpSetVolume,
		args: []string{CmdSetVolume, d.Token(), strconv.Itoa(scaleToNative(percent))},
	}, nil
}

// changeVolumeCommand builds the argv for a relative volume change.
// op selects the sign; step is a non-negative percentage delta.
func changeVolumeCommand(d Device, op Operation, step int) (commandRequest, error) {
	if step < 0 {
		return commandRequest{}, errInvalidf("step %d%% must be non-negative", step)
	}
	delta := scaleToNative(step)
	if op == OpDecreaseVolume {
		delta = -delta
	}
	// The tool requires an explicit sign on positive deltas too.
	arg := strconv.Itoa(delta)
	if delta >= 0 {
		arg = "+" + arg
	}
	return commandRequest{
		op:   op,
		args: []string{CmdChangeVolume, d.Token(), arg},
	}, nil
}

// muteCommand builds the argv for a mute state change
func muteCommand(d Device, op Operation) commandRequest {
	arg := muteArgToggle
	switch op {
	case OpMute:
		arg = muteArgOn
	case OpUnmute:
		arg = muteArgOff
	}
	return commandRequest{
		op:   op,
		args: []string{CmdMute, d.Token(), arg},
	}
}

// getVolumeCommand builds the argv for a volume query
func getVolumeCommand(d Device) commandRequest {
	return commandRequest{
		op:            OpGetVolume,
		args:          []string{CmdGetVolume, d.Token()},
		captureOutput: true,
	}
}

// getMuteCommand builds the argv for a mute state query
func getMuteCommand(d Device) commandRequest {
	return commandRequest{
		op:            OpGetMute,
		args:          []string{CmdGetMute, d.Token()},
		captureOutput: true,
	}
}

// parseVolumeLine interprets a captured volume query line as a native
// volume value and converts it to a percentage.
func parseVolumeLine(line string) (int, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return VolumeUnknown, errUnparseablef("empty volume line")
	}
	native, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return VolumeUnknown, errUnparseablef("volume line %q is not numeric", trimmed)
	}
	return scaleToPercent(native), nil
}

// parseMuteLine interprets a captured mute query line as a boolean
func parseMuteLine(line string) (bool, error) {
	switch strings.TrimSpace(line) {
	case MuteTrueToken:
		return true, nil
	case MuteFalseToken:
		return false, nil
	default:
		return false, errUnparseablef("mute line %q is not a mute token", strings.TrimSpace(line))
	}
}
