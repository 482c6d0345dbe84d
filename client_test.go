package nircmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetVolumeRoundTrip(t *testing.T) {
	c := newFakeClient(t)
	ctx := context.Background()

	for _, pct := range []int{0, 1, 37, 50, 99, 100} {
		require.NoError(t, c.SetVolume(ctx, pct))

		got, err := c.Volume(ctx)
		require.NoError(t, err)
		assert.Equal(t, pct, got, "set %d%%, read back %d%%", pct, got)
	}
}

func TestIncreaseDecreaseVolume(t *testing.T) {
	c := newFakeClient(t)
	ctx := context.Background()

	require.NoError(t, c.SetVolume(ctx, 50))
	require.NoError(t, c.IncreaseVolume(ctx, 20))

	got, err := c.Volume(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 70, got, 1)

	require.NoError(t, c.DecreaseVolume(ctx, 30))

	got, err = c.Volume(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 40, got, 1)
}

func TestInvalidArgumentsSpawnNoSubprocess(t *testing.T) {
	c := newFakeClient(t)
	ctx := context.Background()

	assert.ErrorIs(t, c.SetVolume(ctx, -1), ErrInvalidArgument)
	assert.ErrorIs(t, c.SetVolume(ctx, 101), ErrInvalidArgument)
	assert.ErrorIs(t, c.IncreaseVolume(ctx, -5), ErrInvalidArgument)
	assert.ErrorIs(t, c.DecreaseVolume(ctx, -5), ErrInvalidArgument)

	assert.Empty(t, fakeCalls(t), "validation failures must not invoke the tool")
}

func TestMuteIsIdempotent(t *testing.T) {
	c := newFakeClient(t)
	ctx := context.Background()

	require.NoError(t, c.Mute(ctx))
	require.NoError(t, c.Mute(ctx))

	muted, err := c.Muted(ctx)
	require.NoError(t, err)
	assert.True(t, muted)
}

func TestUnmute(t *testing.T) {
	c := newFakeClient(t)
	ctx := context.Background()

	require.NoError(t, c.Mute(ctx))
	require.NoError(t, c.Unmute(ctx))

	muted, err := c.Muted(ctx)
	require.NoError(t, err)
	assert.False(t, muted)
}

func TestToggleMuteIsItsOwnInverse(t *testing.T) {
	c := newFakeClient(t)
	ctx := context.Background()

	require.NoError(t, c.Unmute(ctx))

	require.NoError(t, c.ToggleMute(ctx))
	muted, err := c.Muted(ctx)
	require.NoError(t, err)
	assert.True(t, muted)

	require.NoError(t, c.ToggleMute(ctx))
	muted, err = c.Muted(ctx)
	require.NoError(t, err)
	assert.False(t, muted)
}

func TestToolFailureIsLocalToTheCall(t *testing.T) {
	// A tool that always exits 2: every operation must report the exit
	// code, queries must return their sentinels, and no call may poison
	// the next one.
	c := newScriptClient(t, "#!/bin/sh\nexit 2\n")
	ctx := context.Background()

	err := c.SetVolume(ctx, 50)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)

	vol, err := c.Volume(ctx)
	assert.Error(t, err)
	assert.Equal(t, VolumeUnknown, vol)

	muted, err := c.Muted(ctx)
	assert.Error(t, err)
	assert.False(t, muted)

	// Still usable afterwards.
	require.ErrorAs(t, c.Mute(ctx), &exitErr)
}

func TestUnparseableQueryOutput(t *testing.T) {
	c := newScriptClient(t, "#!/bin/sh\necho \"not a number\"\n")
	ctx := context.Background()

	vol, err := c.Volume(ctx)
	assert.ErrorIs(t, err, ErrUnparseable)
	assert.Equal(t, VolumeUnknown, vol)

	_, err = c.Muted(ctx)
	assert.ErrorIs(t, err, ErrUnparseable)
}

func TestSetDevice(t *testing.T) {
	c := newFakeClient(t)

	assert.Equal(t, DeviceDefaultRender, c.Device())

	require.NoError(t, c.SetDevice(DeviceHeadphones))
	assert.Equal(t, DeviceHeadphones, c.Device())

	assert.ErrorIs(t, c.SetDevice(Device(42)), ErrInvalidArgument)
	assert.Equal(t, DeviceHeadphones, c.Device(), "failed selection must not change the device")
}

func TestDeviceTokenReachesTool(t *testing.T) {
	c := newFakeClient(t)
	ctx := context.Background()

	require.NoError(t, c.SetDevice(DeviceSpeakers))
	require.NoError(t, c.SetVolume(ctx, 10))

	assert.Contains(t, fakeCalls(t), "setsysvolume speakers")
}

func TestOpErrorCarriesOperation(t *testing.T) {
	c := newFakeClient(t)

	err := c.SetVolume(context.Background(), 500)
	var opErr *OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, OpSetVolume, opErr.Op)
	assert.Contains(t, err.Error(), "set-volume")
}
