package nircmd

import (
	"context"
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBinary is the payload stored under the tool's resource name in
// test filesystems. Content only matters for byte-for-byte checks.
var fakeBinary = []byte("MZ\x90\x00 not a real executable")

func toolFS() fstest.MapFS {
	return fstest.MapFS{
		DefaultToolName: &fstest.MapFile{Data: fakeBinary, Mode: 0o644},
	}
}

func TestNewExtractsTool(t *testing.T) {
	c, err := New(toolFS(), WithLogger(quietLogger()))
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	path := c.ToolPath()
	require.NotEmpty(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, fakeBinary, data, "extraction must be byte-for-byte")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o100, "extracted tool must be executable")
}

func TestNewMissingResource(t *testing.T) {
	_, err := New(fstest.MapFS{}, WithLogger(quietLogger()))
	require.ErrorIs(t, err, ErrToolMissing)
}

func TestNewNilResource(t *testing.T) {
	_, err := New(nil, WithLogger(quietLogger()))
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewCustomToolName(t *testing.T) {
	fsys := fstest.MapFS{
		"bin/tool.exe": &fstest.MapFile{Data: fakeBinary, Mode: 0o644},
	}
	c, err := New(fsys, WithToolName("bin/tool.exe"), WithLogger(quietLogger()))
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.FileExists(t, c.ToolPath())
}

func TestNewWithTempDir(t *testing.T) {
	parent := t.TempDir()
	c, err := New(toolFS(), WithTempDir(parent), WithLogger(quietLogger()))
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.Contains(t, c.ToolPath(), parent)
}

func TestCloseRemovesExtractedTool(t *testing.T) {
	c, err := New(toolFS(), WithLogger(quietLogger()))
	require.NoError(t, err)

	path := c.ToolPath()
	require.FileExists(t, path)

	require.NoError(t, c.Close())
	assert.NoFileExists(t, path)
}

func TestCloseIsIdempotent(t *testing.T) {
	c, err := New(toolFS(), WithLogger(quietLogger()))
	require.NoError(t, err)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}

func TestCloseDoesNotRemoveBorrowedTool(t *testing.T) {
	tool := writeFakeTool(t, fakeToolScript)

	c, err := New(nil, WithToolPath(tool), WithLogger(quietLogger()))
	require.NoError(t, err)
	require.NoError(t, c.Close())

	assert.FileExists(t, tool, "WithToolPath must not take ownership")
}

func TestOperationsAfterCloseReturnNotReady(t *testing.T) {
	c := newFakeClient(t)
	require.NoError(t, c.Close())

	ctx := context.Background()

	assert.ErrorIs(t, c.SetVolume(ctx, 50), ErrNotReady)
	assert.ErrorIs(t, c.Mute(ctx), ErrNotReady)

	vol, err := c.Volume(ctx)
	assert.ErrorIs(t, err, ErrNotReady)
	assert.Equal(t, VolumeUnknown, vol)

	_, err = c.Muted(ctx)
	assert.ErrorIs(t, err, ErrNotReady)
}
