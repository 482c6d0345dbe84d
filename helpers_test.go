package nircmd

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

// fakeStateEnv names the directory the fake tool keeps its state in
const fakeStateEnv = "NIRCMD_FAKE_STATE"

// fakeToolScript emulates the tool protocol with files under
// $NIRCMD_FAKE_STATE: "volume" and "mute" hold native state, "calls"
// records every invocation.
const fakeToolScript = `#!/bin/sh
state="$NIRCMD_FAKE_STATE"
cmd="$1"; dev="$2"; val="$3"
echo "$cmd $dev $val" >> "$state/calls"
case "$cmd" in
setsysvolume)
	echo "$val" > "$state/volume"
	;;
changesysvolume)
	cur=0
	[ -f "$state/volume" ] && cur=$(cat "$state/volume")
	delta=${val#+}
	echo $((cur + delta)) > "$state/volume"
	;;
mutesysvolume)
	if [ "$val" = "2" ]; then
		cur=0
		[ -f "$state/mute" ] && cur=$(cat "$state/mute")
		if [ "$cur" = "1" ]; then echo 0 > "$state/mute"; else echo 1 > "$state/mute"; fi
	else
		echo "$val" > "$state/mute"
	fi
	;;
getsysvolume)
	if [ -f "$state/volume" ]; then cat "$state/volume"; else echo 0; fi
	;;
getsysmute)
	if [ -f "$state/mute" ]; then cat "$state/mute"; else echo 0; fi
	;;
*)
	echo "unknown command: $cmd" >&2
	exit 1
	;;
esac
`

// writeFakeTool writes an executable shell script standing in for the
// real tool and returns its path.
func writeFakeTool(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tool is a shell script")
	}
	path := filepath.Join(t.TempDir(), "fake-nircmd")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

// quietLogger discards everything; tests assert behavior, not output
func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// newFakeClient returns a Client wired to a fresh fake tool with its
// own state directory.
func newFakeClient(t *testing.T, opts ...Option) *Client {
	t.Helper()
	t.Setenv(fakeStateEnv, t.TempDir())
	tool := writeFakeTool(t, fakeToolScript)

	opts = append([]Option{WithToolPath(tool), WithLogger(quietLogger())}, opts...)
	c, err := New(nil, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// fakeCalls returns the recorded fake tool invocations, one per line
func fakeCalls(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(os.Getenv(fakeStateEnv), "calls"))
	if os.IsNotExist(err) {
		return ""
	}
	require.NoError(t, err)
	return string(data)
}
