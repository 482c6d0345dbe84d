// Package nircmd controls Windows audio output volume by driving a
// bundled copy of the NirCmd command-line utility.
//
// The tool binary itself is not part of this module. Callers bundle it
// with go:embed and hand the filesystem to New, which extracts the
// binary to a private temporary directory exactly once and removes it
// again on Close:
//
//	//go:embed nircmd.exe
//	var tool embed.FS
//
//	client, err := nircmd.New(tool)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Set the default render device to half volume
//	err = client.SetVolume(context.Background(), 50)
//
//	// Query the current state
//	volume, err := client.Volume(context.Background())
//	muted, err := client.Muted(context.Background())
//
// # Devices
//
// Operations target one logical output device at a time, selected with
// SetDevice. The default is the system default render device.
//
// # Failure Model
//
// Construction is the only fatal point: if the tool binary is missing
// from the resource FS, New fails and nothing else can happen. Every
// per-operation failure is local to that call. A tool invocation that
// exits non-zero yields an *ExitError inside an *OpError; a query
// whose output cannot be interpreted yields ErrUnparseable and the
// documented sentinel (VolumeUnknown for Volume). None of these leave
// the client unusable.
//
// # Watching
//
// Watch polls the device and reports volume or mute changes on a
// channel. NirCmd has no change-notification interface, so the poll
// interval bounds how quickly changes are observed.
//
// # Design Philosophy
//
// This library prioritizes:
//
//   - One extracted tool binary per client, atomically written,
//     removed on Close
//   - Deadlock-free subprocess handling (both output pipes are always
//     drained while waiting)
//   - Context-aware operations that kill the child when cancelled
//   - Type safety (no string-based operation or device codes)
package nircmd
