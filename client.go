package nircmd

import (
	"context"
	"io/fs"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// Client controls the volume of a single audio output device by
// invoking the bundled NirCmd tool. The tool binary is extracted from
// the supplied resource FS into a private temporary directory at
// construction and removed again by Close.
//
// A Client is single-use: once closed, every operation returns
// ErrNotReady and there is no way back.
type Client struct {
	resource fs.FS
	toolName string

	tmpParent string
	tmpDir    string
	toolPath  string
	ownsTool  bool

	guardEnabled bool
	guardCleanup func() error

	log      *log.Logger
	logLevel log.Level

	// mu protects device selection and the closed flag
	mu     sync.RWMutex
	device Device
	closed bool
}

// Option configures a Client
type Option func(*Client)

// WithDevice sets the initial target device
func WithDevice(d Device) Option {
	return func(c *Client) {
		c.device = d
	}
}

// WithLogger sets the logger all components emit through
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// WithLogLevel sets the level used while logging is enabled
func WithLogLevel(lv log.Level) Option {
	return func(c *Client) {
		c.logLevel = lv
	}
}

// WithToolName sets the resource path of the tool binary within the
// resource FS
func WithToolName(name string) Option {
	return func(c *Client) {
		c.toolName = name
	}
}

// WithToolPath uses an existing on-disk tool binary instead of
// extracting one from the resource FS. The client does not take
// ownership of the file.
func WithToolPath(path string) Option {
	return func(c *Client) {
		c.toolPath = path
	}
}

// WithTempDir sets the parent directory for the extraction directory
func WithTempDir(dir string) Option {
	return func(c *Client) {
		c.tmpParent = dir
	}
}

// WithToolGuard re-extracts the tool if something removes it from the
// temporary directory while the client is alive (tmp reapers do this
// to long-running processes). Requires extraction, not WithToolPath.
func WithToolGuard() Option {
	return func(c *Client) {
		c.guardEnabled = true
	}
}

// New creates a Client backed by the tool binary in resource.
//
// Extraction happens here, eagerly: if the binary is missing or cannot
// be written out, New fails and no Client exists, so no operation can
// ever run against a half-initialized instance. Callers should defer
// Close to release the extracted file.
func New(resource fs.FS, opts ...Option) (*Client, error) {
	c := &Client{
		resource: resource,
		toolName: DefaultToolName,
		device:   DeviceDefaultRender,
		logLevel: log.WarnLevel,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.log == nil {
		c.log = log.NewWithOptions(os.Stderr, log.Options{Prefix: "nircmd"})
	}
	c.log.SetLevel(c.logLevel)

	if c.toolPath == "" {
		if c.resource == nil {
			return nil, errInvalidf("nil resource FS and no tool path")
		}
		dir, path, err := extractTool(c.resource, c.toolName, c.tmpParent)
		if err != nil {
			return nil, err
		}
		c.tmpDir = dir
		c.toolPath = path
		c.ownsTool = true
		c.log.Info("tool extracted", "path", path)
	}

	if c.guardEnabled {
		if !c.ownsTool {
			c.removeTool()
			return nil, errInvalidf("tool guard requires extraction, not WithToolPath")
		}
		if err := c.startGuard(); err != nil {
			c.removeTool()
			return nil, err
		}
	}

	return c, nil
}

// Close stops the tool guard and deletes the extracted tool binary.
// Deletion is best-effort: a failure is logged at error level and
// never returned. Close is idempotent.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	if c.guardCleanup != nil {
		if err := c.guardCleanup(); err != nil {
			c.log.Warn("stopping tool guard", "err", err)
		}
	}
	c.removeTool()
	return nil
}

func (c *Client) removeTool() {
	if !c.ownsTool || c.tmpDir == "" {
		return
	}
	if err := os.RemoveAll(c.tmpDir); err != nil {
		c.log.Error("removing extracted tool", "dir", c.tmpDir, "err", err)
		return
	}
	c.log.Info("extracted tool removed", "dir", c.tmpDir)
}

// ToolPath returns the on-disk path of the tool binary in use
func (c *Client) ToolPath() string {
	return c.toolPath
}

// ready reports whether operations may run
func (c *Client) ready() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrNotReady
	}
	return nil
}

// SetDevice selects the device later operations target
func (c *Client) SetDevice(d Device) error {
	if d < DeviceDefaultRender || d > DeviceHeadphones {
		return errInvalidf("unknown device %d", int(d))
	}
	c.mu.Lock()
	c.device = d
	c.mu.Unlock()
	c.log.Debug("target device changed", "device", d.String())
	return nil
}

// Device returns the currently targeted device
func (c *Client) Device() Device {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.device
}

// EnableLogging restores the configured log level
func (c *Client) EnableLogging() {
	c.log.SetLevel(c.logLevel)
}

// DisableLogging suppresses everything below error level. Errors and
// the events around them always come through.
func (c *Client) DisableLogging() {
	c.log.SetLevel(log.ErrorLevel)
}

// SetVolume sets the target device's volume to an absolute percentage
// in [0, 100].
func (c *Client) SetVolume(ctx context.Context, percent int) error {
	if err := c.ready(); err != nil {
		return &OpError{Op: OpSetVolume, Err: err}
	}
	req, err := setVolumeCommand(c.Device(), percent)
	if err != nil {
		return &OpError{Op: OpSetVolume, Err: err}
	}
	if _, err := c.runTool(ctx, req); err != nil {
		return &OpError{Op: OpSetVolume, Err: err}
	}
	c.log.Info("volume set", "device", c.Device().String(), "percent", percent)
	return nil
}

// IncreaseVolume raises the target device's volume by a non-negative
// percentage step.
func (c *Client) IncreaseVolume(ctx context.Context, step int) error {
	return c.changeVolume(ctx, OpIncreaseVolume, step)
}

// DecreaseVolume lowers the target device's volume by a non-negative
// percentage step.
func (c *Client) DecreaseVolume(ctx context.Context, step int) error {
	return c.changeVolume(ctx, OpDecreaseVolume, step)
}

func (c *Client) changeVolume(ctx context.Context, op Operation, step int) error {
	if err := c.ready(); err != nil {
		return &OpError{Op: op, Err: err}
	}
	req, err := changeVolumeCommand(c.Device(), op, step)
	if err != nil {
		return &OpError{Op: op, Err: err}
	}
	if _, err := c.runTool(ctx, req); err != nil {
		return &OpError{Op: op, Err: err}
	}
	c.log.Info("volume changed", "device", c.Device().String(), "op", op.String(), "step", step)
	return nil
}

// Mute mutes the target device
func (c *Client) Mute(ctx context.Context) error {
	return c.setMute(ctx, OpMute)
}

// Unmute unmutes the target device
func (c *Client) Unmute(ctx context.Context) error {
	return c.setMute(ctx, OpUnmute)
}

// ToggleMute flips the target device's mute state
func (c *Client) ToggleMute(ctx context.Context) error {
	return c.setMute(ctx, OpToggleMute)
}

func (c *Client) setMute(ctx context.Context, op Operation) error {
	if err := c.ready(); err != nil {
		return &OpError{Op: op, Err: err}
	}
	req := muteCommand(c.Device(), op)
	if _, err := c.runTool(ctx, req); err != nil {
		return &OpError{Op: op, Err: err}
	}
	c.log.Info("mute state changed", "device", c.Device().String(), "op", op.String())
	return nil
}

// Volume returns the target device's current volume as a percentage.
// On any execution or parse failure it returns VolumeUnknown together
// with the error; the failure is also logged at error level.
func (c *Client) Volume(ctx context.Context) (int, error) {
	if err := c.ready(); err != nil {
		return VolumeUnknown, &OpError{Op: OpGetVolume, Err: err}
	}
	res, err := c.runTool(ctx, getVolumeCommand(c.Device()))
	if err != nil {
		c.log.Error("volume query failed", "device", c.Device().String(), "err", err)
		return VolumeUnknown, &OpError{Op: OpGetVolume, Err: err}
	}
	pct, err := parseVolumeLine(res.firstLine)
	if err != nil {
		c.log.Error("volume query unparseable", "line", res.firstLine, "err", err)
		return VolumeUnknown, &OpError{Op: OpGetVolume, Err: err}
	}
	return pct, nil
}

// Muted reports whether the target device is muted. On any execution
// or parse failure it returns false together with the error; callers
// must check the error before trusting the value.
func (c *Client) Muted(ctx context.Context) (bool, error) {
	if err := c.ready(); err != nil {
		return false, &OpError{Op: OpGetMute, Err: err}
	}
	res, err := c.runTool(ctx, getMuteCommand(c.Device()))
	if err != nil {
		c.log.Error("mute query failed", "device", c.Device().String(), "err", err)
		return false, &OpError{Op: OpGetMute, Err: err}
	}
	muted, err := parseMuteLine(res.firstLine)
	if err != nil {
		c.log.Error("mute query unparseable", "line", res.firstLine, "err", err)
		return false, &OpError{Op: OpGetMute, Err: err}
	}
	return muted, nil
}
