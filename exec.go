package nircmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
)

// execResult holds the outcome of a single tool invocation
type execResult struct {
	exitCode  int
	firstLine string
}

// runTool launches the extracted tool with the request's argument
// vector and waits for it to exit.
//
// The tool writes diagnostics to both stdout and stderr; both pipes
// must be drained while waiting or the child can block on a full pipe
// buffer. Stderr is always drained by a goroutine. Stdout is either
// drained the same way or, when the request captures output, read
// synchronously here so the first line can be returned; any further
// lines are logged at debug only.
//
// Cancelling ctx kills the child rather than leaking it.
func (c *Client) runTool(ctx context.Context, req commandRequest) (execResult, error) {
	argv := append([]string{c.toolPath}, req.args...)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return execResult{}, fmt.Errorf("opening stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return execResult{}, fmt.Errorf("opening stderr pipe: %w", err)
	}

	c.log.Debug("executing tool", "argv", strings.Join(argv, " "))

	if err := cmd.Start(); err != nil {
		return execResult{}, fmt.Errorf("starting tool: %w", err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.drainStream("stderr", stderr)
	}()

	var res execResult
	if req.captureOutput {
		res.firstLine = c.captureFirstLine(stdout)
	} else {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.drainStream("stdout", stdout)
		}()
	}

	// Both pipes must be fully consumed before Wait releases them.
	wg.Wait()

	if err := cmd.Wait(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			res.exitCode = exitErr.ExitCode()
			return res, &ExitError{Argv: argv, Code: res.exitCode}
		}
		return res, fmt.Errorf("waiting for tool: %w", err)
	}

	c.log.Debug("tool finished", "op", req.op.String(), "exit", 0)
	return res, nil
}

// captureFirstLine reads stdout synchronously, keeping the first line
// and logging the remainder at debug until the stream closes.
func (c *Client) captureFirstLine(r io.Reader) string {
	scanner := bufio.NewScanner(r)
	first := ""
	seen := false
	for scanner.Scan() {
		if !seen {
			first = scanner.Text()
			seen = true
			continue
		}
		c.log.Debug("tool stdout", "line", scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		c.log.Warn("reading tool stdout", "err", err)
		// Keep consuming so the child never blocks on a full pipe.
		_, _ = io.Copy(io.Discard, r)
	}
	return first
}

// drainStream consumes a pipe until the child closes it, logging each
// line at debug. Read errors are logged, never propagated; a drain
// failure must not surface in an unrelated caller's operation.
func (c *Client) drainStream(name string, r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		c.log.Debug("tool "+name, "line", scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		c.log.Warn("reading tool "+name, "err", err)
		_, _ = io.Copy(io.Discard, r)
	}
}
