// Package ipc talks to the window manager. The default transport shells
// out to swaymsg or i3-msg; a direct socket transport is available for
// sway. Both yield the same parsed tree and dispatch the same focus
// commands.
package ipc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/korreman/sway-overfocus/internal/tree"
)

// Client is one round-trip surface to the window manager: read the
// layout tree, run a command.
type Client interface {
	GetTree(ctx context.Context) (*tree.Tree, error)
	RunCommand(ctx context.Context, command string) error
}

// Failure wraps any adapter-level error: missing binary, nonzero exit,
// unparseable reply, rejected command.
type Failure struct {
	Op  string
	Err error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Op, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Exec invokes the window manager's message tool as a subprocess.
type Exec struct {
	program string
}

// NewExec returns the exec transport for sway (swaymsg) or i3 (i3-msg).
func NewExec(i3 bool) *Exec {
	program := "swaymsg"
	if i3 {
		program = "i3-msg"
	}
	return &Exec{program: program}
}

func (c *Exec) run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.program, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return nil, &Failure{Op: c.program, Err: err}
	}
	return stdout.Bytes(), nil
}

// GetTree fetches and parses the layout tree.
func (c *Exec) GetTree(ctx context.Context) (*tree.Tree, error) {
	out, err := c.run(ctx, "-t", "get_tree")
	if err != nil {
		return nil, err
	}
	t, err := tree.Parse(out)
	if err != nil {
		return nil, &Failure{Op: c.program + " get_tree", Err: err}
	}
	return t, nil
}

// commandReply is the per-command status both tools print as a JSON
// array.
type commandReply struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// RunCommand dispatches a single command and checks its reply.
func (c *Exec) RunCommand(ctx context.Context, command string) error {
	out, err := c.run(ctx, command)
	if err != nil {
		return err
	}
	var replies []commandReply
	if err := json.Unmarshal(out, &replies); err != nil {
		return &Failure{Op: c.program, Err: fmt.Errorf("malformed command reply: %w", err)}
	}
	for _, r := range replies {
		if !r.Success {
			return &Failure{Op: c.program, Err: fmt.Errorf("command %q failed: %s", command, r.Error)}
		}
	}
	return nil
}
