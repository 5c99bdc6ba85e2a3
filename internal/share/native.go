// Package share provides the platform share capabilities tried by the
// interaction service: a native share handler, the system clipboard,
// and a last-resort file carrier.
package share

import (
	"context"
	"fmt"
	"os/exec"

	"photofeed/internal/core/posts"
)

// Native invokes a configured share handler command (for example
// termux-share, or a desktop portal wrapper) with the share URL as its
// argument.
type Native struct {
	command string
}

// NewNative creates the native strategy. An empty command means the
// platform offers no native share capability.
func NewNative(command string) *Native {
	return &Native{command: command}
}

func (n *Native) Name() string { return "native" }

func (n *Native) Available() bool {
	if n.command == "" {
		return false
	}
	_, err := exec.LookPath(n.command)
	return err == nil
}

func (n *Native) Share(ctx context.Context, content posts.ShareContent) error {
	cmd := exec.CommandContext(ctx, n.command, content.URL)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("native share via %s: %w", n.command, err)
	}
	return nil
}
