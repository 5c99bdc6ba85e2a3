package share

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"photofeed/internal/core/posts"
)

// Clipboard writes the composed share string to the system clipboard
// through whichever clipboard tool the platform provides.
type Clipboard struct {
	tool string
}

// NewClipboard probes for a clipboard tool appropriate to the platform
func NewClipboard() *Clipboard {
	var candidates []string
	switch runtime.GOOS {
	case "darwin":
		candidates = []string{"pbcopy"}
	case "windows":
		candidates = []string{"clip"}
	default:
		candidates = []string{"wl-copy", "xclip", "xsel"}
	}

	for _, tool := range candidates {
		if _, err := exec.LookPath(tool); err == nil {
			return &Clipboard{tool: tool}
		}
	}
	return &Clipboard{}
}

func (c *Clipboard) Name() string { return "clipboard" }

func (c *Clipboard) Available() bool { return c.tool != "" }

func (c *Clipboard) Share(ctx context.Context, content posts.ShareContent) error {
	args := []string{}
	if c.tool == "xclip" {
		args = []string{"-selection", "clipboard"}
	}

	cmd := exec.CommandContext(ctx, c.tool, args...)
	cmd.Stdin = strings.NewReader(composeShareText(content))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("clipboard write via %s: %w", c.tool, err)
	}
	return nil
}

func composeShareText(content posts.ShareContent) string {
	return fmt.Sprintf("%s\n%s", content.Text, content.URL)
}
