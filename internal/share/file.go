package share

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"photofeed/internal/core/posts"
)

// File is the legacy fallback: it drops the composed share string into
// a spool file the surrounding application can pick up. Always
// available.
type File struct {
	dir string
}

// NewFile creates the file strategy writing into dir, defaulting to the
// OS temp directory
func NewFile(dir string) *File {
	if dir == "" {
		dir = os.TempDir()
	}
	return &File{dir: dir}
}

func (f *File) Name() string { return "file" }

func (f *File) Available() bool { return true }

func (f *File) Share(_ context.Context, content posts.ShareContent) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("creating share spool dir: %w", err)
	}

	path := filepath.Join(f.dir, fmt.Sprintf("share-%d.txt", time.Now().UnixNano()))
	if err := os.WriteFile(path, []byte(composeShareText(content)), 0o644); err != nil {
		return fmt.Errorf("writing share file: %w", err)
	}
	return nil
}
