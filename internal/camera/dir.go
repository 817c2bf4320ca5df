package camera

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// DirCamera treats a directory of JPEG files as the camera device: each
// capture pops the oldest file not yet consumed. It lets the game run on a
// desktop against photos dropped into a folder.
type DirCamera struct {
	Dir string

	mu      sync.Mutex
	running bool
	front   bool
	seen    map[string]bool
}

func NewDirCamera(dir string) *DirCamera {
	return &DirCamera{Dir: dir, seen: make(map[string]bool)}
}

func (c *DirCamera) StartPreview(ctx context.Context, useFront bool) (*PreviewInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if info, err := os.Stat(c.Dir); err != nil || !info.IsDir() {
		return nil, ErrDeviceNotReady
	}
	c.running = true
	c.front = useFront
	// Files on disk are already upright and unmirrored.
	return &PreviewInfo{}, nil
}

func (c *DirCamera) StopPreview() {
	c.mu.Lock()
	c.running = false
	c.mu.Unlock()
}

func (c *DirCamera) IsPreviewRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// CaptureUpright returns the oldest JPEG in the directory that has not been
// captured before. No new file yet is reported as a capture timeout, which
// the game treats as a judged loss.
func (c *DirCamera) CaptureUpright(ctx context.Context, unMirrorFront bool) (*Frame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return nil, ErrNotRunning
	}
	path, err := c.nextUnseen()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrDeviceNotReady
	}
	c.seen[path] = true
	return &Frame{JPEG: data}, nil
}

func (c *DirCamera) nextUnseen() (string, error) {
	entries, err := os.ReadDir(c.Dir)
	if err != nil {
		return "", ErrDeviceNotReady
	}
	var candidates []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".jpg" && ext != ".jpeg" {
			continue
		}
		path := filepath.Join(c.Dir, e.Name())
		if !c.seen[path] {
			candidates = append(candidates, path)
		}
	}
	if len(candidates) == 0 {
		return "", ErrCaptureTimeout
	}
	sort.Strings(candidates)
	return candidates[0], nil
}
