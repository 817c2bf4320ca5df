package camera

import (
	"context"
	"sync"
)

// Fake is a scripted Service for tests and the simulator. Each capture pops
// the next queued frame; configured errors take precedence.
type Fake struct {
	mu      sync.Mutex
	running bool
	front   bool

	Info       PreviewInfo
	Frames     [][]byte
	StartErr   error
	CaptureErr error
}

func (f *Fake) StartPreview(ctx context.Context, useFront bool) (*PreviewInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.StartErr != nil {
		return nil, f.StartErr
	}
	f.running = true
	f.front = useFront
	info := f.Info
	return &info, nil
}

func (f *Fake) StopPreview() {
	f.mu.Lock()
	f.running = false
	f.mu.Unlock()
}

func (f *Fake) IsPreviewRunning() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running
}

func (f *Fake) CaptureUpright(ctx context.Context, unMirrorFront bool) (*Frame, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.running {
		return nil, ErrNotRunning
	}
	if f.CaptureErr != nil {
		return nil, f.CaptureErr
	}
	if len(f.Frames) == 0 {
		return nil, ErrCaptureTimeout
	}
	jpg := f.Frames[0]
	f.Frames = f.Frames[1:]
	return &Frame{JPEG: jpg}, nil
}

// SetStartErr changes the scripted StartPreview failure. Safe to call while
// the session is live.
func (f *Fake) SetStartErr(err error) {
	f.mu.Lock()
	f.StartErr = err
	f.mu.Unlock()
}

// FrontFacing reports the facing requested by the last StartPreview.
func (f *Fake) FrontFacing() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.front
}

// NullSaver discards photos. Used where persistence is irrelevant.
type NullSaver struct{}

func (NullSaver) Save(jpeg []byte) {}
