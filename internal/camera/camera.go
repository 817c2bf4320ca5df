// Package camera defines the capture collaborators the game core depends on,
// plus the implementations that make the game playable on a desktop.
package camera

import (
	"context"
	"errors"
)

var (
	ErrPermissionDenied = errors.New("camera permission denied")
	ErrDeviceNotReady   = errors.New("camera device not ready")
	ErrNotRunning       = errors.New("camera preview not running")
	ErrCaptureTimeout   = errors.New("camera capture timed out")
)

// PreviewInfo tells the view how to display the live feed.
type PreviewInfo struct {
	RotationDegrees      int
	VerticallyMirrored   bool
	HorizontallyMirrored bool
}

// Frame is one captured still, already rotated upright and JPEG-encoded.
type Frame struct {
	JPEG []byte
}

// Service is the camera device. Only one preview session may be active at a
// time; switching facing requires stop-then-restart.
type Service interface {
	StartPreview(ctx context.Context, useFront bool) (*PreviewInfo, error)
	StopPreview()
	IsPreviewRunning() bool
	CaptureUpright(ctx context.Context, unMirrorFront bool) (*Frame, error)
}

// Saver persists a captured photo. Best-effort: the game never waits on it
// and never fails because of it.
type Saver interface {
	Save(jpeg []byte)
}
