package camera

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDirCameraCapturesOldestUnseen(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.jpg", "a.jpg", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	cam := NewDirCamera(dir)
	ctx := context.Background()

	if _, err := cam.CaptureUpright(ctx, true); !errors.Is(err, ErrNotRunning) {
		t.Errorf("capture before preview = %v, want ErrNotRunning", err)
	}

	if _, err := cam.StartPreview(ctx, false); err != nil {
		t.Fatalf("StartPreview: %v", err)
	}
	if !cam.IsPreviewRunning() {
		t.Error("preview should be running")
	}

	frame, err := cam.CaptureUpright(ctx, true)
	if err != nil {
		t.Fatalf("first capture: %v", err)
	}
	if string(frame.JPEG) != "a.jpg" {
		t.Errorf("first capture = %q, want the lexically oldest jpg", frame.JPEG)
	}

	frame, err = cam.CaptureUpright(ctx, true)
	if err != nil {
		t.Fatalf("second capture: %v", err)
	}
	if string(frame.JPEG) != "b.jpg" {
		t.Errorf("second capture = %q, want b.jpg", frame.JPEG)
	}

	// Both jpgs consumed; non-jpg files never count.
	if _, err := cam.CaptureUpright(ctx, true); !errors.Is(err, ErrCaptureTimeout) {
		t.Errorf("exhausted capture = %v, want ErrCaptureTimeout", err)
	}
}

func TestDirCameraMissingDir(t *testing.T) {
	cam := NewDirCamera(filepath.Join(t.TempDir(), "nope"))
	if _, err := cam.StartPreview(context.Background(), false); !errors.Is(err, ErrDeviceNotReady) {
		t.Errorf("StartPreview = %v, want ErrDeviceNotReady", err)
	}
}

func TestDiskSaver(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "captures")
	saver := &DiskSaver{Dir: dir}
	saver.Save([]byte("jpeg-bytes"))

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read save dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 saved photo, got %d", len(entries))
	}
	if filepath.Ext(entries[0].Name()) != ".jpg" {
		t.Errorf("saved as %q, want a .jpg", entries[0].Name())
	}
}
