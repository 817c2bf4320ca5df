package camera

import (
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskSaver writes captured photos into a directory, one uuid-named .jpg per
// capture. Failures are logged and swallowed: saving is best-effort.
type DiskSaver struct {
	Dir string
}

func (s *DiskSaver) Save(jpeg []byte) {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		log.Printf("photo save: %v", err)
		return
	}
	path := filepath.Join(s.Dir, uuid.New().String()+".jpg")
	if err := os.WriteFile(path, jpeg, 0644); err != nil {
		log.Printf("photo save: %v", err)
	}
}
