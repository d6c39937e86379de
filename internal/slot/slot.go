// Package slot provides the persistent key-value backends the agenda
// store mirrors its collection into. Each backend holds one value per
// named slot; the store serializes its full row collection as that value
// after every mutation.
package slot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// FileSlot stores the value as a single file on disk. Writes go through
// an atomic rename so a crash mid-write never leaves a torn file.
type FileSlot struct {
	path string
}

// NewFileSlot creates a slot backed by the file at path. The parent
// directory is created on first save.
func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

// Load reads the slot contents. A slot that has never been written
// returns nil data and no error.
func (s *FileSlot) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read slot %s: %w", s.path, err)
	}
	return data, nil
}

// Save replaces the slot contents atomically.
func (s *FileSlot) Save(_ context.Context, data []byte) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create slot directory: %w", err)
		}
	}

	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write slot %s: %w", s.path, err)
	}
	return nil
}
