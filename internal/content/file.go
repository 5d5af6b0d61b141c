package content

import (
	"fmt"
	"os"
	"path/filepath"
)

// File shows the text of a file on disk. Reload re-reads it.
type File struct {
	path string
	body string
	err  error
}

// NewFile loads path immediately; a failed read is shown in place of the body.
func NewFile(path string) *File {
	f := &File{path: filepath.Clean(path)}
	_ = f.Reload()
	return f
}

func (f *File) Path() string { return f.path }

func (f *File) Err() error { return f.err }

// Reload re-reads the file from disk.
func (f *File) Reload() error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		f.err = fmt.Errorf("read %s: %w", f.path, err)
		return f.err
	}
	f.err = nil
	f.body = string(data)
	return nil
}

func (f *File) Render(width, height int) string {
	if f.err != nil {
		return clip(wrap(f.err.Error(), width), height)
	}
	return clip(wrap(f.body, width), height)
}
