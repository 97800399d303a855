// Package scratch stores captured text in temporary files that an external
// comparison tool can open by path.
package scratch

import (
	"errors"
	"fmt"
	"os"
)

// File is a temporary file holding one captured block.
type File struct {
	path string
}

// Write creates a new temporary file in dir (the OS default when dir is empty)
// and writes text to it byte for byte. label becomes part of the file name so
// the comparison tool's header shows which side is which.
// The file is removed again if any step fails.
func Write(dir, label, text string) (f *File, err error) {
	tmp, err := os.CreateTemp(dir, "pastediff-"+label+"-*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch file: %w", err)
	}
	name := tmp.Name()

	defer func() {
		if err != nil {
			os.Remove(name)
		}
	}()

	if _, err = tmp.WriteString(text); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to write scratch file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to write scratch file: %w", err)
	}
	return &File{path: name}, nil
}

// Path returns the file's location on disk.
func (f *File) Path() string {
	return f.path
}

// Remove deletes the file. Removing a file that is already gone is not an error.
func (f *File) Remove() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove scratch file: %w", err)
	}
	return nil
}
