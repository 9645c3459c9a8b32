// Package fileio provides small filesystem helpers shared by the input and
// command-line layers: transparent gzip-wrapped reads and destination
// existence checks.
package fileio

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileReader is a closeable byte source.
type FileReader interface {
	io.Reader
	io.Closer
}

// multiCloser closes several closers in sequence, returning the first error.
type multiCloser struct {
	closers []io.Closer
	reader  io.Reader
}

func (mc *multiCloser) Read(p []byte) (n int, err error) {
	return mc.reader.Read(p)
}

func (mc *multiCloser) Close() error {
	var err error
	for _, c := range mc.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// OpenFile opens path for reading, transparently unwrapping a .gz layer so
// the raw image underneath it can be scanned without a separate decompress
// step.
func OpenFile(path string) (FileReader, error) {
	file, err := os.Open(path) //nolint:gosec // user-provided path is expected
	if err != nil {
		return nil, fmt.Errorf("open file %s: %w", path, err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".gz" {
		gr, err := gzip.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		return &multiCloser{closers: []io.Closer{gr, file}, reader: gr}, nil
	}

	return file, nil
}

// ReadAll reads everything from r. Thin wrapper kept so callers depend on
// fileio rather than io directly, matching how the rest of the pack isolates
// its file-reading surface.
func ReadAll(r io.Reader) ([]byte, error) {
	return io.ReadAll(r) //nolint:wrapcheck // passthrough is intentional
}

// CheckExists returns an error if path does not exist.
func CheckExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file/folder not found: %s", path)
	}
	return nil
}

// CheckNotExists returns an error if path already exists.
func CheckNotExists(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("file/folder exists: %s", path)
	}
	return nil
}
