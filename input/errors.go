package input

import "fmt"

// FormatError indicates an unsupported or invalid archive format.
type FormatError struct {
	Format string
}

func (e FormatError) Error() string {
	return fmt.Sprintf("unsupported archive format: %s", e.Format)
}

// FileNotFoundError indicates a file was not found in the archive.
type FileNotFoundError struct {
	Archive      string
	InternalPath string
}

func (e FileNotFoundError) Error() string {
	return fmt.Sprintf("file %q not found in archive %q", e.InternalPath, e.Archive)
}

// NoImageFilesError indicates an archive contained no candidate firmware
// image and no member at all to fall back on.
type NoImageFilesError struct {
	Archive string
}

func (e NoImageFilesError) Error() string {
	return fmt.Sprintf("no candidate image found in archive %q", e.Archive)
}
