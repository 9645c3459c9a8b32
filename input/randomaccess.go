package input

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// randomAccessMember is the shape zip and 7z entries share: a name, an
// uncompressed size, and an Open. listMembers and openMember fold the
// linear scan both formats need (skip directories, case-fold match by
// name) into one place so zip.go and sevenzip.go only carry the parts
// that actually differ: the underlying library type and its field names.
type randomAccessMember interface {
	memberName() string
	memberSize() int64
	memberIsDir() bool
	memberOpen() (io.ReadCloser, error)
}

// listMembers returns FileInfo for every non-directory member.
func listMembers[M randomAccessMember](members []M) []FileInfo {
	files := make([]FileInfo, 0, len(members))
	for _, m := range members {
		if m.memberIsDir() {
			continue
		}
		files = append(files, FileInfo{Name: m.memberName(), Size: m.memberSize()})
	}
	return files
}

// openMember scans members for a case-insensitive name match and opens it.
func openMember[M randomAccessMember](members []M, archivePath, internalPath string) (io.ReadCloser, int64, error) {
	internalPath = filepath.ToSlash(internalPath)
	for _, m := range members {
		if strings.EqualFold(m.memberName(), internalPath) {
			reader, err := m.memberOpen()
			if err != nil {
				return nil, 0, fmt.Errorf("open member %q: %w", internalPath, err)
			}
			return reader, m.memberSize(), nil
		}
	}
	return nil, 0, FileNotFoundError{Archive: archivePath, InternalPath: internalPath}
}
