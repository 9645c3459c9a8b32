package input

import (
	"fmt"
	"io"

	"github.com/bodgit/sevenzip"
)

// sevenZipArchive provides access to files in a 7z archive.
type sevenZipArchive struct {
	reader *sevenzip.ReadCloser
	path   string
}

func openSevenZip(path string) (*sevenZipArchive, error) {
	reader, err := sevenzip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open 7z archive: %w", err)
	}
	return &sevenZipArchive{reader: reader, path: path}, nil
}

func (sza *sevenZipArchive) List() ([]FileInfo, error) {
	return listMembers(wrapSevenZipMembers(sza.reader.File)), nil
}

func (sza *sevenZipArchive) Open(internalPath string) (io.ReadCloser, int64, error) {
	return openMember(wrapSevenZipMembers(sza.reader.File), sza.path, internalPath)
}

func (sza *sevenZipArchive) Close() error {
	return sza.reader.Close() //nolint:wrapcheck // close error passthrough is intentional
}

// sevenZipMember adapts *sevenzip.File to randomAccessMember.
type sevenZipMember struct{ file *sevenzip.File }

func wrapSevenZipMembers(files []*sevenzip.File) []sevenZipMember {
	members := make([]sevenZipMember, len(files))
	for i, f := range files {
		members[i] = sevenZipMember{file: f}
	}
	return members
}

func (m sevenZipMember) memberName() string { return m.file.Name }

//nolint:gosec // archive member sizes fit int64
func (m sevenZipMember) memberSize() int64 { return int64(m.file.UncompressedSize) }

func (m sevenZipMember) memberIsDir() bool { return m.file.FileInfo().IsDir() }

func (m sevenZipMember) memberOpen() (io.ReadCloser, error) { return m.file.Open() }
