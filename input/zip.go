package input

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

func init() {
	// klauspost/compress's flate is a drop-in, faster decompressor than
	// stdlib's; bodgit/sevenzip already pulls it in transitively, so the
	// zip reader is pointed at it too instead of archive/zip's built-in
	// compress/flate backend.
	zip.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
		return flate.NewReader(r)
	})
}

// zipArchive provides access to files in a ZIP archive.
type zipArchive struct {
	reader *zip.ReadCloser
	path   string
}

func openZIP(path string) (*zipArchive, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open zip archive: %w", err)
	}
	return &zipArchive{reader: reader, path: path}, nil
}

func (za *zipArchive) List() ([]FileInfo, error) {
	return listMembers(wrapZipMembers(za.reader.File)), nil
}

func (za *zipArchive) Open(internalPath string) (io.ReadCloser, int64, error) {
	return openMember(wrapZipMembers(za.reader.File), za.path, internalPath)
}

func (za *zipArchive) Close() error {
	return za.reader.Close() //nolint:wrapcheck // close error passthrough is intentional
}

// zipMember adapts *zip.File to randomAccessMember.
type zipMember struct{ file *zip.File }

func wrapZipMembers(files []*zip.File) []zipMember {
	members := make([]zipMember, len(files))
	for i, f := range files {
		members[i] = zipMember{file: f}
	}
	return members
}

func (m zipMember) memberName() string { return m.file.Name }

//nolint:gosec // archive member sizes fit int64
func (m zipMember) memberSize() int64 { return int64(m.file.UncompressedSize64) }

func (m zipMember) memberIsDir() bool { return m.file.FileInfo().IsDir() }

func (m zipMember) memberOpen() (io.ReadCloser, error) { return m.file.Open() }
