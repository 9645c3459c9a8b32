package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nwaples/rardecode/v2"
)

// rarArchive provides access to files in a RAR archive. RAR has no central
// directory, unlike zip/7z's in-memory file table (see randomAccessMember),
// so both List and Open reopen the underlying reader and scan headers
// sequentially from the start.
type rarArchive struct {
	file *os.File
	path string
}

func openRAR(path string) (*rarArchive, error) {
	file, err := os.Open(path) //nolint:gosec // user-provided path is expected
	if err != nil {
		return nil, fmt.Errorf("open rar archive: %w", err)
	}
	return &rarArchive{file: file, path: path}, nil
}

func (ra *rarArchive) List() ([]FileInfo, error) {
	if _, err := ra.file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek rar archive: %w", err)
	}

	reader, err := rardecode.NewReader(ra.file)
	if err != nil {
		return nil, fmt.Errorf("create rar reader: %w", err)
	}

	var files []FileInfo //nolint:prealloc // rar member count unknown until full scan
	for {
		header, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read rar header: %w", err)
		}
		if header.IsDir {
			continue
		}
		files = append(files, FileInfo{Name: header.Name, Size: header.UnPackedSize})
	}
	return files, nil
}

func (ra *rarArchive) Open(internalPath string) (io.ReadCloser, int64, error) {
	internalPath = filepath.ToSlash(internalPath)

	if _, err := ra.file.Seek(0, io.SeekStart); err != nil {
		return nil, 0, fmt.Errorf("seek rar archive: %w", err)
	}

	reader, err := rardecode.NewReader(ra.file)
	if err != nil {
		return nil, 0, fmt.Errorf("create rar reader: %w", err)
	}

	for {
		header, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read rar header: %w", err)
		}
		if strings.EqualFold(header.Name, internalPath) {
			return &rarFileReader{reader: reader}, header.UnPackedSize, nil
		}
	}

	return nil, 0, FileNotFoundError{Archive: ra.path, InternalPath: internalPath}
}

func (ra *rarArchive) Close() error {
	return ra.file.Close() //nolint:wrapcheck // close error passthrough is intentional
}

// rarFileReader wraps a rardecode reader to provide io.ReadCloser.
type rarFileReader struct {
	reader *rardecode.Reader
}

func (rfr *rarFileReader) Read(p []byte) (int, error) {
	return rfr.reader.Read(p) //nolint:wrapcheck // read error passthrough is intentional
}

func (*rarFileReader) Close() error {
	return nil
}
