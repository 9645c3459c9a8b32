package input

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jffs2team/jffs2extract/internal/logx"
	"github.com/jffs2team/jffs2extract/pkg/fileio"
)

// Open resolves path to the raw JFFS2 image bytes it names. If path has a
// recognized archive extension (.zip/.7z/.rar), the best-matching member is
// auto-detected and read out of the container; otherwise path is read
// directly, transparently unwrapping a .gz layer.
func Open(path string, log *logx.Logger) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !isArchiveExtension(ext) {
		f, err := fileio.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("open image file: %w", err)
		}
		defer func() { _ = f.Close() }()

		data, err := fileio.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("read image file: %w", err)
		}
		return data, nil
	}

	arc, err := openArchive(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = arc.Close() }()

	member, err := detectImageFile(arc)
	if err != nil {
		return nil, err
	}
	log.Infof("using %q as image within %q", member, path)

	data, err := readAll(arc, member)
	if err != nil {
		return nil, err
	}
	return data, nil
}
