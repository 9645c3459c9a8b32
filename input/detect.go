package input

import (
	"fmt"
	"path/filepath"
	"strings"
)

// imageExtensions are file extensions that unambiguously indicate a raw
// flash/firmware dump, identifiable without reading the file's contents.
var imageExtensions = map[string]bool{
	".bin":   true,
	".img":   true,
	".jffs2": true,
	".fw":    true,
	".rom":   true,
	".dump":  true,
	".raw":   true,
}

// isImageFile checks if a filename has a recognized firmware-image extension.
func isImageFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return imageExtensions[ext]
}

// detectImageFile picks the archive member most likely to hold the JFFS2
// image: the first member with a recognized firmware extension, or, absent
// one, the single largest member in the archive.
func detectImageFile(arc Archive) (string, error) {
	files, err := arc.List()
	if err != nil {
		return "", fmt.Errorf("list archive files: %w", err)
	}
	if len(files) == 0 {
		return "", NoImageFilesError{Archive: "archive"}
	}

	for _, file := range files {
		if isImageFile(file.Name) {
			return file.Name, nil
		}
	}

	largest := files[0]
	for _, file := range files[1:] {
		if file.Size > largest.Size {
			largest = file
		}
	}
	return largest.Name, nil
}
