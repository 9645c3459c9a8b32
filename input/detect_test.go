package input

import (
	"io"
	"testing"
)

func TestIsImageFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"firmware.bin", true},
		{"FIRMWARE.BIN", true},
		{"rootfs.img", true},
		{"flash.jffs2", true},
		{"update.fw", true},
		{"device.rom", true},
		{"nand.dump", true},
		{"readme.txt", false},
		{"noextension", false},
	}

	for _, tt := range tests {
		if got := isImageFile(tt.name); got != tt.want {
			t.Errorf("isImageFile(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// listOnlyArchive implements Archive with a fixed file list; detectImageFile
// never calls Open, only List.
type listOnlyArchive struct {
	files []FileInfo
}

func (a *listOnlyArchive) List() ([]FileInfo, error) { return a.files, nil }

func (a *listOnlyArchive) Open(string) (io.ReadCloser, int64, error) {
	panic("detectImageFile should not call Open")
}

func (a *listOnlyArchive) Close() error { return nil }

func TestDetectImageFilePrefersRecognizedExtension(t *testing.T) {
	t.Parallel()

	arc := &listOnlyArchive{files: []FileInfo{
		{Name: "readme.txt", Size: 9999},
		{Name: "rootfs.bin", Size: 10},
	}}

	name, err := detectImageFile(arc)
	if err != nil {
		t.Fatalf("detectImageFile: %v", err)
	}
	if name != "rootfs.bin" {
		t.Fatalf("got %q, want rootfs.bin", name)
	}
}

func TestDetectImageFileFallsBackToLargest(t *testing.T) {
	t.Parallel()

	arc := &listOnlyArchive{files: []FileInfo{
		{Name: "small.dat", Size: 10},
		{Name: "big.dat", Size: 10000},
		{Name: "medium.dat", Size: 500},
	}}

	name, err := detectImageFile(arc)
	if err != nil {
		t.Fatalf("detectImageFile: %v", err)
	}
	if name != "big.dat" {
		t.Fatalf("got %q, want big.dat", name)
	}
}

func TestDetectImageFileEmptyArchive(t *testing.T) {
	t.Parallel()

	arc := &listOnlyArchive{files: nil}
	if _, err := detectImageFile(arc); err == nil {
		t.Fatal("expected NoImageFilesError")
	}
}
