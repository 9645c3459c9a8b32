package input

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func createTestZIP(t *testing.T, dir, name string, files map[string][]byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path) //nolint:gosec // test helper writes into t.TempDir()
	if err != nil {
		t.Fatalf("create zip file: %v", err)
	}
	defer func() { _ = f.Close() }()

	w := zip.NewWriter(f)
	for name, content := range files {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("create member: %v", err)
		}
		if _, err := fw.Write(content); err != nil {
			t.Fatalf("write member: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close zip writer: %v", err)
	}
	return path
}

func TestZipArchiveListAndOpen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := createTestZIP(t, dir, "image.zip", map[string][]byte{
		"firmware.bin": []byte("jffs2 image bytes"),
		"readme.txt":   []byte("not the image"),
	})

	arc, err := openZIP(path)
	if err != nil {
		t.Fatalf("openZIP: %v", err)
	}
	defer func() { _ = arc.Close() }()

	files, err := arc.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2", len(files))
	}

	r, size, err := arc.Open("firmware.bin")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = r.Close() }()

	if size != int64(len("jffs2 image bytes")) {
		t.Fatalf("got size %d", size)
	}
}

func TestZipArchiveOpenMissingMember(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := createTestZIP(t, dir, "image.zip", map[string][]byte{"a.bin": []byte("x")})

	arc, err := openZIP(path)
	if err != nil {
		t.Fatalf("openZIP: %v", err)
	}
	defer func() { _ = arc.Close() }()

	if _, _, err := arc.Open("missing.bin"); err == nil {
		t.Fatal("expected FileNotFoundError")
	}
}
