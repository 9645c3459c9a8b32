package input

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenRARNonExistent(t *testing.T) {
	t.Parallel()

	if _, err := openRAR(filepath.Join(t.TempDir(), "missing.rar")); err == nil {
		t.Fatal("expected error opening nonexistent rar archive")
	}
}

func TestOpenRARNotARarFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fake.rar")
	if err := os.WriteFile(path, []byte("not a rar archive"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	arc, err := openRAR(path)
	if err != nil {
		t.Fatalf("openRAR: %v", err)
	}
	defer func() { _ = arc.Close() }()

	if _, err := arc.List(); err == nil {
		t.Fatal("expected error listing a non-rar file")
	}
}
