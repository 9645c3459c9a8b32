package compress

import (
	"bytes"
	"errors"
	"testing"
)

func TestNoneDecoder(t *testing.T) {
	t.Parallel()

	dec, err := Get(CodeNone)
	if err != nil {
		t.Fatalf("Get(CodeNone): %v", err)
	}

	out, err := dec.Decompress([]byte("hello world"), 5)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(out, []byte("hello")) {
		t.Fatalf("got %q, want %q", out, "hello")
	}
}

func TestNoneDecoderShortInput(t *testing.T) {
	t.Parallel()

	dec, err := Get(CodeNone)
	if err != nil {
		t.Fatalf("Get(CodeNone): %v", err)
	}

	_, err = dec.Decompress([]byte("hi"), 10)
	if !errors.Is(err, ErrDecompress) {
		t.Fatalf("got err %v, want wrapping ErrDecompress", err)
	}
}

func TestNoneDecoderZeroLength(t *testing.T) {
	t.Parallel()

	dec, err := Get(CodeNone)
	if err != nil {
		t.Fatalf("Get(CodeNone): %v", err)
	}

	out, err := dec.Decompress(nil, 0)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("got %d bytes, want 0", len(out))
	}
}
