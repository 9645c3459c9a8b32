package binary

import (
	"bytes"
	"testing"
)

// FuzzFindBytes fuzzes the byte pattern search function the scanner relies
// on to locate node magic candidates.
func FuzzFindBytes(f *testing.F) {
	f.Add([]byte("hello world"), []byte("world"))
	f.Add([]byte("hello world"), []byte("xyz"))
	f.Add([]byte("aaa"), []byte("a"))
	f.Add([]byte{}, []byte{})
	f.Add([]byte("test"), []byte{})
	f.Add([]byte{}, []byte("test"))
	f.Add([]byte{0x00, 0x01, 0x02}, []byte{0x01, 0x02})
	f.Add([]byte("abcabc"), []byte("abc"))

	f.Fuzz(func(t *testing.T, haystack, needle []byte) {
		idx := FindBytes(haystack, needle)

		if idx >= 0 {
			if idx+len(needle) > len(haystack) {
				t.Errorf("FindBytes returned invalid index %d for haystack len %d, needle len %d",
					idx, len(haystack), len(needle))
				return
			}
			if !bytes.Equal(haystack[idx:idx+len(needle)], needle) {
				t.Errorf("FindBytes returned index %d but needle not found there", idx)
			}
		}

		if len(needle) > len(haystack) && idx != -1 {
			t.Error("FindBytes should return -1 when needle is longer than haystack")
		}
	})
}

// FuzzBytesEqual fuzzes byte slice comparison.
func FuzzBytesEqual(f *testing.F) {
	f.Add([]byte("test"), []byte("test"))
	f.Add([]byte("test"), []byte("tests"))
	f.Add([]byte{}, []byte{})
	f.Add([]byte{0x00}, []byte{0x00})

	f.Fuzz(func(t *testing.T, first, second []byte) {
		result := BytesEqual(first, second)

		expected := bytes.Equal(first, second)
		if result != expected {
			t.Errorf("BytesEqual(%v, %v) = %v, want %v", first, second, result, expected)
		}
	})
}
