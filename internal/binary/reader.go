// Package binary provides the byte-level primitives jffs2 scans an image
// with: magic-number search and endian-aware fixed-field decoding.
package binary

import "encoding/binary"

// BytesEqual compares two byte slices for equality.
func BytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// FindBytes searches for needle in haystack and returns the offset, or -1 if
// not found. The scanner uses this to locate the next node magic candidate.
func FindBytes(haystack, needle []byte) int {
	if len(needle) > len(haystack) {
		return -1
	}
	for i := 0; i <= len(haystack)-len(needle); i++ {
		if BytesEqual(haystack[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

// Order is the subset of binary.ByteOrder used by fixed-layout struct
// decoding. A single Order is chosen once per scan pass; callers never
// mutate a global byte-order setting.
type Order = binary.ByteOrder

// Uint16 decodes a 2-byte field from buf under the given byte order.
func Uint16(order Order, buf []byte) uint16 {
	return order.Uint16(buf)
}

// Uint32 decodes a 4-byte field from buf under the given byte order.
func Uint32(order Order, buf []byte) uint32 {
	return order.Uint32(buf)
}
