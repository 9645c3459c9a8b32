// Package mtdcrc computes the CRC-32 variant used by Linux MTD and JFFS2.
//
// It is built directly on the standard library's hash/crc32 IEEE table, the
// same way the ROM checksums in this lineage reach for crc32.ChecksumIEEE
// rather than pulling in a CRC library. Linux's lib/crc32.c computes MTD/
// JFFS2 checksums as crc32(0, buf, len): the raw reflected CRC-32 LFSR
// register seeded at zero, with no pre-complement and no post-complement.
// That is distinct from "plain" CRC-32 (crc32.ChecksumIEEE), which seeds the
// register at 0xFFFFFFFF and XORs the result with 0xFFFFFFFF on the way out;
// both give 0 for empty input but differ on any other input. crc32.Update
// complements its running value on the way in and on the way out, so
// crc32.Update(0, ...) is the same as crc32.ChecksumIEEE; passing
// 0xFFFFFFFF and complementing the result runs the register from zero with
// no complement at all.
package mtdcrc

import "hash/crc32"

// Checksum computes the MTD CRC-32 of b: the raw IEEE-polynomial CRC-32
// register update starting from zero, with no seed complement and no
// output complement.
func Checksum(b []byte) uint32 {
	return ^crc32.Update(0xFFFFFFFF, crc32.IEEETable, b)
}

// Verify reports whether b's MTD CRC-32 matches want.
func Verify(b []byte, want uint32) bool {
	return Checksum(b) == want
}
