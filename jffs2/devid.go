package jffs2

import "github.com/jffs2team/jffs2extract/internal/binary"

// DeviceID is a decoded major/minor device number pair, used for CHR and
// BLK inode materialization.
type DeviceID struct {
	Major uint32
	Minor uint32
	OK    bool
}

// decodeDeviceID decodes a CHR/BLK inode's data payload into a device id,
// under the same byte order as the rest of the current scan pass. Per the
// on-disk dsize it is either a 16-bit "old id" or a 32-bit "new id"; any
// other size yields no device (OK false), and the caller must not create a
// node for it.
func decodeDeviceID(data []byte, order binary.Order) DeviceID {
	switch len(data) {
	case 4:
		id := binary.Uint32(order, data)
		return DeviceID{
			Major: (id & 0xFFF00) >> 8,
			Minor: (id & 0xFF) | ((id >> 12) & 0xFFF00),
			OK:    true,
		}
	case 2:
		id := uint32(binary.Uint16(order, data))
		return DeviceID{
			Major: (id >> 8) & 0xFF,
			Minor: id & 0xFF,
			OK:    true,
		}
	default:
		return DeviceID{}
	}
}
