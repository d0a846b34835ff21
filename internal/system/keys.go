package system

import "encoding/binary"

// Linux input-event-codes.h
const (
	KeyF4 uint16 = 62
	KeyF5 uint16 = 63
)

const evKey = 0x01

// KeyBindings maps key codes to the action run when the key goes down.
type KeyBindings map[uint16]func()

// pressedKeys extracts key-down codes from a buffer of input_event records.
// An input_event is a timeval of tvSize bytes, then u16 type, u16 code and
// s32 value. Trailing partial records are ignored.
func pressedKeys(buf []byte, tvSize int) []uint16 {
	eventSize := tvSize + 2 + 2 + 4
	var keys []uint16
	for off := 0; off+eventSize <= len(buf); off += eventSize {
		rec := buf[off : off+eventSize]
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
		if typ == evKey && value == 1 {
			keys = append(keys, code)
		}
	}
	return keys
}
