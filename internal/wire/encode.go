package wire

import "strconv"

// EncodeInt writes the decimal text form of v into buf.
//
// Returns the number of bytes written, or ErrBufferTooSmall (with buf
// untouched) when the full text does not fit.
func EncodeInt(buf []byte, v int64) (int, error) {
	text := strconv.FormatInt(v, 10)
	return EncodeString(buf, text)
}

// EncodeString writes s into buf, all-or-nothing.
//
// Returns the number of bytes written, or ErrBufferTooSmall (with buf
// untouched) when s does not fit.
func EncodeString(buf []byte, s string) (int, error) {
	if len(s) > len(buf) {
		return 0, ErrBufferTooSmall
	}
	return copy(buf, s), nil
}

// EncodeDeviceLine writes a device lookup line into buf:
//
//	<index>,<category name>,<device name>\n
//
// The required length is computed before anything is written; a line that
// exceeds the buffer capacity returns ErrBufferTooSmall with buf untouched,
// never a partial line.
func EncodeDeviceLine(buf []byte, index int, categoryName, deviceName string) (int, error) {
	line := make([]byte, 0, lineLen(index, categoryName, deviceName))
	line = strconv.AppendInt(line, int64(index), 10)
	line = append(line, ',')
	line = append(line, categoryName...)
	line = append(line, ',')
	line = append(line, deviceName...)
	line = append(line, '\n')

	if len(line) > len(buf) {
		return 0, ErrBufferTooSmall
	}
	return copy(buf, line), nil
}

// lineLen is the exact byte length of a device lookup line.
func lineLen(index int, categoryName, deviceName string) int {
	// digits + two commas + newline
	n := len(strconv.Itoa(index)) + len(categoryName) + len(deviceName) + 3
	return n
}
