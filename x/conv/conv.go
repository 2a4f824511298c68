// Package conv renders numbers and bytes as ASCII into caller buffers.
// No allocations; no fmt/strconv/encoding/hex dependency so it stays small on MCU builds.
package conv

const hexd = "0123456789ABCDEF"

// HexLen is the number of ASCII bytes Hex writes for n source bytes.
func HexLen(n int) int { return 2 * n }

// Hex writes src as uppercase hex (two digits per byte, high nibble first)
// into dst and returns the bytes written, or -1 if dst is too small.
func Hex(dst, src []byte) int {
	if len(dst) < HexLen(len(src)) {
		return -1
	}
	for i, b := range src {
		dst[2*i] = hexd[b>>4]
		dst[2*i+1] = hexd[b&0xF]
	}
	return HexLen(len(src))
}

// Utoa writes the base-10 representation of n into the tail of buf and
// returns the used slice. buf should be length >= 20 for uint64.
func Utoa(buf []byte, n uint64) []byte {
	if len(buf) == 0 {
		return buf[:0]
	}
	i := len(buf)
	if n == 0 {
		i--
		buf[i] = '0'
		return buf[i:]
	}
	for n > 0 && i > 0 {
		i--
		buf[i] = byte('0' + (n % 10))
		n /= 10
	}
	return buf[i:]
}
