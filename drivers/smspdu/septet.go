package smspdu

import (
	"modemcode-go/errcode"
	"modemcode-go/x/mathx"
)

// PackedLen is the number of bytes n septets occupy once packed.
func PackedLen(n int) int { return mathx.CeilDiv(7*n, 8) }

// PackSeptets packs text, one septet per byte (masked to 7 bits), into dst
// least-significant bit first. Returns the number of bytes written, which is
// always PackedLen(len(text)).
func PackSeptets(dst []byte, text string) (int, error) {
	n := len(text)
	if n > MaxSeptets {
		return 0, errcode.New(errcode.Length, opSeptets, "text exceeds one PDU")
	}
	if PackedLen(n) > len(dst) {
		return 0, errcode.New(errcode.Capacity, opSeptets, "")
	}

	// p is the bit phase: septet i has already given away p-1 low bits.
	j, p, i := 0, 1, 0
	for ; i < n-1; i++ {
		cur := text[i] & 0x7F
		next := text[i+1] & 0x7F
		dst[j] = cur>>(p-1) | next<<(8-p)
		j++
		p++
		if p == 8 {
			// Eight septets fill seven bytes exactly; septet i+1 is spent.
			p = 1
			i++
		}
	}
	if i == n-1 {
		dst[j] = (text[i] & 0x7F) >> (p - 1)
		j++
	}
	return j, nil
}
