package smspdu

import (
	"modemcode-go/errcode"
	"modemcode-go/x/mathx"
)

const padNibble = 0xF

// AddressLen is the number of semi-octet bytes needed for n digits.
func AddressLen(n int) int { return mathx.CeilDiv(n, 2) }

// EncodeAddress packs a decimal digit string into dst as swapped semi-octets:
// digit 2i goes in the low nibble of byte i, digit 2i+1 in the high nibble,
// and an odd final digit is padded with 0xF. A leading '+' must already be
// stripped. Returns the number of bytes written.
func EncodeAddress(dst []byte, digits string) (int, error) {
	for i := 0; i < len(digits); i++ {
		if c := digits[i]; c < '0' || c > '9' {
			return 0, errcode.New(errcode.Format, opAddress, "non-digit in number")
		}
	}
	n := AddressLen(len(digits))
	if n > len(dst) {
		return 0, errcode.New(errcode.Capacity, opAddress, "")
	}
	for i := 0; i < len(digits); i += 2 {
		hi := byte(padNibble)
		if i+1 < len(digits) {
			hi = digits[i+1] - '0'
		}
		dst[i/2] = hi<<4 | (digits[i] - '0')
	}
	return n, nil
}
