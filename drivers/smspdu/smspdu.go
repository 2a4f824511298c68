// Package smspdu encodes SMS-SUBMIT Protocol Data Units for cellular modems
// running in PDU mode (AT+CMGF=0). Only the default 7-bit alphabet and
// single-part messages are handled.
//
//	var buf [smspdu.MaxLen]byte
//	n, err := smspdu.Encode(buf[:], "", "46708251358", "hellohello")
//	// buf[:n] is the PDU; smspdu.SubmitLen(buf[:n]) is the AT+CMGS length.
//
// Every function writes into a caller-owned buffer, checks capacity before
// each write and keeps no state between calls, so concurrent use with
// distinct buffers needs no locking. On error the buffer contents are
// undefined.
//
// Errors carry an errcode.Code: errcode.Capacity (buffer too small),
// errcode.Format (non-digit in a number, malformed PDU) or errcode.Length
// (text longer than MaxSeptets).
package smspdu

// Limits.
const (
	// MaxDigits is the longest address (TS 23.040 §9.1.2.5).
	MaxDigits = 20
	// MaxSeptets is the 7-bit payload of one PDU.
	MaxSeptets = 160
	// MaxLen fits any PDU Encode accepts: a full SMSC and destination
	// (2+10 each), six header bytes and 140 bytes of packed text.
	MaxLen = 2 + MaxDigits/2 + 2 + 2 + MaxDigits/2 + 3 + 1 + (7*MaxSeptets+7)/8
)

// Stage names used as errcode.E.Op.
const (
	opAddress     = "address"
	opSeptets     = "septets"
	opSMSC        = "smsc"
	opDestination = "destination"
	opHeader      = "header"
	opUserData    = "user_data"
	opSubmitLen   = "submit_len"
)
