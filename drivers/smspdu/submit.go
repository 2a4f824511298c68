package smspdu

import "modemcode-go/errcode"

// Encoder assembles SMS-SUBMIT PDUs with a fixed set of Params.
// The zero value writes all-zero constants; start from DefaultParams.
type Encoder struct {
	Params Params
}

// NewEncoder returns an Encoder using p.
func NewEncoder(p Params) Encoder { return Encoder{Params: p} }

// Encode assembles a PDU with DefaultParams. See Encoder.Encode.
func Encode(dst []byte, smsc, dest, text string) (int, error) {
	return Encoder{Params: DefaultParams()}.Encode(dst, smsc, dest, text)
}

// EncodedLen is the exact number of bytes Encode writes for these inputs.
// It does not validate them.
func EncodedLen(smsc, dest, text string) int {
	n := 1 // SMSC length
	if smsc != "" {
		n += 1 + AddressLen(len(smsc))
	}
	n += 2                         // first octet, message reference
	n += 2 + AddressLen(len(dest)) // length, TOA, digits
	n += 3                         // PID, DCS, VP
	n += 1 + PackedLen(len(text))  // UDL, UD
	return n
}

// Encode writes the SMS-SUBMIT PDU for dest and text into dst and returns its
// length. smsc == "" leaves the service centre to the modem (SMSC length 0).
// Numbers are digit strings without '+'.
//
// Layout:
//
//	[smsc len][smsc toa][smsc digits] fo mr [dest digit count][toa][dest digits] pid dcs vp udl ud
//
// The SMSC length counts bytes (TOA included) while the destination length
// counts digits.
func (e Encoder) Encode(dst []byte, smsc, dest, text string) (int, error) {
	if len(smsc) > MaxDigits {
		return 0, errcode.New(errcode.Format, opSMSC, "number too long")
	}
	if len(dest) > MaxDigits {
		return 0, errcode.New(errcode.Format, opDestination, "number too long")
	}
	p := e.Params
	w := writer{dst: dst}

	if smsc == "" {
		if err := w.put(opSMSC, 0); err != nil {
			return 0, err
		}
	} else {
		if err := w.put(opSMSC, byte(1+AddressLen(len(smsc))), p.SMSCTypeOfAddress); err != nil {
			return 0, err
		}
		if err := w.address(opSMSC, smsc); err != nil {
			return 0, err
		}
	}

	if err := w.put(opHeader, p.FirstOctet, p.MessageRef); err != nil {
		return 0, err
	}

	if err := w.put(opDestination, byte(len(dest)), p.TypeOfAddress); err != nil {
		return 0, err
	}
	if err := w.address(opDestination, dest); err != nil {
		return 0, err
	}

	if err := w.put(opHeader, p.ProtocolID, p.DataCoding, p.Validity); err != nil {
		return 0, err
	}

	if len(text) > MaxSeptets {
		return 0, errcode.New(errcode.Length, opUserData, "text exceeds one PDU")
	}
	if err := w.put(opUserData, byte(len(text))); err != nil {
		return 0, err
	}
	n, err := PackSeptets(w.dst[w.n:], text)
	if err != nil {
		return 0, errcode.Wrap(opUserData, err)
	}
	w.n += n
	return w.n, nil
}

// SubmitLen returns the length AT+CMGS expects: the PDU minus the SMSC
// length byte and the SMSC field it announces.
func SubmitLen(pdu []byte) (int, error) {
	if len(pdu) == 0 {
		return 0, errcode.New(errcode.Format, opSubmitLen, "empty pdu")
	}
	n := len(pdu) - 1 - int(pdu[0])
	if n <= 0 {
		return 0, errcode.New(errcode.Format, opSubmitLen, "smsc field overruns pdu")
	}
	return n, nil
}

// writer is a bounds-checked cursor over a caller buffer.
type writer struct {
	dst []byte
	n   int
}

func (w *writer) put(op string, b ...byte) error {
	if len(b) > len(w.dst)-w.n {
		return errcode.New(errcode.Capacity, op, "")
	}
	w.n += copy(w.dst[w.n:], b)
	return nil
}

func (w *writer) address(op, digits string) error {
	n, err := EncodeAddress(w.dst[w.n:], digits)
	if err != nil {
		return errcode.Wrap(op, err)
	}
	w.n += n
	return nil
}
