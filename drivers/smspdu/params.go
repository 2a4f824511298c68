package smspdu

import "time"

// First octet and field constants.
const (
	FirstOctetSubmit = 0x11 // SMS-SUBMIT, relative validity period present
	TOAInternational = 0x91 // international number, ISDN plan
	TOAUnknown       = 0x81 // unknown/national number, ISDN plan
	PIDDefault       = 0x00
	DCSDefault       = 0x00 // default 7-bit alphabet
	VP10Days         = 0xB0
)

// Params holds the fixed bytes written around the variable fields.
// Use DefaultParams and override what the network needs.
type Params struct {
	FirstOctet        byte
	MessageRef        byte
	SMSCTypeOfAddress byte
	TypeOfAddress     byte // destination
	ProtocolID        byte
	DataCoding        byte
	Validity          byte // relative format, see ValidityPeriod
}

// DefaultParams returns SMS-SUBMIT, international addressing, default
// alphabet and a 10-day validity period.
func DefaultParams() Params {
	return Params{
		FirstOctet:        FirstOctetSubmit,
		MessageRef:        0,
		SMSCTypeOfAddress: TOAInternational,
		TypeOfAddress:     TOAInternational,
		ProtocolID:        PIDDefault,
		DataCoding:        DCSDefault,
		Validity:          VP10Days,
	}
}

// ParamsFor returns DefaultParams with the given validity and type of
// address applied to both the SMSC and destination fields.
func ParamsFor(validity time.Duration, toa byte) Params {
	p := DefaultParams()
	p.Validity = ValidityPeriod(validity)
	p.SMSCTypeOfAddress = toa
	p.TypeOfAddress = toa
	return p
}
