package types

// ------------------------
// Serial
// ------------------------

type Parity uint8

const (
	ParityNone Parity = iota
	ParityEven
	ParityOdd
)

func (p Parity) String() string {
	switch p {
	case ParityEven:
		return "even"
	case ParityOdd:
		return "odd"
	default:
		return "none"
	}
}

func (p Parity) MarshalJSON() ([]byte, error) { return []byte(`"` + p.String() + `"`), nil }

func (p *Parity) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case `"even"`:
		*p = ParityEven
	case `"odd"`:
		*p = ParityOdd
	default:
		*p = ParityNone
	}
	return nil
}

// ModemPort describes the board UART a modem sits on (topic "config/modem").
type ModemPort struct {
	UART   string `json:"uart,omitempty"` // "uart0" | "uart1"
	Baud   uint32 `json:"baud,omitempty"`
	TX     int    `json:"tx,omitempty"`
	RX     int    `json:"rx,omitempty"`
	Parity Parity `json:"parity,omitempty"`
	// Optional message sent once after boot.
	BootTo   string `json:"boot_to,omitempty"`
	BootText string `json:"boot_text,omitempty"`
}
