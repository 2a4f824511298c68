package types

// SMSConfig is published retained on "config/sms".
type SMSConfig struct {
	SMSC            string `json:"smsc,omitempty"` // default service centre, digits
	TOA             *int   `json:"toa,omitempty"`  // type of address, default 0x91
	ValidityMinutes *int   `json:"validity_minutes,omitempty"`
}

// SMSEncode is the request payload on "sms/control/encode".
type SMSEncode struct {
	SMSC string `json:"smsc,omitempty"` // overrides SMSConfig.SMSC
	To   string `json:"to"`
	Text string `json:"text"`
}

// SMSFrame is the reply to SMSEncode.
type SMSFrame struct {
	OK      bool   `json:"ok"`
	PDU     string `json:"pdu"`      // uppercase hex
	TPDULen int    `json:"tpdu_len"` // AT+CMGS argument
	Command string `json:"command"`  // "AT+CMGS=<n>\r"
	Body    []byte `json:"-"`        // hex + Ctrl-Z, ready to write
}
