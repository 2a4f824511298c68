// Package atsms frames an SMS-SUBMIT PDU for a modem's AT command channel in
// PDU mode:
//
//	AT+CMGF=0\r
//	AT+CMGS=<tpdu length>\r
//	<PDU as uppercase hex><Ctrl-Z>
//
// It only produces bytes. Waiting for the "> " prompt, reading +CMGS/ERROR
// replies and retrying belong to whatever drives the port.
package atsms

import (
	"io"

	"modemcode-go/drivers/smspdu"
	"modemcode-go/errcode"
	"modemcode-go/x/conv"
)

const (
	// CmdPDUMode selects PDU mode; send it once per session before submitting.
	CmdPDUMode = "AT+CMGF=0\r"
	// CtrlZ terminates the PDU body.
	CtrlZ = 0x1A

	cmdSubmit = "AT+CMGS="
	opRender  = "render"
)

// Frame is one rendered submission. Command and Body alias the buffer passed
// to Render.
type Frame struct {
	Command []byte // AT+CMGS=<n>\r
	Body    []byte // hex PDU + Ctrl-Z
	TPDULen int
}

// FrameLen is a buffer size that always fits Render output for a PDU of
// pduLen bytes.
func FrameLen(pduLen int) int {
	return len(cmdSubmit) + decLen(pduLen) + 1 + conv.HexLen(pduLen) + 1
}

// Render writes the AT+CMGS command line and the hex body for pdu into dst.
func Render(dst, pdu []byte) (Frame, error) {
	tpdu, err := smspdu.SubmitLen(pdu)
	if err != nil {
		return Frame{}, errcode.Wrap(opRender, err)
	}
	var num [20]byte
	digits := conv.Utoa(num[:], uint64(tpdu))

	cmdLen := len(cmdSubmit) + len(digits) + 1
	if cmdLen+conv.HexLen(len(pdu))+1 > len(dst) {
		return Frame{}, errcode.New(errcode.Capacity, opRender, "")
	}
	i := copy(dst, cmdSubmit)
	i += copy(dst[i:], digits)
	dst[i] = '\r'
	i++
	i += conv.Hex(dst[i:], pdu)
	dst[i] = CtrlZ
	i++
	return Frame{Command: dst[:cmdLen], Body: dst[cmdLen:i], TPDULen: tpdu}, nil
}

// WriteTo writes the PDU-mode selector, the command line and the body to w
// in that order. It never reads from w.
func (f Frame) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, p := range [][]byte{[]byte(CmdPDUMode), f.Command, f.Body} {
		n, err := w.Write(p)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// HexString returns the body without the trailing Ctrl-Z.
func (f Frame) HexString() string {
	if len(f.Body) == 0 {
		return ""
	}
	return string(f.Body[:len(f.Body)-1])
}

func decLen(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
