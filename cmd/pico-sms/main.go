//go:build rp2040 || rp2350

// pico-sms boots the bus, config and sms services, then submits the
// configured boot message once over the modem UART.
package main

import (
	"context"
	"machine"
	"time"

	"modemcode-go/bus"
	"modemcode-go/drivers/atsms"
	"modemcode-go/services/config"
	"modemcode-go/services/sms"
	"modemcode-go/types"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers"
)

var _ drivers.UART = (*uartx.UART)(nil)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("[sms] boot")

	ctx := config.WithDevice(context.Background(), "pico")
	b := bus.NewBus(4)
	config.NewConfigService(nil).Start(ctx, b.NewConnection("config"))
	sms.New(nil).Start(ctx, b.NewConnection("sms"))
	app := b.NewConnection("app")

	port, ok := modemPort(app, 2*time.Second)
	if !ok {
		println("[sms] FAIL: no config/modem")
		return
	}
	u, ok := openUART(port)
	if !ok {
		println("[sms] FAIL: unknown uart", port.UART)
		return
	}
	if port.BootTo == "" {
		println("[sms] no boot message configured")
		return
	}

	rctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	reply, err := app.RequestWait(rctx, app.NewMessage(sms.TopicEncode,
		types.SMSEncode{To: port.BootTo, Text: port.BootText}, false))
	if err != nil {
		println("[sms] FAIL: encode:", err.Error())
		return
	}
	switch p := reply.Payload.(type) {
	case types.SMSFrame:
		if err := send(u, p); err != nil {
			println("[sms] FAIL: write:", err.Error())
			return
		}
		println("[sms] sent", p.Command[:len(p.Command)-1], p.PDU)
	case types.ErrorReply:
		println("[sms] FAIL: encode:", p.Error)
	}

	for {
		time.Sleep(time.Hour)
	}
}

func modemPort(c *bus.Connection, wait time.Duration) (types.ModemPort, bool) {
	sub := c.Subscribe(bus.T("config", "modem"))
	defer c.Unsubscribe(sub)
	select {
	case m := <-sub.Channel():
		var p types.ModemPort
		if err := types.Decode(m.Payload, &p); err != nil {
			return p, false
		}
		return p, true
	case <-time.After(wait):
		return types.ModemPort{}, false
	}
}

func openUART(p types.ModemPort) (*uartx.UART, bool) {
	var hw *uartx.UART
	switch p.UART {
	case "uart0", "":
		hw = uartx.UART0
	case "uart1":
		hw = uartx.UART1
	default:
		return nil, false
	}
	// Defaults inside uartx apply if zero.
	_ = hw.Configure(uartx.UARTConfig{
		BaudRate: p.Baud,
		TX:       machine.Pin(p.TX),
		RX:       machine.Pin(p.RX),
	})
	var par uartx.UARTParity
	switch p.Parity {
	case types.ParityEven:
		par = uartx.ParityEven
	case types.ParityOdd:
		par = uartx.ParityOdd
	default:
		par = uartx.ParityNone
	}
	_ = hw.SetFormat(8, 1, par)
	return hw, true
}

// send writes the frame once; the modem's prompt and reply are not read.
func send(u drivers.UART, f types.SMSFrame) error {
	_, err := atsms.Frame{Command: []byte(f.Command), Body: f.Body}.WriteTo(u)
	return err
}
