package main

import (
	"context"
	"os"
	"time"

	"modemcode-go/bus"
	"modemcode-go/services/config"
	"modemcode-go/services/sms"
	"modemcode-go/types"
	"modemcode-go/x/logx"

	"github.com/go-kit/log/level"
)

// main boots the services with the host config and encodes one test message.
func main() {
	logger, err := logx.New(os.Stderr, "info")
	if err != nil {
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(config.WithDevice(context.Background(), "host"))
	defer cancel()

	b := bus.NewBus(8)
	config.NewConfigService(logger).Start(ctx, b.NewConnection("config"))
	sms.New(logger).Start(ctx, b.NewConnection("sms"))

	// Wait for the retained sms config so the self-test uses it.
	app := b.NewConnection("main")
	cfgSub := app.Subscribe(sms.TopicConfig)
	select {
	case <-cfgSub.Channel():
	case <-time.After(time.Second):
		level.Warn(logger).Log("msg", "no sms config, using defaults")
	}
	app.Unsubscribe(cfgSub)

	rctx, rcancel := context.WithTimeout(ctx, time.Second)
	defer rcancel()
	reply, err := app.RequestWait(rctx, app.NewMessage(sms.TopicEncode,
		types.SMSEncode{To: "46708251358", Text: "hellohello"}, false))
	if err != nil {
		level.Error(logger).Log("msg", "self-test failed", "err", err)
		os.Exit(1)
	}
	switch p := reply.Payload.(type) {
	case types.SMSFrame:
		level.Info(logger).Log("msg", "self-test", "command", p.Command[:len(p.Command)-1], "pdu", p.PDU)
	case types.ErrorReply:
		level.Error(logger).Log("msg", "self-test failed", "err", p.Error)
		os.Exit(1)
	}
}
