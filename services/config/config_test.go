package config

import (
	"bytes"
	"context"
	"testing"
	"time"

	"modemcode-go/bus"
	"modemcode-go/errcode"
	"modemcode-go/types"
	"modemcode-go/x/logx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withLookup(t *testing.T, fn func(string) ([]byte, bool)) {
	t.Helper()
	old := EmbeddedConfigLookup
	EmbeddedConfigLookup = fn
	t.Cleanup(func() { EmbeddedConfigLookup = old })
}

func TestConfig_PublishEmbedded_RetainedPerKey(t *testing.T) {
	withLookup(t, func(device string) ([]byte, bool) {
		if device != "pico" {
			return nil, false
		}
		return []byte(`{
			"mode": "dev",
			"debug": true,
			"sms": {"smsc": "4477"}
		}`), true
	})

	b := bus.NewBus(16)
	conn := b.NewConnection("test-config")
	svc := NewConfigService(nil)
	svc.Start(WithDevice(context.Background(), "pico"), conn)

	// Subscribe after start; retained messages are replayed.
	sub := conn.Subscribe(bus.T(configPrefix, bus.Multi))

	got := map[string]any{}
	deadline := time.After(600 * time.Millisecond)
	for len(got) < 3 {
		select {
		case m := <-sub.Channel():
			require.Len(t, m.Topic, 2)
			assert.Equal(t, configPrefix, m.Topic[0])
			key, ok := m.Topic[1].(string)
			require.True(t, ok, "topic[1] type %T", m.Topic[1])
			assert.True(t, m.Retained)
			got[key] = m.Payload
		case <-deadline:
			t.Fatalf("expected 3 retained messages, got %d (%v)", len(got), got)
		}
	}

	assert.Equal(t, "dev", got["mode"])
	assert.Equal(t, true, got["debug"])

	var sms types.SMSConfig
	require.NoError(t, types.Decode(got["sms"], &sms))
	assert.Equal(t, "4477", sms.SMSC)
}

func TestConfig_DefaultDevicesDecode(t *testing.T) {
	for _, device := range []string{"pico", "host"} {
		b := bus.NewBus(8)
		conn := b.NewConnection("test-" + device)
		svc := NewConfigService(nil)
		require.NoError(t, svc.publishConfig(WithDevice(context.Background(), device), conn), device)

		sub := conn.Subscribe(bus.T(configPrefix, "sms"))
		select {
		case m := <-sub.Channel():
			var cfg types.SMSConfig
			require.NoError(t, types.Decode(m.Payload, &cfg), device)
			require.NotNil(t, cfg.TOA, device)
			assert.Equal(t, 0x91, *cfg.TOA, device)
			require.NotNil(t, cfg.ValidityMinutes, device)
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("%s: no retained config/sms", device)
		}

	}
}

func TestConfig_ModemPortOnlyOnBoards(t *testing.T) {
	b := bus.NewBus(8)
	conn := b.NewConnection("test-modem")
	svc := NewConfigService(nil)

	require.NoError(t, svc.publishConfig(WithDevice(context.Background(), "pico"), conn))
	sub := conn.Subscribe(bus.T(configPrefix, "modem"))
	select {
	case m := <-sub.Channel():
		var port types.ModemPort
		require.NoError(t, types.Decode(m.Payload, &port))
		assert.Equal(t, "uart0", port.UART)
		assert.Equal(t, uint32(115200), port.Baud)
		assert.NotEmpty(t, port.BootTo)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("pico: no retained config/modem")
	}

	b = bus.NewBus(8)
	conn = b.NewConnection("test-modem-host")
	require.NoError(t, svc.publishConfig(WithDevice(context.Background(), "host"), conn))
	sub = conn.Subscribe(bus.T(configPrefix, "modem"))
	select {
	case m := <-sub.Channel():
		t.Fatalf("host: unexpected config/modem %v", m.Payload)
	default:
	}
}

func TestConfig_PublishConfig_MissingDevice(t *testing.T) {
	b := bus.NewBus(4)
	conn := b.NewConnection("test-missing-device")
	svc := NewConfigService(nil)

	err := svc.publishConfig(context.Background(), conn)
	assert.Equal(t, errcode.InvalidParams, errcode.Of(err))
}

func TestConfig_PublishConfig_NoConfigFound(t *testing.T) {
	withLookup(t, func(string) ([]byte, bool) { return nil, false })

	b := bus.NewBus(4)
	conn := b.NewConnection("test-no-config")
	svc := NewConfigService(nil)

	err := svc.publishConfig(WithDevice(context.Background(), "unknown-device"), conn)
	assert.Equal(t, errcode.Unsupported, errcode.Of(err))
}

func TestConfig_PublishConfig_NotAnObject(t *testing.T) {
	withLookup(t, func(string) ([]byte, bool) { return []byte(`[1, 2]`), true })

	b := bus.NewBus(4)
	conn := b.NewConnection("test-bad-json")
	svc := NewConfigService(nil)

	err := svc.publishConfig(WithDevice(context.Background(), "pico"), conn)
	assert.Equal(t, errcode.InvalidPayload, errcode.Of(err))
}

func TestConfig_StartLogsFailure(t *testing.T) {
	withLookup(t, func(string) ([]byte, bool) { return nil, false })

	var buf syncBuffer
	logger, err := logx.New(&buf, "info")
	require.NoError(t, err)

	b := bus.NewBus(4)
	svc := NewConfigService(logger)
	svc.Start(WithDevice(context.Background(), "nowhere"), b.NewConnection("test-log"))

	require.Eventually(t, func() bool {
		return bytes.Contains(buf.Bytes(), []byte("publish failed"))
	}, time.Second, 5*time.Millisecond)
	assert.Contains(t, string(buf.Bytes()), "service=config")
}
