package config

import (
	"context"
	"encoding/json"

	"modemcode-go/bus"
	"modemcode-go/errcode"
	"modemcode-go/x/logx"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	serviceName  = "config"
	configPrefix = "config"
)

type ctxKey string

// CtxDeviceKey is the context key carrying the device ID whose embedded
// config is published.
const CtxDeviceKey ctxKey = "device"

const opPublish = "config.publish"

// EmbeddedConfigLookup allows overriding how configs are resolved.
var EmbeddedConfigLookup = func(device string) ([]byte, bool) {
	b, ok := embeddedConfigs[device]
	return b, ok
}

// WithDevice returns ctx carrying the device ID.
func WithDevice(ctx context.Context, device string) context.Context {
	return context.WithValue(ctx, CtxDeviceKey, device)
}

type ConfigService struct {
	Name   string
	logger log.Logger
}

func NewConfigService(logger log.Logger) *ConfigService {
	return &ConfigService{
		Name:   serviceName,
		logger: log.With(logx.OrNop(logger), "service", serviceName),
	}
}

// publishConfig decodes the device's embedded JSON object and publishes each
// top-level key as a retained message on config/<key>.
func (s *ConfigService) publishConfig(ctx context.Context, conn *bus.Connection) error {
	device, _ := ctx.Value(CtxDeviceKey).(string)
	if device == "" {
		return errcode.New(errcode.InvalidParams, opPublish, "missing device id")
	}

	raw, ok := EmbeddedConfigLookup(device)
	if !ok || len(raw) == 0 {
		return errcode.New(errcode.Unsupported, opPublish, "no embedded config for device "+device)
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return &errcode.E{C: errcode.InvalidPayload, Op: opPublish, Err: err}
	}

	for k, v := range m {
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return &errcode.E{C: errcode.InvalidPayload, Op: opPublish, Err: err}
		}
		conn.Publish(conn.NewMessage(bus.T(configPrefix, k), val, true))
		level.Debug(s.logger).Log("msg", "published", "key", k)
	}
	level.Info(s.logger).Log("msg", "config published", "device", device, "keys", len(m))
	return nil
}

// Start launches the config publisher in a goroutine.
func (s *ConfigService) Start(ctx context.Context, conn *bus.Connection) {
	go func() {
		if err := s.publishConfig(ctx, conn); err != nil {
			level.Error(s.logger).Log("msg", "publish failed", "err", err)
		}
	}()
}
