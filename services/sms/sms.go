// Package sms answers encode requests on the bus with a framed SMS-SUBMIT
// ready for a modem in PDU mode.
//
// Topics:
//
//	config/sms           retained types.SMSConfig, replaces the encoder params
//	sms/control/encode   request types.SMSEncode, reply types.SMSFrame or types.ErrorReply
//	sms/state            retained types.ServiceState
package sms

import (
	"context"
	"strings"
	"sync"
	"time"

	"modemcode-go/bus"
	"modemcode-go/drivers/atsms"
	"modemcode-go/drivers/smspdu"
	"modemcode-go/errcode"
	"modemcode-go/types"
	"modemcode-go/x/logx"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	serviceName = "sms"

	opConfig = "sms.config"
	opEncode = "sms.encode"
)

var (
	TopicConfig = bus.T("config", "sms")
	TopicEncode = bus.T("sms", "control", "encode")
	TopicState  = bus.T("sms", "state")
)

type Service struct {
	logger log.Logger

	mu     sync.RWMutex
	params smspdu.Params
	smsc   string
}

func New(logger log.Logger) *Service {
	return &Service{
		logger: log.With(logx.OrNop(logger), "service", serviceName),
		params: smspdu.DefaultParams(),
	}
}

// Start subscribes before returning so requests published afterwards are
// never missed, then serves them until ctx is cancelled.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	cfgSub := conn.Subscribe(TopicConfig)
	reqSub := conn.Subscribe(TopicEncode)
	s.publishState(conn, "ready", "started")
	go s.run(ctx, conn, cfgSub, reqSub)
}

func (s *Service) run(ctx context.Context, conn *bus.Connection, cfgSub, reqSub *bus.Subscription) {
	defer conn.Unsubscribe(cfgSub)
	defer conn.Unsubscribe(reqSub)

	for {
		select {
		case <-ctx.Done():
			s.publishState(conn, "stopped", "ctx_done")
			return
		case msg, ok := <-cfgSub.Channel():
			if !ok {
				return
			}
			s.onConfig(msg)
		case msg, ok := <-reqSub.Channel():
			if !ok {
				return
			}
			// Config published before the request wins.
			s.drainConfig(cfgSub)
			s.onEncode(conn, msg)
		}
	}
}

func (s *Service) drainConfig(sub *bus.Subscription) {
	for {
		select {
		case msg, ok := <-sub.Channel():
			if !ok {
				return
			}
			s.onConfig(msg)
		default:
			return
		}
	}
}

func (s *Service) onConfig(msg *bus.Message) {
	if msg.Payload == nil {
		return
	}
	var cfg types.SMSConfig
	if err := types.Decode(msg.Payload, &cfg); err != nil {
		level.Warn(s.logger).Log("msg", "config ignored", "err", err)
		return
	}
	if err := s.Configure(cfg); err != nil {
		level.Warn(s.logger).Log("msg", "config ignored", "err", err)
		return
	}
	level.Info(s.logger).Log("msg", "config applied", "smsc", cfg.SMSC)
}

// Configure validates cfg and swaps the encoder params. Unset fields take
// the smspdu defaults.
func (s *Service) Configure(cfg types.SMSConfig) error {
	smsc := strings.TrimPrefix(cfg.SMSC, "+")
	if !isDigits(smsc) {
		return errcode.New(errcode.InvalidParams, opConfig, "smsc must be digits")
	}
	p := smspdu.DefaultParams()
	if cfg.TOA != nil {
		if *cfg.TOA < 0 || *cfg.TOA > 0xFF {
			return errcode.New(errcode.InvalidParams, opConfig, "toa out of range")
		}
		p.TypeOfAddress = byte(*cfg.TOA)
		p.SMSCTypeOfAddress = byte(*cfg.TOA)
	}
	if cfg.ValidityMinutes != nil {
		if *cfg.ValidityMinutes < 0 {
			return errcode.New(errcode.InvalidParams, opConfig, "negative validity")
		}
		p.Validity = smspdu.ValidityPeriod(minutes(*cfg.ValidityMinutes))
	}

	s.mu.Lock()
	s.params, s.smsc = p, smsc
	s.mu.Unlock()
	return nil
}

func (s *Service) onEncode(conn *bus.Connection, msg *bus.Message) {
	if len(msg.ReplyTo) == 0 {
		level.Debug(s.logger).Log("msg", "request without reply_to dropped")
		return
	}
	var req types.SMSEncode
	if err := types.Decode(msg.Payload, &req); err != nil {
		s.replyErr(conn, msg, &errcode.E{C: errcode.InvalidPayload, Op: opEncode, Err: err})
		return
	}
	frame, err := s.Encode(req)
	if err != nil {
		s.replyErr(conn, msg, err)
		return
	}
	level.Info(s.logger).Log("msg", "encoded", "tpdu_len", frame.TPDULen)
	conn.Reply(msg, frame, false)
}

func (s *Service) replyErr(conn *bus.Connection, msg *bus.Message, err error) {
	level.Warn(s.logger).Log("msg", "encode failed", "err", err)
	conn.Reply(msg, types.ErrorReply{OK: false, Error: string(errcode.Of(err))}, false)
}

// Encode builds the framed submission for req using the current params.
// A request SMSC overrides the configured one; a leading '+' on either
// number is dropped.
func (s *Service) Encode(req types.SMSEncode) (types.SMSFrame, error) {
	to := strings.TrimPrefix(req.To, "+")
	if to == "" {
		return types.SMSFrame{}, errcode.New(errcode.InvalidParams, opEncode, "missing destination")
	}

	s.mu.RLock()
	enc, smsc := smspdu.NewEncoder(s.params), s.smsc
	s.mu.RUnlock()
	if req.SMSC != "" {
		smsc = strings.TrimPrefix(req.SMSC, "+")
	}

	var pdu [smspdu.MaxLen]byte
	n, err := enc.Encode(pdu[:], smsc, to, req.Text)
	if err != nil {
		return types.SMSFrame{}, errcode.Wrap(opEncode, err)
	}
	f, err := atsms.Render(make([]byte, atsms.FrameLen(n)), pdu[:n])
	if err != nil {
		return types.SMSFrame{}, errcode.Wrap(opEncode, err)
	}
	return types.SMSFrame{
		OK:      true,
		PDU:     f.HexString(),
		TPDULen: f.TPDULen,
		Command: string(f.Command),
		Body:    f.Body,
	}, nil
}

func (s *Service) publishState(conn *bus.Connection, lvl, status string) {
	conn.Publish(conn.NewMessage(TopicState, types.ServiceState{
		Level:  lvl,
		Status: status,
		TS:     time.Now().UnixMilli(),
	}, true))
}

// minutes converts m to a duration, saturating at smspdu.MaxValidity.
func minutes(m int) time.Duration {
	if int64(m) >= int64(smspdu.MaxValidity/time.Minute) {
		return smspdu.MaxValidity
	}
	return time.Duration(m) * time.Minute
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
