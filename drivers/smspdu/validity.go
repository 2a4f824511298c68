package smspdu

import (
	"time"

	"modemcode-go/x/mathx"
)

const (
	day  = 24 * time.Hour
	week = 7 * day

	// MaxValidity is the longest relative period, encoded as 255.
	MaxValidity = 63 * week
)

// ValidityPeriod encodes d in the relative TP-VP format (TS 23.040
// §9.2.3.12.1). d is rounded up to the next representable step and
// saturates at 63 weeks; d <= 5 minutes encodes as 0.
func ValidityPeriod(d time.Duration) byte {
	if d >= MaxValidity {
		return 255
	}
	var v time.Duration
	switch {
	case d <= 12*time.Hour:
		v = mathx.CeilDiv(d, 5*time.Minute) - 1
	case d <= 24*time.Hour:
		v = 143 + mathx.CeilDiv(d-12*time.Hour, 30*time.Minute)
	case d <= 30*day:
		v = 166 + mathx.CeilDiv(d, day)
	default:
		v = 192 + mathx.CeilDiv(d, week)
	}
	return byte(mathx.Clamp(v, 0, 255))
}

// ValidityDuration decodes a relative TP-VP byte.
func ValidityDuration(vp byte) time.Duration {
	v := time.Duration(vp)
	switch {
	case vp <= 143:
		return (v + 1) * 5 * time.Minute
	case vp <= 167:
		return 12*time.Hour + (v-143)*30*time.Minute
	case vp <= 196:
		return (v - 166) * day
	default:
		return (v - 192) * week
	}
}
