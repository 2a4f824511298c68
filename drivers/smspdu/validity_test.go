package smspdu

import (
	"math"
	"testing"
	"time"
)

func TestValidityPeriod(t *testing.T) {
	for _, c := range []struct {
		d    time.Duration
		want byte
	}{
		{0, 0},
		{-time.Hour, 0},
		{5 * time.Minute, 0},
		{6 * time.Minute, 1},
		{time.Hour, 11},
		{12 * time.Hour, 143},
		{12*time.Hour + time.Minute, 144},
		{24 * time.Hour, 167},
		{25 * time.Hour, 168},
		{4 * day, 0xAA},
		{10 * day, VP10Days},
		{30 * day, 196},
		{31 * day, 197},
		{63 * week, 255},
		{200 * week, 255},
		{62*week + time.Minute, 255},
		{2562047 * time.Hour, 255},
		{math.MaxInt64 - time.Hour, 255},
		{math.MaxInt64, 255},
	} {
		if got := ValidityPeriod(c.d); got != c.want {
			t.Fatalf("ValidityPeriod(%v) = %d, want %d", c.d, got, c.want)
		}
	}
}

func TestValidityRoundTrip(t *testing.T) {
	for vp := 0; vp <= 255; vp++ {
		d := ValidityDuration(byte(vp))
		if got := ValidityPeriod(d); got != byte(vp) {
			t.Fatalf("vp %d -> %v -> %d", vp, d, got)
		}
	}
}

func TestParamsFor(t *testing.T) {
	p := ParamsFor(4*day, TOAUnknown)
	if p.Validity != 0xAA || p.TypeOfAddress != TOAUnknown || p.SMSCTypeOfAddress != TOAUnknown {
		t.Fatalf("unexpected params: %+v", p)
	}
	if p.FirstOctet != FirstOctetSubmit || p.ProtocolID != PIDDefault || p.DataCoding != DCSDefault {
		t.Fatalf("defaults not kept: %+v", p)
	}
}
