package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"modemcode-go/drivers/smspdu"
)

// parseValidity accepts a Go duration ("96h") or a whole number of days
// with a "d" suffix ("4d"). Periods past smspdu.MaxValidity saturate.
func parseValidity(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid validity %q", s)
		}
		if n >= int(smspdu.MaxValidity/(24*time.Hour)) {
			return smspdu.MaxValidity, nil
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid validity %q", s)
	}
	return min(d, smspdu.MaxValidity), nil
}

func trimPlus(s string) string { return strings.TrimPrefix(s, "+") }
