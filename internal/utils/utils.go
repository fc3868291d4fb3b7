package utils

import (
	"fmt"
	"strings"

	"github.com/influxkit/influx_sdk/common"
)

// ParsePrecision parses a precision code (n, u, ms, s, m, h)
func ParsePrecision(s string) (common.Precision, error) {
	p := common.Precision(s)
	if !common.ValidPrecisions[p] {
		return "", fmt.Errorf("invalid precision: %s", s)
	}
	return p, nil
}

// NormalizeHost strips trailing slashes so endpoint paths can be appended
// with a single separator
func NormalizeHost(host string) string {
	return strings.TrimRight(host, "/")
}
