package utils

import (
	"testing"

	"github.com/influxkit/influx_sdk/common"
	"github.com/stretchr/testify/assert"
)

func TestParsePrecision(t *testing.T) {
	tests := []struct {
		input       string
		expected    common.Precision
		expectError bool
	}{
		{input: "n", expected: common.PrecisionNanoseconds},
		{input: "u", expected: common.PrecisionMicroseconds},
		{input: "ms", expected: common.PrecisionMilliseconds},
		{input: "s", expected: common.PrecisionSeconds},
		{input: "m", expected: common.PrecisionMinutes},
		{input: "h", expected: common.PrecisionHours},
		{input: "ns", expectError: true},
		{input: "", expectError: true},
		{input: "seconds", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParsePrecision(tt.input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, p)
			}
		})
	}
}

func TestNormalizeHost(t *testing.T) {
	assert.Equal(t, "http://localhost:8086", NormalizeHost("http://localhost:8086"))
	assert.Equal(t, "http://localhost:8086", NormalizeHost("http://localhost:8086/"))
	assert.Equal(t, "http://localhost:8086", NormalizeHost("http://localhost:8086//"))
}
