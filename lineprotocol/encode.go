// Package lineprotocol encodes points into the InfluxDB line protocol:
//
//	measurement[,tag=val...] field=val[,field=val...] [timestamp]
package lineprotocol

import (
	"bytes"
	"sort"
	"strconv"
	"strings"

	"github.com/influxkit/influx_sdk/common"
)

var (
	keyReplacer         = strings.NewReplacer(` `, `\ `, `,`, `\,`)
	stringValueReplacer = strings.NewReplacer(`"`, `\"`)
)

// Escape escapes a measurement key, tag key, tag value or field key by
// replacing every space with `\ ` and every comma with `\,`.
//
// Equals signs are deliberately not escaped even though the line protocol
// reference requires it; consumers relying on `=` in keys or tag values get
// the unescaped character on the wire.
func Escape(s string) string {
	return keyReplacer.Replace(s)
}

// EncodeValue encodes a field value. Encoding is total and deterministic:
// strings are double-quoted with internal quotes escaped (newlines are left
// as-is), integers carry the `i` suffix, floats use the shortest
// round-trippable notation, booleans encode as `t` or `f`.
func EncodeValue(value common.Value, buf *bytes.Buffer) {
	switch v := value.(type) {
	case common.StringValue:
		buf.WriteByte('"')
		stringValueReplacer.WriteString(buf, string(v))
		buf.WriteByte('"')
	case common.IntegerValue:
		buf.WriteString(strconv.FormatInt(int64(v), 10))
		buf.WriteByte('i')
	case common.FloatValue:
		buf.WriteString(strconv.FormatFloat(float64(v), 'f', -1, 64))
	case common.BooleanValue:
		if v {
			buf.WriteByte('t')
		} else {
			buf.WriteByte('f')
		}
	}
}

// EncodePoint encodes a single point as one line, without a trailing
// newline. Encoding never fails: a point without fields produces a
// syntactically invalid line that the server rejects.
func EncodePoint(p *common.Point, buf *bytes.Buffer) {
	keyReplacer.WriteString(buf, p.Key)

	for _, key := range sortedKeys(p.Tags) {
		buf.WriteByte(',')
		keyReplacer.WriteString(buf, key)
		buf.WriteByte('=')
		keyReplacer.WriteString(buf, p.Tags[key])
	}

	for i, key := range sortedFieldKeys(p.Fields) {
		if i == 0 {
			buf.WriteByte(' ')
		} else {
			buf.WriteByte(',')
		}
		keyReplacer.WriteString(buf, key)
		buf.WriteByte('=')
		EncodeValue(p.Fields[key], buf)
	}

	if p.Timestamp != nil {
		buf.WriteByte(' ')
		buf.WriteString(strconv.FormatInt(*p.Timestamp, 10))
	}
}

// EncodePoints encodes a batch of points as a newline-joined write body
func EncodePoints(points []*common.Point, buf *bytes.Buffer) {
	for i, p := range points {
		if i > 0 {
			buf.WriteByte('\n')
		}
		EncodePoint(p, buf)
	}
}

// EncodePointString encodes a single point and returns the line
func EncodePointString(p *common.Point) string {
	var buf bytes.Buffer
	EncodePoint(p, &buf)
	return buf.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedFieldKeys(m map[string]common.Value) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
