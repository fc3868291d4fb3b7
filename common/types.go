package common

import "time"

// Precision is the time unit used by the server to interpret or return
// timestamps.
type Precision string

const (
	// PrecisionNanoseconds nanosecond precision
	PrecisionNanoseconds Precision = "n"
	// PrecisionMicroseconds microsecond precision
	PrecisionMicroseconds Precision = "u"
	// PrecisionMilliseconds millisecond precision
	PrecisionMilliseconds Precision = "ms"
	// PrecisionSeconds second precision
	PrecisionSeconds Precision = "s"
	// PrecisionMinutes minute precision
	PrecisionMinutes Precision = "m"
	// PrecisionHours hour precision
	PrecisionHours Precision = "h"
)

// ValidPrecisions contains all precision codes accepted by the server
var ValidPrecisions = map[Precision]bool{
	PrecisionNanoseconds:  true,
	PrecisionMicroseconds: true,
	PrecisionMilliseconds: true,
	PrecisionSeconds:      true,
	PrecisionMinutes:      true,
	PrecisionHours:        true,
}

func (p Precision) String() string {
	return string(p)
}

// Credentials holds the authentication data and target database of a client
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
}

// Value is a field value: one of StringValue, FloatValue, IntegerValue or
// BooleanValue.
type Value interface {
	fieldValue()
}

// StringValue string field value
type StringValue string

// FloatValue floating point field value
type FloatValue float64

// IntegerValue integer field value
type IntegerValue int64

// BooleanValue boolean field value
type BooleanValue bool

func (StringValue) fieldValue()  {}
func (FloatValue) fieldValue()   {}
func (IntegerValue) fieldValue() {}
func (BooleanValue) fieldValue() {}

// Point represents one measurement to be written.
//
// Tags and fields are encoded in lexicographic key order regardless of
// insertion order; inserting a key twice keeps the last value. A nil
// Timestamp means the server assigns the ingestion time.
type Point struct {
	Key       string            `json:"key"`
	Timestamp *int64            `json:"timestamp,omitempty"` // nanosecond unix time
	Tags      map[string]string `json:"tags,omitempty"`
	Fields    map[string]Value  `json:"fields,omitempty"`
}

// NewPoint creates a new point for the given measurement key
func NewPoint(key string) *Point {
	return &Point{
		Key:    key,
		Tags:   make(map[string]string),
		Fields: make(map[string]Value),
	}
}

// AddTag adds a tag to the point
func (p *Point) AddTag(key, value string) *Point {
	p.Tags[key] = value
	return p
}

// AddField adds a field to the point
func (p *Point) AddField(key string, value Value) *Point {
	p.Fields[key] = value
	return p
}

// WithTimestamp sets the timestamp of the point, a unix timestamp in
// nanoseconds
func (p *Point) WithTimestamp(timestamp int64) *Point {
	p.Timestamp = &timestamp
	return p
}

// Now sets the timestamp of the point to the current unix timestamp in
// nanoseconds
func (p *Point) Now() *Point {
	return p.WithTimestamp(time.Now().UnixNano())
}
