package sdk

import (
	"github.com/influxkit/influx_sdk/client"
	"github.com/influxkit/influx_sdk/common"
	"github.com/influxkit/influx_sdk/config"
	"github.com/influxkit/influx_sdk/transport"
)

// SDK version information
const (
	Version = "v0.1.0"
)

// Re-export main types and functions for user convenience
type (
	// Config SDK configuration
	Config = config.Config
	// ClientConfig high-level client configuration
	ClientConfig = config.ClientConfig
	// Options provisional per-client options bag
	Options = config.Options
	// Client client interface
	Client = client.Client
	// InfluxClient default client implementation
	InfluxClient = client.InfluxClient
	// Point one measurement to be written
	Point = common.Point
	// Value field value union
	Value = common.Value
	// StringValue string field value
	StringValue = common.StringValue
	// FloatValue floating point field value
	FloatValue = common.FloatValue
	// IntegerValue integer field value
	IntegerValue = common.IntegerValue
	// BooleanValue boolean field value
	BooleanValue = common.BooleanValue
	// Credentials client credentials
	Credentials = common.Credentials
	// Precision timestamp precision code
	Precision = common.Precision
	// Transport single-exchange transport seam
	Transport = transport.Transport
	// CommunicationError transport-level failure
	CommunicationError = client.CommunicationError
	// SyntaxError request rejected by the server
	SyntaxError = client.SyntaxError
	// CouldNotCompleteError write accepted but not completed
	CouldNotCompleteError = client.CouldNotCompleteError
	// UnexpectedError unclassified response status
	UnexpectedError = client.UnexpectedError
)

// Re-export constants
const (
	PrecisionNanoseconds  = common.PrecisionNanoseconds
	PrecisionMicroseconds = common.PrecisionMicroseconds
	PrecisionMilliseconds = common.PrecisionMilliseconds
	PrecisionSeconds      = common.PrecisionSeconds
	PrecisionMinutes      = common.PrecisionMinutes
	PrecisionHours        = common.PrecisionHours
)

// Re-export main functions
var (
	// DefaultConfig creates default configuration
	DefaultConfig = config.DefaultConfig
	// NewDebugConfig creates debug configuration
	NewDebugConfig = config.NewDebugConfig
	// NewClientConfig creates an empty client configuration
	NewClientConfig = config.NewClientConfig
	// NewFromURI parses a client configuration from a URI
	NewFromURI = config.NewFromURI
	// NewFromEnv loads a client configuration from INFLUXDB_* variables
	NewFromEnv = config.NewFromEnv
	// NewClient creates a client
	NewClient = client.New
	// NewClientFromConfig creates a client from a ClientConfig
	NewClientFromConfig = client.NewFromConfig
	// NewPoint creates a point builder
	NewPoint = common.NewPoint
	// NewHTTPTransport creates the net/http transport
	NewHTTPTransport = transport.NewHTTPTransport
)
