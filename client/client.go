// Package client implements the InfluxDB client façade: batched line-protocol
// writes and raw queries over an injectable transport.
package client

import (
	"bytes"
	"context"
	"fmt"

	"github.com/influxkit/influx_sdk/common"
	"github.com/influxkit/influx_sdk/config"
	"github.com/influxkit/influx_sdk/internal/utils"
	"github.com/influxkit/influx_sdk/lineprotocol"
	"github.com/influxkit/influx_sdk/transport"
	"go.uber.org/zap"
)

const (
	// DefaultMaxBatch is the maximum number of points per write request when
	// no override is configured
	DefaultMaxBatch = 5000
)

// InfluxClient is the default Client implementation. It is stateless after
// construction and safe for concurrent use; SetTransport must happen before
// any concurrent use.
type InfluxClient struct {
	credentials common.Credentials
	host        string
	transport   transport.Transport
	config      *config.Config
	logger      *zap.Logger
	maxBatch    int
}

var _ Client = (*InfluxClient)(nil)

// New creates a new client for the given credentials and host
func New(credentials common.Credentials, host string, cfg *config.Config) *InfluxClient {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	maxBatch := cfg.MaxBatchSize
	if maxBatch <= 0 {
		maxBatch = DefaultMaxBatch
	}

	return &InfluxClient{
		credentials: credentials,
		host:        utils.NormalizeHost(host),
		transport:   transport.NewHTTPTransport(nil),
		config:      cfg,
		logger:      cfg.GetLogger(),
		maxBatch:    maxBatch,
	}
}

// NewFromConfig creates a new client from a ClientConfig
func NewFromConfig(clientCfg *config.ClientConfig, cfg *config.Config) (*InfluxClient, error) {
	if clientCfg == nil {
		return nil, fmt.Errorf("client configuration cannot be nil")
	}
	if err := clientCfg.Validate(); err != nil {
		return nil, err
	}

	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if clientCfg.Options != nil {
		if clientCfg.Options.MaxBatch > 0 {
			cfg.MaxBatchSize = clientCfg.Options.MaxBatch
		}
		if clientCfg.Options.Precision != "" {
			cfg.DefaultPrecision = clientCfg.Options.Precision
		}
	}

	return New(clientCfg.ToCredentials(), clientCfg.Host, cfg), nil
}

// SetTransport replaces the transport. Not safe for concurrent use: swap the
// transport before handing the client to other goroutines.
func (c *InfluxClient) SetTransport(t transport.Transport) {
	c.transport = t
}

// MaxBatch returns the maximum number of points sent per write request
func (c *InfluxClient) MaxBatch() int {
	return c.maxBatch
}

// WriteOne writes a single point
func (c *InfluxClient) WriteOne(ctx context.Context, point *common.Point, precision common.Precision) error {
	return c.WriteMany(ctx, []*common.Point{point}, precision)
}

// WriteMany writes points in consecutive chunks of at most MaxBatch points,
// one POST per chunk, in order. The first chunk that fails aborts the whole
// call: chunks already sent are not rolled back and their outcome is not
// reported to the caller.
func (c *InfluxClient) WriteMany(ctx context.Context, points []*common.Point, precision common.Precision) error {
	if precision == "" {
		precision = c.config.DefaultPrecision
	}

	for offset := 0; offset < len(points); offset += c.maxBatch {
		end := offset + c.maxBatch
		if end > len(points) {
			end = len(points)
		}
		chunk := points[offset:end]

		var body bytes.Buffer
		lineprotocol.EncodePoints(chunk, &body)

		query := map[string]string{
			"db": c.credentials.Database,
		}
		if precision != "" {
			query["precision"] = precision.String()
		}

		c.logger.Debug("Writing chunk",
			zap.Int("offset", offset),
			zap.Int("points", len(chunk)),
			zap.Int("body_bytes", body.Len()),
		)

		resp, err := c.transport.Request(ctx, &transport.Request{
			Method: transport.MethodPost,
			URL:    c.host + "/write",
			Auth: &transport.Auth{
				Username: c.credentials.Username,
				Password: c.credentials.Password,
			},
			Query: query,
			Body:  body.String(),
		})
		if err != nil {
			return &CommunicationError{Message: err.Error()}
		}

		if err := classifyWrite(resp); err != nil {
			c.logger.Debug("Write chunk failed",
				zap.Int("offset", offset),
				zap.Int("status", resp.Status),
			)
			return err
		}
	}

	return nil
}

// Query runs a query and returns the raw response body; interpreting the
// result is the caller's responsibility. Basic auth is omitted when both
// username and password are empty.
func (c *InfluxClient) Query(ctx context.Context, q string, epoch common.Precision) (string, error) {
	query := map[string]string{
		"db": c.credentials.Database,
		"q":  q,
	}
	if epoch != "" {
		query["epoch"] = epoch.String()
	}

	var auth *transport.Auth
	if c.credentials.Username != "" || c.credentials.Password != "" {
		auth = &transport.Auth{
			Username: c.credentials.Username,
			Password: c.credentials.Password,
		}
	}

	c.logger.Debug("Running query", zap.String("q", q))

	resp, err := c.transport.Request(ctx, &transport.Request{
		Method: transport.MethodGet,
		URL:    c.host + "/query",
		Auth:   auth,
		Query:  query,
	})
	if err != nil {
		return "", &CommunicationError{Message: err.Error()}
	}

	return classifyQuery(resp)
}

// classifyWrite maps a write response to its outcome. The write endpoint
// answers 204 on full success; 200 means the server accepted the request but
// could not complete the write, and must not be collapsed into success.
func classifyWrite(resp *transport.Response) error {
	switch resp.Status {
	case 204:
		return nil
	case 200:
		return &CouldNotCompleteError{Body: resp.Body}
	case 400:
		return &SyntaxError{Body: resp.Body}
	default:
		return &UnexpectedError{Status: resp.Status, Body: resp.Body}
	}
}

// classifyQuery maps a query response to its outcome
func classifyQuery(resp *transport.Response) (string, error) {
	switch resp.Status {
	case 200:
		return resp.Body, nil
	case 400:
		return "", &SyntaxError{Body: resp.Body}
	default:
		return "", &UnexpectedError{Status: resp.Status, Body: resp.Body}
	}
}
