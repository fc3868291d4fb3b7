package client

import (
	"context"

	"github.com/influxkit/influx_sdk/common"
)

// Client defines the client interface
type Client interface {
	// WriteOne writes a single point
	WriteOne(ctx context.Context, point *common.Point, precision common.Precision) error
	// WriteMany writes points in chunks of at most the configured batch size
	WriteMany(ctx context.Context, points []*common.Point, precision common.Precision) error
	// Query runs a query and returns the raw response body
	Query(ctx context.Context, q string, epoch common.Precision) (string, error)
}
