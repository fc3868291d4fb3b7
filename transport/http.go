package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// HTTPTransport is the net/http backed Transport implementation
type HTTPTransport struct {
	client *http.Client
}

var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport creates a transport backed by the given http.Client.
// A nil client falls back to http.DefaultClient, which has no timeout;
// callers wanting one pass a client configured with it.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{client: client}
}

// Request implements Transport interface
func (t *HTTPTransport) Request(ctx context.Context, req *Request) (*Response, error) {
	u, err := url.Parse(req.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse url %s: %w", req.URL, err)
	}

	// Query pairs already on the URL come first, provided pairs after
	if len(req.Query) > 0 {
		provided := encodeQuery(req.Query)
		if u.RawQuery != "" {
			u.RawQuery = u.RawQuery + "&" + provided
		} else {
			u.RawQuery = provided
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, string(req.Method), u.String(), strings.NewReader(req.Body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if req.Auth != nil {
		httpReq.SetBasicAuth(req.Auth.Username, req.Auth.Password)
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{
		Status: resp.StatusCode,
		Body:   string(body),
	}, nil
}

// encodeQuery encodes the provided pairs in sorted key order so request URLs
// are deterministic
func encodeQuery(query map[string]string) string {
	keys := make([]string, 0, len(query))
	for key := range query {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(query[key]))
	}
	return b.String()
}
