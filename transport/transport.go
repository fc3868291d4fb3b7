package transport

import "context"

// Method HTTP request method
type Method string

const (
	// MethodGet HTTP GET
	MethodGet Method = "GET"
	// MethodPost HTTP POST
	MethodPost Method = "POST"
)

// Auth basic-auth credentials attached to a request
type Auth struct {
	Username string
	Password string
}

// Request describes a single request/response exchange
type Request struct {
	Method Method
	URL    string
	// Auth basic-auth credentials, nil to send the request unauthenticated
	Auth *Auth
	// Query parameters merged into the URL after any pairs already present
	Query map[string]string
	// Body request body, empty for GET requests
	Body string
}

// Response is the server's answer to a request. The transport returns a
// Response for every completed exchange regardless of status code; only
// transport-level failures are reported as errors.
type Response struct {
	Status int
	Body   string
}

// Transport performs a single HTTP request/response exchange. Implementations
// own all timeout and connection behavior; the client issues requests through
// this interface and never retries.
type Transport interface {
	Request(ctx context.Context, req *Request) (*Response, error)
}
