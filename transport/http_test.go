package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPTransportRequest(t *testing.T) {
	var gotMethod, gotQuery, gotBody string
	var gotUser, gotPass string
	var gotAuth bool

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.RawQuery
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotUser, gotPass, gotAuth = r.BasicAuth()

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	tr := NewHTTPTransport(server.Client())
	resp, err := tr.Request(context.Background(), &Request{
		Method: MethodPost,
		URL:    server.URL + "/write",
		Auth:   &Auth{Username: "gobwas", Password: "1234"},
		Query:  map[string]string{"db": "test", "precision": "n"},
		Body:   "m1 a=1i",
	})

	assert.NoError(t, err)
	assert.Equal(t, 204, resp.Status)
	assert.Equal(t, "POST", gotMethod)
	assert.Equal(t, "db=test&precision=n", gotQuery)
	assert.Equal(t, "m1 a=1i", gotBody)
	assert.True(t, gotAuth)
	assert.Equal(t, "gobwas", gotUser)
	assert.Equal(t, "1234", gotPass)
}

func TestHTTPTransportMergesExistingQuery(t *testing.T) {
	var gotQuery string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	tr := NewHTTPTransport(server.Client())
	_, err := tr.Request(context.Background(), &Request{
		Method: MethodGet,
		URL:    server.URL + "/query?chunked=true",
		Query:  map[string]string{"db": "test", "q": "SELECT * FROM cpu"},
	})

	assert.NoError(t, err)
	// Pairs already on the URL come first, provided pairs after
	assert.Equal(t, "chunked=true&db=test&q=SELECT+%2A+FROM+cpu", gotQuery)
}

func TestHTTPTransportNoAuth(t *testing.T) {
	var gotAuth bool

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _, gotAuth = r.BasicAuth()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	tr := NewHTTPTransport(server.Client())
	_, err := tr.Request(context.Background(), &Request{
		Method: MethodGet,
		URL:    server.URL + "/query",
	})

	assert.NoError(t, err)
	assert.False(t, gotAuth)
}

func TestHTTPTransportReturnsErrorBodies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"unable to parse"}`))
	}))
	defer server.Close()

	tr := NewHTTPTransport(server.Client())
	resp, err := tr.Request(context.Background(), &Request{
		Method: MethodPost,
		URL:    server.URL + "/write",
		Body:   "garbage",
	})

	assert.NoError(t, err)
	assert.Equal(t, 400, resp.Status)
	assert.Equal(t, `{"error":"unable to parse"}`, resp.Body)
}

func TestHTTPTransportCommunicationFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	tr := NewHTTPTransport(nil)
	resp, err := tr.Request(context.Background(), &Request{
		Method: MethodGet,
		URL:    server.URL + "/query",
	})

	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestHTTPTransportInvalidURL(t *testing.T) {
	tr := NewHTTPTransport(nil)
	resp, err := tr.Request(context.Background(), &Request{
		Method: MethodGet,
		URL:    "://not-a-url",
	})

	assert.Error(t, err)
	assert.Nil(t, resp)
}
