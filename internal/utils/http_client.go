// Package utils provides general-purpose helpers shared by the client
// packages: HTTP client construction, id generation and bearer-token
// inspection.
package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewBlobHTTPClient returns a client for presigned blob URLs.
//
// Blob URLs are signed for an exact set of headers, and the storage backend
// rejects uploads carrying a Content-Type it did not sign. resty fills in a
// detected type for raw bodies, so the pre-request hook resets the header to
// an explicit empty value on every request.
func NewBlobHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetTimeout(timeout).
		SetPreRequestHook(func(_ *resty.Client, r *http.Request) error {
			if r.Method == http.MethodPut {
				r.Header["Content-Type"] = []string{""}
			}
			return nil
		})
	return &HTTPClient{Client: client}
}
