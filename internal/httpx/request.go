package httpx

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
)

// Do sends an HTTP request with a buffered body. There is no retry: the CLI
// aborts a run on the first failure, so a request is attempted exactly once.
// Callers must close the returned response body.
func Do(ctx context.Context, client *http.Client, method, url string, body []byte, headers http.Header) (*http.Response, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if headers != nil {
		req.Header = headers.Clone()
	}
	return client.Do(req)
}

// DoJSON is Do with JSON content negotiation defaults.
func DoJSON(ctx context.Context, client *http.Client, method, url string, body []byte, headers http.Header) (*http.Response, error) {
	if headers == nil {
		headers = make(http.Header)
	} else {
		headers = headers.Clone()
	}
	if headers.Get("Content-Type") == "" {
		headers.Set("Content-Type", "application/json")
	}
	if headers.Get("Accept") == "" {
		headers.Set("Accept", "application/json")
	}
	return Do(ctx, client, method, url, body, headers)
}

// ClassifyNetworkErr buckets a transport-level failure into a provider error
// code.
func ClassifyNetworkErr(err error) string {
	if err == nil {
		return "network_error"
	}
	if errors.Is(err, context.Canceled) {
		return "canceled"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return "timeout"
	}
	return "network_error"
}
