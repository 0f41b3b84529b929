// ABOUTME: Standard HTTP client implementation with per-host rate limiting
// ABOUTME: Sends a browser-like identification header; storefronts reject unidentified clients

package standard

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/404PageFinder/BestPrice-Checker/core/interfaces"
	"golang.org/x/time/rate"
)

const userAgent = "Mozilla/5.0"

// StandardHTTPClient implements the HTTPClient interface using the
// standard library. Requests are rate limited per host as a politeness
// bound on top of each source's own result cap. There is no retry
// logic: a failed fetch is a final answer for that source within one
// search.
type StandardHTTPClient struct {
	client *http.Client

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

// NewStandardHTTPClient creates a new HTTP client with the specified
// timeout and a per-host requests-per-second budget.
func NewStandardHTTPClient(timeout time.Duration, requestsPerSecond float64) *StandardHTTPClient {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(requestsPerSecond),
		burst:    1,
	}
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, rawURL string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)

	if err := c.waitForHost(ctx, req.URL); err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// waitForHost blocks until the host's rate limiter grants a token or the
// context is done.
func (c *StandardHTTPClient) waitForHost(ctx context.Context, u *url.URL) error {
	host := u.Hostname()
	if host == "" {
		return nil
	}

	c.mu.Lock()
	limiter, ok := c.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(c.rps, c.burst)
		c.limiters[host] = limiter
	}
	c.mu.Unlock()

	return limiter.Wait(ctx)
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
