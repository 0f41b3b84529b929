// ABOUTME: Shared plumbing for storefront source adapters
// ABOUTME: Fetch, link resolution and per-source bounds common to all adapters

package sources

import (
	"context"
	"io"
	"net/url"
	"time"

	coreerrors "github.com/404PageFinder/BestPrice-Checker/core/errors"
	"github.com/404PageFinder/BestPrice-Checker/core/interfaces"
)

const (
	// defaultTimeout bounds each source's fetch. A slow source times
	// itself out; there is no external watchdog.
	defaultTimeout = 10 * time.Second

	// defaultMaxResults caps candidate blocks per source per query to
	// bound latency and respect fair use of the remote service.
	defaultMaxResults = 3
)

// Options tune a source adapter. The zero value selects the defaults.
type Options struct {
	// Timeout is the fixed deadline for one search fetch.
	Timeout time.Duration

	// MaxResults caps how many candidate blocks are extracted per query.
	MaxResults int
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxResults <= 0 {
		o.MaxResults = defaultMaxResults
	}
	return o
}

// fetch performs a bounded GET against a source's search URL and returns
// the response body on a 2xx status. Non-2xx responses are returned as a
// SourceError so the adapter can log and move on.
func fetch(ctx context.Context, client interfaces.HTTPClient, store, searchURL string, timeout time.Duration) (io.ReadCloser, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := client.Get(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		resp.Body().Close()
		return nil, &coreerrors.SourceError{
			Store:      store,
			StatusCode: resp.StatusCode(),
			Message:    "search page returned non-success status",
		}
	}

	return resp.Body(), nil
}

// resolveLink resolves a possibly-relative href against the source's
// base URL. Unresolvable hrefs yield an empty string; a product without
// a link is still a valid record.
func resolveLink(base *url.URL, href string) string {
	if href == "" {
		return ""
	}

	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}

	return base.ResolveReference(ref).String()
}

// logWarn logs through the injected logger when one is configured.
func logWarn(logger interfaces.Logger, msg string, fields map[string]interface{}) {
	if logger != nil {
		logger.Warn(msg, fields)
	}
}
