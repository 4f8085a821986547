// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tabular

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pdiddy/timeline-engine/pkg/types"
)

// retryBaseDelay controls the base duration for exponential backoff on
// retryable responses. Tests override this to avoid real sleeps.
var retryBaseDelay = 2 * time.Second

const (
	maxFetchRetries     = 3
	defaultFetchTimeout = 30 * time.Second
)

// fetch downloads a remote source. HTTP 429 and 5xx responses are
// retried with exponential backoff (2 s, 4 s, 8 s); the backoff wait
// honors context cancellation. Any other non-200 status fails
// immediately.
func fetch(ctx context.Context, url string, cfg types.HTTPConfig) ([]byte, error) {
	client := fetchClient(cfg)

	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("building request for %s: %w", url, err)
		}
		if cfg.UserAgent != "" {
			req.Header.Set("User-Agent", cfg.UserAgent)
		}

		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", url, err)
		}

		if resp.StatusCode == http.StatusOK {
			data, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", url, err)
			}
			return data, nil
		}

		retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500

		// Drain and close the body before retrying.
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if !retryable || attempt >= maxFetchRetries {
			return nil, fmt.Errorf("fetching %s: HTTP %d", url, resp.StatusCode)
		}

		backoff := time.Duration(1<<attempt) * retryBaseDelay
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}
