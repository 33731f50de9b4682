package api

import (
	"context"
	"fmt"
	"net/http"
)

// CheckReachable probes the backend using the configured candidate paths in
// order, each under its own short timeout. Any response with a 2xx, 404 or
// 405 status counts as reachable: the server is up even if that particular
// route is missing. It returns false plus a diagnostic once every candidate
// has failed.
func (c *Client) CheckReachable(ctx context.Context) (bool, string) {
	var lastErr error

	for _, path := range c.probePaths {
		attemptCtx, cancel := context.WithTimeout(ctx, c.probeTimeout)
		reachable, err := c.probeOnce(attemptCtx, path)
		cancel()

		if reachable {
			c.logger.WithField("path", path).Debug("Backend reachable")
			return true, ""
		}
		if err != nil {
			lastErr = err
		}

		// A cancelled wizard context stops the whole scan.
		if ctx.Err() != nil {
			return false, "connectivity check cancelled"
		}
	}

	diag := fmt.Sprintf("no backend endpoint reachable at %s", c.baseURL)
	if lastErr != nil {
		diag = fmt.Sprintf("%s (last error: %v)", diag, lastErr)
	}
	c.logger.Warn(diag)
	return false, diag
}

func (c *Client) probeOnce(ctx context.Context, path string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return true, nil
	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusMethodNotAllowed:
		// Route missing but the server answered.
		return true, nil
	default:
		return false, fmt.Errorf("probe %s returned %d", path, resp.StatusCode)
	}
}
