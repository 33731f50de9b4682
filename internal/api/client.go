package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mathangi54/travel-booking-client/internal/config"
)

// Client talks to the travel backend. All methods take a context; every
// request runs under a bounded deadline so a hung backend cannot stall the
// wizard indefinitely.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	probePaths     []string
	probeTimeout   time.Duration
	requestTimeout time.Duration
	submitTimeout  time.Duration
	logger         *logrus.Logger
}

// NewClient creates a backend API client from configuration.
func NewClient(cfg config.ClientConfig, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:        strings.TrimRight(cfg.APIBaseURL, "/"),
		httpClient:     &http.Client{},
		probePaths:     cfg.ProbePaths,
		probeTimeout:   cfg.ProbeTimeout,
		requestTimeout: cfg.RequestTimeout,
		submitTimeout:  cfg.SubmitTimeout,
		logger:         logger,
	}
}

// envelope is the backend's uniform response wrapper.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Count   int             `json:"count"`
}

// doJSON performs one request under the given timeout. A non-2xx response
// becomes an *APIError carrying the backend message; transport and deadline
// failures are wrapped so errors.Is still sees the cause.
func (c *Client) doJSON(ctx context.Context, method, path string, payload interface{}, token string, timeout time.Duration) (*envelope, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.WithFields(logrus.Fields{"method": method, "url": url}).Debug("Sending backend request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	var env envelope
	if len(raw) > 0 {
		// Tolerate a non-JSON error body; the status code still classifies.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if env.Status != "" && env.Status != "success" {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	return &env, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) (*envelope, error) {
	env, err := c.doJSON(ctx, http.MethodGet, path, nil, "", c.requestTimeout)
	if err != nil {
		return nil, err
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
	}
	return env, nil
}
