// Copyright 2026 Caresuite
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package feishu

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/caresuite/answerkit/store"
)

// DefaultBaseURL is the production Feishu open API endpoint.
const DefaultBaseURL = "https://open.feishu.cn/open-apis"

// tokenRefreshMargin refreshes the tenant access token this long before
// its reported expiry.
const tokenRefreshMargin = 60 * time.Second

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = time.Second

const defaultMaxRetries = 3

// Client talks to the Feishu Bitable API for one app/table pair.
// It implements store.EntryRepository and store.TableLister.
type Client struct {
	appID      string
	appSecret  string
	appToken   string
	tableID    string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// Option is a functional option for configuring a Client.
type Option func(*Client) error

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		if baseURL == "" {
			return errors.New("base URL cannot be empty")
		}
		c.baseURL = baseURL
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("http client cannot be nil")
		}
		c.httpClient = hc
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// NewClient creates a Bitable client for the given app credentials and
// table. appToken identifies the Bitable app, tableID the Answers table
// within it.
func NewClient(appID, appSecret, appToken, tableID string, opts ...Option) (*Client, error) {
	if appID == "" || appSecret == "" {
		return nil, errors.New("feishu: app ID and secret are required")
	}
	if appToken == "" {
		return nil, errors.New("feishu: app token is required")
	}

	c := &Client{
		appID:      appID,
		appSecret:  appSecret,
		appToken:   appToken,
		tableID:    tableID,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.Default().With("component", "feishu-client"),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Close releases resources held by the client.
// Currently a no-op as the HTTP client doesn't require explicit cleanup.
func (c *Client) Close() error {
	return nil
}

type tokenResponse struct {
	Code              int    `json:"code"`
	Msg               string `json:"msg"`
	TenantAccessToken string `json:"tenant_access_token"`
	Expire            int    `json:"expire"`
}

// accessToken returns a cached tenant access token, fetching a fresh one
// when the cache is empty or within the refresh margin of expiry.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry.Add(-tokenRefreshMargin)) {
		return c.token, nil
	}

	body, err := json.Marshal(map[string]string{
		"app_id":     c.appID,
		"app_secret": c.appSecret,
	})
	if err != nil {
		return "", err
	}

	url := c.baseURL + "/auth/v3/tenant_access_token/internal"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("decoding token response: %w", err)
	}
	if tr.Code != 0 {
		return "", fmt.Errorf("%w: fetching token: %s (code %d)", store.ErrRemoteAPI, tr.Msg, tr.Code)
	}
	if tr.TenantAccessToken == "" {
		return "", fmt.Errorf("%w: token response missing tenant_access_token", store.ErrRemoteAPI)
	}

	expire := tr.Expire
	if expire <= 0 {
		expire = 7200
	}

	c.token = tr.TenantAccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(expire) * time.Second)
	c.logger.Debug("refreshed tenant access token", "expires_in", expire)
	return c.token, nil
}

// getJSON performs an authorized GET and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return json.NewDecoder(resp.Body).Decode(out)
}

// putJSON performs an authorized PUT with a JSON body and decodes the
// response into out.
func (c *Client) putJSON(ctx context.Context, url string, body, out any) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: HTTP %d: %s", store.ErrRemoteAPI, resp.StatusCode, text)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// doWithRetry executes an HTTP request and retries on HTTP 429 with
// exponential backoff: RetryBaseDelay, doubled each attempt. After
// exhausting retries the last 429 response is returned so the caller can
// inspect it.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		attemptReq := req.Clone(ctx)
		if attempt > 0 && req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, err
			}
			attemptReq.Body = body
		}

		resp, err := c.httpClient.Do(attemptReq)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}
		if attempt >= defaultMaxRetries {
			return resp, nil
		}

		// Drain and close the body before retrying.
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		c.logger.Warn("rate limited, retrying",
			"backoff", backoff,
			"attempt", attempt+1,
			"max", defaultMaxRetries)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}
