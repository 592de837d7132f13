package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/piresc/chatsync/internal/pkg/circuitbreaker"
	"github.com/piresc/chatsync/internal/pkg/constants"
	appcontext "github.com/piresc/chatsync/internal/pkg/context"
	"github.com/piresc/chatsync/internal/pkg/logger"
	"github.com/piresc/chatsync/internal/pkg/models"
	"github.com/piresc/chatsync/internal/pkg/retry"
)

// DefaultTimeout for HTTP requests
const DefaultTimeout = 10 * time.Second

// TokenSource yields the credentials attached to every request
type TokenSource interface {
	Credentials() models.Credentials
}

// Config holds the REST client configuration
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the chat REST API. GETs are retried with backoff,
// mutations are attempted once. Every call goes through a per-host
// circuit breaker.
type Client struct {
	baseURL    string
	host       string
	httpClient *nethttp.Client
	tokens     TokenSource
	retrier    *retry.Retrier
	breakers   *circuitbreaker.Manager
	logger     *logger.ZapLogger
}

// NewClient creates a new REST client
func NewClient(cfg Config, tokens TokenSource, l *logger.ZapLogger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if l == nil {
		l = logger.GetGlobalLogger()
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	host := "unknown"
	if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
		host = u.Host
	}

	retryCfg := retry.DefaultConfig()
	retryCfg.RetryableFunc = isTransient

	return &Client{
		baseURL:    baseURL,
		host:       host,
		httpClient: &nethttp.Client{Timeout: cfg.Timeout},
		tokens:     tokens,
		retrier:    retry.New(retryCfg, l),
		breakers: circuitbreaker.NewManagerWithConfig(l, func(name string) circuitbreaker.Config {
			cbCfg := circuitbreaker.DefaultConfig(name)
			cbCfg.IsFailure = isTransient
			return cbCfg
		}),
		logger: l,
	}
}

// BaseURL returns the API origin
func (c *Client) BaseURL() string {
	return c.baseURL
}

// BreakerState returns the state of the circuit breaker guarding the API host
func (c *Client) BreakerState() circuitbreaker.State {
	return c.breakers.GetOrCreate(c.host).State()
}

// GetJSON performs a GET request and decodes the JSON response into result
func (c *Client) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	return c.retrier.Execute(ctx, "GET "+endpoint, func(ctx context.Context) error {
		return c.do(ctx, nethttp.MethodGet, endpoint, nil, result)
	})
}

// PostJSON performs a POST request with a JSON body
func (c *Client) PostJSON(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	return c.do(ctx, nethttp.MethodPost, endpoint, body, result)
}

// PutJSON performs a PUT request with a JSON body
func (c *Client) PutJSON(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	return c.do(ctx, nethttp.MethodPut, endpoint, body, result)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body interface{}, result interface{}) error {
	return c.breakers.Execute(ctx, c.host, func(ctx context.Context) error {
		return c.roundTrip(ctx, method, endpoint, body, result)
	})
}

func (c *Client) roundTrip(ctx context.Context, method, endpoint string, body interface{}, result interface{}) error {
	fullURL := c.baseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := appcontext.GetRequestID(ctx)
	if requestID == "" {
		requestID = appcontext.GetRequestID(appcontext.WithRequestID(ctx, ""))
	}
	req.Header.Set("X-Request-ID", requestID)

	if c.tokens != nil {
		creds := c.tokens.Credentials()
		if creds.AccessToken != "" {
			req.AddCookie(&nethttp.Cookie{Name: constants.CookieAccessToken, Value: creds.AccessToken})
		}
		if creds.RefreshToken != "" {
			req.AddCookie(&nethttp.Cookie{Name: constants.CookieRefreshToken, Value: creds.RefreshToken})
		}
	}

	logger.Debug("Making HTTP request",
		logger.String("method", method),
		logger.String("endpoint", endpoint),
		logger.String("request_id", requestID))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("HTTP request failed",
			logger.String("method", method),
			logger.String("endpoint", endpoint),
			logger.Err(err))
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if result == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(resp *nethttp.Response) error {
	clientErr := &ClientError{
		Code:    resp.StatusCode,
		Message: nethttp.StatusText(resp.StatusCode),
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil || len(raw) == 0 {
		return clientErr
	}

	var body ErrorResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		clientErr.Cause = string(raw)
		return clientErr
	}
	if body.Message != "" {
		clientErr.Message = body.Message
	}
	if body.Code != 0 {
		clientErr.Code = body.Code
	}
	return clientErr
}
