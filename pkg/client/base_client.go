package client

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	neturl "net/url"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// BaseClient performs single bounded GET requests against one upstream. It
// never retries; a failed call is final for that request.
type BaseClient struct {
	name           string
	client         HTTPClient
	logger         *zap.Logger
	circuitBreaker *gobreaker.CircuitBreaker
	limiter        *rate.Limiter
}

type ClientConfig struct {
	Timeout        time.Duration
	Threshold      int
	BreakerTimeout time.Duration
	RateLimit      float64
	Burst          int
}

func NewBaseClient(name string, config ClientConfig, logger *zap.Logger) *BaseClient {
	httpClient := &http.Client{
		Timeout: config.Timeout,
	}

	return newBaseClient(name, httpClient, config, logger)
}

func newBaseClient(name string, httpClient HTTPClient, config ClientConfig, logger *zap.Logger) *BaseClient {
	threshold := uint32(config.Threshold)

	breakerSettings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    0,
		Timeout:     config.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return threshold > 0 && counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				zap.String("client", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}

	var limiter *rate.Limiter
	if config.RateLimit > 0 {
		burst := config.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(config.RateLimit), burst)
	}

	return &BaseClient{
		name:           name,
		client:         httpClient,
		logger:         logger,
		circuitBreaker: gobreaker.NewCircuitBreaker(breakerSettings),
		limiter:        limiter,
	}
}

// Get issues one GET and returns the body of a 2xx response. Failures are
// always a *WeatherError.
func (c *BaseClient) Get(ctx context.Context, rawURL string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, classifyTransport(c.name, err)
		}
	}

	result, err := c.circuitBreaker.Execute(func() (interface{}, error) {
		return c.doGet(ctx, rawURL)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, newError(KindTransport, c.name, err, "source temporarily disabled after repeated failures")
		}
		return nil, err
	}

	return result.([]byte), nil
}

func (c *BaseClient) doGet(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, newError(KindUnknown, c.name, err, "creating request failed: %v", err)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("HTTP request failed",
			zap.String("client", c.name),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return nil, classifyTransport(c.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Unexpected HTTP status",
			zap.String("client", c.name),
			zap.Int("status", resp.StatusCode))
		we := newError(KindHTTPStatus, c.name, nil, "HTTP %d", resp.StatusCode)
		we.StatusCode = resp.StatusCode
		return nil, we
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransport(c.name, err)
	}

	c.logger.Debug("Request successful",
		zap.String("client", c.name),
		zap.Int("status", resp.StatusCode),
		zap.Int("body_size", len(body)),
		zap.Duration("elapsed", time.Since(start)))

	return body, nil
}

func classifyTransport(source string, err error) *WeatherError {
	if errors.Is(err, context.DeadlineExceeded) {
		return newError(KindTimeout, source, err, "request timed out")
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return newError(KindTimeout, source, err, "request timed out")
	}
	if errors.Is(err, context.Canceled) {
		return newError(KindUnknown, source, err, "request canceled")
	}
	// url.Error repeats the request URL, which carries the API key.
	cause := err
	var urlErr *neturl.Error
	if errors.As(err, &urlErr) {
		cause = urlErr.Err
	}
	return newError(KindTransport, source, err, "connection failed: %v", cause)
}
