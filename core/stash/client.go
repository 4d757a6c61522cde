package stash

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	graphql "github.com/hasura/go-graphql-client"
	"go.uber.org/zap"
)

// Client is the typed GraphQL client for a Stash server.
// All entity accessors (FindScenes, CreatePerformer, ...) are methods on it.
type Client struct {
	gql    *graphql.Client
	cfg    Config
	logger *zap.Logger
	cache  *findCache
}

// apiKeyTransport injects the Stash ApiKey header into every request.
type apiKeyTransport struct {
	base   http.RoundTripper
	apiKey string
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.apiKey != "" {
		req.Header.Set("ApiKey", t.apiKey)
	}
	return t.base.RoundTrip(req)
}

// NewClient creates a new Stash client based on the configuration.
// It does not contact the server; use Version to verify connectivity.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("stash: endpoint URL is required")
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	httpClient := &http.Client{
		Transport: &apiKeyTransport{base: transport, apiKey: cfg.ApiKey},
		Timeout:   timeoutDuration,
	}

	return &Client{
		gql:    graphql.NewClient(cfg.URL, httpClient),
		cfg:    cfg,
		logger: logger,
		cache:  newFindCache(time.Duration(cfg.CacheTTLSeconds) * time.Second),
	}, nil
}

// execute runs a raw GraphQL document against the server and unmarshals the
// data payload into out. Transport failures are retried with exponential
// backoff; GraphQL errors are returned as-is.
func (c *Client) execute(ctx context.Context, op, query string, vars map[string]any, out any) error {
	var raw []byte
	var err error

	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := backoffDelay(attempt)
			c.logger.Warn("Retrying stash call",
				zap.String("operation", op),
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay),
				zap.Error(err),
			)
			select {
			case <-ctx.Done():
				return queryError(op, ctx.Err())
			case <-time.After(delay):
			}
		}

		raw, err = c.gql.ExecRaw(ctx, query, vars)
		if err == nil {
			break
		}
		if !isRetryable(err) {
			break
		}
	}

	if err != nil {
		return queryError(op, err)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return queryError(op, fmt.Errorf("decoding response: %w", err))
	}
	return nil
}

// find runs a cached find query. Identical query+vars pairs within the cache
// TTL are served from memory; concurrent misses collapse via singleflight.
func (c *Client) find(ctx context.Context, entity, op, query string, vars map[string]any, out any) error {
	key := cacheKey(entity, op, vars)
	raw, err := c.cache.getOrLoad(key, entity, func() ([]byte, error) {
		var buf json.RawMessage
		if err := c.execute(ctx, op, query, vars, &buf); err != nil {
			return nil, err
		}
		return buf, nil
	})
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return queryError(op, fmt.Errorf("decoding cached response: %w", err))
	}
	return nil
}

// mutate runs a mutation and invalidates all cached finds for the entity type.
func (c *Client) mutate(ctx context.Context, entity, op, query string, vars map[string]any, out any) error {
	if err := c.execute(ctx, op, query, vars, out); err != nil {
		return err
	}
	c.cache.invalidate(entity)
	return nil
}

// backoffDelay returns the exponential backoff delay for the given attempt:
// 1s, 2s, 4s, 8s, capped at 30s.
func backoffDelay(attempt int) time.Duration {
	delay := time.Second << (attempt - 1)
	if delay > 30*time.Second {
		delay = 30 * time.Second
	}
	return delay
}

// Version holds the Stash server version info.
type Version struct {
	Version   string `json:"version"`
	Hash      string `json:"hash"`
	BuildTime string `json:"build_time"`
}

const queryVersion = `
query Version {
  version {
    version
    hash
    build_time
  }
}`

// Version queries the server version. Used as a connectivity probe at startup.
func (c *Client) Version(ctx context.Context) (*Version, error) {
	var resp struct {
		Version Version `json:"version"`
	}
	if err := c.execute(ctx, "Version", queryVersion, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Version, nil
}
