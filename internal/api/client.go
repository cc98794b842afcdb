package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"github.com/huynhtuanvt18/pah-mobile-client/internal/metrics"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/patterns"
)

// TokenSource supplies the bearer token for authenticated calls. The token
// is read per request so a refreshed session takes effect immediately.
type TokenSource interface {
	Token() string
}

// Gateway wraps the two pre-configured HTTP clients the repositories use:
// one anonymous, one attaching the auth token.
type Gateway struct {
	public *resty.Client
	auth   *resty.Client
}

func NewGateway(baseURL string, tokens TokenSource) *Gateway {
	public := newClient(baseURL)

	auth := newClient(baseURL)
	auth.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		if t := tokens.Token(); t != "" {
			req.SetHeader("Authorization", "Bearer "+t)
		}
		return nil
	})

	return &Gateway{public: public, auth: auth}
}

func newClient(baseURL string) *resty.Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(patterns.DefaultTimeout).
		SetRetryCount(0) // repositories never retry; callers decide
	c.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		endpoint := resp.Request.RawRequest.URL.Path
		metrics.APIRequestsTotal.WithLabelValues(
			resp.Request.Method,
			endpoint,
			strconv.Itoa(resp.StatusCode()),
		).Inc()
		metrics.APIRequestDuration.WithLabelValues(
			resp.Request.Method,
			endpoint,
		).Observe(resp.Time().Seconds())

		log.WithFields(log.Fields{
			"method":   resp.Request.Method,
			"endpoint": endpoint,
			"status":   resp.StatusCode(),
			"elapsed":  resp.Time().String(),
		}).Debug("API request completed")
		return nil
	})
	return c
}

// envelope is the backend's uniform success wrapper.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// Get issues an anonymous GET and decodes the data envelope into out.
func (g *Gateway) Get(ctx context.Context, path string, out interface{}) error {
	return do(g.public.R().SetContext(ctx), http.MethodGet, path, out)
}

// GetAuth issues an authenticated GET and decodes the data envelope into out.
func (g *Gateway) GetAuth(ctx context.Context, path string, out interface{}) error {
	return do(g.auth.R().SetContext(ctx), http.MethodGet, path, out)
}

// PostAuth issues an authenticated POST with a JSON body. out may be nil
// when the caller only cares about success.
func (g *Gateway) PostAuth(ctx context.Context, path string, body, out interface{}) error {
	req := g.auth.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	return do(req, http.MethodPost, path, out)
}

// DeleteAuth issues an authenticated DELETE.
func (g *Gateway) DeleteAuth(ctx context.Context, path string) error {
	return do(g.auth.R().SetContext(ctx), http.MethodDelete, path, nil)
}

func do(req *resty.Request, method, path string, out interface{}) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("HTTP error: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return parseError(resp)
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to parse response payload: %w", err)
	}
	return nil
}
