// Package gateway issues every outbound HTTP call the console makes against
// the four backend services. It joins the per-service base address with the
// resource path, attaches the stored bearer token when one is supplied, and
// normalizes any failure into a typed *Error with a fixed operation label.
//
// One attempt per call: no retries, no backoff, no in-flight deduplication.
// The only timeout is the shared transport's.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/AhmetTK4/harmony/internal/api/metrics"
)

const requestTimeout = 15 * time.Second

type Gateway struct {
	client *http.Client
	addrs  Addresses
	log    zerolog.Logger
}

func New(addrs Addresses, log zerolog.Logger) *Gateway {
	return &Gateway{
		client: &http.Client{Timeout: requestTimeout},
		addrs:  addrs,
		log:    log,
	}
}

// do performs a single JSON call. The token is attached as a bearer
// credential only when non-empty; login, registration and health checks pass
// "". On success the response body is decoded into out (skipped when out is
// nil); on a non-2xx status the body is discarded and a *Error carrying the
// real status is returned.
func (g *Gateway) do(ctx context.Context, svc Service, method, path, token string, body, out any, op string) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &Error{Service: svc, Op: op, cause: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.addrs[svc]+path, reader)
	if err != nil {
		return &Error{Service: svc, Op: op, cause: err}
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := g.client.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(string(svc)).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(string(svc), op, metrics.OutcomeTransport).Inc()
		g.log.Warn().Err(err).Str("service", string(svc)).Str("path", path).Msg("upstream unreachable")
		return &Error{Service: svc, Op: op, cause: err}
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.UpstreamRequestsTotal.WithLabelValues(string(svc), op, metrics.OutcomeHTTPError).Inc()
		g.log.Debug().
			Int("status", resp.StatusCode).
			Str("service", string(svc)).
			Str("method", method).
			Str("path", path).
			Msg("upstream returned non-success status")
		return &Error{Service: svc, Op: op, StatusCode: resp.StatusCode}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			metrics.UpstreamRequestsTotal.WithLabelValues(string(svc), op, metrics.OutcomeTransport).Inc()
			// StatusCode stays 0: a 2xx with an unreadable body is no
			// success, and carrying the 2xx outward would report one.
			return &Error{Service: svc, Op: op, cause: fmt.Errorf("decode response: %w", err)}
		}
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(string(svc), op, metrics.OutcomeOK).Inc()
	return nil
}

// text performs an unauthenticated GET and returns the plain-text body.
// Used for the upstream health probes.
func (g *Gateway) text(ctx context.Context, svc Service, path, op string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.addrs[svc]+path, nil)
	if err != nil {
		return "", &Error{Service: svc, Op: op, cause: err}
	}

	resp, err := g.client.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(string(svc), op, metrics.OutcomeTransport).Inc()
		return "", &Error{Service: svc, Op: op, cause: err}
	}
	defer resp.Body.Close()

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(string(svc), op, metrics.OutcomeTransport).Inc()
		return "", &Error{Service: svc, Op: op, cause: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.UpstreamRequestsTotal.WithLabelValues(string(svc), op, metrics.OutcomeHTTPError).Inc()
		return "", &Error{Service: svc, Op: op, StatusCode: resp.StatusCode}
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(string(svc), op, metrics.OutcomeOK).Inc()
	return string(buf), nil
}
