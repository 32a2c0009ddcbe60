// Package metrics defines the console's custom Prometheus metrics. It is the
// single source of truth for metric names, labels, and help strings; the
// promauto vectors register themselves with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "console"

// Outcome labels for UpstreamRequestsTotal.
const (
	OutcomeOK        = "ok"
	OutcomeHTTPError = "http_error"
	OutcomeTransport = "transport_error"
)

// UpstreamRequestsTotal counts outbound gateway calls.
// Labels:
//   - service: logical backend ("user", "product", "order", "notification")
//   - operation: fixed operation label (e.g. "fetch products")
//   - outcome: "ok", "http_error", or "transport_error"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of outbound requests issued by the gateway.",
	},
	[]string{"service", "operation", "outcome"},
)

// UpstreamRequestDuration measures outbound call latency end-to-end.
// Label:
//   - service: logical backend
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of outbound gateway requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"service"},
)

// LoginsTotal counts login attempts by result ("success" / "failure").
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
