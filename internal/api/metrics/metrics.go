// Package metrics defines the custom Prometheus metrics of the project tracker
// API. Metrics are registered with the default registry on package init via
// promauto, so they are served by the same /metrics handler as echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tracker"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthFailuresTotal counts requests rejected before reaching a handler.
// Label:
//   - reason: "no_credential", "malformed", "invalid" or "forbidden"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by authentication or authorization.",
	},
	[]string{"reason"},
)

// RateLimitedTotal counts requests rejected by an attempt limiter.
// Label:
//   - scope: limiter scope (e.g. "auth")
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by rate limiting.",
	},
	[]string{"scope"},
)

// ── Resource metrics ──────────────────────────────────────────────────────────

// ValidationFailuresTotal counts request bodies that failed field validation.
// Label:
//   - resource: "client", "project", "signup" or "login"
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of request bodies rejected by field validation.",
	},
	[]string{"resource"},
)

// ReferenceRejectionsTotal counts project writes naming a client that does not exist.
var ReferenceRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reference_rejections_total",
		Help:      "Total number of project writes rejected for an unknown client reference.",
	},
)

// ResourceWritesTotal counts successful mutations.
// Labels:
//   - resource: "client" or "project"
//   - operation: "create", "update" or "delete"
var ResourceWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resource_writes_total",
		Help:      "Total number of successful resource mutations.",
	},
	[]string{"resource", "operation"},
)
