// Package metrics defines and registers all custom Prometheus metrics for
// the admin console gateway. It is the single source of truth for metric
// names, labels, and help strings; metrics register themselves with the
// default registry at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "console"

// ── Cache metrics ─────────────────────────────────────────────────────────────

// CacheHitsTotal counts Get calls served from a fresh cache entry.
// Label:
//   - category: resource category ("orders", "clients", "employees", "analytics")
var CacheHitsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_hits_total",
		Help:      "Total number of cache reads served without a backend fetch.",
	},
	[]string{"category"},
)

// CacheMissesTotal counts Get calls that triggered a backend fetch.
var CacheMissesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_misses_total",
		Help:      "Total number of cache reads that required a backend fetch.",
	},
	[]string{"category"},
)

// CacheInvalidationsTotal counts category invalidations after mutations.
var CacheInvalidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_invalidations_total",
		Help:      "Total number of category-wide cache invalidations.",
	},
	[]string{"category"},
)

// CacheStaleDropsTotal counts fetch results discarded by the version guard
// because the entry was invalidated while the fetch was in flight.
var CacheStaleDropsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_stale_drops_total",
		Help:      "Total number of fetch results discarded as stale.",
	},
	[]string{"category"},
)

// ── Upstream metrics ──────────────────────────────────────────────────────────

// UpstreamRequestsTotal counts requests issued to the backend.
// Labels:
//   - method: HTTP method
//   - status: HTTP status code, "0" for transport failures
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests sent to the order-management backend.",
	},
	[]string{"method", "status"},
)

// UpstreamRequestDuration measures backend round-trip time.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of backend requests from send to response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionRestoresTotal counts startup session restores.
// Label:
//   - result: "restored", "empty", or "wiped" (corrupt or expired state)
var SessionRestoresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_restores_total",
		Help:      "Total number of session restore attempts at startup, by result.",
	},
	[]string{"result"},
)
