// Package metrics defines and registers all custom Prometheus metrics for the
// website builder API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics use promauto, so importing the package registers them with the
// default Prometheus registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "builder"

// ── Generation metrics ────────────────────────────────────────────────────────

// GenerationsTotal counts content generation runs.
// Labels:
//   - source: "provider" (AI output used) or "fallback" (deterministic content)
//   - template: the website template requested (e.g. "business")
var GenerationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generations_total",
		Help:      "Total number of website content generations, by source and template.",
	},
	[]string{"source", "template"},
)

// GenerationDuration measures how long a generation request takes end-to-end,
// including the provider call or fallback.
var GenerationDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "generation_duration_seconds",
		Help:      "Duration of the content generation pipeline.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthDenialsTotal counts rejected requests on protected routes.
// Label:
//   - reason: "unauthenticated" (bad or missing token) or "forbidden" (RBAC)
var AuthDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denials_total",
		Help:      "Total number of requests rejected by authentication or authorization.",
	},
	[]string{"reason"},
)

// ── Analytics metrics ─────────────────────────────────────────────────────────

// PageViewsEnqueued counts preview page views handed to the dispatcher.
var PageViewsEnqueued = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "page_views_enqueued_total",
		Help:      "Total number of preview page views enqueued for recording.",
	},
)

// WebsitesPublishedTotal counts publish operations.
var WebsitesPublishedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "websites_published_total",
		Help:      "Total number of website publish operations.",
	},
)
