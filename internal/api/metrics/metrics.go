// Package metrics defines and registers all custom Prometheus metrics for the
// rental platform API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics registered with promauto attach to the default registry at package
// init, so importing this package from any wired component is enough.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rental"

// ── Listing metrics ───────────────────────────────────────────────────────────

// SearchesTotal counts public listing searches.
// Label:
//   - filtered: "yes" when at least one filter was applied, "no" for a bare page
var SearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of listing searches served.",
	},
	[]string{"filtered"},
)

// ListingsCreatedTotal counts newly published listings.
// Label:
//   - tipo: the property type (e.g. "Departamento", "Casa")
var ListingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_created_total",
		Help:      "Total number of listings created, by property type.",
	},
	[]string{"tipo"},
)

// ImageUploadsTotal counts individual listing image uploads.
// Label:
//   - result: "ok" or "failed"
var ImageUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "image_uploads_total",
		Help:      "Total number of listing image uploads, by result.",
	},
	[]string{"result"},
)

// ── Messaging metrics ─────────────────────────────────────────────────────────

// MessagesSentTotal counts chat messages accepted by the API.
// Label:
//   - kind: "seed" for thread-opening greetings, "reply" for everything else
var MessagesSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "Total number of chat messages persisted, by kind.",
	},
	[]string{"kind"},
)

// RealtimeSubscribers tracks the number of open realtime message streams.
var RealtimeSubscribers = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "realtime_subscribers",
		Help:      "Current number of connected realtime message subscribers.",
	},
)

// InquiriesCreatedTotal counts one-off listing inquiries.
var InquiriesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inquiries_created_total",
		Help:      "Total number of listing inquiries recorded.",
	},
)

// ── Verification metrics ──────────────────────────────────────────────────────

// VerificationReviewsTotal counts admin review decisions.
// Label:
//   - estado: the resulting submission status ("aprobado" or "rechazado")
var VerificationReviewsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "verification_reviews_total",
		Help:      "Total number of verification reviews, by outcome.",
	},
	[]string{"estado"},
)
