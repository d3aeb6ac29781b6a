// Package metrics defines and registers the custom Prometheus metrics for
// the alumni portal API. It is the single source of truth for metric names,
// labels, and help strings; request-level latency histograms come from the
// echoprometheus middleware, not from here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "alumni_portal"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// ContentWritesTotal counts successful content mutations.
// Labels:
//   - kind: "announcements", "events" or "featured_alumni"
//   - op:   "create", "update" or "delete"
var ContentWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_writes_total",
		Help:      "Total number of successful content mutations, by kind and operation.",
	},
	[]string{"kind", "op"},
)

// ContentListsTotal counts list reads.
// Labels:
//   - kind:     content kind
//   - audience: "admin" or "public"
var ContentListsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_lists_total",
		Help:      "Total number of content list requests, by kind and audience.",
	},
	[]string{"kind", "audience"},
)

// UploadsTotal counts image uploads.
// Label:
//   - result: "stored" or "rejected"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of image upload attempts, by result.",
	},
	[]string{"result"},
)
