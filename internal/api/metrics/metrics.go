// Package metrics defines all custom Prometheus metrics for the portfolio
// API. It is the single source of truth for metric names, labels, and help
// strings; registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts successful logins.
// Label:
//   - kind: "standard" or "privileged"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins, by identity kind.",
	},
	[]string{"kind"},
)

// LoginFailuresTotal counts rejected login attempts. No cause label: the
// service deliberately collapses all causes into one generic failure.
var LoginFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_failures_total",
		Help:      "Total number of rejected login attempts.",
	},
)

// RegistrationsTotal counts newly registered standard accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registered standard accounts.",
	},
)

// SessionsRevokedTotal counts logout-driven session revocations.
var SessionsRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_revoked_total",
		Help:      "Total number of sessions revoked by logout.",
	},
)

// ── Content metrics ───────────────────────────────────────────────────────────

// MessagesReceivedTotal counts contact-form submissions.
// Label:
//   - result: "accepted" or "duplicate"
var MessagesReceivedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_received_total",
		Help:      "Total number of contact-form submissions, by result.",
	},
	[]string{"result"},
)

// UploadsTotal counts stored file uploads.
// Label:
//   - category: upload directory ("projects", "skills", "site", "files", …)
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of stored file uploads, by category.",
	},
	[]string{"category"},
)
