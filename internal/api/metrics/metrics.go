// Package metrics defines the custom Prometheus collectors for the FlowIQ
// API. Register happens implicitly through promauto at package load; the
// /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "flowiq"

// LoginAttemptsTotal counts login calls by outcome.
// Label:
//   - result: "success", "invalid_credentials", or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration calls by outcome.
// Label:
//   - result: "success", "duplicate_email", "invalid", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by outcome.",
	},
	[]string{"result"},
)

// GateDecisionsTotal counts route-gate outcomes for protected paths.
// Label:
//   - decision: "allowed", "unauthenticated" (sent to login), or
//     "forbidden" (authenticated, sent to dashboard)
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Route gate decisions for protected paths.",
	},
	[]string{"decision"},
)

// SessionRefreshesTotal counts explicit session refreshes.
var SessionRefreshesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_refreshes_total",
		Help:      "Total number of successful session refreshes.",
	},
)
