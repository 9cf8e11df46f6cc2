// Package metrics defines and registers the custom Prometheus metrics for
// the catering auth API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time and
// are exposed through the /metrics endpoint wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catering"

// RegistrationsTotal counts registration attempts.
// Label:
//   - outcome: "success", "conflict" (email taken), or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by outcome.",
	},
	[]string{"outcome"},
)

// LoginsTotal counts login attempts. The "failure" outcome covers both
// unknown emails and wrong passwords; the split is deliberately not
// observable, here or anywhere else.
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome (success/failure/error).",
	},
	[]string{"outcome"},
)

// TokenVerificationsTotal counts session-token checks in the auth middleware.
// Label:
//   - result: "valid", "invalid", or "expired"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of session token verifications, by result.",
	},
	[]string{"result"},
)
