// Package metrics defines all custom Prometheus metrics for the auth API.
// It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "auth"

// RegistrationsTotal counts accounts created, by canonical role name.
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// RegistrationFailuresTotal counts rejected registrations.
// Label:
//   - reason: "invalid_role", "email_taken", or "error"
var RegistrationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registration_failures_total",
		Help:      "Total number of registrations rejected, by reason.",
	},
	[]string{"reason"},
)

// LoginsTotal counts login attempts by outcome. Failed logins carry a
// single "failure" value: unknown email and wrong password are deliberately
// not distinguishable, in metrics or anywhere else.
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result (success/failure).",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts signed tokens handed out on successful
// registration or login.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of bearer tokens issued.",
	},
)
