// Package metrics exposes Prometheus collectors for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RegistrationsTotal tracks registration attempts by outcome
	// (created, conflict, invalid).
	RegistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookrack_registrations_total",
			Help: "Registration attempts by outcome",
		},
		[]string{"outcome"},
	)

	// LoginsTotal tracks login attempts by outcome (success, denied, invalid).
	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookrack_logins_total",
			Help: "Login attempts by outcome",
		},
		[]string{"outcome"},
	)

	// SessionGateDenials tracks requests rejected by the session gate, by
	// stage (presence, token).
	SessionGateDenials = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookrack_session_gate_denials_total",
			Help: "Requests denied by the session gate, by failing stage",
		},
		[]string{"stage"},
	)

	// ReviewMutationsTotal tracks review mutations by operation and outcome.
	ReviewMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookrack_review_mutations_total",
			Help: "Review mutations by operation (upsert/delete) and outcome",
		},
		[]string{"operation", "outcome"},
	)
)
