// Package metrics exposes Prometheus counters for the deposit workflow.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "topupbot"

var (
	// RequestsCreated counts deposit requests registered by clients.
	RequestsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deposit_requests_created_total",
		Help:      "Deposit requests created by clients.",
	})

	// PhonesAssigned counts payment phones matched to waiting requests.
	PhonesAssigned = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deposit_phones_assigned_total",
		Help:      "Payment phones assigned to deposit requests.",
	})

	// ProofsSubmitted counts payment screenshots relayed to the operator group.
	ProofsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deposit_proofs_submitted_total",
		Help:      "Payment proofs submitted by clients.",
	})

	// RequestsConfirmed counts requests settled by operators.
	RequestsConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deposit_requests_confirmed_total",
		Help:      "Deposit requests confirmed by operators.",
	})

	// ValidationRejects counts client inputs rejected during intake.
	ValidationRejects = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deposit_validation_rejects_total",
		Help:      "Client inputs rejected during the intake dialogue.",
	}, []string{"field"})
)
