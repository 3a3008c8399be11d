// Package metrics exposes Prometheus counters for the guestbook.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MessagesSubmitted counts accepted guestbook messages.
	MessagesSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "yearbook_messages_submitted_total",
		Help: "Total guestbook messages accepted",
	})

	// MessagesRejected counts rejected submissions by reason.
	MessagesRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yearbook_messages_rejected_total",
		Help: "Total guestbook submissions rejected by reason",
	}, []string{"reason"})

	// PagesRendered counts personalized page requests by outcome.
	PagesRendered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yearbook_pages_rendered_total",
		Help: "Total personalized page requests by outcome",
	}, []string{"outcome"})

	// StorageBackend reports the backend selected at boot (1 for active).
	StorageBackend = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "yearbook_storage_backend",
		Help: "Active storage backend, 1 for the selected one",
	}, []string{"backend"})
)
