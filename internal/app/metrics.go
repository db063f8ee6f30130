package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"trackswift/internal/metrics"
)

type metricsOut struct {
	dig.Out

	ShipmentsCreatedTotal  prometheus.Counter `name:"shipments_created_total"`
	StatusUpdatesTotal     prometheus.Counter `name:"shipment_status_updates_total"`
	FeedEventsSkippedTotal prometheus.Counter `name:"feed_events_skipped_total"`
}

// provideMetrics registers the service counters on the default registry.
// A counter that is already registered, as happens when server and worker
// containers are built in one process, is reused instead of duplicated.
func provideMetrics() (metricsOut, error) {
	created, err := registerCounter("shipments_created_total", metrics.NewShipmentsCreatedTotal())
	if err != nil {
		return metricsOut{}, err
	}
	updated, err := registerCounter("shipment_status_updates_total", metrics.NewStatusUpdatesTotal())
	if err != nil {
		return metricsOut{}, err
	}
	skipped, err := registerCounter("feed_events_skipped_total", metrics.NewFeedEventsSkippedTotal())
	if err != nil {
		return metricsOut{}, err
	}
	return metricsOut{
		ShipmentsCreatedTotal:  created,
		StatusUpdatesTotal:     updated,
		FeedEventsSkippedTotal: skipped,
	}, nil
}

func registerCounter(name string, c prometheus.Counter) (prometheus.Counter, error) {
	if err := prometheus.DefaultRegisterer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}
