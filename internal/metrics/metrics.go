package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewShipmentsCreatedTotal returns a Prometheus counter for the number of shipments created
func NewShipmentsCreatedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shipments_created_total",
		Help: "Total number of shipments created",
	})
}

// NewStatusUpdatesTotal returns a Prometheus counter for the number of shipment status updates applied
func NewStatusUpdatesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shipment_status_updates_total",
		Help: "Total number of shipment status updates applied",
	})
}

// NewFeedEventsSkippedTotal returns a Prometheus counter for the number of carrier feed events dropped
func NewFeedEventsSkippedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "feed_events_skipped_total",
		Help: "Total number of carrier feed events dropped as unknown or invalid",
	})
}
