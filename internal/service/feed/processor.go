package feed

import (
	"context"
	"errors"

	"trackswift/internal/apperr"
	"trackswift/internal/domain"
	"trackswift/internal/logx"
)

// Event is a single carrier status update for a tracked shipment.
type Event struct {
	TrackingID string
	Status     string
}

type statusUpdater interface {
	UpdateStatus(ctx context.Context, trackingID string, status domain.ShipmentStatus, actor domain.Actor) (*domain.Shipment, error)
}

type counter interface{ Inc() }

// feedActor is the system identity carrier events act under. The feed is
// a trusted upstream, so it carries the admin role.
var feedActor = domain.Actor{Username: "carrier-feed", Role: domain.RoleAdmin}

// Processor applies carrier feed events to the shipment store.
type Processor struct {
	shipments statusUpdater
	logger    logx.Logger
	skipped   counter
}

// NewProcessor creates a feed Processor. The skipped counter may be nil.
func NewProcessor(shipments statusUpdater, logger logx.Logger, skipped counter) *Processor {
	return &Processor{shipments: shipments, logger: logger, skipped: skipped}
}

// Handle applies one event. Events referencing unknown shipments or
// carrying unknown statuses are logged and dropped; store errors
// propagate to the consumer.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	_, err := p.shipments.UpdateStatus(ctx, e.TrackingID, domain.ShipmentStatus(e.Status), feedActor)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, apperr.ErrInvalid):
		if p.skipped != nil {
			p.skipped.Inc()
		}
		p.logger.Warn("feed event skipped",
			logx.String("tracking_id", e.TrackingID),
			logx.String("status", e.Status),
			logx.Any("err", err),
		)
		return nil
	default:
		return err
	}
}
