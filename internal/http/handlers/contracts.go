package handlers

import (
	"context"

	"trackswift/internal/domain"
	"trackswift/internal/service/auth"
	"trackswift/internal/service/report"
	"trackswift/internal/service/shipment"
)

type shipmentUsecase interface {
	Create(ctx context.Context, in domain.NewShipment) (*domain.Shipment, error)
	Track(ctx context.Context, trackingID string) (*domain.Shipment, error)
	List(ctx context.Context, f domain.ShipmentFilter) ([]domain.Shipment, error)
	ListWithManifests(ctx context.Context, f domain.ShipmentFilter) ([]domain.ShipmentWithManifest, error)
	UpdateStatus(ctx context.Context, trackingID string, status domain.ShipmentStatus, actor domain.Actor) (*domain.Shipment, error)
}

// NewShipmentUsecase wires a shipment Service into a shipmentUsecase.
func NewShipmentUsecase(svc *shipment.Service) shipmentUsecase {
	return svc
}

type reportUsecase interface {
	Summary(ctx context.Context, owner *string) (report.Summary, error)
	StatusDistribution(ctx context.Context, owner *string) (map[domain.ShipmentStatus]int64, error)
	TimeSeries(ctx context.Context, g report.Granularity, status *domain.ShipmentStatus, owner *string) ([]report.Bucket, error)
	Recent(ctx context.Context, limit int) ([]domain.Shipment, error)
}

// NewReportUsecase wires a report Service into a reportUsecase.
func NewReportUsecase(svc *report.Service) reportUsecase {
	return svc
}

type authUsecase interface {
	Authenticate(ctx context.Context, username, credential string) (*domain.User, error)
}

// NewAuthUsecase wires an auth Service into an authUsecase.
func NewAuthUsecase(svc *auth.Service) authUsecase {
	return svc
}
