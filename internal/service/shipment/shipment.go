package shipment

import (
	"context"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"trackswift/internal/apperr"
	"trackswift/internal/domain"
	"trackswift/internal/logx"
)

// createAttempts bounds tracking ID regeneration on unique-key collisions.
const createAttempts = 5

type shipmentRepository interface {
	Create(ctx context.Context, s *domain.Shipment, m *domain.Manifest) error
	GetByTrackingID(ctx context.Context, trackingID string) (*domain.Shipment, error)
	List(ctx context.Context, f domain.ShipmentFilter) ([]domain.Shipment, error)
	ListWithManifests(ctx context.Context, f domain.ShipmentFilter) ([]domain.ShipmentWithManifest, error)
	UpdateStatus(ctx context.Context, trackingID string, status domain.ShipmentStatus) (*domain.Shipment, error)
}

type counter interface{ Inc() }

// Service coordinates shipment business logic and orchestrates repository calls.
type Service struct {
	repo             shipmentRepository
	operationTimeout time.Duration
	logger           logx.Logger
	created          counter
	statusUpdated    counter
	newTrackingID    func() string
}

// NewService creates and configures a shipment Service. Counters may be nil.
func NewService(r shipmentRepository, timeout time.Duration, logger logx.Logger, created, statusUpdated counter) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             r,
		operationTimeout: timeout,
		logger:           logger,
		created:          created,
		statusUpdated:    statusUpdated,
		newTrackingID:    newTrackingID,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// newTrackingID generates an 8-char upper-hex tracking identifier.
func newTrackingID() string {
	id := uuid.New()
	return strings.ToUpper(hex.EncodeToString(id[:4]))
}

func validateCreate(in *domain.NewShipment) error {
	for _, field := range []string{in.SenderName, in.ReceiverName, in.Origin, in.Destination, in.Owner} {
		if strings.TrimSpace(field) == "" {
			return apperr.ErrInvalid
		}
	}
	if m := in.Manifest; m != nil {
		if strings.TrimSpace(m.Items) == "" || m.Quantity < 1 || m.TotalCost < 0 {
			return apperr.ErrInvalid
		}
	}
	return nil
}

// Create persists a new shipment with a generated tracking ID and initial
// Pending status. A tracking ID collision triggers regeneration.
func (s *Service) Create(ctx context.Context, in domain.NewShipment) (*domain.Shipment, error) {
	if err := validateCreate(&in); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	for attempt := 1; ; attempt++ {
		rec := &domain.Shipment{
			TrackingID:   s.newTrackingID(),
			SenderName:   in.SenderName,
			ReceiverName: in.ReceiverName,
			Origin:       in.Origin,
			Destination:  in.Destination,
			Status:       domain.StatusPending,
			Owner:        in.Owner,
		}
		var m *domain.Manifest
		if in.Manifest != nil {
			cp := *in.Manifest
			m = &cp
		}

		err := s.repo.Create(ctx, rec, m)
		if err == nil {
			if s.created != nil {
				s.created.Inc()
			}
			s.logger.Info("shipment created",
				logx.String("event", "shipment_created"),
				logx.String("tracking_id", rec.TrackingID),
				logx.String("owner", rec.Owner),
			)
			return rec, nil
		}
		if errors.Is(err, apperr.ErrConflict) && attempt < createAttempts {
			continue
		}
		return nil, err
	}
}

// Track retrieves a shipment by its tracking ID.
func (s *Service) Track(ctx context.Context, trackingID string) (*domain.Shipment, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rec, err := s.repo.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperr.ErrNotFound
	}
	return rec, nil
}

// List returns shipments matching the filter, oldest first.
func (s *Service) List(ctx context.Context, f domain.ShipmentFilter) ([]domain.Shipment, error) {
	if f.Status != nil && !f.Status.Valid() {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, f)
}

// ListWithManifests returns shipments joined with their manifests, oldest first.
func (s *Service) ListWithManifests(ctx context.Context, f domain.ShipmentFilter) ([]domain.ShipmentWithManifest, error) {
	if f.Status != nil && !f.Status.Valid() {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListWithManifests(ctx, f)
}

// UpdateStatus sets a shipment's status on behalf of an admin actor.
// The updated_at timestamp refreshes even when the status is unchanged.
func (s *Service) UpdateStatus(ctx context.Context, trackingID string, status domain.ShipmentStatus, actor domain.Actor) (*domain.Shipment, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" || !status.Valid() {
		return nil, apperr.ErrInvalid
	}
	if actor.Role != domain.RoleAdmin {
		return nil, apperr.ErrPermission
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rec, err := s.repo.UpdateStatus(ctx, trackingID, status)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperr.ErrNotFound
	}

	if s.statusUpdated != nil {
		s.statusUpdated.Inc()
	}
	s.logger.Info("shipment status updated",
		logx.String("event", "status_updated"),
		logx.String("tracking_id", rec.TrackingID),
		logx.String("status", string(rec.Status)),
		logx.String("actor", actor.Username),
	)
	return rec, nil
}
