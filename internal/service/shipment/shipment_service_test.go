package shipment

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"trackswift/internal/apperr"
	"trackswift/internal/domain"
	"trackswift/internal/logx"
)

type mockShipmentRepo struct {
	createFn            func(ctx context.Context, s *domain.Shipment, m *domain.Manifest) error
	getFn               func(ctx context.Context, trackingID string) (*domain.Shipment, error)
	listFn              func(ctx context.Context, f domain.ShipmentFilter) ([]domain.Shipment, error)
	listWithManifestsFn func(ctx context.Context, f domain.ShipmentFilter) ([]domain.ShipmentWithManifest, error)
	updateStatusFn      func(ctx context.Context, trackingID string, status domain.ShipmentStatus) (*domain.Shipment, error)
}

func (m *mockShipmentRepo) Create(ctx context.Context, s *domain.Shipment, mf *domain.Manifest) error {
	return m.createFn(ctx, s, mf)
}

func (m *mockShipmentRepo) GetByTrackingID(ctx context.Context, trackingID string) (*domain.Shipment, error) {
	return m.getFn(ctx, trackingID)
}

func (m *mockShipmentRepo) List(ctx context.Context, f domain.ShipmentFilter) ([]domain.Shipment, error) {
	return m.listFn(ctx, f)
}

func (m *mockShipmentRepo) ListWithManifests(ctx context.Context, f domain.ShipmentFilter) ([]domain.ShipmentWithManifest, error) {
	return m.listWithManifestsFn(ctx, f)
}

func (m *mockShipmentRepo) UpdateStatus(ctx context.Context, trackingID string, status domain.ShipmentStatus) (*domain.Shipment, error) {
	return m.updateStatusFn(ctx, trackingID, status)
}

func newTestService(repo shipmentRepository) *Service {
	return NewService(repo, time.Second, logx.Nop(), nil, nil)
}

func validInput() domain.NewShipment {
	return domain.NewShipment{
		SenderName:   "John Doe",
		ReceiverName: "Jane Smith",
		Origin:       "New York",
		Destination:  "Los Angeles",
		Owner:        "customer1",
	}
}

func TestNewService_ZeroTimeoutUsesDefault(t *testing.T) {
	t.Parallel()

	service := NewService(&mockShipmentRepo{}, 0, logx.Nop(), nil, nil)
	if service.operationTimeout != 3*time.Second {
		t.Fatalf("default timeout 3s, got %v", service.operationTimeout)
	}
}

func TestService_Create_Success(t *testing.T) {
	t.Parallel()

	var stored *domain.Shipment
	repo := &mockShipmentRepo{
		createFn: func(ctx context.Context, s *domain.Shipment, m *domain.Manifest) error {
			stored = s
			return nil
		},
	}
	service := newTestService(repo)

	got, err := service.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != stored {
		t.Fatalf("expected the stored record back")
	}
	if got.Status != domain.StatusPending {
		t.Fatalf("expected initial status Pending, got %q", got.Status)
	}
	if !regexp.MustCompile(`^[0-9A-F]{8}$`).MatchString(got.TrackingID) {
		t.Fatalf("tracking id %q must be 8 upper-hex chars", got.TrackingID)
	}
}

func TestService_Create_TrackingIDsDistinct(t *testing.T) {
	t.Parallel()

	repo := &mockShipmentRepo{
		createFn: func(ctx context.Context, s *domain.Shipment, m *domain.Manifest) error {
			return nil
		},
	}
	service := newTestService(repo)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		got, err := service.Create(context.Background(), validInput())
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if seen[got.TrackingID] {
			t.Fatalf("duplicate tracking id %q", got.TrackingID)
		}
		seen[got.TrackingID] = true
	}
}

func TestService_Create_EmptyFieldsInvalid(t *testing.T) {
	t.Parallel()

	repo := &mockShipmentRepo{
		createFn: func(ctx context.Context, s *domain.Shipment, m *domain.Manifest) error {
			t.Fatal("repo.Create must not be called on invalid input")
			return nil
		},
	}
	service := newTestService(repo)

	for _, mutate := range []func(*domain.NewShipment){
		func(in *domain.NewShipment) { in.Origin = "" },
		func(in *domain.NewShipment) { in.Destination = "   " },
		func(in *domain.NewShipment) { in.SenderName = "" },
		func(in *domain.NewShipment) { in.ReceiverName = "" },
		func(in *domain.NewShipment) { in.Owner = "" },
		func(in *domain.NewShipment) { in.Manifest = &domain.Manifest{Items: "", Quantity: 1} },
		func(in *domain.NewShipment) { in.Manifest = &domain.Manifest{Items: "Books", Quantity: 0} },
		func(in *domain.NewShipment) { in.Manifest = &domain.Manifest{Items: "Books", Quantity: 1, TotalCost: -1} },
	} {
		in := validInput()
		mutate(&in)
		if _, err := service.Create(context.Background(), in); !errors.Is(err, apperr.ErrInvalid) {
			t.Fatalf("expected ErrInvalid, got %v", err)
		}
	}
}

func TestService_Create_RetriesOnCollision(t *testing.T) {
	t.Parallel()

	calls := 0
	ids := make([]string, 0, 2)
	repo := &mockShipmentRepo{
		createFn: func(ctx context.Context, s *domain.Shipment, m *domain.Manifest) error {
			calls++
			ids = append(ids, s.TrackingID)
			if calls == 1 {
				return apperr.ErrConflict
			}
			return nil
		},
	}
	service := newTestService(repo)

	got, err := service.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", calls)
	}
	if ids[0] == ids[1] {
		t.Fatalf("collision retry must regenerate the tracking id")
	}
	if got.TrackingID != ids[1] {
		t.Fatalf("expected the second id %q, got %q", ids[1], got.TrackingID)
	}
}

func TestService_Create_GivesUpAfterRepeatedCollisions(t *testing.T) {
	t.Parallel()

	calls := 0
	repo := &mockShipmentRepo{
		createFn: func(ctx context.Context, s *domain.Shipment, m *domain.Manifest) error {
			calls++
			return apperr.ErrConflict
		},
	}
	service := newTestService(repo)

	_, err := service.Create(context.Background(), validInput())
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if calls != createAttempts {
		t.Fatalf("expected %d attempts, got %d", createAttempts, calls)
	}
}

func TestService_Create_PassesManifest(t *testing.T) {
	t.Parallel()

	var gotManifest *domain.Manifest
	repo := &mockShipmentRepo{
		createFn: func(ctx context.Context, s *domain.Shipment, m *domain.Manifest) error {
			gotManifest = m
			return nil
		},
	}
	service := newTestService(repo)

	in := validInput()
	in.Manifest = &domain.Manifest{Items: "Laptop, Phone", Quantity: 2, TotalCost: 1500}

	if _, err := service.Create(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotManifest == nil || gotManifest.Items != "Laptop, Phone" || gotManifest.Quantity != 2 {
		t.Fatalf("manifest not forwarded: %#v", gotManifest)
	}
}

func TestService_Track_Success(t *testing.T) {
	t.Parallel()

	expected := &domain.Shipment{TrackingID: "TRK001", Status: domain.StatusPending}
	repo := &mockShipmentRepo{
		getFn: func(ctx context.Context, trackingID string) (*domain.Shipment, error) {
			if trackingID != "TRK001" {
				t.Fatalf("expected TRK001, got %q", trackingID)
			}
			return expected, nil
		},
	}
	service := newTestService(repo)

	got, err := service.Track(context.Background(), "TRK001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != expected {
		t.Fatalf("expected %#v, got %#v", expected, got)
	}
}

func TestService_Track_NotFound(t *testing.T) {
	t.Parallel()

	repo := &mockShipmentRepo{
		getFn: func(ctx context.Context, trackingID string) (*domain.Shipment, error) {
			return nil, nil
		},
	}
	service := newTestService(repo)

	if _, err := service.Track(context.Background(), "NOPE0000"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Track_EmptyIDInvalid(t *testing.T) {
	t.Parallel()

	service := newTestService(&mockShipmentRepo{})
	if _, err := service.Track(context.Background(), "  "); !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestService_List_InvalidStatusFilter(t *testing.T) {
	t.Parallel()

	service := newTestService(&mockShipmentRepo{})
	bad := domain.ShipmentStatus("Lost")

	if _, err := service.List(context.Background(), domain.ShipmentFilter{Status: &bad}); !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestService_UpdateStatus_Success(t *testing.T) {
	t.Parallel()

	repo := &mockShipmentRepo{
		updateStatusFn: func(ctx context.Context, trackingID string, status domain.ShipmentStatus) (*domain.Shipment, error) {
			return &domain.Shipment{TrackingID: trackingID, Status: status}, nil
		},
	}
	service := newTestService(repo)

	got, err := service.UpdateStatus(context.Background(), "TRK001", domain.StatusDelivered,
		domain.Actor{Username: "admin", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.StatusDelivered {
		t.Fatalf("expected Delivered, got %q", got.Status)
	}
}

func TestService_UpdateStatus_PermissionDenied(t *testing.T) {
	t.Parallel()

	repo := &mockShipmentRepo{
		updateStatusFn: func(ctx context.Context, trackingID string, status domain.ShipmentStatus) (*domain.Shipment, error) {
			t.Fatal("repo.UpdateStatus must not be called for non-admin actors")
			return nil, nil
		},
	}
	service := newTestService(repo)

	_, err := service.UpdateStatus(context.Background(), "TRK001", domain.StatusDelivered,
		domain.Actor{Username: "customer1", Role: domain.RoleUser})
	if !errors.Is(err, apperr.ErrPermission) {
		t.Fatalf("expected ErrPermission, got %v", err)
	}
}

func TestService_UpdateStatus_NotFound(t *testing.T) {
	t.Parallel()

	repo := &mockShipmentRepo{
		updateStatusFn: func(ctx context.Context, trackingID string, status domain.ShipmentStatus) (*domain.Shipment, error) {
			return nil, nil
		},
	}
	service := newTestService(repo)

	_, err := service.UpdateStatus(context.Background(), "UNKNOWN1", domain.StatusDelivered,
		domain.Actor{Username: "admin", Role: domain.RoleAdmin})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_UpdateStatus_InvalidStatus(t *testing.T) {
	t.Parallel()

	service := newTestService(&mockShipmentRepo{})

	_, err := service.UpdateStatus(context.Background(), "TRK001", "Teleported",
		domain.Actor{Username: "admin", Role: domain.RoleAdmin})
	if !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestService_UpdateStatus_RepoError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("boom")
	repo := &mockShipmentRepo{
		updateStatusFn: func(ctx context.Context, trackingID string, status domain.ShipmentStatus) (*domain.Shipment, error) {
			return nil, wantErr
		},
	}
	service := newTestService(repo)

	_, err := service.UpdateStatus(context.Background(), "TRK001", domain.StatusInTransit,
		domain.Actor{Username: "admin", Role: domain.RoleAdmin})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected repo error, got %v", err)
	}
}
