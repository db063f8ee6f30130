package report

import (
	"context"
	"sort"
	"time"

	"trackswift/internal/apperr"
	"trackswift/internal/domain"
	"trackswift/internal/logx"
)

const defaultRecentLimit = 5

type recordStore interface {
	CountByStatus(ctx context.Context, owner *string) (map[domain.ShipmentStatus]int64, error)
	SumManifestTotals(ctx context.Context, owner *string) (float64, error)
	List(ctx context.Context, f domain.ShipmentFilter) ([]domain.Shipment, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Shipment, error)
}

// Summary holds the dashboard headline metrics. Total always equals
// Pending + InTransit + Delivered.
type Summary struct {
	Total     int64
	Pending   int64
	InTransit int64
	Delivered int64
	Revenue   float64
}

// Bucket is one point of a time series: the bucket start and the number
// of shipments created within it.
type Bucket struct {
	Start time.Time
	Count int64
}

// Service derives aggregate views from the record store. It keeps no
// state; every call recomputes from current store contents.
type Service struct {
	store            recordStore
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates and configures a report Service.
func NewService(store recordStore, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{store: store, operationTimeout: timeout, logger: logger}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Summary returns status counts and manifest revenue, optionally
// restricted to one owner.
func (s *Service) Summary(ctx context.Context, owner *string) (Summary, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	counts, err := s.store.CountByStatus(ctx, owner)
	if err != nil {
		return Summary{}, err
	}
	revenue, err := s.store.SumManifestTotals(ctx, owner)
	if err != nil {
		return Summary{}, err
	}

	out := Summary{
		Pending:   counts[domain.StatusPending],
		InTransit: counts[domain.StatusInTransit],
		Delivered: counts[domain.StatusDelivered],
		Revenue:   revenue,
	}
	out.Total = out.Pending + out.InTransit + out.Delivered
	return out, nil
}

// StatusDistribution returns shipment counts keyed by status, shaped for a
// proportion chart. Every known status is present, zero-valued when empty;
// statuses the store reports beyond the known set pass through unchanged.
func (s *Service) StatusDistribution(ctx context.Context, owner *string) (map[domain.ShipmentStatus]int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	counts, err := s.store.CountByStatus(ctx, owner)
	if err != nil {
		return nil, err
	}

	out := make(map[domain.ShipmentStatus]int64, len(counts)+3)
	for _, st := range domain.Statuses() {
		out[st] = 0
	}
	for st, n := range counts {
		out[st] = n
	}
	return out, nil
}

// TimeSeries buckets shipments by creation time at the given granularity,
// optionally filtered by status and owner. Buckets with no shipments are
// omitted; the result is ascending by bucket start.
func (s *Service) TimeSeries(ctx context.Context, g Granularity, status *domain.ShipmentStatus, owner *string) ([]Bucket, error) {
	if !g.Valid() {
		return nil, apperr.ErrInvalid
	}
	if status != nil && !status.Valid() {
		return nil, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	records, err := s.store.List(ctx, domain.ShipmentFilter{Status: status, Owner: owner})
	if err != nil {
		return nil, err
	}

	counts := make(map[time.Time]int64)
	for _, rec := range records {
		counts[g.BucketStart(rec.CreatedAt)]++
	}

	starts := make([]time.Time, 0, len(counts))
	for start := range counts {
		starts = append(starts, start)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	out := make([]Bucket, 0, len(starts))
	for _, start := range starts {
		out = append(out, Bucket{Start: start, Count: counts[start]})
	}
	return out, nil
}

// Recent returns the latest shipments for the dashboard table.
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.Shipment, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.store.ListRecent(ctx, limit)
}
