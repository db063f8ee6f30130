package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"trackswift/internal/apperr"
	"trackswift/internal/domain"
)

const shipmentColumns = `id, tracking_id, sender_name, receiver_name, origin, destination, status, owner, created_at, updated_at`

// ShipmentRepo represents shipment repository.
type ShipmentRepo struct{ db *pgxpool.Pool }

// NewShipmentRepo creates a new ShipmentRepo.
func NewShipmentRepo(db *pgxpool.Pool) *ShipmentRepo { return &ShipmentRepo{db: db} }

func scanShipment(row pgx.Row, s *domain.Shipment) error {
	return row.Scan(&s.ID, &s.TrackingID, &s.SenderName, &s.ReceiverName,
		&s.Origin, &s.Destination, &s.Status, &s.Owner, &s.CreatedAt, &s.UpdatedAt)
}

// Create persists a shipment and its optional manifest in one transaction.
// Timestamps come from the database so created_at == updated_at on insert.
func (r *ShipmentRepo) Create(ctx context.Context, s *domain.Shipment, m *domain.Manifest) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				err = fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
			}
		}
	}()

	err = tx.QueryRow(ctx, `
        INSERT INTO shipments (tracking_id, sender_name, receiver_name, origin, destination, status, owner, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
        RETURNING id, created_at, updated_at
    `, s.TrackingID, s.SenderName, s.ReceiverName, s.Origin, s.Destination, string(s.Status), s.Owner).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.ErrConflict
		}
		return fmt.Errorf("insert shipment: %w", err)
	}

	if m != nil {
		m.ShipmentID = s.ID
		err = tx.QueryRow(ctx, `
            INSERT INTO manifests (shipment_id, items, quantity, total_cost)
            VALUES ($1, $2, $3, $4)
            RETURNING id
        `, m.ShipmentID, m.Items, m.Quantity, m.TotalCost).Scan(&m.ID)
		if err != nil {
			return fmt.Errorf("insert manifest: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// GetByTrackingID returns a shipment by its tracking ID, or nil when absent.
func (r *ShipmentRepo) GetByTrackingID(ctx context.Context, trackingID string) (*domain.Shipment, error) {
	var s domain.Shipment
	row := r.db.QueryRow(ctx,
		`SELECT `+shipmentColumns+` FROM shipments WHERE tracking_id = $1`, trackingID)
	if err := scanShipment(row, &s); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment %q: %w", trackingID, err)
	}
	return &s, nil
}

// List returns shipments matching the filter, ordered by created_at
// ascending with id as a deterministic tiebreak.
func (r *ShipmentRepo) List(ctx context.Context, f domain.ShipmentFilter) ([]domain.Shipment, error) {
	q := `SELECT ` + shipmentColumns + ` FROM shipments`
	where, args := filterClauses(f)
	q += where + ` ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Shipment, 0)
	for rows.Next() {
		var s domain.Shipment
		if err := scanShipment(rows, &s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListRecent returns the latest shipments by creation time.
func (r *ShipmentRepo) ListRecent(ctx context.Context, limit int) ([]domain.Shipment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+shipmentColumns+` FROM shipments ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent shipments: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Shipment, 0, limit)
	for rows.Next() {
		var s domain.Shipment
		if err := scanShipment(rows, &s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListWithManifests returns shipments joined with their manifest, if any.
func (r *ShipmentRepo) ListWithManifests(ctx context.Context, f domain.ShipmentFilter) ([]domain.ShipmentWithManifest, error) {
	q := `
        SELECT s.id, s.tracking_id, s.sender_name, s.receiver_name, s.origin, s.destination,
               s.status, s.owner, s.created_at, s.updated_at,
               m.id, m.items, m.quantity, m.total_cost
        FROM shipments s
        LEFT JOIN manifests m ON m.shipment_id = s.id`
	where, args := filterClauses(f)
	q += where + ` ORDER BY s.created_at ASC, s.id ASC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list shipments with manifests: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ShipmentWithManifest, 0)
	for rows.Next() {
		var (
			sw        domain.ShipmentWithManifest
			mID       *int64
			items     *string
			quantity  *int
			totalCost *float64
		)
		s := &sw.Shipment
		if err := rows.Scan(&s.ID, &s.TrackingID, &s.SenderName, &s.ReceiverName,
			&s.Origin, &s.Destination, &s.Status, &s.Owner, &s.CreatedAt, &s.UpdatedAt,
			&mID, &items, &quantity, &totalCost); err != nil {
			return nil, err
		}
		if mID != nil {
			sw.Manifest = &domain.Manifest{
				ID:         *mID,
				ShipmentID: s.ID,
				Items:      *items,
				Quantity:   *quantity,
				TotalCost:  *totalCost,
			}
		}
		out = append(out, sw)
	}
	return out, rows.Err()
}

// UpdateStatus sets a shipment's status and refreshes updated_at in a single
// statement, returning the updated row, or nil when no shipment matches.
// The timestamp refresh happens even when the status is unchanged.
func (r *ShipmentRepo) UpdateStatus(ctx context.Context, trackingID string, status domain.ShipmentStatus) (*domain.Shipment, error) {
	var s domain.Shipment
	row := r.db.QueryRow(ctx, `
        UPDATE shipments
        SET status = $2, updated_at = now()
        WHERE tracking_id = $1
        RETURNING `+shipmentColumns+`
    `, trackingID, string(status))
	if err := scanShipment(row, &s); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update shipment %q status: %w", trackingID, err)
	}
	return &s, nil
}

// CountByStatus returns shipment counts grouped by status, optionally
// restricted to one owner. Absent statuses are not present in the map.
func (r *ShipmentRepo) CountByStatus(ctx context.Context, owner *string) (map[domain.ShipmentStatus]int64, error) {
	q := `SELECT status, COUNT(*) FROM shipments`
	args := make([]any, 0, 1)
	if owner != nil {
		q += ` WHERE owner = $1`
		args = append(args, *owner)
	}
	q += ` GROUP BY status`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("count shipments by status: %w", err)
	}
	defer rows.Close()

	out := make(map[domain.ShipmentStatus]int64)
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		out[domain.ShipmentStatus(status)] = count
	}
	return out, rows.Err()
}

// SumManifestTotals sums manifest total_cost over shipments, optionally
// restricted to one owner.
func (r *ShipmentRepo) SumManifestTotals(ctx context.Context, owner *string) (float64, error) {
	q := `
        SELECT COALESCE(SUM(m.total_cost), 0)
        FROM manifests m
        JOIN shipments s ON s.id = m.shipment_id`
	args := make([]any, 0, 1)
	if owner != nil {
		q += ` WHERE s.owner = $1`
		args = append(args, *owner)
	}

	var total float64
	if err := r.db.QueryRow(ctx, q, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum manifest totals: %w", err)
	}
	return total, nil
}

func filterClauses(f domain.ShipmentFilter) (string, []any) {
	clauses := make([]string, 0, 4)
	args := make([]any, 0, 4)
	add := func(expr string, v any) {
		args = append(args, v)
		clauses = append(clauses, fmt.Sprintf(expr, len(args)))
	}

	if f.Status != nil {
		add("status = $%d", string(*f.Status))
	}
	if f.Owner != nil {
		add("owner = $%d", *f.Owner)
	}
	if f.CreatedFrom != nil {
		add("created_at >= $%d", *f.CreatedFrom)
	}
	if f.CreatedTo != nil {
		add("created_at <= $%d", *f.CreatedTo)
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}
