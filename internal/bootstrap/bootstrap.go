// Package bootstrap prepares a database for the service: it creates the
// schema and loads the demo dataset. Both steps are idempotent so the
// dbtool can be re-run safely.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"trackswift/internal/apperr"
	"trackswift/internal/domain"
	"trackswift/internal/logx"
	"trackswift/internal/repository"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS shipments (
        id BIGSERIAL PRIMARY KEY,
        tracking_id TEXT UNIQUE NOT NULL,
        sender_name TEXT NOT NULL,
        receiver_name TEXT NOT NULL,
        origin TEXT NOT NULL,
        destination TEXT NOT NULL,
        status TEXT NOT NULL,
        owner TEXT NOT NULL,
        created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
        updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )`,
	`CREATE TABLE IF NOT EXISTS manifests (
        id BIGSERIAL PRIMARY KEY,
        shipment_id BIGINT NOT NULL REFERENCES shipments (id) ON DELETE CASCADE,
        items TEXT NOT NULL,
        quantity INTEGER NOT NULL,
        total_cost DOUBLE PRECISION NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS users (
        id BIGSERIAL PRIMARY KEY,
        username TEXT UNIQUE NOT NULL,
        credential TEXT NOT NULL,
        role TEXT NOT NULL
    )`,
	`CREATE INDEX IF NOT EXISTS idx_shipments_owner ON shipments (owner)`,
	`CREATE INDEX IF NOT EXISTS idx_shipments_status ON shipments (status)`,
	`CREATE INDEX IF NOT EXISTS idx_manifests_shipment_id ON manifests (shipment_id)`,
}

// EnsureSchema creates the tables and indexes if they do not exist yet.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	for i, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: statement #%d: %w", i+1, err)
		}
	}
	return nil
}

type seedShipment struct {
	trackingID   string
	senderName   string
	receiverName string
	origin       string
	destination  string
	status       domain.ShipmentStatus
	owner        string
	createdAt    time.Time
	items        string
	quantity     int
	totalCost    float64
}

var seedUsers = []domain.User{
	{Username: "admin", Credential: "admin", Role: domain.RoleAdmin},
	{Username: "manager", Credential: "manager", Role: domain.RoleAdmin},
	{Username: "customer1", Credential: "cust1", Role: domain.RoleUser},
	{Username: "customer2", Credential: "cust2", Role: domain.RoleUser},
	{Username: "shipper", Credential: "ship1", Role: domain.RoleUser},
}

func seedShipments() []seedShipment {
	at := func(day, hour int) time.Time {
		return time.Date(2024, 1, day, hour, 0, 0, 0, time.UTC)
	}
	return []seedShipment{
		{"TRK001", "John Doe", "Jane Smith", "New York", "Los Angeles", domain.StatusPending, "admin", at(1, 10), "Laptop, Phone", 2, 1500.0},
		{"TRK002", "Alice Brown", "Bob Wilson", "Chicago", "Miami", domain.StatusInTransit, "manager", at(2, 11), "Books, Notebook", 5, 200.0},
		{"TRK003", "Customer One", "Receiver A", "Boston", "Seattle", domain.StatusDelivered, "customer1", at(3, 12), "Clothes", 10, 300.0},
		{"TRK004", "Customer Two", "Receiver B", "Dallas", "Denver", domain.StatusPending, "customer2", at(4, 13), "Electronics", 1, 800.0},
		{"TRK005", "Shipper X", "Receiver C", "Phoenix", "Portland", domain.StatusInTransit, "shipper", at(5, 14), "Furniture", 3, 500.0},
		{"TRK006", "Admin Test", "User Test", "Atlanta", "Austin", domain.StatusDelivered, "admin", at(6, 15), "Test Items", 4, 100.0},
		{"TRK007", "Manager Shipment", "Client D", "San Francisco", "San Diego", domain.StatusPending, "manager", at(7, 16), "Manager Goods", 6, 400.0},
		{"TRK008", "User Shipment", "Friend E", "Houston", "Honolulu", domain.StatusInTransit, "customer1", at(8, 17), "User Parcel", 2, 250.0},
	}
}

// EnsureSeed loads the demo accounts and shipments. Accounts that already
// exist are left untouched; shipments are only inserted into an empty table.
func EnsureSeed(ctx context.Context, db *pgxpool.Pool, logger logx.Logger) error {
	users := repository.NewUserRepo(db)
	for _, u := range seedUsers {
		if _, err := users.Create(ctx, &u); err != nil {
			if errors.Is(err, apperr.ErrConflict) {
				continue
			}
			return fmt.Errorf("seed user %q: %w", u.Username, err)
		}
		logger.Info("seeded user", logx.String("username", u.Username), logx.String("role", string(u.Role)))
	}

	var count int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM shipments`).Scan(&count); err != nil {
		return fmt.Errorf("seed shipments: count: %w", err)
	}
	if count > 0 {
		logger.Info("shipments already present, skipping seed", logx.Int64("count", count))
		return nil
	}

	for _, s := range seedShipments() {
		var shipmentID int64
		err := db.QueryRow(ctx, `
            INSERT INTO shipments (tracking_id, sender_name, receiver_name, origin, destination, status, owner, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
            RETURNING id
        `, s.trackingID, s.senderName, s.receiverName, s.origin, s.destination,
			string(s.status), s.owner, s.createdAt).Scan(&shipmentID)
		if err != nil {
			return fmt.Errorf("seed shipment %q: %w", s.trackingID, err)
		}

		if _, err := db.Exec(ctx, `
            INSERT INTO manifests (shipment_id, items, quantity, total_cost)
            VALUES ($1, $2, $3, $4)
        `, shipmentID, s.items, s.quantity, s.totalCost); err != nil {
			return fmt.Errorf("seed manifest for %q: %w", s.trackingID, err)
		}
	}
	logger.Info("seeded demo shipments", logx.Int("count", len(seedShipments())))

	return nil
}
