package domain

import "time"

type (
	// ShipmentStatus represents the delivery status of a shipment.
	ShipmentStatus string
	// Role represents the authorization level of a user.
	Role string
)

// Shipment represents a tracked shipment record.
type Shipment struct {
	ID           int64
	TrackingID   string
	SenderName   string
	ReceiverName string
	Origin       string
	Destination  string
	Status       ShipmentStatus
	Owner        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Manifest describes the goods carried by a shipment.
type Manifest struct {
	ID         int64
	ShipmentID int64
	Items      string
	Quantity   int
	TotalCost  float64
}

// NewShipment carries the caller-supplied fields for shipment creation.
// Tracking ID, status and timestamps are assigned by the store.
type NewShipment struct {
	SenderName   string
	ReceiverName string
	Origin       string
	Destination  string
	Owner        string
	Manifest     *Manifest
}

// ShipmentFilter is a predicate combination for listing shipments.
// A nil field means the attribute is not filtered on.
type ShipmentFilter struct {
	Status      *ShipmentStatus
	Owner       *string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// ShipmentWithManifest joins a shipment with its manifest, if any.
type ShipmentWithManifest struct {
	Shipment Shipment
	Manifest *Manifest
}

// Actor identifies the requester on role-gated operations.
type Actor struct {
	Username string
	Role     Role
}
