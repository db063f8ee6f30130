package domain

// List of possible shipment statuses. The pipeline is conceptually
// Pending → In Transit → Delivered, but ordering is not enforced:
// an admin may set any status at any time.
const (
	StatusPending   ShipmentStatus = "Pending"
	StatusInTransit ShipmentStatus = "In Transit"
	StatusDelivered ShipmentStatus = "Delivered"
)

// List of possible user roles
const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

var allowedStatuses = [...]ShipmentStatus{
	StatusPending, StatusInTransit, StatusDelivered,
}

var allowedRoles = [...]Role{RoleAdmin, RoleUser}

// Valid checks if the ShipmentStatus is valid
func (s ShipmentStatus) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the Role is valid
func (r Role) Valid() bool {
	for _, v := range allowedRoles {
		if r == v {
			return true
		}
	}
	return false
}

// Statuses returns the full status partition in pipeline order.
func Statuses() []ShipmentStatus {
	return allowedStatuses[:]
}
