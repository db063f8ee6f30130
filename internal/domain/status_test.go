package domain

import "testing"

func TestShipmentStatus_Valid(t *testing.T) {
	t.Parallel()

	for _, s := range Statuses() {
		if !s.Valid() {
			t.Fatalf("status %q must be valid", s)
		}
	}
	for _, s := range []ShipmentStatus{"", "pending", "Lost", "IN TRANSIT"} {
		if s.Valid() {
			t.Fatalf("status %q must be invalid", s)
		}
	}
}

func TestRole_Valid(t *testing.T) {
	t.Parallel()

	if !RoleAdmin.Valid() || !RoleUser.Valid() {
		t.Fatal("admin and user roles must be valid")
	}
	for _, r := range []Role{"", "Admin", "manager", "root"} {
		if r.Valid() {
			t.Fatalf("role %q must be invalid", r)
		}
	}
}

func TestStatuses_ClosedPartition(t *testing.T) {
	t.Parallel()

	got := Statuses()
	if len(got) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(got))
	}
	if got[0] != StatusPending || got[1] != StatusInTransit || got[2] != StatusDelivered {
		t.Fatalf("unexpected pipeline order: %v", got)
	}
}
