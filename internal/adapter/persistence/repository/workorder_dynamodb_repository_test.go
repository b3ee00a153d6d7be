package repository

import (
	"testing"
	"time"

	"pma_workorders/internal/domain/entities"
)

func TestWorkOrderItemRangeKeySortsSubSecondTimestamps(t *testing.T) {
	older := entities.WorkOrder{ID: "a"}
	older.CreatedAt = time.Date(2025, 3, 14, 10, 0, 5, 500_000_000, time.UTC)
	newer := entities.WorkOrder{ID: "b"}
	newer.CreatedAt = time.Date(2025, 3, 14, 10, 0, 5, 520_000_000, time.UTC)

	a := toWorkOrderItem(older)
	b := toWorkOrderItem(newer)

	// created_at is the owner-index range key; string order must be
	// chronological order or ListByOwner comes back misordered.
	if len(a.CreatedAt) != len(b.CreatedAt) {
		t.Fatalf("range keys are not fixed width: %q vs %q", a.CreatedAt, b.CreatedAt)
	}
	if a.CreatedAt >= b.CreatedAt {
		t.Fatalf("older timestamp %q sorts after newer %q", a.CreatedAt, b.CreatedAt)
	}
}

func TestWorkOrderItemTimestampRoundTrip(t *testing.T) {
	wo := entities.NewDraft(time.Now().UTC())
	wo.ID = "abc-123"
	wo.OwnerID = "user-1"
	wo.CreatedAt = time.Date(2025, 3, 14, 10, 0, 5, 520_000_000, time.UTC)
	wo.UpdatedAt = time.Date(2025, 3, 14, 11, 30, 0, 0, time.UTC)

	got := fromWorkOrderItem(toWorkOrderItem(wo))
	if !got.CreatedAt.Equal(wo.CreatedAt) {
		t.Errorf("createdAt round trip: got %v want %v", got.CreatedAt, wo.CreatedAt)
	}
	if !got.UpdatedAt.Equal(wo.UpdatedAt) {
		t.Errorf("updatedAt round trip: got %v want %v", got.UpdatedAt, wo.UpdatedAt)
	}
}
