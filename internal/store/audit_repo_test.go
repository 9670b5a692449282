package store

import (
	"context"
	"testing"
)

func TestAuditLogAppendAndList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	entries := []AuditEntry{
		{ActionType: "create", ItemTypeID: ItemTypeTask, ItemID: 1, ItemName: strPtr("Buy milk")},
		{ActionType: "update", ItemTypeID: ItemTypeTask, ItemID: 1, ItemName: strPtr("Buy oat milk")},
		{ActionType: "delete", ItemTypeID: ItemTypeNote, ItemID: 7, ItemName: nil},
	}

	var ids []int64
	for _, e := range entries {
		id, err := s.AuditLog.Record(ctx, e)
		if err != nil {
			t.Fatalf("recording entry: %v", err)
		}
		ids = append(ids, id)
	}

	got, err := s.AuditLog.List(ctx)
	if err != nil {
		t.Fatalf("listing audit log: %v", err)
	}
	if len(got) != len(entries) {
		t.Fatalf("expected %d entries, got %d", len(entries), len(got))
	}

	for i, e := range got {
		if e.ID != ids[i] {
			t.Errorf("entry %d id = %d, want %d (insertion order)", i, e.ID, ids[i])
		}
		if e.ActionType != entries[i].ActionType {
			t.Errorf("entry %d action = %q, want %q", i, e.ActionType, entries[i].ActionType)
		}
		if e.Time.IsZero() {
			t.Errorf("entry %d has no timestamp", i)
		}
	}

	// The deleted item's id survives even though nothing references it.
	if got[2].ItemID != 7 || got[2].ItemName != nil {
		t.Errorf("unexpected third entry: %+v", got[2])
	}
}
