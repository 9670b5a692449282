package store

import (
	"context"
	"errors"
	"testing"
)

func TestEventRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Events.Create(ctx, Event{
		Title:     "Standup",
		StartTime: strPtr("2026-09-01T09:00:00"),
		EndTime:   strPtr("2026-09-01T09:15:00"),
	})
	if err != nil {
		t.Fatalf("creating event: %v", err)
	}

	events, err := s.Events.List(ctx)
	if err != nil {
		t.Fatalf("listing events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	got := events[0]
	if got.ID != id || got.Title != "Standup" {
		t.Errorf("unexpected event: %+v", got)
	}
	// Client-supplied times are stored verbatim.
	if got.StartTime == nil || *got.StartTime != "2026-09-01T09:00:00" {
		t.Errorf("start_time = %v, want verbatim value", got.StartTime)
	}
	if got.EndTime == nil || *got.EndTime != "2026-09-01T09:15:00" {
		t.Errorf("end_time = %v, want verbatim value", got.EndTime)
	}
}

func TestEventListReturnsAll(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Events.Create(ctx, Event{Title: "first"}); err != nil {
		t.Fatalf("creating event: %v", err)
	}
	if _, err := s.Events.Create(ctx, Event{Title: "second"}); err != nil {
		t.Fatalf("creating event: %v", err)
	}

	events, err := s.Events.List(ctx)
	if err != nil {
		t.Fatalf("listing events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	// The listing contract is membership only; no ordering is promised.
	seen := map[string]bool{}
	for _, e := range events {
		seen[e.Title] = true
	}
	if !seen["first"] || !seen["second"] {
		t.Fatalf("listing missing events: %+v", events)
	}
}

func TestEventUpdateAndDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Events.Create(ctx, Event{Title: "Planning"})
	if err != nil {
		t.Fatalf("creating event: %v", err)
	}

	if err := s.Events.Update(ctx, Event{ID: id, Title: "Retro", PriorityID: int64Ptr(2)}); err != nil {
		t.Fatalf("updating event: %v", err)
	}
	title, err := s.Events.GetTitle(ctx, id)
	if err != nil {
		t.Fatalf("getting title: %v", err)
	}
	if title != "Retro" {
		t.Errorf("title = %q, want %q", title, "Retro")
	}

	if err := s.Events.Delete(ctx, id); err != nil {
		t.Fatalf("deleting event: %v", err)
	}
	if _, err := s.Events.GetTitle(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
