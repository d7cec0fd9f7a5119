package model

import (
	"testing"
	"time"
)

func TestNewRecord_ColumnOrderAndFormats(t *testing.T) {
	now := time.Date(2025, 12, 1, 14, 5, 9, 0, time.Local)
	inq := &Inquiry{
		Name:      "Asha",
		Email:     "asha@example.com",
		Phone:     "9876543210",
		VisitDate: "2025-12-01",
		Message:   "Interested in a room.",
	}

	rec := NewRecord(inq, now)
	want := Record{"01-12-2025", "02:05:09 PM", "Asha", "asha@example.com", "9876543210", "2025-12-01", "Interested in a room."}
	if len(rec) != len(RecordColumns) {
		t.Fatalf("expected %d columns, got %d", len(RecordColumns), len(rec))
	}
	for i := range want {
		if rec[i] != want[i] {
			t.Errorf("column %s: expected %q, got %q", RecordColumns[i], want[i], rec[i])
		}
	}
}

// TestNewRecord_TwelveHourClock verifies the meridiem marker and
// morning/evening conversion.
func TestNewRecord_TwelveHourClock(t *testing.T) {
	inq := &Inquiry{Name: "n", Email: "e@x.y", Message: "m"}

	morning := NewRecord(inq, time.Date(2025, 1, 2, 9, 30, 0, 0, time.Local))
	if morning[ColTime] != "09:30:00 AM" {
		t.Errorf("expected 09:30:00 AM, got %q", morning[ColTime])
	}

	midnight := NewRecord(inq, time.Date(2025, 1, 2, 0, 0, 0, 0, time.Local))
	if midnight[ColTime] != "12:00:00 AM" {
		t.Errorf("expected 12:00:00 AM, got %q", midnight[ColTime])
	}
}

func TestNewSubscriptionRecord(t *testing.T) {
	now := time.Date(2025, 3, 4, 18, 45, 1, 0, time.Local)
	rec := NewSubscriptionRecord("sub@example.com", now)

	want := Record{"04-03-2025", "06:45:01 PM", "Newsletter Subscriber", "sub@example.com", "", "", "Subscribed to newsletter"}
	for i := range want {
		if rec[i] != want[i] {
			t.Errorf("column %s: expected %q, got %q", RecordColumns[i], want[i], rec[i])
		}
	}
}

// Column indexes must track the canonical header; the duplicate check
// reads ColEmail out of both stores.
func TestRecordColumns_EmailIndex(t *testing.T) {
	if RecordColumns[ColEmail] != "Email" {
		t.Errorf("expected ColEmail to index the Email column, got %q", RecordColumns[ColEmail])
	}
	if len(RecordColumns) != 7 {
		t.Errorf("expected 7 canonical columns, got %d", len(RecordColumns))
	}
}
