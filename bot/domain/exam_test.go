package domain

import (
	"testing"
	"time"
)

func TestExamRecordExpired(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 30, 0, 0, time.Local)
	cases := []struct {
		date    string
		expired bool
		ok      bool
	}{
		{"2026-08-28", true, true},
		{"2026-08-29", false, true},
		{"2026-08-30", false, true},
		{"28-08-2026", false, false},
		{"", false, false},
	}
	for _, c := range cases {
		rec := ExamRecord{Date: c.date}
		expired, ok := rec.Expired(now)
		if expired != c.expired || ok != c.ok {
			t.Fatalf("Expired(%q) = %v, %v; expected %v, %v", c.date, expired, ok, c.expired, c.ok)
		}
	}
}

func TestNewExamRecordAssignsID(t *testing.T) {
	a := NewExamRecord("Midterm", "2026-09-10", "10:00", "rooms 1-3")
	b := NewExamRecord("Midterm", "2026-09-10", "10:00", "rooms 1-3")
	if a.ID == "" || b.ID == "" {
		t.Fatal("records must carry an id")
	}
	if a.ID == b.ID {
		t.Fatal("ids must be unique per record")
	}
	if a.Name != "Midterm" || a.Date != "2026-09-10" || a.Time != "10:00" || a.Content != "rooms 1-3" {
		t.Fatalf("fields not carried over: %+v", a)
	}
}
