package api

import (
	"testing"
	"time"
)

func TestExportDownloadStoreTakeIsOneShot(t *testing.T) {
	s := newExportDownloadStore()

	token := s.issue("/exports/pricing.xlsx", time.Minute)
	if token == "" || s.pending() != 1 {
		t.Fatalf("token=%q pending=%d", token, s.pending())
	}

	d, ok := s.take(token)
	if !ok || d.filePath != "/exports/pricing.xlsx" {
		t.Fatalf("take=%+v,%v", d, ok)
	}
	if _, ok := s.take(token); ok {
		t.Fatalf("token should be invalid after first take")
	}
	if s.pending() != 0 {
		t.Fatalf("pending=%d, want 0", s.pending())
	}
}

func TestExportDownloadStoreExpiry(t *testing.T) {
	s := newExportDownloadStore()
	now := time.Date(2024, 10, 2, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	token := s.issue("a.xlsx", 10*time.Minute)
	other := s.issue("b.xlsx", time.Hour)

	now = now.Add(11 * time.Minute)
	if _, ok := s.take(token); ok {
		t.Fatalf("expired token should be rejected")
	}
	if s.pending() != 1 {
		t.Fatalf("pending=%d, want 1", s.pending())
	}
	if d, ok := s.take(other); !ok || d.filePath != "b.xlsx" {
		t.Fatalf("take(other)=%+v,%v", d, ok)
	}
}
