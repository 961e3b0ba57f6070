package qc

import (
	"testing"

	"github.com/vmikk/seqqc/internal/config"
)

func newTestConfig(t *testing.T) *Config {
	t.Helper()
	limits, err := config.New()
	if err != nil {
		t.Fatalf("config.New() failed: %v", err)
	}
	return &Config{Limits: limits, GroupType: GroupNone}
}

func TestPerBaseQualityScoresHighQuality(t *testing.T) {
	cfg := newTestConfig(t)
	m := NewPerBaseQualityScores(cfg)
	for i := 0; i < 200; i++ {
		m.Process(&Record{Sequence: []byte("ACGT"), Quality: []byte{'I', 'I', 'I', 'I'}})
	}
	frags, err := m.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}
	if len(frags) != 1 {
		t.Fatalf("expected 1 fragment, got %d", len(frags))
	}
	if frags[0].Status != Pass {
		t.Errorf("status = %v, want Pass", frags[0].Status)
	}
	payload := frags[0].Payload.(*PerBaseQualityScoresPayload)
	if len(payload.Rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(payload.Rows))
	}
	for _, r := range payload.Rows {
		if r.Mean < 39.0 || r.Mean > 41.0 {
			t.Errorf("row %+v mean out of expected range for 'I' quality", r)
		}
	}
}

func TestPerBaseQualityScoresLowQualityFails(t *testing.T) {
	cfg := newTestConfig(t)
	m := NewPerBaseQualityScores(cfg)
	for i := 0; i < 200; i++ {
		m.Process(&Record{Sequence: []byte("ACGT"), Quality: []byte{'#', '#', '#', '#'}})
	}
	frags, err := m.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}
	if frags[0].Status != Fail {
		t.Errorf("status = %v, want Fail for uniformly low quality", frags[0].Status)
	}
}
