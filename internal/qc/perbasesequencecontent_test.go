package qc

import "testing"

func TestPerBaseSequenceContentBalanced(t *testing.T) {
	cfg := newTestConfig(t)
	m := NewPerBaseSequenceContent(cfg)
	for i := 0; i < 100; i++ {
		m.Process(&Record{Sequence: []byte("GATC")})
	}
	frags, err := m.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}
	// Each read holds one of each base, but every position carries a single
	// base, so the per-position |C-G| and |T-A| differences reach 100%.
	if frags[0].Status != Fail {
		t.Errorf("status = %v, want Fail when every position is a single base", frags[0].Status)
	}
	payload := frags[0].Payload.(*PerBaseSequenceContentPayload)
	if payload.Rows[0].GPercent < 99.0 {
		t.Errorf("position 0 GPercent = %f, want ~100", payload.Rows[0].GPercent)
	}
}

func TestPerBaseSequenceContentSkewed(t *testing.T) {
	cfg := newTestConfig(t)
	m := NewPerBaseSequenceContent(cfg)
	for i := 0; i < 100; i++ {
		m.Process(&Record{Sequence: []byte("GGGG")})
	}
	frags, err := m.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}
	if frags[0].Status != Fail {
		t.Errorf("status = %v, want Fail for an all-G composition", frags[0].Status)
	}
}
