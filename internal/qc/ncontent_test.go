package qc

import "testing"

func TestNContentFlagsHeavyNRuns(t *testing.T) {
	cfg := newTestConfig(t)
	m := NewNContent(cfg)
	for i := 0; i < 100; i++ {
		m.Process(&Record{Sequence: []byte("NNNNACGT")})
	}
	frags, err := m.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}
	payload := frags[0].Payload.(*NContentPayload)
	if payload.Percentages[0] < 99.0 {
		t.Errorf("position 0 N-percentage = %f, want ~100", payload.Percentages[0])
	}
	if payload.Percentages[4] > 1.0 {
		t.Errorf("position 4 N-percentage = %f, want ~0", payload.Percentages[4])
	}
	if frags[0].Status != Fail {
		t.Errorf("status = %v, want Fail with a 50%% N run", frags[0].Status)
	}
}

func TestNContentNoNs(t *testing.T) {
	cfg := newTestConfig(t)
	m := NewNContent(cfg)
	for i := 0; i < 10; i++ {
		m.Process(&Record{Sequence: []byte("ACGTACGT")})
	}
	frags, err := m.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}
	if frags[0].Status != Pass {
		t.Errorf("status = %v, want Pass with no N bases", frags[0].Status)
	}
}
