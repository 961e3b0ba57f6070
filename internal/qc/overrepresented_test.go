package qc

import "testing"

func TestGetCorrectedCountNoFreeze(t *testing.T) {
	// countAtLimit == totalCount means nothing froze out of observation, so
	// the raw count should pass through unchanged.
	got := getCorrectedCount(1000, 1000, 3, 42)
	if got != 42 {
		t.Errorf("getCorrectedCount with no freeze = %f, want 42", got)
	}
}

func TestGetCorrectedCountScalesUpPastFreeze(t *testing.T) {
	// Once observation froze early (countAtLimit < totalCount), the
	// corrected estimate should scale the observed count up, never down.
	got := getCorrectedCount(500, 2000, 1, 10)
	if got < 10 {
		t.Errorf("getCorrectedCount = %f, want >= the raw observed count 10", got)
	}
}

func TestOverrepresentedSequencesFlagsHighShare(t *testing.T) {
	cfg := newTestConfig(t)
	m := NewOverrepresentedSequences(cfg, nil)
	dominant := []byte("ACGTACGTACGTACGTACGTACGT")
	for i := 0; i < 50; i++ {
		m.Process(&Record{Sequence: dominant})
	}
	for i := 0; i < 50; i++ {
		m.Process(&Record{Sequence: []byte{byte('A' + byte(i%4)), 'C', 'G', 'T'}})
	}
	frags, err := m.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}
	if len(frags) != 2 {
		t.Fatalf("expected 2 fragments (duplication levels + overrepresented), got %d", len(frags))
	}
	overPayload := frags[1].Payload.(*OverrepresentedSeqsPayload)
	found := false
	for _, r := range overPayload.Rows {
		if r.Sequence == string(dominant) && r.Count == 50 {
			found = true
			if r.PossibleSource != "No Hit" {
				t.Errorf("expected No Hit with an empty catalog, got %q", r.PossibleSource)
			}
		}
	}
	if !found {
		t.Fatalf("expected the 50%%-share sequence to be reported, rows=%+v", overPayload.Rows)
	}
	if frags[1].Status != Fail {
		t.Errorf("status = %v, want Fail for a sequence at 50%% share", frags[1].Status)
	}
}

func TestOverrepresentedSequencesPrefixesLongReads(t *testing.T) {
	cfg := newTestConfig(t)
	m := NewOverrepresentedSequences(cfg, nil)
	long := make([]byte, 120)
	for i := range long {
		long[i] = "ACGT"[i%4]
	}
	m.Process(&Record{Sequence: long})
	if len(m.sequences) != 1 {
		t.Fatalf("expected a single collapsed key for one long read, got %d", len(m.sequences))
	}
	for key := range m.sequences {
		if len(key) != overrepresentedPrefixLen {
			t.Errorf("dedup key length = %d, want %d", len(key), overrepresentedPrefixLen)
		}
	}
}
