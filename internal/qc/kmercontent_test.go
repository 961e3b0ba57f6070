package qc

import "testing"

func TestKmerContentFlagsPositionallyBiasedKmer(t *testing.T) {
	cfg := newTestConfig(t)
	m := NewKmerContent(cfg)
	biased := []byte("GATTACA") // 7-mer, always at position 0 below
	filler := []byte("TTTTTTTTTTTTTTTTTTTTTTTT")
	for i := 0; i < kmerSampleStride*60; i++ {
		read := append(append([]byte{}, biased...), filler...)
		m.Process(&Record{Sequence: read})
	}
	frags, err := m.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}
	payload := frags[0].Payload.(*KmerContentPayload)
	found := false
	for _, r := range payload.Rows {
		if r.Sequence == string(biased) {
			found = true
			if r.MaxObsExp < kmerObsExpCutoff {
				t.Errorf("expected obs/exp above the cutoff for a fixed-position kmer, got %f", r.MaxObsExp)
			}
		}
	}
	if !found {
		t.Fatalf("expected the fixed-position kmer to be reported, rows=%+v", payload.Rows)
	}
}

func TestKmerContentIgnoresKmersWithN(t *testing.T) {
	if !hasN([]byte("ACGTNCG")) {
		t.Error("hasN should detect an embedded N")
	}
	if hasN([]byte("ACGTACG")) {
		t.Error("hasN should not flag a clean 7-mer")
	}
}

func TestKmerContentEmptyInput(t *testing.T) {
	cfg := newTestConfig(t)
	m := NewKmerContent(cfg)
	frags, err := m.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}
	if frags[0].Status != Pass {
		t.Errorf("status = %v, want Pass with no input", frags[0].Status)
	}
}
