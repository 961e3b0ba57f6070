package qc

import "testing"

func TestPerSequenceGCContentsDistributionSumsToReadCount(t *testing.T) {
	m := NewPerSequenceGCContents()
	reads := [][]byte{
		[]byte("GCGCGCGCGC"), // 100% GC
		[]byte("ATATATATAT"), // 0% GC
		[]byte("GCGCATATAT"), // 40% GC
	}
	for _, r := range reads {
		m.Process(&Record{Sequence: r})
	}
	frags, err := m.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}
	if frags[0].Status != Pass {
		t.Errorf("status = %v, want Pass (GC content module never fails)", frags[0].Status)
	}
	payload := frags[0].Payload.(*PerSequenceGCContentsPayload)
	var total float64
	for _, v := range payload.Distribution {
		total += v
	}
	if total < 2.999 || total > 3.001 {
		t.Errorf("distribution should sum to the number of reads processed (3), got %f", total)
	}
	if payload.Distribution[0] < 0.9 {
		t.Errorf("expected the 0%% GC read to contribute to bucket 0, got %f", payload.Distribution[0])
	}
	if payload.Distribution[100] < 0.9 {
		t.Errorf("expected the 100%% GC read to contribute to bucket 100, got %f", payload.Distribution[100])
	}
}

func TestPerSequenceGCContentsIgnoresEmptyReads(t *testing.T) {
	m := NewPerSequenceGCContents()
	m.Process(&Record{Sequence: nil})
	frags, _ := m.Finalize()
	payload := frags[0].Payload.(*PerSequenceGCContentsPayload)
	var total float64
	for _, v := range payload.Distribution {
		total += v
	}
	if total != 0 {
		t.Errorf("expected an empty read to contribute nothing, got total %f", total)
	}
}
