package qc

import "testing"

func illuminaID(tile string) string {
	// instrument:run:flowcell:lane:tile:x:y, the 7-field scheme this module
	// recognizes tile position 4 (0-based) from.
	return "M00001:1:000000000-A1B2C:1:" + tile + ":1000:2000"
}

func TestPerTileQualityScoresDetectsDeviantTile(t *testing.T) {
	cfg := newTestConfig(t)
	m := NewPerTileQualityScores(cfg)
	for round := 0; round < tileSampleStride*20; round++ {
		rec := &Record{ID: illuminaID("1101"), Sequence: []byte("ACGT"), Quality: []byte{'I', 'I', 'I', 'I'}}
		// Switch tiles per sampling stride so both tiles land on sampled records.
		if (round/tileSampleStride)%2 == 0 {
			rec = &Record{ID: illuminaID("1102"), Sequence: []byte("ACGT"), Quality: []byte{'#', '#', '#', '#'}}
		}
		m.Process(rec)
	}
	if m.SuppressInReport() {
		t.Fatal("module suppressed itself despite well-formed Illumina IDs")
	}
	frags, err := m.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}
	if len(frags) != 1 {
		t.Fatalf("expected 1 fragment, got %d", len(frags))
	}
	payload := frags[0].Payload.(*PerTileQualityScoresPayload)
	if len(payload.Rows) != 2 {
		t.Fatalf("expected 2 tiles in report, got %d", len(payload.Rows))
	}
	if frags[0].Status != Fail {
		t.Errorf("status = %v, want Fail given a tile deviating far from the across-tile mean", frags[0].Status)
	}
}

func TestPerTileQualityScoresSuppressesOnNonIlluminaID(t *testing.T) {
	cfg := newTestConfig(t)
	m := NewPerTileQualityScores(cfg)
	for round := 0; round < tileSampleStride; round++ {
		m.Process(&Record{ID: "read_42", Sequence: []byte("ACGT"), Quality: []byte{'I', 'I', 'I', 'I'}})
	}
	if !m.SuppressInReport() {
		t.Fatal("expected module to suppress itself for a non-colon-delimited ID")
	}
	frags, err := m.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}
	if frags != nil {
		t.Errorf("expected nil fragments once suppressed, got %+v", frags)
	}
}

func TestPerTileQualityScoresSuppressesPastTileCap(t *testing.T) {
	cfg := newTestConfig(t)
	m := NewPerTileQualityScores(cfg)
	for tile := 0; tile <= maxTiles; tile++ {
		for s := 0; s < tileSampleStride; s++ {
			id := illuminaID(itoaTile(tile))
			m.Process(&Record{ID: id, Sequence: []byte("ACGT"), Quality: []byte{'I', 'I', 'I', 'I'}})
		}
	}
	if !m.SuppressInReport() {
		t.Fatal("expected module to suppress itself once distinct tile count passes the cap")
	}
}

func itoaTile(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
