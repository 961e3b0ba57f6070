package qc

import "testing"

func TestFindLongestMatchWithOneMismatch(t *testing.T) {
	cases := []struct {
		a, b          string
		wantStart     int
		wantLength    int
		wantMismatch  int
		wantFound     bool
	}{
		{"AAAAAA", "BBBBBB", 0, 0, 0, false},
		{"AAAAAA", "BBBBAA", 4, 2, 0, true},
		{"AAAAAA", "AAABBB", 0, 3, 0, true},
		{"AAAAAAAAA", "BBBBBAAAB", 5, 3, 0, true},
		{"AAAAAAAAA", "BAABBAAAB", 5, 3, 0, true},
		{"OOOOOOOOOOOOOO", "OOOOXOOXOOOOOX", 5, 8, 1, true},
		{"OOOOOOOOOOOOOO", "OOOOXOOOOOOOOX", 0, 13, 1, true},
	}
	for _, c := range cases {
		hit, found := findLongestMatchWithOneMismatch([]byte(c.a), []byte(c.b))
		if found != c.wantFound {
			t.Errorf("match(%q, %q) found=%v, want %v", c.a, c.b, found, c.wantFound)
			continue
		}
		if !found {
			continue
		}
		if hit.start != c.wantStart || hit.length != c.wantLength || hit.mismatch != c.wantMismatch {
			t.Errorf("match(%q, %q) = %+v, want {start:%d length:%d mismatch:%d}",
				c.a, c.b, hit, c.wantStart, c.wantLength, c.wantMismatch)
		}
	}
}

func TestContaminantFindMatchSelf(t *testing.T) {
	c := NewContaminant("Test", "AGCTTCGA")
	hit, ok := c.FindMatch([]byte("AGCTTCGA"))
	if !ok || hit.Direction != 0 {
		t.Fatalf("forward self-match failed: %+v ok=%v", hit, ok)
	}
	hit2, ok2 := c.FindMatch([]byte("TCGAAGCT"))
	if !ok2 || hit2.Direction != 1 {
		t.Fatalf("reverse self-match failed: %+v ok=%v", hit2, ok2)
	}
}

func TestContaminantFindMatchLongQuery(t *testing.T) {
	c := NewContaminant("Illumina Single End Adapter 1", "GATCGGAAGAGCTCGTATGCCGTCTTCTGCTTG")
	hit, ok := c.FindMatch([]byte("GATAGATGATCGGAAGAGCTCGTATGCCGTCTTCTGCTTGGATAGA"))
	if !ok || hit.Length != 33 {
		t.Fatalf("expected length-33 hit, got %+v ok=%v", hit, ok)
	}
	hit2, ok2 := c.FindMatch([]byte("AAACAAGCAGAAGACGGCATACGAGCTCTTCCGATCAAA"))
	if !ok2 || hit2.Length != 33 {
		t.Fatalf("expected reverse-strand length-33 hit, got %+v ok=%v", hit2, ok2)
	}
}

func TestDefaultContaminantCatalogSize(t *testing.T) {
	cat := DefaultContaminantCatalog()
	if len(cat) != 151 {
		t.Fatalf("DefaultContaminantCatalog has %d entries, want 151", len(cat))
	}
	if cat[0].Name != "Illumina Single End Adapter 1" {
		t.Errorf("first catalog entry = %q, want %q", cat[0].Name, "Illumina Single End Adapter 1")
	}
}
