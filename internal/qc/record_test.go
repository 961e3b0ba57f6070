package qc

import "testing"

func TestDetectPhredEncoding(t *testing.T) {
	cases := []struct {
		lowest byte
		name   string
		offset int
		isErr  bool
	}{
		{20, "", 0, true},
		{33, "Sanger / Illumina 1.9", sangerEncodingOffset, false},
		{63, "Sanger / Illumina 1.9", sangerEncodingOffset, false},
		{65, "Illumina 1.3", illumina13EncodingOffset, false},
		{70, "Illumina 1.5", illumina13EncodingOffset, false},
		{126, "Illumina 1.5", illumina13EncodingOffset, false},
		{127, "", 0, true},
	}
	for _, c := range cases {
		enc, err := DetectPhredEncoding(c.lowest)
		if c.isErr {
			if err == nil {
				t.Errorf("DetectPhredEncoding(%d) expected error, got %+v", c.lowest, enc)
			}
			continue
		}
		if err != nil {
			t.Fatalf("DetectPhredEncoding(%d) unexpected error: %v", c.lowest, err)
		}
		if enc.Name != c.name || enc.Offset != c.offset {
			t.Errorf("DetectPhredEncoding(%d) = %+v, want {%s %d}", c.lowest, enc, c.name, c.offset)
		}
	}
}

func TestRevCompInvolution(t *testing.T) {
	cases := []string{"ACGT", "AAAA", "GATTACA", "ACGTN", "acgtn"}
	for _, s := range cases {
		got := RevComp(RevComp(s))
		want := normalizeN(s)
		if got != want {
			t.Errorf("RevComp(RevComp(%q)) = %q, want %q", s, got, want)
		}
	}
}

// normalizeN mirrors what double reverse-complementing does to characters
// outside ACGT/acgt: they become 'N'.
func normalizeN(s string) string {
	out := []rune(s)
	for i, c := range out {
		switch c {
		case 'A', 'a', 'C', 'c', 'G', 'g', 'T', 't':
		default:
			out[i] = 'N'
		}
	}
	return string(out)
}

func TestRevCompBasic(t *testing.T) {
	if got := RevComp("ACGT"); got != "ACGT" {
		t.Errorf("RevComp(ACGT) = %q, want ACGT", got)
	}
	if got := RevComp("AACCGGTT"); got != "AACCGGTT" {
		t.Errorf("RevComp(AACCGGTT) = %q, want AACCGGTT", got)
	}
}
