package qc

import "fmt"

// BasicStats accumulates read counts, length range, and base composition.
// Its status is always Pass; it exists to surface the headline numbers the
// other modules' reports get compared against.
type BasicStats struct {
	actualCount   uint64
	filteredCount uint64
	minLength     int
	maxLength     int
	lowestChar    byte
	// gatcnCount indexes G, A, T, C, N (case folded; anything unrecognized
	// counts as N).
	gatcnCount [5]uint64
	diagnostic string
}

// NewBasicStats returns an empty BasicStats accumulator.
func NewBasicStats() *BasicStats {
	return &BasicStats{lowestChar: 255}
}

func (b *BasicStats) Name() string { return "Basic Statistics" }

func (b *BasicStats) Process(rec *Record) {
	b.actualCount++
	length := len(rec.Sequence)
	if b.actualCount == 1 {
		b.minLength = length
		b.maxLength = length
	} else {
		if length < b.minLength {
			b.minLength = length
		}
		if length > b.maxLength {
			b.maxLength = length
		}
	}
	for _, ch := range rec.Sequence {
		idx := 4
		switch ch {
		case 'G', 'g':
			idx = 0
		case 'A', 'a':
			idx = 1
		case 'T', 't':
			idx = 2
		case 'C', 'c':
			idx = 3
		case 'N', 'n':
			idx = 4
		default:
			idx = 4
			b.diagnostic = fmt.Sprintf("unexpected base char=%c", ch)
		}
		b.gatcnCount[idx]++
	}
	for _, q := range rec.Quality {
		if q < b.lowestChar {
			b.lowestChar = q
		}
	}
}

func (b *BasicStats) SuppressInReport() bool { return false }

// Diagnostic returns a description of the last unrecognized base character
// seen, or "" if every base fell in {A,C,G,T,N} (case-insensitive).
func (b *BasicStats) Diagnostic() string { return b.diagnostic }

// BasicStatsPayload is the report fragment BasicStats.Finalize produces.
type BasicStatsPayload struct {
	Encoding         string
	TotalSequence    uint64
	FilteredSequence uint64
	SequenceMinLen   int
	SequenceMaxLen   int
	GCPercent        int
}

func (p *BasicStatsPayload) WriteText(w TextWriter) error {
	if _, err := w.WriteString(fmt.Sprintf("Encoding\t%s\n", p.Encoding)); err != nil {
		return err
	}
	if _, err := w.WriteString(fmt.Sprintf("Total Sequences\t%d\n", p.TotalSequence)); err != nil {
		return err
	}
	if _, err := w.WriteString(fmt.Sprintf("Filtered Sequences\t%d\n", p.FilteredSequence)); err != nil {
		return err
	}
	if p.SequenceMinLen == p.SequenceMaxLen {
		if _, err := w.WriteString(fmt.Sprintf("Sequence length\t%d\n", p.SequenceMinLen)); err != nil {
			return err
		}
	} else {
		if _, err := w.WriteString(fmt.Sprintf("Sequence length\t%d-%d\n", p.SequenceMinLen, p.SequenceMaxLen)); err != nil {
			return err
		}
	}
	_, err := w.WriteString(fmt.Sprintf("%%GC\t%d\n", p.GCPercent))
	return err
}

func (p *BasicStatsPayload) ToJSON() (interface{}, error) {
	return map[string]interface{}{
		"encoding":            p.Encoding,
		"total_sequence":      p.TotalSequence,
		"filtered_sequence":   p.FilteredSequence,
		"sequence_min_length": p.SequenceMinLen,
		"sequence_max_length": p.SequenceMaxLen,
		"gc_percent":          p.GCPercent,
	}, nil
}

func (b *BasicStats) Finalize() ([]ReportFragment, error) {
	encoding, err := DetectPhredEncoding(b.lowestChar)
	if err != nil {
		return nil, err
	}
	gcCount := b.gatcnCount[0] + b.gatcnCount[3]
	atCount := b.gatcnCount[1] + b.gatcnCount[2]
	gcPercent := 0
	if gcCount+atCount > 0 {
		gcPercent = int((gcCount * 100) / (gcCount + atCount))
	}
	payload := &BasicStatsPayload{
		Encoding:         encoding.Name,
		TotalSequence:    b.actualCount,
		FilteredSequence: b.filteredCount,
		SequenceMinLen:   b.minLength,
		SequenceMaxLen:   b.maxLength,
		GCPercent:        gcPercent,
	}
	return []ReportFragment{{Name: b.Name(), Status: Pass, Payload: payload}}, nil
}
