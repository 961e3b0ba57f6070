package qc

import (
	"fmt"
	"math"
)

// PerBaseSequenceContent tracks per-position G/A/T/C counts, used to spot a
// positional base-composition bias.
type PerBaseSequenceContent struct {
	config *Config
	counts [4][]uint64 // G, A, T, C
}

// NewPerBaseSequenceContent returns an empty accumulator bound to cfg.
func NewPerBaseSequenceContent(cfg *Config) *PerBaseSequenceContent {
	return &PerBaseSequenceContent{config: cfg}
}

func (p *PerBaseSequenceContent) Name() string { return "Per base sequence content" }

func (p *PerBaseSequenceContent) Process(rec *Record) {
	length := len(rec.Sequence)
	if len(p.counts[0]) < length {
		for b := range p.counts {
			grown := make([]uint64, length)
			copy(grown, p.counts[b])
			p.counts[b] = grown
		}
	}
	for idx, ch := range rec.Sequence {
		b := -1
		switch ch {
		case 'G', 'g':
			b = 0
		case 'A', 'a':
			b = 1
		case 'T', 't':
			b = 2
		case 'C', 'c':
			b = 3
		}
		if b >= 0 {
			p.counts[b][idx]++
		}
	}
}

func (p *PerBaseSequenceContent) SuppressInReport() bool { return false }

// BaseContentGroupRow is one group's percentage breakdown for the four
// canonical bases.
type BaseContentGroupRow struct {
	Group       BaseGroup
	GPercent    float64
	APercent    float64
	TPercent    float64
	CPercent    float64
}

// PerBaseSequenceContentPayload is PerBaseSequenceContent.Finalize's report
// fragment.
type PerBaseSequenceContentPayload struct {
	Rows []BaseContentGroupRow
}

func (payload *PerBaseSequenceContentPayload) WriteText(w TextWriter) error {
	if _, err := w.WriteString("#Base\tG\tA\tT\tC\n"); err != nil {
		return err
	}
	for _, r := range payload.Rows {
		line := fmt.Sprintf("%s\t%.2f\t%.2f\t%.2f\t%.2f\n", r.Group.Label(), r.GPercent, r.APercent, r.TPercent, r.CPercent)
		if _, err := w.WriteString(line); err != nil {
			return err
		}
	}
	return nil
}

func (payload *PerBaseSequenceContentPayload) ToJSON() (interface{}, error) {
	return map[string]interface{}{"rows": payload.Rows}, nil
}

func (p *PerBaseSequenceContent) Finalize() ([]ReportFragment, error) {
	groups := MakeBaseGroups(p.config.GroupType, len(p.counts[0]))
	rows := make([]BaseContentGroupRow, len(groups))
	maxCGDiff := 0.0
	maxTADiff := 0.0
	for i, g := range groups {
		var gSum, aSum, tSum, cSum float64
		for idx := g.LowerCount - 1; idx < g.UpperCount; idx++ {
			gSum += float64(p.counts[0][idx])
			aSum += float64(p.counts[1][idx])
			tSum += float64(p.counts[2][idx])
			cSum += float64(p.counts[3][idx])
		}
		total := gSum + aSum + tSum + cSum
		row := BaseContentGroupRow{Group: g}
		if total > 0 {
			row.GPercent = 100.0 * gSum / total
			row.APercent = 100.0 * aSum / total
			row.TPercent = 100.0 * tSum / total
			row.CPercent = 100.0 * cSum / total
		}
		rows[i] = row
		if d := math.Abs(row.CPercent - row.GPercent); d > maxCGDiff {
			maxCGDiff = d
		}
		if d := math.Abs(row.TPercent - row.APercent); d > maxTADiff {
			maxTADiff = d
		}
	}
	maxDiff := math.Max(maxCGDiff, maxTADiff)
	errorTh := p.config.Limits.Get("sequence:error")
	warnTh := p.config.Limits.Get("sequence:warn")
	status := Pass
	switch {
	case maxDiff > errorTh:
		status = Fail
	case maxDiff > warnTh:
		status = Warn
	}
	payload := &PerBaseSequenceContentPayload{Rows: rows}
	return []ReportFragment{{Name: p.Name(), Status: status, Payload: payload}}, nil
}
