package qc

import (
	"fmt"
	"strings"
)

// AdapterContent tracks, per configured adapter sequence, the cumulative
// count of reads that contained it from each base position onward: once an
// adapter is found starting at index i, every position from i to the end
// of the read is counted as "containing adapter", matching how adapter
// contamination actually accumulates towards a read's 3' end.
type AdapterContent struct {
	config    *Config
	adapters  []Contaminant
	positions [][]uint64
	totalCount uint64
}

// NewAdapterContent returns an empty accumulator bound to cfg, tracking
// catalog's adapter sequences.
func NewAdapterContent(cfg *Config, catalog []Contaminant) *AdapterContent {
	return &AdapterContent{
		config:    cfg,
		adapters:  catalog,
		positions: make([][]uint64, len(catalog)),
	}
}

func (a *AdapterContent) Name() string { return "Adapter Content" }

func (a *AdapterContent) Process(rec *Record) {
	a.totalCount++
	length := len(rec.Sequence)
	for i := range a.adapters {
		if len(a.positions[i]) < length {
			grown := make([]uint64, length)
			copy(grown, a.positions[i])
			a.positions[i] = grown
		}
	}
	seq := string(rec.Sequence)
	for i, adapter := range a.adapters {
		idx := strings.Index(seq, adapter.forward)
		if idx < 0 {
			continue
		}
		for pos := idx; pos < length; pos++ {
			a.positions[i][pos]++
		}
	}
}

func (a *AdapterContent) SuppressInReport() bool { return false }

// AdapterEnrichmentRow is one adapter's per-group enrichment percentages.
type AdapterEnrichmentRow struct {
	Name        string
	Enrichments []float64
}

// AdapterContentPayload is AdapterContent.Finalize's report fragment.
type AdapterContentPayload struct {
	Groups []BaseGroup
	Rows   []AdapterEnrichmentRow
}

func (payload *AdapterContentPayload) WriteText(w TextWriter) error {
	if _, err := w.WriteString("#Position"); err != nil {
		return err
	}
	for _, r := range payload.Rows {
		if _, err := w.WriteString("\t" + r.Name); err != nil {
			return err
		}
	}
	if _, err := w.WriteString("\n"); err != nil {
		return err
	}
	for gi, g := range payload.Groups {
		if _, err := w.WriteString(g.Label()); err != nil {
			return err
		}
		for _, r := range payload.Rows {
			if _, err := w.WriteString(fmt.Sprintf("\t%.6f", r.Enrichments[gi])); err != nil {
				return err
			}
		}
		if _, err := w.WriteString("\n"); err != nil {
			return err
		}
	}
	return nil
}

func (payload *AdapterContentPayload) ToJSON() (interface{}, error) {
	return map[string]interface{}{"groups": payload.Groups, "rows": payload.Rows}, nil
}

func (a *AdapterContent) Finalize() ([]ReportFragment, error) {
	maxLen := 0
	for _, p := range a.positions {
		if len(p) > maxLen {
			maxLen = len(p)
		}
	}
	groups := MakeBaseGroups(a.config.GroupType, maxLen)
	rows := make([]AdapterEnrichmentRow, len(a.adapters))
	maxEnrichment := 0.0
	for i, adapter := range a.adapters {
		enrichments := make([]float64, len(groups))
		for gi, g := range groups {
			var hits float64
			for idx := g.LowerCount - 1; idx < g.UpperCount && idx < len(a.positions[i]); idx++ {
				hits += float64(a.positions[i][idx])
			}
			width := float64(g.UpperCount - g.LowerCount + 1)
			if a.totalCount > 0 && width > 0 {
				enrichments[gi] = 100.0 * hits / float64(a.totalCount) / width
			}
			if enrichments[gi] > maxEnrichment {
				maxEnrichment = enrichments[gi]
			}
		}
		rows[i] = AdapterEnrichmentRow{Name: adapter.Name, Enrichments: enrichments}
	}
	errorTh := a.config.Limits.Get("adapter:error")
	warnTh := a.config.Limits.Get("adapter:warn")
	status := Pass
	switch {
	case maxEnrichment > errorTh:
		status = Fail
	case maxEnrichment > warnTh:
		status = Warn
	}
	payload := &AdapterContentPayload{Groups: groups, Rows: rows}
	return []ReportFragment{{Name: a.Name(), Status: status, Payload: payload}}, nil
}
