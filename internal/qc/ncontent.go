package qc

import "fmt"

// NContent tracks, per base position, how often an N was called versus any
// other base.
type NContent struct {
	config     *Config
	nCounts    []uint64
	notNCounts []uint64
}

// NewNContent returns an empty NContent accumulator bound to cfg.
func NewNContent(cfg *Config) *NContent {
	return &NContent{config: cfg}
}

func (n *NContent) Name() string { return "Per base N content" }

func (n *NContent) Process(rec *Record) {
	length := len(rec.Sequence)
	if len(n.nCounts) < length {
		grownN := make([]uint64, length)
		grownNotN := make([]uint64, length)
		copy(grownN, n.nCounts)
		copy(grownNotN, n.notNCounts)
		n.nCounts = grownN
		n.notNCounts = grownNotN
	}
	for idx, ch := range rec.Sequence {
		if ch == 'N' || ch == 'n' {
			n.nCounts[idx]++
		} else {
			n.notNCounts[idx]++
		}
	}
}

func (n *NContent) SuppressInReport() bool { return false }

// NContentPayload is the per-group N-percentage table NContent.Finalize
// produces.
type NContentPayload struct {
	Groups      []BaseGroup
	Percentages []float64
}

func (p *NContentPayload) WriteText(w TextWriter) error {
	if _, err := w.WriteString("#Base\tN-Count\n"); err != nil {
		return err
	}
	for i, g := range p.Groups {
		if _, err := w.WriteString(fmt.Sprintf("%s\t%v\n", g.Label(), p.Percentages[i])); err != nil {
			return err
		}
	}
	return nil
}

func (p *NContentPayload) ToJSON() (interface{}, error) {
	return map[string]interface{}{"groups": p.Groups, "percentages": p.Percentages}, nil
}

func (n *NContent) Finalize() ([]ReportFragment, error) {
	groups := MakeBaseGroups(n.config.GroupType, len(n.nCounts))
	percentages := make([]float64, len(groups))
	maxPercentage := 0.0
	for i, g := range groups {
		var nCount, totalCount float64
		for idx := g.LowerCount - 1; idx < g.UpperCount; idx++ {
			nCount += float64(n.nCounts[idx])
			totalCount += float64(n.nCounts[idx] + n.notNCounts[idx])
		}
		percent := 100.0 * nCount / totalCount
		percentages[i] = percent
		if percent > maxPercentage {
			maxPercentage = percent
		}
	}
	errorTh := n.config.Limits.Get("n_content:error")
	warnTh := n.config.Limits.Get("n_content:warn")
	status := Pass
	switch {
	case maxPercentage > errorTh:
		status = Fail
	case maxPercentage > warnTh:
		status = Warn
	}
	payload := &NContentPayload{Groups: groups, Percentages: percentages}
	return []ReportFragment{{Name: n.Name(), Status: status, Payload: payload}}, nil
}
