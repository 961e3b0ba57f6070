package qc

import "fmt"

// PerBaseQualityScores maintains a per-position quality-score histogram and
// reports mean/median/quartile/decile statistics grouped by the configured
// base-group policy.
type PerBaseQualityScores struct {
	config  *Config
	counts  *QualityCounts
	minChar byte
}

// NewPerBaseQualityScores returns an empty accumulator bound to cfg.
func NewPerBaseQualityScores(cfg *Config) *PerBaseQualityScores {
	return &PerBaseQualityScores{config: cfg, counts: NewQualityCounts(), minChar: 255}
}

func (p *PerBaseQualityScores) Name() string { return "Per base sequence quality" }

func (p *PerBaseQualityScores) Process(rec *Record) {
	for idx, ch := range rec.Quality {
		if ch < p.minChar {
			p.minChar = ch
		}
		p.counts.AddValue(idx, ch)
	}
}

func (p *PerBaseQualityScores) SuppressInReport() bool { return false }

// QualityGroupRow is one group's mean/median/quartile/decile row.
type QualityGroupRow struct {
	Group          BaseGroup
	Mean           float64
	Median         float64
	LowerQuartile  float64
	UpperQuartile  float64
	Percentile10   float64
	Percentile90   float64
}

// PerBaseQualityScoresPayload is PerBaseQualityScores.Finalize's report
// fragment.
type PerBaseQualityScoresPayload struct {
	Rows []QualityGroupRow
}

func (payload *PerBaseQualityScoresPayload) WriteText(w TextWriter) error {
	if _, err := w.WriteString("#Base\tMean\tMedian\tLower Quartile\tUpper Quartile\t10th Percentile\t90th Percentile\n"); err != nil {
		return err
	}
	for _, r := range payload.Rows {
		line := fmt.Sprintf("%s\t%.2f\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\n",
			r.Group.Label(), r.Mean, r.Median, r.LowerQuartile, r.UpperQuartile, r.Percentile10, r.Percentile90)
		if _, err := w.WriteString(line); err != nil {
			return err
		}
	}
	return nil
}

func (payload *PerBaseQualityScoresPayload) ToJSON() (interface{}, error) {
	return map[string]interface{}{"rows": payload.Rows}, nil
}

func (p *PerBaseQualityScores) Finalize() ([]ReportFragment, error) {
	encoding, err := DetectPhredEncoding(p.minChar)
	if err != nil {
		return nil, err
	}
	offset := encoding.Offset
	groups := MakeBaseGroups(p.config.GroupType, p.counts.Len())
	rows := make([]QualityGroupRow, len(groups))
	minMedian := 1000.0
	minLowerQuartile := 1000.0
	for i, g := range groups {
		row := QualityGroupRow{
			Group:         g,
			Mean:          p.counts.GetMean(g, offset),
			Median:        p.counts.GetPercentile(g, offset, 50),
			LowerQuartile: p.counts.GetPercentile(g, offset, 25),
			UpperQuartile: p.counts.GetPercentile(g, offset, 75),
			Percentile10:  p.counts.GetPercentile(g, offset, 10),
			Percentile90:  p.counts.GetPercentile(g, offset, 90),
		}
		rows[i] = row
		if row.Median < minMedian {
			minMedian = row.Median
		}
		if row.LowerQuartile < minLowerQuartile {
			minLowerQuartile = row.LowerQuartile
		}
	}
	medianErrorTh := p.config.Limits.Get("quality_base_median:error")
	medianWarnTh := p.config.Limits.Get("quality_base_median:warn")
	lowerErrorTh := p.config.Limits.Get("quality_base_lower:error")
	lowerWarnTh := p.config.Limits.Get("quality_base_lower:warn")
	status := Pass
	switch {
	case minMedian < medianErrorTh || minLowerQuartile < lowerErrorTh:
		status = Fail
	case minMedian < medianWarnTh || minLowerQuartile < lowerWarnTh:
		status = Warn
	}
	payload := &PerBaseQualityScoresPayload{Rows: rows}
	return []ReportFragment{{Name: p.Name(), Status: status, Payload: payload}}, nil
}
