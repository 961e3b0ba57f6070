package qc

import "fmt"

// perSequenceQualityBuckets covers the full raw-byte range an integer
// average over a read's quality bytes could land in.
const perSequenceQualityBuckets = 256

// PerSequenceQualityScores buckets reads by their floor-averaged raw
// quality byte, used to catch runs of generally low-quality reads that a
// per-position view would dilute.
type PerSequenceQualityScores struct {
	config      *Config
	scoreCounts [perSequenceQualityBuckets]uint64
	lowestChar  byte
}

// NewPerSequenceQualityScores returns an empty accumulator bound to cfg.
func NewPerSequenceQualityScores(cfg *Config) *PerSequenceQualityScores {
	return &PerSequenceQualityScores{config: cfg, lowestChar: 255}
}

func (p *PerSequenceQualityScores) Name() string { return "Per sequence quality scores" }

func (p *PerSequenceQualityScores) Process(rec *Record) {
	if len(rec.Quality) == 0 {
		return
	}
	var sum int
	for _, ch := range rec.Quality {
		if ch < p.lowestChar {
			p.lowestChar = ch
		}
		sum += int(ch)
	}
	avg := sum / len(rec.Quality)
	p.scoreCounts[avg]++
}

func (p *PerSequenceQualityScores) SuppressInReport() bool { return false }

// QualityScoreCount is one (score, count) row of the distribution.
type QualityScoreCount struct {
	Score int
	Count uint64
}

// PerSequenceQualityScoresPayload is PerSequenceQualityScores.Finalize's
// report fragment.
type PerSequenceQualityScoresPayload struct {
	Rows []QualityScoreCount
}

func (payload *PerSequenceQualityScoresPayload) WriteText(w TextWriter) error {
	if _, err := w.WriteString("#Quality\tCount\n"); err != nil {
		return err
	}
	for _, r := range payload.Rows {
		if _, err := w.WriteString(fmt.Sprintf("%d\t%d\n", r.Score, r.Count)); err != nil {
			return err
		}
	}
	return nil
}

func (payload *PerSequenceQualityScoresPayload) ToJSON() (interface{}, error) {
	return map[string]interface{}{"rows": payload.Rows}, nil
}

func (p *PerSequenceQualityScores) Finalize() ([]ReportFragment, error) {
	minScore := -1
	maxScore := 0
	for score, count := range p.scoreCounts {
		if count > 0 {
			if minScore < 0 {
				minScore = score
			}
			maxScore = score
		}
	}
	if minScore < 0 {
		return []ReportFragment{{Name: p.Name(), Status: Pass, Payload: &PerSequenceQualityScoresPayload{}}}, nil
	}
	encoding, err := DetectPhredEncoding(p.lowestChar)
	if err != nil {
		return nil, err
	}
	var rows []QualityScoreCount
	bestScore := 0
	bestCount := uint64(0)
	for score := minScore; score <= maxScore; score++ {
		count := p.scoreCounts[score]
		rows = append(rows, QualityScoreCount{Score: score - encoding.Offset, Count: count})
		if count > bestCount {
			bestCount = count
			bestScore = score - encoding.Offset
		}
	}
	errorTh := p.config.Limits.Get("quality_sequence:error")
	warnTh := p.config.Limits.Get("quality_sequence:warn")
	status := Pass
	switch {
	case float64(bestScore) < errorTh:
		status = Fail
	case float64(bestScore) < warnTh:
		status = Warn
	}
	payload := &PerSequenceQualityScoresPayload{Rows: rows}
	return []ReportFragment{{Name: p.Name(), Status: status, Payload: payload}}, nil
}
