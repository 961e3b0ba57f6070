package qc

import "fmt"

// SequenceLengthDistribution counts how many reads were seen at each
// length.
type SequenceLengthDistribution struct {
	config       *Config
	lengthCounts []uint64
	sawZeroLen   bool
}

// NewSequenceLengthDistribution returns an empty accumulator bound to cfg.
func NewSequenceLengthDistribution(cfg *Config) *SequenceLengthDistribution {
	return &SequenceLengthDistribution{config: cfg}
}

func (s *SequenceLengthDistribution) Name() string { return "Sequence Length Distribution" }

func (s *SequenceLengthDistribution) Process(rec *Record) {
	length := len(rec.Sequence)
	if length == 0 {
		s.sawZeroLen = true
	}
	if len(s.lengthCounts) < length+2 {
		grown := make([]uint64, length+2)
		copy(grown, s.lengthCounts)
		s.lengthCounts = grown
	}
	s.lengthCounts[length]++
}

func (s *SequenceLengthDistribution) SuppressInReport() bool { return false }

// getMinMaxIdx returns the smallest and largest length with a nonzero
// count.
func getMinMaxIdx(counts []uint64) (int, int) {
	min := -1
	max := 0
	for idx, v := range counts {
		if v > 0 {
			if min < 0 {
				min = idx
			}
			max = idx
		}
	}
	return min, max
}

// calcInterval returns the smallest member of {1,2,5} * 10^k that keeps the
// number of buckets spanning width at or below 50.
func calcInterval(width int) int {
	base := 1
	divisions := [3]int{1, 2, 5}
	for {
		for _, division := range divisions {
			interval := base * division
			if width/interval <= 50 {
				return interval
			}
		}
		base *= 10
	}
}

// getSizeDistribution picks a bucket width and an aligned starting length
// for the [min, max] length range.
func getSizeDistribution(min, max int) (start, interval int) {
	interval = calcInterval(max - min)
	baseDiv := min / interval
	return baseDiv * interval, interval
}

// LengthDistributionRow is one bucket of the length-distribution table.
type LengthDistributionRow struct {
	Start, End int
	Count      uint64
}

// SequenceLengthDistributionPayload is
// SequenceLengthDistribution.Finalize's report fragment.
type SequenceLengthDistributionPayload struct {
	Rows []LengthDistributionRow
}

func (p *SequenceLengthDistributionPayload) WriteText(w TextWriter) error {
	if _, err := w.WriteString("#Length\tCount\n"); err != nil {
		return err
	}
	for _, r := range p.Rows {
		var line string
		if r.Start == r.End {
			line = fmt.Sprintf("%d\t%d\n", r.Start, r.Count)
		} else {
			line = fmt.Sprintf("%d-%d\t%d\n", r.Start, r.End, r.Count)
		}
		if _, err := w.WriteString(line); err != nil {
			return err
		}
	}
	return nil
}

func (p *SequenceLengthDistributionPayload) ToJSON() (interface{}, error) {
	return map[string]interface{}{"rows": p.Rows}, nil
}

func (s *SequenceLengthDistribution) Finalize() ([]ReportFragment, error) {
	if len(s.lengthCounts) == 0 {
		return []ReportFragment{{Name: s.Name(), Status: Pass, Payload: &SequenceLengthDistributionPayload{}}}, nil
	}
	minLen, maxLen := getMinMaxIdx(s.lengthCounts)
	minLen--
	maxLen++
	if minLen < 0 {
		minLen = 0
	}
	start, interval := getSizeDistribution(minLen, maxLen)
	var rows []LengthDistributionRow
	allSameLength := minLen+2 == maxLen
	currentPos := start
	for currentPos <= maxLen {
		maxPos := currentPos + interval
		if maxPos > maxLen {
			maxPos = maxLen
		}
		var count uint64
		for idx := currentPos; idx < maxPos; idx++ {
			if idx < len(s.lengthCounts) {
				count += s.lengthCounts[idx]
			}
		}
		end := currentPos
		if interval != 1 {
			end = maxPos
		}
		rows = append(rows, LengthDistributionRow{Start: currentPos, End: end, Count: count})
		currentPos += interval
	}
	errorTh := s.config.Limits.Get("sequence_length:error")
	warnTh := s.config.Limits.Get("sequence_length:warn")
	status := Pass
	switch {
	case errorTh != 0 && s.sawZeroLen:
		status = Fail
	case warnTh != 0 && allSameLength:
		status = Warn
	}
	payload := &SequenceLengthDistributionPayload{Rows: rows}
	return []ReportFragment{{Name: s.Name(), Status: status, Payload: payload}}, nil
}
