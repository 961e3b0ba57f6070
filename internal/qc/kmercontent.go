package qc

import (
	"fmt"
	"math"
	"sort"
)

const (
	kmerSize          = 7
	kmerSampleStride  = 50
	kmerMaxReadLength = 500
	kmerTopN          = 20
	kmerPValueCutoff  = 0.01
	kmerObsExpCutoff  = 5.0
)

// kmerEntry is one observed kmer's total count and per-position hit vector.
type kmerEntry struct {
	count     uint64
	positions []uint64
}

// KmerContent tracks positional over-representation of fixed-length (k=7)
// substrings, flagging kmers that cluster at specific read positions far
// more than chance would predict.
type KmerContent struct {
	config          *Config
	skipCount       uint64
	longestSequence int
	kmers           map[string]*kmerEntry
	// totalKmerCounts[position] is the number of (non-N) length-kmerSize
	// kmers observed starting at that position, across every sampled read.
	totalKmerCounts [][]uint64
}

// NewKmerContent returns an empty accumulator bound to cfg.
func NewKmerContent(cfg *Config) *KmerContent {
	return &KmerContent{config: cfg, kmers: make(map[string]*kmerEntry)}
}

func (k *KmerContent) Name() string { return "Kmer Content" }

func (k *KmerContent) Process(rec *Record) {
	k.skipCount++
	if k.skipCount%kmerSampleStride != 0 {
		return
	}
	seq := rec.Sequence
	if len(seq) > kmerMaxReadLength {
		seq = seq[:kmerMaxReadLength]
	}
	if len(seq) > k.longestSequence {
		k.longestSequence = len(seq)
	}
	if len(seq) < kmerSize {
		return
	}
	for i := 0; i+kmerSize <= len(seq); i++ {
		kmer := seq[i : i+kmerSize]
		if hasN(kmer) {
			continue
		}
		if i >= len(k.totalKmerCounts) {
			grown := make([][]uint64, i+1)
			copy(grown, k.totalKmerCounts)
			k.totalKmerCounts = grown
		}
		if k.totalKmerCounts[i] == nil {
			k.totalKmerCounts[i] = make([]uint64, kmerSize)
		}
		k.totalKmerCounts[i][kmerSize-1]++

		key := string(kmer)
		entry, ok := k.kmers[key]
		if !ok {
			entry = &kmerEntry{positions: make([]uint64, len(seq)-kmerSize+1)}
			k.kmers[key] = entry
		}
		if i >= len(entry.positions) {
			grown := make([]uint64, i+1)
			copy(grown, entry.positions)
			entry.positions = grown
		}
		entry.count++
		entry.positions[i]++
	}
}

func hasN(seq []byte) bool {
	for _, ch := range seq {
		if ch == 'N' || ch == 'n' {
			return true
		}
	}
	return false
}

func (k *KmerContent) SuppressInReport() bool { return false }

// KmerRow is one reported overrepresented kmer.
type KmerRow struct {
	Sequence    string
	Count       uint64
	PValue      float64
	MaxObsExp   float64
	LowerBase   int
	UpperBase   int
}

// KmerContentPayload is KmerContent.Finalize's report fragment.
type KmerContentPayload struct {
	Rows []KmerRow
}

func (payload *KmerContentPayload) WriteText(w TextWriter) error {
	if _, err := w.WriteString("#Sequence\tCount\tPValue\tObs/Exp Max\tMax Obs/Exp Position\n"); err != nil {
		return err
	}
	for _, r := range payload.Rows {
		var pos string
		if r.LowerBase == r.UpperBase {
			pos = fmt.Sprintf("%d", r.LowerBase)
		} else {
			pos = fmt.Sprintf("%d-%d", r.LowerBase, r.UpperBase)
		}
		line := fmt.Sprintf("%s\t%d\t%g\t%.4f\t%s\n", r.Sequence, r.Count, r.PValue, r.MaxObsExp, pos)
		if _, err := w.WriteString(line); err != nil {
			return err
		}
	}
	return nil
}

func (payload *KmerContentPayload) ToJSON() (interface{}, error) {
	return map[string]interface{}{"rows": payload.Rows}, nil
}

func (k *KmerContent) Finalize() ([]ReportFragment, error) {
	groupLen := k.longestSequence - kmerSize + 1
	if groupLen < 0 {
		groupLen = 0
	}
	groups := MakeBaseGroups(k.config.GroupType, groupLen)

	type candidate struct {
		row KmerRow
	}
	var candidates []candidate
	for kmerStr, entry := range k.kmers {
		var totalKmerCount uint64
		for _, counts := range k.totalKmerCounts {
			if counts != nil {
				totalKmerCount += counts[kmerSize-1]
			}
		}
		if totalKmerCount == 0 {
			continue
		}
		expectedProportion := float64(entry.count) / float64(totalKmerCount)

		obsExp := make([]float64, len(groups))
		pValues := make([]float64, len(groups))
		for gi, g := range groups {
			var groupTotal, groupHits uint64
			upper := g.UpperCount
			if upper > len(entry.positions) {
				upper = len(entry.positions)
			}
			for p := g.LowerCount - 1; p < upper; p++ {
				if p < len(k.totalKmerCounts) && k.totalKmerCounts[p] != nil {
					groupTotal += k.totalKmerCounts[p][kmerSize-1]
				}
				groupHits += entry.positions[p]
			}
			predicted := expectedProportion * float64(groupTotal)
			if predicted > 0 {
				obsExp[gi] = float64(groupHits) / predicted
			}
			if float64(groupHits) > predicted {
				pValues[gi] = (1.0 - BinomialCDF(int(groupTotal), expectedProportion, int(groupHits))) * math.Pow(4.0, float64(kmerSize))
			} else {
				pValues[gi] = 1.0
			}
		}

		lowestPValue := kmerPValueCutoff
		qualifies := false
		for i := range groups {
			if pValues[i] < lowestPValue && obsExp[i] > kmerObsExpCutoff {
				lowestPValue = pValues[i]
				qualifies = true
			}
		}
		if !qualifies {
			continue
		}

		maxObsExp := 0.0
		lower, upperBase := 0, 0
		for i, v := range obsExp {
			if v > maxObsExp {
				maxObsExp = v
				lower = groups[i].LowerCount
				upperBase = groups[i].UpperCount
			}
		}
		candidates = append(candidates, candidate{row: KmerRow{
			Sequence:  kmerStr,
			Count:     entry.count,
			PValue:    lowestPValue,
			MaxObsExp: maxObsExp,
			LowerBase: lower,
			UpperBase: upperBase,
		}})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].row.MaxObsExp > candidates[j].row.MaxObsExp
	})
	if len(candidates) > kmerTopN {
		candidates = candidates[:kmerTopN]
	}
	rows := make([]KmerRow, len(candidates))
	minPValue := 1.0
	for i, c := range candidates {
		rows[i] = c.row
		if c.row.PValue < minPValue {
			minPValue = c.row.PValue
		}
	}

	negLog := -math.Log10(minPValue)
	if len(rows) == 0 {
		negLog = 0
	}
	errorTh := k.config.Limits.Get("kmer:error")
	warnTh := k.config.Limits.Get("kmer:warn")
	status := Pass
	switch {
	case negLog > errorTh:
		status = Fail
	case negLog > warnTh:
		status = Warn
	}
	payload := &KmerContentPayload{Rows: rows}
	return []ReportFragment{{Name: k.Name(), Status: status, Payload: payload}}, nil
}
