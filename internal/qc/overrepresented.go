package qc

import (
	"fmt"
	"sort"

	"github.com/shenwei356/natsort"
)

// observationCutoff is the number of distinct sequence keys this module
// will track before freezing: past this point every further distinct
// sequence is dropped rather than growing the map unbounded on a library
// with very high diversity.
const observationCutoff = 100_000

// overrepresentedPrefixLen is how much of a read longer than
// overrepresentedPrefixThreshold is kept as its dedup key, trading exact
// duplicate detection for a bounded key size on long reads.
const (
	overrepresentedPrefixThreshold = 75
	overrepresentedPrefixLen       = 50
)

// dupLevelLabel is one row of the 16-bin duplication-level histogram the
// Duplication Levels fragment groups raw observation counts into.
type dupLevelLabel struct {
	threshold int
	label     string
}

var dupLevelLabels = [16]dupLevelLabel{
	{0, "1"}, {1, "2"}, {2, "3"}, {3, "4"}, {4, "5"}, {5, "6"}, {6, "7"}, {7, "8"}, {8, "9"},
	{9, ">10"}, {49, ">50"}, {99, ">100"}, {499, "500"}, {999, ">1k"}, {4999, ">5k"}, {9999, ">10k"},
}

// OverrepresentedSequences tracks distinct-sequence observation counts to
// report both a duplication-level histogram and the individual sequences
// that make up a large enough share of the run to be worth flagging,
// cross-referenced against the contaminant catalog.
type OverrepresentedSequences struct {
	config      *Config
	contaminant []Contaminant
	count       uint64
	countAtLimit uint64
	frozen      bool
	sequences   map[string]uint32
	order       []string
}

// NewOverrepresentedSequences returns an empty accumulator bound to cfg,
// matched against catalog for the "possible source" annotation.
func NewOverrepresentedSequences(cfg *Config, catalog []Contaminant) *OverrepresentedSequences {
	return &OverrepresentedSequences{config: cfg, contaminant: catalog, sequences: make(map[string]uint32)}
}

func (o *OverrepresentedSequences) Name() string { return "Overrepresented sequences" }

func (o *OverrepresentedSequences) dupName() string { return "Sequence Duplication Levels" }

func (o *OverrepresentedSequences) Process(rec *Record) {
	o.count++
	if !o.frozen {
		o.countAtLimit = o.count
	}
	key := string(rec.Sequence)
	if len(rec.Sequence) > overrepresentedPrefixThreshold {
		key = string(rec.Sequence[:overrepresentedPrefixLen])
	}
	if n, ok := o.sequences[key]; ok {
		o.sequences[key] = n + 1
		return
	}
	if o.frozen {
		return
	}
	o.sequences[key] = 1
	o.order = append(o.order, key)
	if len(o.sequences) >= observationCutoff {
		o.frozen = true
	}
}

func (o *OverrepresentedSequences) SuppressInReport() bool { return false }

// getCorrectedCount estimates the true distinct-sequence count at
// duplicationLevel by correcting for sequences that froze out of
// observation once the cutoff was hit, following the corrected (product,
// not overwrite) form of the bundled analyzer's probability calculation.
func getCorrectedCount(countAtLimit, totalCount, duplicationLevel, numberOfObservations uint64) float64 {
	if countAtLimit == totalCount {
		return float64(numberOfObservations)
	}
	if totalCount-numberOfObservations < countAtLimit {
		return float64(numberOfObservations)
	}
	pNotSeeingAtLimit := 1.0
	for i := uint64(0); i < countAtLimit; i++ {
		pNotSeeingAtLimit *= float64((totalCount-i)-duplicationLevel) / float64(totalCount-i)
	}
	return float64(numberOfObservations) / (1.0 - pNotSeeingAtLimit)
}

// DuplicationLevelRow is one bucket of the duplication-level histogram.
type DuplicationLevelRow struct {
	Label                 string
	DeduplicatedPercentage float64
	TotalPercentage       float64
}

// DuplicationLevelsPayload is the Duplication Levels report fragment.
type DuplicationLevelsPayload struct {
	TotalDeduplicatedPercentage float64
	Rows                        []DuplicationLevelRow
}

func (payload *DuplicationLevelsPayload) WriteText(w TextWriter) error {
	if _, err := w.WriteString(fmt.Sprintf("#Total Deduplicated Percentage\t%.6f\n", payload.TotalDeduplicatedPercentage)); err != nil {
		return err
	}
	if _, err := w.WriteString("#Duplication Level\tPercentage of deduplicated\tPercentage of total\n"); err != nil {
		return err
	}
	for _, r := range payload.Rows {
		line := fmt.Sprintf("%s\t%.6f\t%.6f\n", r.Label, r.DeduplicatedPercentage, r.TotalPercentage)
		if _, err := w.WriteString(line); err != nil {
			return err
		}
	}
	return nil
}

func (payload *DuplicationLevelsPayload) ToJSON() (interface{}, error) {
	return map[string]interface{}{
		"total_deduplicated_percentage": payload.TotalDeduplicatedPercentage,
		"rows":                          payload.Rows,
	}, nil
}

// OverrepresentedSeqRow is one sequence flagged as making up too large a
// share of the run.
type OverrepresentedSeqRow struct {
	Sequence       string
	Count          uint32
	Percentage     float64
	PossibleSource string
}

// OverrepresentedSeqsPayload is the Overrepresented Sequences report
// fragment.
type OverrepresentedSeqsPayload struct {
	Rows []OverrepresentedSeqRow
}

func (payload *OverrepresentedSeqsPayload) WriteText(w TextWriter) error {
	if _, err := w.WriteString("#Sequence\tCount\tPercentage\tPossible Source\n"); err != nil {
		return err
	}
	for _, r := range payload.Rows {
		line := fmt.Sprintf("%s\t%d\t%.6f\t%s\n", r.Sequence, r.Count, r.Percentage, r.PossibleSource)
		if _, err := w.WriteString(line); err != nil {
			return err
		}
	}
	return nil
}

func (payload *OverrepresentedSeqsPayload) ToJSON() (interface{}, error) {
	return map[string]interface{}{"rows": payload.Rows}, nil
}

func (o *OverrepresentedSequences) possibleSource(sequence string) string {
	hit, ok := FindContaminant(o.contaminant, []byte(sequence))
	if !ok {
		return "No Hit"
	}
	direction := "forward"
	if hit.Direction == 1 {
		direction = "reverse complement"
	}
	return fmt.Sprintf("%s (%d%% over %d bp) %s", hit.Contaminant.Name, hit.PercentID, hit.Length, direction)
}

func (o *OverrepresentedSequences) duplicationReport() *DuplicationLevelsPayload {
	collated := make(map[uint32]uint32)
	for _, count := range o.sequences {
		collated[count]++
	}
	corrected := make(map[uint32]float64, len(collated))
	for dupLevel, distinctCount := range collated {
		corrected[dupLevel] = getCorrectedCount(o.countAtLimit, o.count, uint64(dupLevel), uint64(distinctCount))
	}
	var dedupTotal, rowTotal float64
	var dedupPercentages, totalPercentages [16]float64
	for dupLevelU, count := range corrected {
		dupLevel := float64(dupLevelU)
		dedupTotal += count
		rowTotal += count * dupLevel
		slot := 0
		for i := len(dupLevelLabels) - 1; i >= 0; i-- {
			if dupLevel > float64(dupLevelLabels[i].threshold) {
				slot = i
				break
			}
		}
		dedupPercentages[slot] += count
		totalPercentages[slot] += count * dupLevel
	}
	rows := make([]DuplicationLevelRow, len(dupLevelLabels))
	for i, l := range dupLevelLabels {
		row := DuplicationLevelRow{Label: l.label}
		if dedupTotal > 0 {
			row.DeduplicatedPercentage = dedupPercentages[i] * 100.0 / dedupTotal
		}
		if rowTotal > 0 {
			row.TotalPercentage = totalPercentages[i] * 100.0 / rowTotal
		}
		rows[i] = row
	}
	totalDedup := 0.0
	if rowTotal > 0 {
		totalDedup = dedupTotal / rowTotal * 100.0
	}
	return &DuplicationLevelsPayload{TotalDeduplicatedPercentage: totalDedup, Rows: rows}
}

func (o *OverrepresentedSequences) Finalize() ([]ReportFragment, error) {
	dupPayload := o.duplicationReport()

	var rows []OverrepresentedSeqRow
	for _, seq := range o.order {
		count := o.sequences[seq]
		percentage := float64(count) * 100.0 / float64(o.count)
		if percentage < 0.1 {
			continue
		}
		rows = append(rows, OverrepresentedSeqRow{
			Sequence:       seq,
			Count:          count,
			Percentage:     percentage,
			PossibleSource: o.possibleSource(seq),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return natsort.Compare(rows[i].Sequence, rows[j].Sequence)
	})

	maxPercentage := 0.0
	for _, r := range rows {
		if r.Percentage > maxPercentage {
			maxPercentage = r.Percentage
		}
	}
	errorTh := o.config.Limits.Get("overrepresented:error")
	warnTh := o.config.Limits.Get("overrepresented:warn")
	status := Pass
	switch {
	case maxPercentage > errorTh:
		status = Fail
	case maxPercentage > warnTh:
		status = Warn
	}
	overPayload := &OverrepresentedSeqsPayload{Rows: rows}

	return []ReportFragment{
		{Name: o.dupName(), Status: Pass, Payload: dupPayload},
		{Name: o.Name(), Status: status, Payload: overPayload},
	}, nil
}
