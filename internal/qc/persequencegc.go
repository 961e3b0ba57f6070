package qc

import "fmt"

// PerSequenceGCContents spreads each read's GC base count into a 101-bucket
// (0-100%) distribution via a per-read-length GCModel, built lazily as new
// lengths are encountered.
type PerSequenceGCContents struct {
	distribution [101]float64
	models       map[int]*GCModel
}

// NewPerSequenceGCContents returns an empty accumulator.
func NewPerSequenceGCContents() *PerSequenceGCContents {
	return &PerSequenceGCContents{models: make(map[int]*GCModel)}
}

func (g *PerSequenceGCContents) Name() string { return "Per sequence GC content" }

func (g *PerSequenceGCContents) Process(rec *Record) {
	length := len(rec.Sequence)
	if length == 0 {
		return
	}
	gcCount := 0
	for _, ch := range rec.Sequence {
		switch ch {
		case 'G', 'g', 'C', 'c':
			gcCount++
		}
	}
	model, ok := g.models[length]
	if !ok {
		model = NewGCModel(length)
		g.models[length] = model
	}
	model.AddValue(gcCount, g.distribution[:])
}

func (g *PerSequenceGCContents) SuppressInReport() bool { return false }

// PerSequenceGCContentsPayload is PerSequenceGCContents.Finalize's report
// fragment.
type PerSequenceGCContentsPayload struct {
	Distribution [101]float64
}

func (payload *PerSequenceGCContentsPayload) WriteText(w TextWriter) error {
	if _, err := w.WriteString("#GC Content\tCount\n"); err != nil {
		return err
	}
	for pct, count := range payload.Distribution {
		if _, err := w.WriteString(fmt.Sprintf("%d\t%v\n", pct, count)); err != nil {
			return err
		}
	}
	return nil
}

func (payload *PerSequenceGCContentsPayload) ToJSON() (interface{}, error) {
	return map[string]interface{}{"distribution": payload.Distribution}, nil
}

func (g *PerSequenceGCContents) Finalize() ([]ReportFragment, error) {
	payload := &PerSequenceGCContentsPayload{Distribution: g.distribution}
	return []ReportFragment{{Name: g.Name(), Status: Pass, Payload: payload}}, nil
}
