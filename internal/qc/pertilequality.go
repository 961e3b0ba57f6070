package qc

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// maxTiles is the distinct-tile-count ceiling past which this module gives
// up, on the assumption the ID field being parsed as a tile isn't really
// one (e.g. a non-Illumina ID scheme slipped past the field-count check).
const maxTiles = 500

// tileSampleStride processes only every 10th record to bound the module's
// cost; tile quality drift is a slow, file-wide trend that doesn't need
// every read to detect.
const tileSampleStride = 10

// PerTileQualityScores tracks per-tile, per-position quality to catch
// flowcell-tile-local quality problems. It self-suppresses when the read ID
// doesn't look like an Illumina colon-separated ID, or when it finds
// implausibly many distinct tiles.
type PerTileQualityScores struct {
	config     *Config
	suppressed bool
	idPosition int // -1 until determined from the first parsed ID
	seen       uint64
	minChar    byte
	tiles      map[string]*QualityCounts
	tileOrder  []string
}

// NewPerTileQualityScores returns an empty accumulator bound to cfg.
func NewPerTileQualityScores(cfg *Config) *PerTileQualityScores {
	return &PerTileQualityScores{config: cfg, idPosition: -1, minChar: 255, tiles: make(map[string]*QualityCounts)}
}

func (p *PerTileQualityScores) Name() string { return "Per tile sequence quality" }

func (p *PerTileQualityScores) Process(rec *Record) {
	if p.suppressed {
		return
	}
	p.seen++
	if p.seen%tileSampleStride != 0 {
		return
	}
	fields := strings.Split(rec.ID, ":")
	if p.idPosition < 0 {
		switch {
		case len(fields) >= 7:
			p.idPosition = 4
		case len(fields) >= 5:
			p.idPosition = 2
		default:
			p.suppressed = true
			return
		}
	}
	if p.idPosition >= len(fields) {
		p.suppressed = true
		return
	}
	tile := fields[p.idPosition]
	if _, err := strconv.Atoi(tile); err != nil {
		p.suppressed = true
		return
	}
	counts, ok := p.tiles[tile]
	if !ok {
		if len(p.tiles) >= maxTiles {
			p.suppressed = true
			return
		}
		counts = NewQualityCounts()
		p.tiles[tile] = counts
		p.tileOrder = append(p.tileOrder, tile)
	}
	for idx, ch := range rec.Quality {
		if ch < p.minChar {
			p.minChar = ch
		}
		counts.AddValue(idx, ch)
	}
}

func (p *PerTileQualityScores) SuppressInReport() bool { return p.suppressed }

// TileDeviationRow is one tile's per-group mean-quality deviation from the
// across-tile average.
type TileDeviationRow struct {
	Tile       string
	Deviations []float64
}

// PerTileQualityScoresPayload is PerTileQualityScores.Finalize's report
// fragment.
type PerTileQualityScoresPayload struct {
	Groups []BaseGroup
	Rows   []TileDeviationRow
}

func (payload *PerTileQualityScoresPayload) WriteText(w TextWriter) error {
	if _, err := w.WriteString("#Tile"); err != nil {
		return err
	}
	for _, g := range payload.Groups {
		if _, err := w.WriteString("\t" + g.Label()); err != nil {
			return err
		}
	}
	if _, err := w.WriteString("\n"); err != nil {
		return err
	}
	for _, row := range payload.Rows {
		if _, err := w.WriteString(row.Tile); err != nil {
			return err
		}
		for _, d := range row.Deviations {
			if _, err := w.WriteString(fmt.Sprintf("\t%.2f", d)); err != nil {
				return err
			}
		}
		if _, err := w.WriteString("\n"); err != nil {
			return err
		}
	}
	return nil
}

func (payload *PerTileQualityScoresPayload) ToJSON() (interface{}, error) {
	return map[string]interface{}{"groups": payload.Groups, "rows": payload.Rows}, nil
}

func (p *PerTileQualityScores) Finalize() ([]ReportFragment, error) {
	if p.suppressed || len(p.tiles) == 0 {
		return nil, nil
	}
	encoding, err := DetectPhredEncoding(p.minChar)
	if err != nil {
		return nil, err
	}
	offset := encoding.Offset
	maxLen := 0
	for _, counts := range p.tiles {
		if counts.Len() > maxLen {
			maxLen = counts.Len()
		}
	}
	groups := MakeBaseGroups(p.config.GroupType, maxLen)
	sort.Strings(p.tileOrder)

	tileMeans := make(map[string][]float64, len(p.tiles))
	groupAverage := make([]float64, len(groups))
	for _, tile := range p.tileOrder {
		counts := p.tiles[tile]
		means := make([]float64, len(groups))
		for gi, g := range groups {
			means[gi] = counts.GetMean(g, offset)
			groupAverage[gi] += means[gi]
		}
		tileMeans[tile] = means
	}
	for gi := range groupAverage {
		groupAverage[gi] /= float64(len(p.tileOrder))
	}

	maxDeviation := 0.0
	rows := make([]TileDeviationRow, len(p.tileOrder))
	for i, tile := range p.tileOrder {
		means := tileMeans[tile]
		deviations := make([]float64, len(groups))
		for gi, m := range means {
			d := m - groupAverage[gi]
			deviations[gi] = d
			if -d > maxDeviation {
				maxDeviation = -d
			}
			if d > maxDeviation {
				maxDeviation = d
			}
		}
		rows[i] = TileDeviationRow{Tile: tile, Deviations: deviations}
	}

	errorTh := p.config.Limits.Get("tile:error")
	warnTh := p.config.Limits.Get("tile:warn")
	status := Pass
	switch {
	case maxDeviation > errorTh:
		status = Fail
	case maxDeviation > warnTh:
		status = Warn
	}
	payload := &PerTileQualityScoresPayload{Groups: groups, Rows: rows}
	return []ReportFragment{{Name: p.Name(), Status: status, Payload: payload}}, nil
}
