package qc

// NewStandardModules builds the full registration-ordered module set this
// analyzer runs per input file, bound to cfg and the given contaminant and
// adapter catalogs.
func NewStandardModules(cfg *Config, contaminants, adapters []Contaminant) []Module {
	return []Module{
		NewBasicStats(),
		NewPerBaseQualityScores(cfg),
		NewPerTileQualityScores(cfg),
		NewPerSequenceQualityScores(cfg),
		NewPerBaseSequenceContent(cfg),
		NewPerSequenceGCContents(),
		NewNContent(cfg),
		NewSequenceLengthDistribution(cfg),
		NewOverrepresentedSequences(cfg, contaminants),
		NewAdapterContent(cfg, adapters),
		NewKmerContent(cfg),
	}
}
