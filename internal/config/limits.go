// Package config loads the tab-separated threshold configuration that
// drives every QC module's Pass/Warn/Fail verdict.
package config

// DefaultLimits is the bundled default threshold table in the
// `module<TAB>warn_or_error<TAB>number` format ModuleConfig.Load parses.
// duplication:warn/error are a confirmed ground-truth pair; the remaining
// values are this analyzer's own defaults, chosen in the same range FastQC-
// style analyzers commonly use and documented as invented in DESIGN.md.
const DefaultLimits = `# Configuration file for running the statistical tests in trust_seq.
# ... on a per test basis.

# these are the default values in trust_seq and should
# mirror those in the uk10k_defaults.txt file

quality_base_lower	warn	10
quality_base_lower	error	5
quality_base_median	warn	25
quality_base_median	error	20
quality_sequence	warn	27
quality_sequence	error	20

sequence	warn	10
sequence	error	20

n_content	warn	5
n_content	error	20

sequence_length	warn	1
sequence_length	error	1

duplication	warn	70.0
duplication	error	50.0

overrepresented	warn	0.1
overrepresented	error	1.0

adapter	warn	5
adapter	error	10

kmer	warn	0
kmer	error	5

tile	warn	0.2
tile	error	0.8
`
