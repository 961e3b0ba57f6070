package qc

// adapterCatalogData is this analyzer's bundled adapter catalog, used by
// the Adapter Content module to track per-position enrichment. The
// original reference list's adapter table wasn't available to ground this
// on, so this is a small supplemented set covering the common
// Illumina/Nextera/SOLiD adapters, in the same "name<TAB>sequence" format
// as the contaminant catalog.
const adapterCatalogData = `Illumina Universal Adapter	AGATCGGAAGAG
Illumina Small RNA 3' Adapter	TGGAATTCTCGG
Illumina Small RNA 5' Adapter	GATCGTCGGACT
Nextera Transposase Sequence	CTGTCTCTTATA
SOLID Small RNA Adapter	CGCCTTGGCCGT
`

// DefaultContaminantCatalog parses the bundled contaminant list.
func DefaultContaminantCatalog() []Contaminant {
	return LoadContaminants(newLineScanner(contaminantCatalogData))
}

// DefaultAdapterCatalog parses the bundled adapter list.
func DefaultAdapterCatalog() []Contaminant {
	return LoadContaminants(newLineScanner(adapterCatalogData))
}
