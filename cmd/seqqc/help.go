package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// helpFunc replaces cobra's default help with a FastQC-style usage screen.
func helpFunc(cmd *cobra.Command, args []string) {
	fmt.Printf(`
%s

%s
  Streams one or more FASTQ files through a fixed set of quality-control
  modules and writes a multi-section report (text and/or JSON) summarizing
  read quality, base composition, duplication, and adapter/contaminant
  content.

%s
  %s
  %s
  %s
  %s
  %s
  %s
  %s
  %s

%s
  %s
  %s

`,
		bold("seqqc "+VERSION+" - streaming FASTQ quality-control analyzer"),
		bold(yellow("Description:")),
		bold(yellow("Flags:")),
		cyan("-c, --contaminants")+" <string>  : Contaminant catalog file (overrides the bundled default)",
		cyan("-a, --adapters")+" <string>      : Adapter catalog file (overrides the bundled default)",
		cyan("-l, --limits")+" <string>        : Threshold overrides file (module<TAB>warn_or_error<TAB>number)",
		cyan("-o, --out-dir")+" <string>       : Directory to write reports to (default: alongside each input)",
		cyan("--text")+" / "+cyan("--json")+"           : Enable/disable each report format (default: both on)",
		cyan("-q, --quiet")+"                  : Suppress the end-of-run diagnostic summary",
		cyan("-h, --help")+"                   : Show this help message",
		cyan("-v, --version")+"                : Show version information",
		bold(yellow("Examples:")),
		cyan("seqqc reads.fastq.gz"),
		cyan("seqqc -o ./qc-reports -l custom_limits.txt sample_R1.fastq sample_R2.fastq"),
	)
}
