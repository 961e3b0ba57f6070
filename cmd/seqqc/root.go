package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shenwei356/bio/seq"
	"github.com/spf13/cobra"

	"github.com/vmikk/seqqc/internal/config"
	"github.com/vmikk/seqqc/internal/qc"
	"github.com/vmikk/seqqc/internal/report"
	"github.com/vmikk/seqqc/internal/source"
)

// VERSION is the analyzer's release version, printed by --version.
const VERSION = "0.1.0"

var (
	contaminantFile string
	adapterFile     string
	limitsFile      string
	outDir          string
	writeText       bool
	writeJSON       bool
	quiet           bool
	showVersion     bool

	// exitFunc is a seam for tests to intercept process termination.
	exitFunc = os.Exit
)

// diagnostics collects operator-facing warnings gathered across the run,
// printed once at the end rather than interleaved with per-file progress.
var diagnostics []string

func addDiagnostic(format string, args ...interface{}) {
	diagnostics = append(diagnostics, fmt.Sprintf(format, args...))
}

// NewRootCommand builds the seqqc root command.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seqqc [flags] FASTQ...",
		Short: "Streaming FASTQ quality-control analyzer",
		RunE:  runRoot,
	}
	cmd.SetHelpFunc(helpFunc)
	flags := cmd.Flags()
	flags.StringVarP(&contaminantFile, "contaminants", "c", "", "contaminant catalog file (overrides the bundled default)")
	flags.StringVarP(&adapterFile, "adapters", "a", "", "adapter catalog file (overrides the bundled default)")
	flags.StringVarP(&limitsFile, "limits", "l", "", "threshold overrides file")
	flags.StringVarP(&outDir, "out-dir", "o", "", "directory to write reports to (default: alongside each input)")
	flags.BoolVar(&writeText, "text", true, "write the text report")
	flags.BoolVar(&writeJSON, "json", true, "write the JSON report")
	flags.BoolVarP(&quiet, "quiet", "q", false, "suppress the end-of-run diagnostic summary")
	flags.BoolVarP(&showVersion, "version", "v", false, "show version information")
	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	if showVersion {
		fmt.Printf("seqqc %s\n", VERSION)
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("at least one input FASTQ file is required")
	}

	moduleConfig, err := loadLimits(limitsFile)
	if err != nil {
		return err
	}
	contaminants, err := loadCatalog(contaminantFile, qc.DefaultContaminantCatalog)
	if err != nil {
		return err
	}
	adapters, err := loadCatalog(adapterFile, qc.DefaultAdapterCatalog)
	if err != nil {
		return err
	}

	seq.ValidateSeq = false

	var failed bool
	for _, path := range args {
		if err := processFile(path, moduleConfig, contaminants, adapters); err != nil {
			fmt.Fprintln(os.Stderr, red(fmt.Sprintf("Error: %v", err)))
			failed = true
		}
	}

	if !quiet {
		for _, d := range diagnostics {
			fmt.Fprintln(os.Stderr, yellow(d))
		}
	}
	if failed {
		exitFunc(1)
	}
	return nil
}

// loadLimits returns the bundled default thresholds, optionally overridden
// by the file at path.
func loadLimits(path string) (*config.ModuleConfig, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, fmt.Errorf("loading default limits: %w", err)
	}
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening limits file %s: %w", path, err)
	}
	defer f.Close()
	if err := cfg.Load(f); err != nil {
		return nil, fmt.Errorf("parsing limits file %s: %w", path, err)
	}
	return cfg, nil
}

// loadCatalog returns fallback() unless path is set, in which case it
// parses path as a "name<TAB>sequence" catalog.
func loadCatalog(path string, fallback func() []qc.Contaminant) ([]qc.Contaminant, error) {
	if path == "" {
		return fallback(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file %s: %w", path, err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	return qc.LoadContaminants(scanner), nil
}

func processFile(path string, moduleConfig *config.ModuleConfig, contaminants, adapters []qc.Contaminant) error {
	cfg := &qc.Config{Limits: moduleConfig, GroupType: qc.GroupLinear}
	modules := qc.NewStandardModules(cfg, contaminants, adapters)
	basicStats := modules[0].(*qc.BasicStats)
	driver := qc.NewDriver(modules...)

	src, err := source.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	for {
		rec, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		driver.Process(rec)
	}

	fragments := driver.Finalize()
	for name, ferr := range driver.Failures() {
		addDiagnostic("%s: module %s failed to finalize: %v", path, name, ferr)
	}
	if d := basicStats.Diagnostic(); d != "" {
		addDiagnostic("%s: %s", path, d)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(path)
	}

	if writeText {
		if err := writeReport(filepath.Join(dir, base+"_qc.txt"), fragments, report.WriteText); err != nil {
			return err
		}
	}
	if writeJSON {
		if err := writeReport(filepath.Join(dir, base+"_qc.json"), fragments, report.WriteJSON); err != nil {
			return err
		}
	}
	return nil
}

func writeReport(path string, fragments []qc.ReportFragment, write func(io.Writer, []qc.ReportFragment) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report %s: %w", path, err)
	}
	defer f.Close()
	return write(f, fragments)
}
