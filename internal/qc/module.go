package qc

import "fmt"

// Status is a module's verdict against its configured thresholds.
type Status int

const (
	Pass Status = iota
	Warn
	Fail
)

func (s Status) String() string {
	switch s {
	case Pass:
		return "pass"
	case Warn:
		return "warn"
	case Fail:
		return "fail"
	default:
		return "unknown"
	}
}

// ReportFragment is one module's finalized result: its name, verdict, and a
// module-specific payload that must render both as a tab-separated text
// table and as a JSON value.
type ReportFragment struct {
	Name    string
	Status  Status
	Payload Payload
}

// Payload is the rendering contract every module's report data satisfies.
type Payload interface {
	WriteText(w TextWriter) error
	ToJSON() (interface{}, error)
}

// TextWriter is the minimal sink module payloads write their tab-separated
// table rows to; satisfied by *bufio.Writer and similar.
type TextWriter interface {
	WriteString(s string) (int, error)
}

// Module is the contract every QC analysis implements: accumulate one
// record at a time, then materialize its result once the stream ends.
type Module interface {
	Name() string
	Process(rec *Record)
	Finalize() ([]ReportFragment, error)
	// SuppressInReport reports whether this module opted itself out (e.g.
	// its input didn't have the shape it needed) and should be omitted
	// from the written report entirely.
	SuppressInReport() bool
}

// Driver runs a fixed, registration-ordered set of modules over a stream of
// records, then finalizes each in turn. It never lets one module's failure
// stop the others.
type Driver struct {
	modules  []Module
	failures map[string]error
}

// NewDriver registers modules in the order they should process records and
// appear in the report.
func NewDriver(modules ...Module) *Driver {
	return &Driver{modules: modules, failures: make(map[string]error)}
}

// Process hands one record to every registered module, in registration
// order.
func (d *Driver) Process(rec *Record) {
	for _, m := range d.modules {
		m.Process(rec)
	}
}

// Finalize calls Finalize on every module. A module whose Finalize fails is
// recorded as a failure and omitted from the returned fragments; the driver
// continues with the remaining modules rather than aborting the run.
func (d *Driver) Finalize() []ReportFragment {
	var fragments []ReportFragment
	for _, m := range d.modules {
		if m.SuppressInReport() {
			continue
		}
		frags, err := m.Finalize()
		if err != nil {
			d.failures[m.Name()] = fmt.Errorf("module %s: %w", m.Name(), err)
			continue
		}
		fragments = append(fragments, frags...)
	}
	return fragments
}

// Failures returns the per-module finalize errors recorded during the last
// Finalize call, keyed by module name.
func (d *Driver) Failures() map[string]error {
	return d.failures
}
