// Package report renders a driver's finalized ReportFragments as the two
// output formats the analyzer supports: a FastQC-style tab-separated text
// report, and a single JSON object keyed by module name.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmikk/seqqc/internal/qc"
)

// WriteText writes fragments to w as ">>NAME\tSTATUS", the module's
// tab-separated payload table, then ">>END_MODULE", one section per
// fragment in the order given.
func WriteText(w io.Writer, fragments []qc.ReportFragment) error {
	bw := bufio.NewWriter(w)
	for _, frag := range fragments {
		if _, err := bw.WriteString(fmt.Sprintf(">>%s\t%s\n", frag.Name, frag.Status)); err != nil {
			return err
		}
		if frag.Payload != nil {
			if err := frag.Payload.WriteText(bw); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(">>END_MODULE\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// jsonFragment is one module's JSON rendering: a "status" field matching the
// text report's verdict, and the payload's structured value under "data".
type jsonFragment struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

// WriteJSON writes fragments to w as a single JSON object keyed by module
// name, each value carrying the module's status and structured payload.
func WriteJSON(w io.Writer, fragments []qc.ReportFragment) error {
	out := make(map[string]jsonFragment, len(fragments))
	for _, frag := range fragments {
		var data interface{}
		if frag.Payload != nil {
			v, err := frag.Payload.ToJSON()
			if err != nil {
				return fmt.Errorf("module %s: %w", frag.Name, err)
			}
			data = v
		}
		out[frag.Name] = jsonFragment{Status: frag.Status.String(), Data: data}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
