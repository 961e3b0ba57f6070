package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vmikk/seqqc/internal/qc"
)

type stubPayload struct {
	text string
	json interface{}
}

func (p *stubPayload) WriteText(w qc.TextWriter) error {
	_, err := w.WriteString(p.text)
	return err
}

func (p *stubPayload) ToJSON() (interface{}, error) {
	return p.json, nil
}

func TestWriteTextFormatsEachFragment(t *testing.T) {
	fragments := []qc.ReportFragment{
		{Name: "Basic Statistics", Status: qc.Pass, Payload: &stubPayload{text: "Total Sequences\t10\n"}},
		{Name: "Per base sequence quality", Status: qc.Warn, Payload: &stubPayload{text: "1\t30.0\n"}},
	}
	var buf bytes.Buffer
	if err := WriteText(&buf, fragments); err != nil {
		t.Fatalf("WriteText() error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, ">>Basic Statistics\tpass\n") {
		t.Errorf("missing pass header, got:\n%s", out)
	}
	if !strings.Contains(out, ">>Per base sequence quality\twarn\n") {
		t.Errorf("missing warn header, got:\n%s", out)
	}
	if strings.Count(out, ">>END_MODULE\n") != 2 {
		t.Errorf("expected one END_MODULE marker per fragment, got:\n%s", out)
	}
}

func TestWriteTextSkipsNilPayload(t *testing.T) {
	fragments := []qc.ReportFragment{{Name: "Empty", Status: qc.Pass, Payload: nil}}
	var buf bytes.Buffer
	if err := WriteText(&buf, fragments); err != nil {
		t.Fatalf("WriteText() error: %v", err)
	}
	want := ">>Empty\tpass\n>>END_MODULE\n"
	if buf.String() != want {
		t.Errorf("WriteText() = %q, want %q", buf.String(), want)
	}
}

func TestWriteJSONKeyedByModuleName(t *testing.T) {
	fragments := []qc.ReportFragment{
		{Name: "Basic Statistics", Status: qc.Fail, Payload: &stubPayload{json: map[string]interface{}{"total": 10}}},
	}
	var buf bytes.Buffer
	if err := WriteJSON(&buf, fragments); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
	var decoded map[string]struct {
		Status string                 `json:"status"`
		Data   map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode JSON output: %v", err)
	}
	entry, ok := decoded["Basic Statistics"]
	if !ok {
		t.Fatalf("missing key %q in %+v", "Basic Statistics", decoded)
	}
	if entry.Status != "fail" {
		t.Errorf("status = %q, want fail", entry.Status)
	}
	if entry.Data["total"].(float64) != 10 {
		t.Errorf("data.total = %v, want 10", entry.Data["total"])
	}
}
