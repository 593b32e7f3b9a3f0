package report

import (
	"encoding/json"
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"

	"github.com/raccoon-lang/raccoon/internal/diagnostics"
)

func TestBuildNoResultsYieldsEmptyModel(t *testing.T) {
	got := Build("run-1", nil)
	if len(got.Files) != 0 || got.Summary != (Summary{}) {
		t.Fatalf("expected empty model for no results, got %+v", got)
	}
	if got.RunID != "run-1" {
		t.Fatalf("expected run id to be carried through, got %q", got.RunID)
	}
}

func TestBuildMarksFileWithDiagnosticsAsError(t *testing.T) {
	results := []FileResult{
		{Path: "ok.rn"},
		{Path: "bad.rn", Diags: []diagnostics.Diagnostic{
			{Code: "E_PARSE_EXPECTED_TOKEN", Message: "expected }, found EOF", File: "bad.rn", Offset: 12},
		}},
	}
	model := Build("run-2", results)
	if len(model.Files) != 2 {
		t.Fatalf("expected 2 file reports, got %+v", model.Files)
	}
	if model.Files[0].Status != "passed" {
		t.Fatalf("expected ok.rn to pass, got %+v", model.Files[0])
	}
	if model.Files[1].Status != "error" || model.Files[1].Message == "" {
		t.Fatalf("expected bad.rn to carry an error status and message, got %+v", model.Files[1])
	}
	if model.Summary.Files != 2 || model.Summary.Errors != 1 {
		t.Fatalf("unexpected summary: %+v", model.Summary)
	}
}

func TestBuildDedupesAndSortsPerFileDiagnostics(t *testing.T) {
	dup := diagnostics.Diagnostic{Code: "E_X", Message: "same", File: "a.rn", Offset: 5}
	results := []FileResult{{Path: "a.rn", Diags: []diagnostics.Diagnostic{dup, dup}}}
	model := Build("run-3", results)
	if len(model.Files[0].Diags) != 1 {
		t.Fatalf("expected duplicate diagnostics to collapse, got %+v", model.Files[0].Diags)
	}
}

func TestWriteJSONAndJUnitFiles(t *testing.T) {
	model := Build("run-4", []FileResult{
		{Path: "ok.rn"},
		{Path: "bad.rn", Diags: []diagnostics.Diagnostic{
			{Code: "E_PARSE_EXPECTED_TOKEN", Message: "expected }, found EOF", File: "bad.rn", Offset: 12},
		}},
	})

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "nested", "report.json")
	xmlPath := filepath.Join(dir, "nested", "report.xml")

	if err := WriteJSONFile(jsonPath, model); err != nil {
		t.Fatalf("WriteJSONFile failed: %v", err)
	}
	if err := WriteJUnitFile(xmlPath, model); err != nil {
		t.Fatalf("WriteJUnitFile failed: %v", err)
	}

	jsonBytes, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("read json failed: %v", err)
	}
	var gotModel Model
	if err := json.Unmarshal(jsonBytes, &gotModel); err != nil {
		t.Fatalf("json unmarshal failed: %v", err)
	}
	if gotModel.Summary.Files != 2 || gotModel.Summary.Errors != 1 {
		t.Fatalf("unexpected json content: %+v", gotModel)
	}
	if gotModel.RunID != "run-4" {
		t.Fatalf("expected run_id to round-trip, got %q", gotModel.RunID)
	}

	xmlBytes, err := os.ReadFile(xmlPath)
	if err != nil {
		t.Fatalf("read xml failed: %v", err)
	}
	if len(xmlBytes) == 0 || string(xmlBytes[:5]) != "<?xml" {
		t.Fatalf("expected xml header, got %q", string(xmlBytes))
	}
	var suites junitSuites
	if err := xml.Unmarshal(xmlBytes, &suites); err != nil {
		t.Fatalf("xml unmarshal failed: %v", err)
	}
	if len(suites.Suites) != 1 || suites.Suites[0].Errors != 1 {
		t.Fatalf("unexpected junit suites: %+v", suites)
	}
	if suites.Suites[0].Cases[1].Error == nil {
		t.Fatalf("expected error element for failing testcase: %+v", suites.Suites[0].Cases[1])
	}
}
