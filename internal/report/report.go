// Package report builds JSON and JUnit-style XML reports out of the
// diagnostics collected while parsing one or more files. Since this
// front end has no runtime/execution stage, the "testcase" concept is
// "file parsed with N diagnostics" rather than "request ran, assertion
// passed".
package report

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raccoon-lang/raccoon/internal/diagnostics"
)

// FileResult is the outcome of parsing a single file.
type FileResult struct {
	Path  string
	Diags []diagnostics.Diagnostic
}

// Model is the report model used for both JSON and JUnit output.
type Model struct {
	RunID   string       `json:"run_id"`
	Files   []FileReport `json:"files"`
	Summary Summary      `json:"summary"`
}

// FileReport is one file's parse outcome in the report.
type FileReport struct {
	Path    string                   `json:"path"`
	Status  string                   `json:"status"`
	Diags   []diagnostics.Diagnostic `json:"diagnostics,omitempty"`
	Message string                   `json:"message,omitempty"`
}

// Summary totals a Model or a single FileReport.
type Summary struct {
	Files  int `json:"files"`
	Errors int `json:"errors"`
}

// Build assembles a Model from the per-file parse results of a single
// invocation, tagged with runID so separate check runs can be told
// apart in a CI log.
func Build(runID string, results []FileResult) Model {
	model := Model{RunID: runID}
	for _, r := range results {
		diags := diagnostics.SortAndDedupe(r.Diags)
		fr := FileReport{Path: r.Path, Diags: diags, Status: "passed"}
		if len(diags) > 0 {
			fr.Status = "error"
			fr.Message = diags[0].Message
		}
		model.Files = append(model.Files, fr)
	}
	model.Summary = summarize(model.Files)
	return model
}

func summarize(files []FileReport) Summary {
	s := Summary{Files: len(files)}
	for _, f := range files {
		s.Errors += len(f.Diags)
	}
	return s
}

func WriteJSONFile(path string, model Model) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(model)
}

func WriteJUnitFile(path string, model Model) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	suite := junitSuite{Name: "raccoonc check", Tests: model.Summary.Files, Errors: model.Summary.Errors}
	for _, fr := range model.Files {
		jtc := junitCase{Name: fr.Path}
		if fr.Status == "error" {
			jtc.Error = &junitError{Message: fmt.Sprintf("%d diagnostic(s): %s", len(fr.Diags), fr.Message)}
		}
		suite.Cases = append(suite.Cases, jtc)
	}
	top := junitSuites{Suites: []junitSuite{suite}}

	enc := xml.NewEncoder(f)
	enc.Indent("", "  ")
	if _, err := f.WriteString(xml.Header); err != nil {
		return err
	}
	return enc.Encode(top)
}

type junitSuites struct {
	XMLName xml.Name     `xml:"testsuites"`
	Suites  []junitSuite `xml:"testsuite"`
}

type junitSuite struct {
	Name   string      `xml:"name,attr"`
	Tests  int         `xml:"tests,attr"`
	Errors int         `xml:"errors,attr"`
	Cases  []junitCase `xml:"testcase"`
}

type junitCase struct {
	Name  string      `xml:"name,attr"`
	Error *junitError `xml:"error,omitempty"`
}

type junitError struct {
	Message string `xml:"message,attr"`
}
