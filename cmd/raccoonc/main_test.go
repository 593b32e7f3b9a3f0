package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckSuccess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.rn")
	if err := os.WriteFile(path, []byte("fn main() {}"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	var out, errOut strings.Builder
	exitCode := run([]string{"check", path}, &out, &errOut)
	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d stderr=%s", exitCode, errOut.String())
	}
	if !strings.Contains(out.String(), "OK") {
		t.Fatalf("expected OK output, got %q", out.String())
	}
}

func TestCheckReportsParseErrorsAndExitsNonZero(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.rn")
	if err := os.WriteFile(path, []byte("fn main( {}"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	var out, errOut strings.Builder
	exitCode := run([]string{"check", path}, &out, &errOut)
	if exitCode != 1 {
		t.Fatalf("expected exit 1, got %d stderr=%s", exitCode, errOut.String())
	}
	if !strings.Contains(out.String(), "ERROR") {
		t.Fatalf("expected an ERROR line, got %q", out.String())
	}
}

func TestCheckWritesReportDir(t *testing.T) {
	dir := t.TempDir()
	reportDir := filepath.Join(dir, "artifacts")
	path := filepath.Join(dir, "main.rn")
	if err := os.WriteFile(path, []byte("fn main() {}"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	var out, errOut strings.Builder
	exitCode := run([]string{"check", "--report-dir", reportDir, path}, &out, &errOut)
	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d stderr=%s", exitCode, errOut.String())
	}
	for _, name := range []string{"raccoonc-junit.xml", "raccoonc-report.json"} {
		if _, err := os.Stat(filepath.Join(reportDir, name)); err != nil {
			t.Fatalf("expected report %s: %v", name, err)
		}
	}
}

func TestCheckJSONFormatIncludesRunID(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.rn")
	if err := os.WriteFile(path, []byte("fn main() {}"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	var out, errOut strings.Builder
	exitCode := run([]string{"check", "--format", "json", path}, &out, &errOut)
	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d stderr=%s", exitCode, errOut.String())
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(out.String()), &payload); err != nil {
		t.Fatalf("expected valid json output, got %q: %v", out.String(), err)
	}
	if _, ok := payload["run_id"].(string); !ok {
		t.Fatalf("expected a run_id string field, got %+v", payload)
	}
}

func TestPrintDumpsCrateAsJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.rn")
	if err := os.WriteFile(path, []byte("fn main() {}\nstruct Point(i32, i32);"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	var out, errOut strings.Builder
	exitCode := run([]string{"print", path}, &out, &errOut)
	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d stderr=%s", exitCode, errOut.String())
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(out.String()), &payload); err != nil {
		t.Fatalf("expected valid json output, got %q: %v", out.String(), err)
	}
	items, ok := payload["items"].([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("expected 2 top-level items, got %+v", payload)
	}
}

func TestPrintFailsOnParseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.rn")
	if err := os.WriteFile(path, []byte("fn main( {}"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	var out, errOut strings.Builder
	exitCode := run([]string{"print", path}, &out, &errOut)
	if exitCode != 1 {
		t.Fatalf("expected exit 1, got %d stderr=%s", exitCode, errOut.String())
	}
}

func TestCheckRequiresAtLeastOneFile(t *testing.T) {
	var out, errOut strings.Builder
	exitCode := run([]string{"check"}, &out, &errOut)
	if exitCode != 2 {
		t.Fatalf("expected exit 2, got %d stderr=%s", exitCode, errOut.String())
	}
}

func TestRootWithNoArgsPrintsUsage(t *testing.T) {
	var out, errOut strings.Builder
	exitCode := run(nil, &out, &errOut)
	if exitCode != 2 {
		t.Fatalf("expected exit 2, got %d", exitCode)
	}
	if !strings.Contains(errOut.String(), "Usage:") {
		t.Fatalf("expected usage text, got %q", errOut.String())
	}
}
