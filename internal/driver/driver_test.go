package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/raccoon-lang/raccoon/internal/ast"
)

func TestParseSourceReturnsCrateForValidInput(t *testing.T) {
	crate, diags := ParseSource("test.rn", "fn main() {}")
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %+v", diags)
	}
	if crate == nil || len(crate.Items) != 1 {
		t.Fatalf("expected a single-item crate, got %+v", crate)
	}
}

func TestParseSourceReturnsPartialCrateAndDiagnosticsOnError(t *testing.T) {
	crate, diags := ParseSource("test.rn", "fn main( {}")
	if len(diags) == 0 {
		t.Fatalf("expected at least one diagnostic")
	}
	if crate == nil {
		t.Fatalf("expected a partial crate even on parse failure")
	}
}

func TestParseSourceLeavesUnloadedModAlone(t *testing.T) {
	crate, diags := ParseSource("test.rn", "mod widgets;")
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %+v", diags)
	}
	item := crate.Items[0]
	modItem, ok := item.Kind.(*ast.ModItem)
	if !ok {
		t.Fatalf("expected a ModItem, got %T", item.Kind)
	}
	if _, ok := modItem.Kind.(ast.ModUnloaded); !ok {
		t.Fatalf("expected ModUnloaded, got %T", modItem.Kind)
	}
}

func TestParseFileReadErrorProducesDiagnostic(t *testing.T) {
	crate, diags := ParseFile(filepath.Join(t.TempDir(), "missing.rn"))
	if crate != nil {
		t.Fatalf("expected nil crate on read failure, got %+v", crate)
	}
	if len(diags) != 1 || diags[0].Code != "E_DRIVER_READ" {
		t.Fatalf("expected a single E_DRIVER_READ diagnostic, got %+v", diags)
	}
}

func TestParseFileReadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.rn")
	if err := os.WriteFile(path, []byte("fn main() {}"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	crate, diags := ParseFile(path)
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %+v", diags)
	}
	if crate == nil || len(crate.Items) != 1 {
		t.Fatalf("expected a single-item crate, got %+v", crate)
	}
}
