package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/raccoon-lang/raccoon/internal/ast"
	"github.com/raccoon-lang/raccoon/internal/diagnostics"
	"github.com/raccoon-lang/raccoon/internal/driver"
	"github.com/raccoon-lang/raccoon/internal/report"
)

const (
	checkUsage = "raccoonc check <file...> [--format pretty|json] [--report-dir dir]"
	printUsage = "raccoonc print <file> [--format pretty|json]"
	watchUsage = "raccoonc watch <path...> [--verbose]"
)

type cliExitError struct {
	code  int
	msg   string
	usage string
}

func (e *cliExitError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	if e.usage != "" {
		return e.usage
	}
	return fmt.Sprintf("exit code %d", e.code)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		var exitErr *cliExitError
		if errors.As(err, &exitErr) {
			if exitErr.msg != "" {
				_, _ = fmt.Fprintln(stderr, exitErr.msg)
			}
			if exitErr.usage != "" {
				_, _ = fmt.Fprintln(stderr, strings.TrimSpace(exitErr.usage))
			}
			return exitErr.code
		}
		_, _ = fmt.Fprintln(stderr, err.Error())
		printRootUsage(stderr)
		return 2
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "raccoonc",
		Short:         "raccoonc CLI",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return &cliExitError{code: 2, usage: rootUsage()}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.AddCommand(newCheckCmd(stdout), newPrintCmd(stdout), newWatchCmd(stdout))
	return root
}

func newCheckCmd(stdout io.Writer) *cobra.Command {
	var (
		format    string
		reportDir string
	)
	checkCmd := &cobra.Command{
		Use:   "check <file...>",
		Short: "Parse files and report diagnostics",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return &cliExitError{code: 2, msg: "usage: " + checkUsage}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return &cliExitError{code: 2, msg: err.Error()}
			}
			runID := uuid.NewString()
			results := checkFiles(args)
			allDiags := collectDiags(results)

			if err := printCheckResult(stdout, format, runID, allDiags); err != nil {
				return &cliExitError{code: 1, msg: fmt.Sprintf("failed to write output: %v", err)}
			}

			if reportDir != "" {
				model := report.Build(runID, results)
				if err := writeCheckReports(reportDir, model); err != nil {
					return &cliExitError{code: 1, msg: fmt.Sprintf("failed to write reports: %v", err)}
				}
			}

			if len(allDiags) > 0 {
				return &cliExitError{code: 1}
			}
			return nil
		},
	}
	checkCmd.Flags().StringVar(&format, "format", "pretty", "stdout format: pretty|json")
	checkCmd.Flags().StringVar(&reportDir, "report-dir", "", "directory for JSON/JUnit report artifacts (skipped if empty)")
	return checkCmd
}

func newPrintCmd(stdout io.Writer) *cobra.Command {
	var format string
	printCmd := &cobra.Command{
		Use:   "print <file>",
		Short: "Parse a file and dump its AST",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &cliExitError{code: 2, msg: "usage: " + printUsage}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return &cliExitError{code: 2, msg: err.Error()}
			}
			crate, diags := driver.ParseFile(args[0])
			if len(diags) > 0 {
				if err := printCheckResult(stdout, format, "", diags); err != nil {
					return &cliExitError{code: 1, msg: fmt.Sprintf("failed to write output: %v", err)}
				}
				return &cliExitError{code: 1}
			}
			enc := json.NewEncoder(stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(dumpCrate(crate)); err != nil {
				return &cliExitError{code: 1, msg: fmt.Sprintf("failed to write output: %v", err)}
			}
			return nil
		},
	}
	printCmd.Flags().StringVar(&format, "format", "pretty", "diagnostic format on failure: pretty|json")
	return printCmd
}

func newWatchCmd(stdout io.Writer) *cobra.Command {
	var verbose bool
	watchCmd := &cobra.Command{
		Use:   "watch <path...>",
		Short: "Re-run check on every .rn file change",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return &cliExitError{code: 2, msg: "usage: " + watchUsage}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := newSourceWatcher(args, verbose, stdout)
			if err != nil {
				return &cliExitError{code: 1, msg: err.Error()}
			}
			defer w.Close()
			w.recheck()
			return w.Watch()
		},
	}
	watchCmd.Flags().BoolVar(&verbose, "verbose", false, "print watched paths and raw fsnotify events")
	return watchCmd
}

func validateFormat(format string) error {
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown --format %q (expected pretty|json)", format)
	}
	return nil
}

func checkFiles(paths []string) []report.FileResult {
	results := make([]report.FileResult, 0, len(paths))
	for _, p := range paths {
		_, diags := driver.ParseFile(p)
		results = append(results, report.FileResult{Path: p, Diags: diags})
	}
	return results
}

func collectDiags(results []report.FileResult) []diagnostics.Diagnostic {
	var all []diagnostics.Diagnostic
	for _, r := range results {
		all = append(all, r.Diags...)
	}
	return diagnostics.SortAndDedupe(all)
}

func writeCheckReports(reportDir string, model report.Model) error {
	if err := report.WriteJUnitFile(filepath.Join(reportDir, "raccoonc-junit.xml"), model); err != nil {
		return err
	}
	return report.WriteJSONFile(filepath.Join(reportDir, "raccoonc-report.json"), model)
}

func printCheckResult(stdout io.Writer, format, runID string, diags []diagnostics.Diagnostic) error {
	switch format {
	case "pretty":
		for _, d := range diags {
			_, _ = fmt.Fprintf(stdout, "ERROR %s %s@%d %s\n", d.Code, d.File, d.Offset, d.Message)
			if d.Hint != "" {
				_, _ = fmt.Fprintf(stdout, "  hint: %s\n", d.Hint)
			}
			if d.Related != nil {
				_, _ = fmt.Fprintf(stdout, "  related: %s@%d %s\n", d.Related.File, d.Related.Offset, d.Related.Message)
			}
		}
		if len(diags) == 0 {
			_, _ = fmt.Fprintln(stdout, "OK")
		}
		return nil
	case "json":
		payload := map[string]any{"run_id": runID, "ok": len(diags) == 0, "diagnostics": diags}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	default:
		return fmt.Errorf("unknown --format %q (expected pretty|json)", format)
	}
}

func printRootUsage(stderr io.Writer) {
	_, _ = fmt.Fprintln(stderr, strings.TrimSpace(rootUsage()))
}

func rootUsage() string {
	return `Usage:
  ` + checkUsage + `
  ` + printUsage + `
  ` + watchUsage
}

// sourceWatcher re-runs check on every .rn file change under its
// watched paths: a debounced fsnotify watch with a single recheck
// action (no run/test/exec modes, since there is nothing to execute
// here).
type sourceWatcher struct {
	watcher  *fsnotify.Watcher
	paths    []string
	verbose  bool
	debounce time.Duration
	stdout   io.Writer

	mu    sync.Mutex
	timer *time.Timer
}

func newSourceWatcher(paths []string, verbose bool, stdout io.Writer) (*sourceWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	sw := &sourceWatcher{watcher: watcher, paths: paths, verbose: verbose, debounce: 300 * time.Millisecond, stdout: stdout}
	for _, p := range paths {
		if err := sw.addPath(p); err != nil {
			watcher.Close()
			return nil, err
		}
	}
	return sw, nil
}

func (sw *sourceWatcher) addPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		dir := filepath.Dir(path)
		if err := sw.watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		return nil
	}
	return filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if strings.HasPrefix(info.Name(), ".") {
			return filepath.SkipDir
		}
		if err := sw.watcher.Add(p); err != nil {
			return fmt.Errorf("watching %s: %w", p, err)
		}
		return nil
	})
}

func (sw *sourceWatcher) Close() {
	sw.mu.Lock()
	if sw.timer != nil {
		sw.timer.Stop()
	}
	sw.mu.Unlock()
	_ = sw.watcher.Close()
}

func (sw *sourceWatcher) Watch() error {
	for {
		select {
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return nil
			}
			if !sw.shouldProcess(event) {
				continue
			}
			if sw.verbose {
				_, _ = fmt.Fprintf(sw.stdout, "event: %s %s\n", event.Op, event.Name)
			}
			sw.scheduleRecheck()
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return nil
			}
			_, _ = fmt.Fprintf(sw.stdout, "watch error: %v\n", err)
		}
	}
}

func (sw *sourceWatcher) shouldProcess(event fsnotify.Event) bool {
	if filepath.Ext(event.Name) != ".rn" {
		return false
	}
	if event.Op&fsnotify.Chmod == fsnotify.Chmod {
		return false
	}
	return true
}

func (sw *sourceWatcher) scheduleRecheck() {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if sw.timer != nil {
		sw.timer.Stop()
	}
	sw.timer = time.AfterFunc(sw.debounce, sw.recheck)
}

func (sw *sourceWatcher) recheck() {
	files := sw.sourceFiles()
	results := checkFiles(files)
	diags := collectDiags(results)
	_ = printCheckResult(sw.stdout, "pretty", "", diags)
}

func (sw *sourceWatcher) sourceFiles() []string {
	var files []string
	for _, p := range sw.paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		_ = filepath.Walk(p, func(fp string, fi os.FileInfo, err error) error {
			if err != nil || fi.IsDir() {
				return nil
			}
			if filepath.Ext(fp) == ".rn" {
				files = append(files, fp)
			}
			return nil
		})
	}
	return files
}

// dumpCrate renders a Crate as a nested, JSON-friendly tree of item
// names and kinds, letting a later phase (or a human) inspect what the
// parser produced without depending on the AST's internal struct
// shapes.
func dumpCrate(crate *ast.Crate) map[string]any {
	if crate == nil {
		return map[string]any{"items": []any{}}
	}
	items := make([]any, 0, len(crate.Items))
	for _, item := range crate.Items {
		items = append(items, dumpItem(item))
	}
	return map[string]any{"items": items}
}

func dumpItem(item *ast.Item) map[string]any {
	node := map[string]any{
		"name": item.Ident.String(),
		"kind": itemKindName(item.Kind),
	}
	if mod, ok := item.Kind.(*ast.ModItem); ok {
		if loaded, ok := mod.Kind.(*ast.ModLoaded); ok {
			children := make([]any, 0, len(loaded.Items))
			for _, child := range loaded.Items {
				children = append(children, dumpItem(child))
			}
			node["items"] = children
		}
	}
	return node
}

func itemKindName(kind ast.ItemKind) string {
	switch kind.(type) {
	case *ast.ModItem:
		return "mod"
	case *ast.UseItem:
		return "use"
	case *ast.FnItem:
		return "fn"
	case *ast.StructItem:
		return "struct"
	case *ast.EnumItem:
		return "enum"
	default:
		return "unknown"
	}
}
