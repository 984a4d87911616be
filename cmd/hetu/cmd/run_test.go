package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// whatever it wrote. Mirrors the teacher's run_unit_test.go approach since
// runRun/runLex/runParse print straight to fmt.Println rather than through
// a cobra.Command writer.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String(), fnErr
}

func TestRunEvalExpr(t *testing.T) {
	oldExpr, oldInvoke, oldJSON := runEvalExpr, runInvokeFunc, runJSONResult
	defer func() { runEvalExpr, runInvokeFunc, runJSONResult = oldExpr, oldInvoke, oldJSON }()

	runEvalExpr = `proc main { print('hi from run') }`
	runInvokeFunc = "main"
	runJSONResult = false

	output, err := captureStdout(t, func() error { return runRun(runCmd, nil) })
	if err != nil {
		t.Fatalf("runRun: %v", err)
	}
	if !strings.Contains(output, "hi from run") {
		t.Errorf("expected output to contain 'hi from run', got %q", output)
	}
}

func TestRunFileArgument(t *testing.T) {
	oldExpr, oldInvoke, oldJSON := runEvalExpr, runInvokeFunc, runJSONResult
	defer func() { runEvalExpr, runInvokeFunc, runJSONResult = oldExpr, oldInvoke, oldJSON }()
	runEvalExpr, runInvokeFunc, runJSONResult = "", "main", false

	dir := t.TempDir()
	path := filepath.Join(dir, "main.ht")
	if err := os.WriteFile(path, []byte(`proc main { print(1 + 2) }`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	output, err := captureStdout(t, func() error { return runRun(runCmd, []string{path}) })
	if err != nil {
		t.Fatalf("runRun: %v", err)
	}
	if strings.TrimSpace(output) != "3" {
		t.Errorf("output = %q, want %q", output, "3")
	}
}

func TestRunJSONResult(t *testing.T) {
	oldExpr, oldInvoke, oldJSON := runEvalExpr, runInvokeFunc, runJSONResult
	defer func() { runEvalExpr, runInvokeFunc, runJSONResult = oldExpr, oldInvoke, oldJSON }()

	runEvalExpr = `fun main { return {'a': 1} }`
	runInvokeFunc = "main"
	runJSONResult = true

	output, err := captureStdout(t, func() error { return runRun(runCmd, nil) })
	if err != nil {
		t.Fatalf("runRun: %v", err)
	}
	if !strings.Contains(output, `"a":1`) {
		t.Errorf("expected JSON output containing a:1, got %q", output)
	}
}

func TestRunWithoutFileOrExprIsError(t *testing.T) {
	oldExpr, oldInvoke, oldJSON := runEvalExpr, runInvokeFunc, runJSONResult
	defer func() { runEvalExpr, runInvokeFunc, runJSONResult = oldExpr, oldInvoke, oldJSON }()
	runEvalExpr, runInvokeFunc, runJSONResult = "", "", false

	if _, err := captureStdout(t, func() error { return runRun(runCmd, nil) }); err == nil {
		t.Fatal("expected an error when neither a file nor -e is given")
	}
}

func TestRunScriptErrorReturnsNonNilError(t *testing.T) {
	oldExpr, oldInvoke, oldJSON := runEvalExpr, runInvokeFunc, runJSONResult
	defer func() { runEvalExpr, runInvokeFunc, runJSONResult = oldExpr, oldInvoke, oldJSON }()
	runEvalExpr, runInvokeFunc, runJSONResult = `var = `, "", false

	if _, err := captureStdout(t, func() error { return runRun(runCmd, nil) }); err == nil {
		t.Fatal("expected an error for malformed source")
	}
}
