package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const solvedNet = `   UUU
   UUU
   UUU
LLLFFFRRRBBB
LLLFFFRRRBBB
LLLFFFRRRBBB
   DDD
   DDD
   DDD
`

func TestRunSolveOnAlreadySolvedCubeWritesEmptyLine(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.txt")
	outPath := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(inPath, []byte(solvedNet), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := runSolve(rootCmd, []string{inPath, outPath}); err != nil {
		t.Fatalf("runSolve: %v", err)
	}

	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got := strings.TrimSpace(string(out)); got != "" {
		t.Errorf("output for an already-solved cube = %q, want empty", got)
	}
}

func TestRunSolveRejectsMalformedInput(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.txt")
	outPath := filepath.Join(dir, "out.txt")
	lines := strings.Split(strings.TrimRight(solvedNet, "\n"), "\n")
	malformed := strings.Join(lines[:8], "\n") + "\n"
	if err := os.WriteFile(inPath, []byte(malformed), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := runSolve(rootCmd, []string{inPath, outPath}); err == nil {
		t.Error("runSolve should reject an 8-line input")
	}
}

func TestRunSolveRejectsMissingInput(t *testing.T) {
	dir := t.TempDir()
	if err := runSolve(rootCmd, []string{filepath.Join(dir, "missing.txt"), filepath.Join(dir, "out.txt")}); err == nil {
		t.Error("runSolve should fail when the input file does not exist")
	}
}
