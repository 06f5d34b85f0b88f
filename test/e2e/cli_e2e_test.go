package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// buildBinary compiles a command of this module into a temporary directory.
// go test runs with the package directory as working directory, so the
// module root is two levels up.
func buildBinary(t *testing.T, name string) string {
	t.Helper()
	binName := name
	if runtime.GOOS == "windows" {
		binName += ".exe"
	}
	binPath := filepath.Join(t.TempDir(), binName)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/"+name)
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build %s: %v", name, err)
	}
	return binPath
}

// TestCLI_E2E verifies the built coinsim binary end to end.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}
	binPath := buildBinary(t, "coinsim")

	tests := []struct {
		name     string
		args     []string
		env      []string
		wantOut  []string
		wantCode int
	}{
		{
			name:    "Small Run",
			args:    []string{"--total", "100000", "--batch-size", "10000", "--seed", "1"},
			wantOut: []string{"Simulating 100,000 people", "batch 10/10", "Final results"},
		},
		{
			name:    "Remainder Batch",
			args:    []string{"--total", "25000", "--batch-size", "10000", "--ordered"},
			wantOut: []string{"batch 3/3 done", "Total people simulated: 25,000"},
		},
		{
			name:    "Quiet Mode",
			args:    []string{"--total", "1000", "--batch-size", "100", "-q"},
			wantOut: []string{"total=1000 successes="},
		},
		{
			name:    "Compact Mode",
			args:    []string{"--total", "1000", "--batch-size", "100", "--compact"},
			wantOut: []string{"10/10 batches", "Final results"},
		},
		{
			name:    "Env Override",
			args:    []string{"-q"},
			env:     []string{"COINSIM_TOTAL=2048", "COINSIM_BATCH_SIZE=512"},
			wantOut: []string{"total=2048"},
		},
		{
			name:    "Metrics",
			args:    []string{"--total", "1000", "--batch-size", "500", "-q", "--metrics"},
			wantOut: []string{"coinsim_batches_total 2"},
		},
		{
			name:    "Help",
			args:    []string{"--help"},
			wantOut: []string{"usage", "-batch-size"},
		},
		{
			name:    "Version Flag",
			args:    []string{"--version"},
			wantOut: []string{"coinsim"},
		},
		{
			name:     "Invalid Batch Size",
			args:     []string{"--batch-size", "0"},
			wantOut:  []string{"batch size must be positive"},
			wantCode: 4,
		},
		{
			name:     "Invalid Env Value",
			env:      []string{"COINSIM_FLIPS=many"},
			wantCode: 4,
		},
		{
			name:     "Very Short Timeout",
			args:     []string{"--total", "3000000000", "--timeout", "1ms"},
			wantOut:  []string{"timeout"},
			wantCode: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(append(os.Environ(), "NO_COLOR=1"), tt.env...)
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("running binary: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput:\n%s", code, tt.wantCode, outStr)
			}

			for _, want := range tt.wantOut {
				if !strings.Contains(strings.ToLower(outStr), strings.ToLower(want)) {
					t.Errorf("Output missing expected string %q\nGot:\n%s", want, outStr)
				}
			}
		})
	}
}

// TestEnvcheck_E2E verifies the diagnostic binary.
func TestEnvcheck_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}
	binPath := buildBinary(t, "envcheck")

	output, err := exec.Command(binPath).CombinedOutput()
	if err != nil {
		t.Fatalf("envcheck failed: %v\n%s", err, output)
	}
	for _, want := range []string{"Go Version: go", "Slice test: [0, 1, 4", "pi = 3.141593", "All checks passed!"} {
		if !strings.Contains(string(output), want) {
			t.Errorf("envcheck output missing %q:\n%s", want, output)
		}
	}
}
