// Package envcheck prints a short report proving that the Go toolchain and
// runtime behave as expected on the current machine.
package envcheck

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"runtime"
	"strings"
)

// Rand is the subset of *rand.Rand used by the report.
type Rand interface {
	IntN(n int) int
}

// Report holds the collected environment facts.
type Report struct {
	GoVersion  string
	Platform   string
	NumCPU     int
	Executable string
	WorkDir    string
	RandomInt  int
	Squares    []int
	Pi         float64
	E          float64
}

// Collect gathers the report. Executable and working directory lookups that
// fail are recorded as their error text.
func Collect(rng Rand) Report {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	squares := make([]int, 10)
	for i := range squares {
		squares[i] = i * i
	}
	return Report{
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		Executable: valueOrError(os.Executable()),
		WorkDir:    valueOrError(os.Getwd()),
		RandomInt:  rng.IntN(100) + 1,
		Squares:    squares,
		Pi:         math.Pi,
		E:          math.E,
	}
}

func valueOrError(v string, err error) string {
	if err != nil {
		return "unavailable (" + err.Error() + ")"
	}
	return v
}

// Write prints the report framed by rules of '=' characters.
func (r Report) Write(out io.Writer) error {
	rule := strings.Repeat("=", 60)
	squares := make([]string, len(r.Squares))
	for i, s := range r.Squares {
		squares[i] = fmt.Sprint(s)
	}

	_, err := fmt.Fprintf(out, `%[1]s
Go Environment Check
%[1]s

Go Version: %[2]s (%[3]s, %[4]d CPUs)
Executable: %[5]s
Current Directory: %[6]s

Random number test: %[7]d
Slice test: [%[8]s]
Math calculation: pi = %.6[9]f, e = %.6[10]f

%[1]s
All checks passed! Go environment is working
%[1]s
`, rule, r.GoVersion, r.Platform, r.NumCPU, r.Executable, r.WorkDir,
		r.RandomInt, strings.Join(squares, ", "), r.Pi, r.E)
	return err
}
