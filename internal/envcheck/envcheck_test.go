package envcheck

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRand int

func (f fixedRand) IntN(int) int { return int(f) }

func TestCollect(t *testing.T) {
	t.Parallel()
	r := Collect(fixedRand(41))

	assert.Equal(t, runtime.Version(), r.GoVersion)
	assert.Equal(t, 42, r.RandomInt)
	assert.Equal(t, []int{0, 1, 4, 9, 16, 25, 36, 49, 64, 81}, r.Squares)
	assert.NotEmpty(t, r.Executable)
	assert.NotEmpty(t, r.WorkDir)
	assert.Positive(t, r.NumCPU)
}

func TestCollect_RandomRange(t *testing.T) {
	t.Parallel()
	for range 200 {
		n := Collect(nil).RandomInt
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, 100)
	}
}

func TestReport_Write(t *testing.T) {
	t.Parallel()
	r := Collect(fixedRand(6))
	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf))
	out := buf.String()

	for _, want := range []string{
		strings.Repeat("=", 60),
		"Go Version: " + runtime.Version(),
		"Random number test: 7",
		"Slice test: [0, 1, 4, 9, 16, 25, 36, 49, 64, 81]",
		"Math calculation: pi = 3.141593, e = 2.718282",
		"All checks passed!",
	} {
		assert.Contains(t, out, want)
	}
}
