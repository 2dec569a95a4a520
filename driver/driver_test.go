package driver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runProgram(t *testing.T, program string) (stdout, stderr string, code int) {
	t.Helper()

	d := New(0, nil)

	var out, errw strings.Builder

	code = d.Run(strings.NewReader(program), &out, &errw)

	return out.String(), errw.String(), code
}

func TestScenarioVarThenOut(t *testing.T) {
	out, errw, code := runProgram(t, "var n = 5\nout n")

	require.Equal(t, "5", out)
	require.Empty(t, errw)
	require.Zero(t, code)
}

func TestScenarioRangeOut(t *testing.T) {
	out, _, code := runProgram(t, "out {1, 3}")

	require.Equal(t, "{1, 2, 3}", out)
	require.Zero(t, code)
}

func TestScenarioReduceSum(t *testing.T) {
	out, _, code := runProgram(t, "var s = reduce({1, 100}, 0, a b -> a + b)\nout s")

	require.Equal(t, "5050", out)
	require.Zero(t, code)
}

func TestScenarioMapSquares(t *testing.T) {
	out, _, code := runProgram(t, "out map({1, 4}, x -> x * x)")

	require.Equal(t, "{1, 4, 9, 16}", out)
	require.Zero(t, code)
}

func TestScenarioDivisionByZero(t *testing.T) {
	out, errw, code := runProgram(t, "out 1 / 0")

	require.Empty(t, out)
	require.Equal(t, 1, code)
	require.Contains(t, errw, "ERROR:1,")
	require.Contains(t, errw, "division by zero")
}

func TestScenarioReduceProduct(t *testing.T) {
	out, _, code := runProgram(t, "var p = reduce({1, 10}, 1, a b -> a * b)\nout p")

	require.Equal(t, "3628800", out)
	require.Zero(t, code)
}

func TestBlankLinesIgnored(t *testing.T) {
	out, errw, code := runProgram(t, "\n\nvar n = 1\n\nout n\n")

	require.Equal(t, "1", out)
	require.Empty(t, errw)
	require.Zero(t, code)
}

func TestSyntaxErrorStopsExecutionButKeepsParsing(t *testing.T) {
	out, errw, code := runProgram(t, "var n = 5\nout @\nout n")

	require.Empty(t, out, "no output once an error occurred")
	require.Equal(t, 1, code)
	require.Contains(t, errw, "ERROR:2,")
}

func TestRunTwiceIsIdempotent(t *testing.T) {
	program := "var n = 5\nout n"

	out1, err1, code1 := runProgram(t, program)
	out2, err2, code2 := runProgram(t, program)

	require.Equal(t, out1, out2)
	require.Equal(t, err1, err2)
	require.Equal(t, code1, code2)
}

func TestEarlierBindingsSurviveLaterError(t *testing.T) {
	out, _, code := runProgram(t, "var n = 5\nvar m = 1 / 0\nout n")

	require.Equal(t, 1, code)

	// out n never runs because the driver stops executing (not parsing)
	// once errored is set, matching scenario 5's single-error semantics.
	require.Empty(t, out)
}
