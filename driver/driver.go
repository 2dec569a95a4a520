// Package driver implements the line-by-line read-parse-execute loop: it
// owns the persistent environment and the errored flag, turns evaluation
// failures into the ERROR:<line>,<col>[-<line2>,<col2>]:<msg> diagnostic
// wire format, and reports the process exit code the run deserves.
package driver

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ardnew/exl/concurrent"
	"github.com/ardnew/exl/eval"
	"github.com/ardnew/exl/evalerr"
	"github.com/ardnew/exl/parseline"
)

// Driver holds the state that persists across lines within a single run:
// the shared environment, the evaluator, and whether any line has failed
// so far.
type Driver struct {
	Evaluator *eval.Evaluator
	logger    *slog.Logger
	errored   bool
}

// New returns a Driver with a fresh environment and a concurrency runtime
// sized to workers (0 means runtime.NumCPU()).
func New(workers int, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}

	return &Driver{
		Evaluator: eval.NewWithRuntime(concurrent.NewRuntime(workers)),
		logger:    logger,
	}
}

// Run executes every line of r against the persistent environment,
// writing Out/Print output to stdout and one diagnostic per line to
// stderr. It returns 1 if any line produced an error, 0 otherwise — the
// process exit code the caller should report.
func (d *Driver) Run(r io.Reader, stdout, stderr io.Writer) int {
	d.Evaluator.Output = func(s string) { fmt.Fprint(stdout, s) }

	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++

		d.runLine(scanner.Text(), line, stderr)
	}

	if d.errored {
		return 1
	}

	return 0
}

func (d *Driver) runLine(text string, line int, stderr io.Writer) {
	if strings.TrimSpace(text) == "" {
		return
	}

	stmt, err := parseline.Parse(text, line)
	if err != nil {
		d.report(err, stderr)

		return
	}

	if d.errored {
		// A prior line's error (syntax or evaluation) halts execution but not
		// parsing:
		// subsequent lines are still parsed (above) to surface further
		// syntax errors, just never executed.
		return
	}

	if err := d.Evaluator.Exec(stmt); err != nil {
		d.report(err, stderr)
	}
}

// Errored reports whether any line processed so far has produced an error.
func (d *Driver) Errored() bool { return d.errored }

func (d *Driver) report(err error, stderr io.Writer) {
	d.errored = true

	d.logger.Debug("line error", slog.Any("error", err))

	if derr, ok := evalerr.AsError(err); ok {
		fmt.Fprintln(stderr, derr.Diagnostic())

		return
	}

	fmt.Fprintf(stderr, "ERROR:%s\n", err.Error())
}
