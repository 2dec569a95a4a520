package cmd

import (
	"context"
	"os"

	"github.com/ardnew/exl/driver"
	"github.com/ardnew/exl/log"
)

// Run is the default command: it interprets the configured source (files,
// stdin, or both) line by line against a fresh persistent environment.
type Run struct {
	Workers int `help:"Worker count for map/reduce dispatch (0 = number of CPUs)" name:"workers" short:"w"`
}

// Run executes the interpreter over the CLI's configured source files,
// falling back to stdin when none were given.
func (r *Run) Run(ctx context.Context) error {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return NewError("missing kong parse context")
	}

	src := sourceFilesFrom(ctx)
	if src == nil || src.IsZero() {
		src = buildSourceFiles([]string{stdinSource})
	}

	d := driver.New(r.Workers, log.Default().Logger)

	code := d.Run(src, os.Stdout, os.Stderr)
	if code != 0 {
		// The driver already wrote one diagnostic per failing line to stderr.
		ktx.Exit(code)
	}

	return nil
}
