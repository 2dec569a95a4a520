// Package cli contains the command line interface for exl.
//
// # Usage
//
// The CLI provides logging and profiling configuration alongside the
// interpreter's own source-selection flags:
//
//	exl --log-level=debug --pprof-mode=cpu --source program.exl
//
// # Run command
//
// The default (and only) subcommand, run, reads every file named by
// --source in order, falling back to standard input when none are given,
// and interprets the concatenated text line by line against a single
// persistent environment (see package driver). Out/Print output goes to
// standard output; one ERROR:<line>[,<col>[-<line2>,<col2>]]:<msg>
// diagnostic per failing line goes to standard error.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-callsite: Include caller information in log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o exl .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/exl/pprof)
//
// # Examples
//
//	# Debug logging with CPU profiling
//	exl --log-level=debug --pprof-mode=cpu --source program.exl
//
//	# Text format with heap profiling
//	exl --log-format=text --pprof-mode=heap --source program.exl
//
//	# Custom profile directory
//	exl --pprof-mode=allocs --pprof-dir=/tmp/profiles --source program.exl
package cli
