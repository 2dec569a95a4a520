//go:build !pprof

package profile

// Modes returns no supported modes when built without the pprof tag.
var Modes = func() []string { return nil }

// start is a no-op when built without the pprof tag.
func start(_, _ string, _ bool) interface{ Stop() } {
	return ignore{}
}
