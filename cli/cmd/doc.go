// Package cmd provides the run subcommand: the interpreter's entry point,
// wired to the driver package and the CLI's source-file and worker-count
// flags.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path of
	// the configuration file, without its ".json" extension.
	ConfigIdentifier = "config"
)
