// Package cmd implements the math subcommands: run, fmt, init, and repl.
package cmd

var (
	// ConfigIdentifier is the kong variable identifier containing the path
	// to the default configuration file.
	ConfigIdentifier = "config"

	// HistoryIdentifier is the kong variable identifier containing the path
	// to the default REPL history file.
	HistoryIdentifier = "history"
)

// BaseHistory is the base name of the REPL history file.
const BaseHistory = "history.utf8"
