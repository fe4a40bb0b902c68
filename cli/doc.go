// Package cli implements the math command-line interface.
//
// The interface is declared as a [CLI] struct parsed with
// [github.com/alecthomas/kong]. Flags may also be provided through a JSON
// configuration file in the user's configuration directory (see the init
// subcommand). Subcommands live in the cli/cmd package; the interactive
// session lives in cli/cmd/repl.
package cli
