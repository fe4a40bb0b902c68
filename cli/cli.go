package cli

import (
	"context"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/jakubsmolaga/math-parser/cli/cmd"
	"github.com/jakubsmolaga/math-parser/pkg"
)

// CLI is the top-level command-line interface for math.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Run  cmd.Run  `cmd:"" help:"Run a script file"`
	Fmt  cmd.Fmt  `cmd:"" help:"Reprint parsed source in various formats"`
	Init cmd.Init `cmd:"" help:"Initialize configuration file"`

	Repl cmd.Repl `cmd:"" default:"1" help:"Start an interactive session"`
}

// Run executes the math CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon
// completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig + ".json")

	vars := kong.Vars{
		cmd.ConfigIdentifier:  configFilePath,
		cmd.HistoryIdentifier: filepath.Join(cacheDir(), cmd.BaseHistory),
	}.CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless
	// of flag position.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact: true,
				Summary: true,
			}),
		kong.Configuration(kong.JSON, configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands.
	ctx = cmd.WithContext(ctx, ktx)

	cli.Log.start(ctx)

	// [pprofConfig.start] is a no-op unless built with tag pprof and
	// enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command.
	return ktx.Run(ctx)
}
