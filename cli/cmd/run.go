package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jakubsmolaga/math-parser/lang"
	"github.com/jakubsmolaga/math-parser/log"
)

// Run parses and evaluates one or more script files in a single shared
// environment.
type Run struct {
	Paths []string `arg:"" help:"Script files or '-' for stdin" name:"paths" optional:""`

	Echo bool `help:"Write the value of every top-level expression to stdout" short:"e"`
}

// Run executes the run command.
func (r *Run) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	paths := r.Paths
	if len(paths) == 0 {
		paths = []string{stdinSource}
	}

	source, err := ReadSource(paths)
	if err != nil {
		return err
	}

	exprs, err := lang.Parse(ctx, source, lang.WithLogger(log.Default()))
	if err != nil {
		// Syntax errors carry their own caret diagnostic; print it
		// verbatim instead of folding it into a log line.
		fmt.Fprintln(os.Stderr, err)

		return ErrParseSource.With(
			slog.Any("paths", paths),
		)
	}

	log.TraceContext(ctx, "run parsed",
		slog.Any("paths", paths),
		slog.Int("expressions", len(exprs)),
	)

	env := lang.NewEnv()

	for _, expr := range exprs {
		value, err := expr.Eval(env)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)

			return ErrEvalSource.With(
				slog.String("expression", expr.String()),
			)
		}

		if r.Echo {
			fmt.Println(value)
		}
	}

	return nil
}
