package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/jakubsmolaga/math-parser/lang"
	"github.com/jakubsmolaga/math-parser/log"
)

// Fmt reads source, parses it, and reprints it in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Reprint as canonical source (default)."`
	JSON   JSON   `cmd:""                    help:"Reprint as a JSON syntax tree."`
	YAML   YAML   `cmd:""                    help:"Reprint as a YAML syntax tree."`
}

// parseSource reads and parses a single source path for a fmt subcommand.
func parseSource(
	ctx context.Context,
	source string,
	format string,
) ([]*lang.Expr, error) {
	text, err := ReadSource([]string{source})
	if err != nil {
		return nil, err
	}

	exprs, err := lang.Parse(ctx, text, lang.WithLogger(log.Default()))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return nil, ErrParseSource.With(
			slog.String("format", format),
			slog.String("source", source),
		)
	}

	return exprs, nil
}

// Native reprints source in canonical form, one expression per line with
// minimal parentheses.
type Native struct {
	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the native fmt command.
func (f *Native) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	exprs, err := parseSource(ctx, f.Source, "native")
	if err != nil {
		return err
	}

	return lang.Format(os.Stdout, exprs)
}

// JSON reprints source as a JSON syntax tree.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the json fmt command.
func (j *JSON) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	exprs, err := parseSource(ctx, j.Source, "json")
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(exprs, "", strings.Repeat(" ", j.Indent))
	if err != nil {
		return ErrJSONMarshal.Wrap(err)
	}

	fmt.Println(string(data))

	return nil
}

// YAML reprints source as a YAML syntax tree.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the yaml fmt command.
func (y *YAML) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	exprs, err := parseSource(ctx, y.Source, "yaml")
	if err != nil {
		return err
	}

	data, err := yaml.MarshalContext(ctx, exprs, yaml.Indent(y.Indent))
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	fmt.Print(string(data))

	return nil
}
