package cmd

import (
	"context"

	"github.com/jakubsmolaga/math-parser/cli/cmd/repl"
	"github.com/jakubsmolaga/math-parser/log"
)

// Repl starts an interactive read-eval-print session.
type Repl struct {
	History string `default:"${history}" help:"History file path" type:"path"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	return repl.Run(ctx, r.History, log.Default())
}
