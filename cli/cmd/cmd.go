package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/kong"

	"github.com/jakubsmolaga/math-parser/lang"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given
// kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// ReadSource reads and concatenates the given source paths in order,
// joining files with a newline so expressions never run together across
// file boundaries. A path of "-" reads stdin. The combined source must be
// valid UTF-8.
func ReadSource(paths []string) (string, error) {
	parts := make([]string, 0, len(paths))

	for _, path := range paths {
		var (
			data []byte
			err  error
		)

		if path == stdinSource {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(path)
		}

		if err != nil {
			return "", lang.ErrReadInput.Wrap(err)
		}

		if !utf8.Valid(data) {
			return "", lang.ErrInvalidUTF8.With(
				slog.String("file", path),
			)
		}

		parts = append(parts, string(data))
	}

	return strings.Join(parts, "\n"), nil
}
