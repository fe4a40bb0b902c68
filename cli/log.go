package cli

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/jakubsmolaga/math-parser/log"
)

// logFormat is a custom type that configures the logger format as a side
// effect of parsing via encoding.TextUnmarshaler.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
// As Kong parses the --log-format flag, this method is called, allowing us
// to configure the logger early enough to affect error messages during
// parsing.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel is a custom type that configures the logger level as a side
// effect of parsing via encoding.TextUnmarshaler.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"info" enum:"trace,debug,info,warn,error" help:"Set log level."`
	Format     logFormat `default:"text" enum:"json,text"                   help:"Set log format."`
	TimeLayout string    `default:"RFC3339"                                 help:"Set timestamp format."`
	Caller     bool      `default:"false"                                   help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"true"                                    help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

// start finalizes logger configuration with all parsed values, including
// TimeLayout and Caller which don't use TextUnmarshaler.
func (f *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan performs an early pass over command-line arguments to apply logger
// configuration before Kong begins parsing, so the logger is configured
// regardless of flag position. Value flags are handled through
// TextUnmarshaler during normal parsing; this pre-scan also catches the
// boolean flags.
func (f *logConfig) scan(args []string) {
	for i := 0; i < len(args); i++ {
		name, value, assigned := strings.Cut(args[i], "=")

		// Non-boolean flags consume the next argument when the value was
		// not attached with "=".
		consume := func() string {
			if assigned {
				return value
			}

			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++

				return args[i]
			}

			return ""
		}

		switch name {
		case "--log-level":
			_ = f.Level.UnmarshalText([]byte(consume()))

		case "--log-format":
			_ = f.Format.UnmarshalText([]byte(consume()))

		case "--log-pretty", "--no-log-pretty":
			enable := name == "--log-pretty"

			if assigned {
				v, err := strconv.ParseBool(value)
				if err != nil {
					continue
				}

				enable = enable == v
			}

			f.Pretty = enable

			log.Config(log.WithPretty(enable))

		case "--log-caller", "--no-log-caller":
			enable := name == "--log-caller"

			if assigned {
				v, err := strconv.ParseBool(value)
				if err != nil {
					continue
				}

				enable = enable == v
			}

			f.Caller = enable

			log.Config(log.WithCaller(enable))
		}
	}
}
