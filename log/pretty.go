package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Styles for pretty text output.
//
//nolint:gochecknoglobals
var (
	messageStyle = lipgloss.NewStyle().Bold(true)
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	timeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	levelStyles = map[Level]lipgloss.Style{
		LevelTrace: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
)

// prettyHandler is a slog.Handler producing colorized, human-oriented text
// output: a styled level badge, optional timestamp, bold message, and
// dimmed key=value attributes.
type prettyHandler struct {
	mu     *sync.Mutex
	out    io.Writer
	opts   *slog.HandlerOptions
	attrs  []slog.Attr
	groups []string
}

func newPrettyHandler(out io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	return &prettyHandler{
		mu:   &sync.Mutex{},
		out:  out,
		opts: opts,
	}
}

// Enabled implements slog.Handler.
func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}

	return level >= minLevel
}

// Handle implements slog.Handler.
func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder

	level := Level(r.Level)

	style, ok := levelStyles[level]
	if !ok {
		style = messageStyle
	}

	sb.WriteString(style.Render(strings.ToUpper(level.String())))
	sb.WriteByte(' ')

	if !r.Time.IsZero() {
		if ts := h.formatTime(r); ts != "" {
			sb.WriteString(timeStyle.Render(ts))
			sb.WriteByte(' ')
		}
	}

	sb.WriteString(messageStyle.Render(r.Message))

	prefix := strings.Join(h.groups, ".")

	for _, attr := range h.attrs {
		h.writeAttr(&sb, prefix, attr)
	}

	r.Attrs(func(attr slog.Attr) bool {
		h.writeAttr(&sb, prefix, attr)

		return true
	})

	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := io.WriteString(h.out, sb.String())

	return err
}

// WithAttrs implements slog.Handler.
func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)

	return &clone
}

// WithGroup implements slog.Handler.
func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)

	return &clone
}

// formatTime applies the configured ReplaceAttr transform to the record
// timestamp and returns the resulting string, or "" when timestamps are
// disabled.
func (h *prettyHandler) formatTime(r slog.Record) string {
	attr := slog.Time(slog.TimeKey, r.Time)
	if h.opts.ReplaceAttr != nil {
		attr = h.opts.ReplaceAttr(nil, attr)
	}

	if attr.Equal(slog.Attr{}) {
		return ""
	}

	return attr.Value.String()
}

// writeAttr renders one attribute as " key=value", flattening groups with
// dotted prefixes.
func (h *prettyHandler) writeAttr(
	sb *strings.Builder,
	prefix string,
	attr slog.Attr,
) {
	value := attr.Value.Resolve()

	if value.Kind() == slog.KindGroup {
		group := prefix
		if attr.Key != "" {
			if group != "" {
				group += "."
			}

			group += attr.Key
		}

		for _, nested := range value.Group() {
			h.writeAttr(sb, group, nested)
		}

		return
	}

	key := attr.Key
	if prefix != "" {
		key = prefix + "." + key
	}

	sb.WriteByte(' ')
	sb.WriteString(keyStyle.Render(key + "="))
	sb.WriteString(fmt.Sprint(value.Any()))
}
