// Package logging builds the structured loggers used by the simulator and session loop.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// Format selects how log records are encoded.
type Format string

const (
	FormatAuto   Format = ""       // text on a terminal, logfmt otherwise
	FormatText   Format = "text"   // human readable, colored
	FormatLogfmt Format = "logfmt" // key=value pairs
	FormatJSON   Format = "json"
)

// Options configures a logger created by New.
type Options struct {
	Level  string // debug, info, warn, error (default info)
	Format Format
	Prefix string
}

// fdWriter is implemented by *os.File and anything else backed by a descriptor.
type fdWriter interface {
	Fd() uintptr
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) (*log.Logger, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	formatter, err := resolveFormatter(w, opts.Format)
	if err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          opts.Prefix,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Formatter:       formatter,
	})
	if formatter == log.TextFormatter {
		logger.SetStyles(levelStyles())
	}
	return logger, nil
}

// Discard returns a logger that drops everything. Used as the zero-config default.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// Stderr is New(os.Stderr, opts) falling back to a plain logger on bad options.
func Stderr(opts Options) *log.Logger {
	logger, err := New(os.Stderr, opts)
	if err != nil {
		logger = log.New(os.Stderr)
		logger.Warn("bad logging options, using defaults", "err", err)
	}
	return logger
}

func resolveFormatter(w io.Writer, f Format) (log.Formatter, error) {
	switch Format(strings.ToLower(string(f))) {
	case FormatAuto:
		if isTerminal(w) {
			return log.TextFormatter, nil
		}
		return log.LogfmtFormatter, nil
	case FormatText:
		return log.TextFormatter, nil
	case FormatLogfmt:
		return log.LogfmtFormatter, nil
	case FormatJSON:
		return log.JSONFormatter, nil
	default:
		return log.TextFormatter, fmt.Errorf("unknown log format %q", f)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// levelStyles shortens level labels to a fixed width so columns line up.
func levelStyles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DBG").
		Foreground(lipgloss.Color("63"))
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INF").
		Foreground(lipgloss.Color("86"))
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WRN").
		Foreground(lipgloss.Color("192"))
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERR").
		Foreground(lipgloss.Color("204")).
		Bold(true)
	styles.Keys["kind"] = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	styles.Keys["err"] = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	return styles
}
