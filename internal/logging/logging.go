// Package logging builds the structured loggers shared by the commands.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Options configure a logger.
type Options struct {
	Level  string // debug, info, warn, error; empty means info
	Prefix string
	Logfmt bool // machine-readable output instead of styled text
}

// New creates a logger writing to w. An unknown level falls back to info
// and is reported through the returned logger.
func New(w io.Writer, opts Options) *log.Logger {
	level := log.InfoLevel
	var err error
	if name := strings.ToLower(strings.TrimSpace(opts.Level)); name != "" {
		if level, err = log.ParseLevel(name); err != nil {
			level = log.InfoLevel
		}
	}

	formatter := log.TextFormatter
	if opts.Logfmt {
		formatter = log.LogfmtFormatter
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          opts.Prefix,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Formatter:       formatter,
	})
	if err != nil {
		logger.Warn("unknown log level, using info", "value", opts.Level)
	}
	return logger
}
