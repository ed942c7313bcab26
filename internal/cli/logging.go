package cli

//
// logging.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"fmt"
	"io"
	stdlog "log"
	"log/syslog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/journald"
	"github.com/rs/zerolog/log"
	"gitlab.com/kabes/go-philo/internal/aerr"
)

const (
	logFormatConsole  = "console"
	logFormatLogfmt   = "logfmt"
	logFormatJSON     = "json"
	logFormatSyslog   = "syslog"
	logFormatJournald = "journald"
)

var logFormats = []string{logFormatConsole, logFormatLogfmt, logFormatJSON, logFormatSyslog, logFormatJournald}

const syslogTag = "philo"

// initializeLogger configure global zerolog logger and redirect standard log into it.
func initializeLogger(level, format string) error {
	zerolog.ErrorMarshalFunc = aerr.ErrorMarshalFunc //nolint:reassign

	writer, err := logWriter(checkFormat(format, outputIsConsole()))
	if err != nil {
		return err
	}

	log.Logger = log.Output(writer).With().Timestamp().Caller().Logger()

	lvl, err := parseLevel(level)
	if err != nil {
		log.Error().Err(err).Msgf("logger: unknown log level %q; using debug", level)
	}

	zerolog.SetGlobalLevel(lvl)

	stdlog.SetFlags(0)
	stdlog.SetOutput(log.Logger)

	return nil
}

func logWriter(format string) (io.Writer, error) {
	switch format {
	case logFormatJSON:
		return os.Stderr, nil

	case logFormatSyslog:
		w, err := syslog.New(syslog.LOG_USER, syslogTag)
		if err != nil {
			return nil, fmt.Errorf("init syslog error: %w", err)
		}

		return zerolog.SyslogLevelWriter(w), nil

	case logFormatJournald:
		return journald.NewJournalDWriter(), nil

	case logFormatLogfmt:
		return newLogfmtWriter(os.Stderr), nil
	}

	return newConsoleWriter(os.Stderr, outputIsConsole()), nil
}

// parseLevel return zerolog level for name; unknown or empty names give debug level.
func parseLevel(level string) (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.DebugLevel, aerr.Wrapf(err, "parse log level failed")
	}

	if lvl == zerolog.NoLevel {
		return zerolog.DebugLevel, nil
	}

	return lvl, nil
}

// checkFormat return valid format name. Unknown or empty format is replaced by
// console when stderr is a terminal or logfmt otherwise.
func checkFormat(format string, console bool) string {
	format = strings.ToLower(format)
	if slices.Contains(logFormats, format) {
		return format
	}

	if format != "" {
		log.Error().Msgf("logger: unknown log format %q; using default", format)
	}

	if console {
		return logFormatConsole
	}

	return logFormatLogfmt
}

func newConsoleWriter(out io.Writer, console bool) zerolog.ConsoleWriter {
	// date is useless on terminal
	tformat := time.RFC3339
	if console {
		tformat = time.TimeOnly
	}

	return zerolog.ConsoleWriter{ //nolint:exhaustruct
		Out:        out,
		NoColor:    !console,
		TimeFormat: tformat,
	}
}

func outputIsConsole() bool {
	fileInfo, _ := os.Stderr.Stat()

	return fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0
}

// newLogfmtWriter create writer that output every field as key=value.
func newLogfmtWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{ //nolint:exhaustruct
		Out:             out,
		NoColor:         true,
		TimeFormat:      time.RFC3339,
		FormatLevel:     logfmtField("level", false),
		FormatTimestamp: logfmtField("ts", false),
		FormatMessage:   logfmtField("msg", true),
		FormatCaller:    logfmtField("caller", false),
		FormatErrFieldValue: func(i any) string {
			return quoteIfNeeded(fmt.Sprint(i), true)
		},
	}
}

func logfmtField(key string, alwaysQuote bool) zerolog.Formatter {
	return func(i any) string {
		if i == nil {
			return ""
		}

		return key + "=" + quoteIfNeeded(fmt.Sprint(i), alwaysQuote)
	}
}

func quoteIfNeeded(value string, always bool) string {
	if always || value == "" || strings.ContainsAny(value, " \"=") {
		return strconv.Quote(value)
	}

	return value
}
