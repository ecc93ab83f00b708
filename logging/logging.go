// Package logging builds the per-subsystem loggers that every package
// in this module hands out through its UseLogger hook.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
)

// Logger is the interface all subsystems log through.
type Logger = slog.Logger

// Disabled is a Logger that discards all output.
var Disabled = slog.Disabled

// maxLogRolls is how many compressed roll files the rotator keeps.
const maxLogRolls = 16

// LoggerMaker allows creation of new log subsystems with predefined levels.
type LoggerMaker struct {
	*slog.Backend
	DefaultLevel slog.Level
	Levels       map[string]slog.Level
}

// NewLoggerMaker parses debugLevel and returns a LoggerMaker writing to
// w. debugLevel is either a single level name applied to every
// subsystem or a comma-separated list of subsystem=level pairs, e.g.
// "LDGR=debug,WAL=trace". An empty string means info everywhere.
func NewLoggerMaker(w io.Writer, debugLevel string) (*LoggerMaker, error) {
	lm := &LoggerMaker{
		Backend:      slog.NewBackend(w),
		DefaultLevel: slog.LevelInfo,
		Levels:       make(map[string]slog.Level),
	}
	if debugLevel == "" {
		return lm, nil
	}

	if !strings.Contains(debugLevel, "=") {
		lvl, ok := slog.LevelFromString(debugLevel)
		if !ok {
			return nil, fmt.Errorf("unknown log level %q", debugLevel)
		}
		lm.DefaultLevel = lvl
		return lm, nil
	}

	for _, pair := range strings.Split(debugLevel, ",") {
		name, level, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("malformed debuglevel pair %q", pair)
		}
		lvl, ok := slog.LevelFromString(level)
		if !ok {
			return nil, fmt.Errorf("unknown log level %q in %q", level, pair)
		}
		lm.Levels[name] = lvl
	}
	return lm, nil
}

// NewLogger creates a new Logger for the subsystem with the given name. If a
// log level is specified, it is used for the Logger. Otherwise the configured
// level for that subsystem, falling back to DefaultLevel, is used.
func (lm *LoggerMaker) NewLogger(name string, level ...slog.Level) Logger {
	lvl, ok := lm.Levels[name]
	if !ok {
		lvl = lm.DefaultLevel
	}
	if len(level) > 0 {
		lvl = level[0]
	}
	logger := lm.Backend.Logger(name)
	logger.SetLevel(lvl)
	return logger
}

// SubLogger creates a Logger with a subsystem name "parent[name]", using any
// known log level for the parent subsystem, defaulting to the DefaultLevel if
// the parent does not have an explicitly set level.
func (lm *LoggerMaker) SubLogger(parent, name string) Logger {
	level, ok := lm.Levels[parent]
	if !ok {
		level = lm.DefaultLevel
	}
	logger := lm.Backend.Logger(fmt.Sprintf("%s[%s]", parent, name))
	logger.SetLevel(level)
	return logger
}

// logWriter tees log output to a rotating file and, optionally, stdout.
type logWriter struct {
	*rotator.Rotator
	stdout bool
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	if w.stdout {
		os.Stdout.Write(p)
	}
	return w.Rotator.Write(p)
}

// InitLogging opens a rotating log file under logDir and returns a
// LoggerMaker writing to it, plus a close function for shutdown. With
// stdout set the output is additionally mirrored to standard out.
func InitLogging(logDir, debugLevel string, stdout bool) (*LoggerMaker, func(), error) {
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	logRotator, err := rotator.New(filepath.Join(logDir, "darkpool.log"), 32*1024, false, maxLogRolls)
	if err != nil {
		return nil, nil, fmt.Errorf("create file rotator: %w", err)
	}
	lm, err := NewLoggerMaker(&logWriter{logRotator, stdout}, debugLevel)
	if err != nil {
		logRotator.Close()
		return nil, nil, err
	}
	return lm, func() { logRotator.Close() }, nil
}
