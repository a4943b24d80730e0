package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/sysf/internal/config"
)

type Level int

const (
	TRACE Level = iota
	DEBUG
	INFO
	WARN
	ERROR
	NONE
)

var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "NONE"}

var levelColors = [...]string{
	"\033[90m", // Grey
	"\033[36m", // Cyan
	"\033[32m", // Green
	"\033[33m", // Yellow
	"\033[31m", // Red
}

const resetColor = "\033[0m"

func (l Level) String() string {
	if l < TRACE || l > NONE {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// Logger writes leveled lines. Child loggers created by With share the
// parent's output and lock.
type Logger struct {
	level  Level
	color  bool
	fields string
	file   *os.File
	logger *log.Logger
	mu     *sync.Mutex
}

// New creates a logger writing to w. Colour is only used when w is a
// terminal.
func New(w io.Writer, level Level, color bool) *Logger {
	return &Logger{
		level:  level,
		color:  color && isTerminal(w),
		logger: log.New(w, "", log.LstdFlags),
		mu:     &sync.Mutex{},
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, NONE, false)
}

// FromConfig builds the logger described by cfg, appending to cfg.File when
// it is set and to stderr otherwise.
func FromConfig(cfg config.LogConfig) (*Logger, error) {
	var out io.Writer = os.Stderr
	var fh *os.File
	if cfg.File != "" {
		var err error
		fh, err = os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		out = fh
	}
	l := New(out, ParseLevel(cfg.Level), cfg.Color)
	l.file = fh
	return l, nil
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// ParseLevel maps a level name to a Level; unknown names disable logging.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "trace":
		return TRACE
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn":
		return WARN
	case "error":
		return ERROR
	default:
		return NONE
	}
}

// With returns a child logger that prefixes every line with key=value.
func (l *Logger) With(key string, value any) *Logger {
	child := *l
	child.fields = strings.TrimSpace(fmt.Sprintf("%s %s=%v", l.fields, key, value))
	child.file = nil
	return &child
}

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level Level) bool {
	return l != nil && level >= l.level && l.level != NONE
}

func (l *Logger) log(level Level, format string, v ...any) {
	if !l.Enabled(level) {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, v...)
	tag := levelNames[level]
	if l.color {
		tag = fmt.Sprintf("%s%-5s%s", levelColors[level], tag, resetColor)
	}
	if l.fields != "" {
		l.logger.Printf("[%s] %s %s", tag, l.fields, msg)
		return
	}
	l.logger.Printf("[%s] %s", tag, msg)
}

func (l *Logger) Trace(format string, v ...any) { l.log(TRACE, format, v...) }
func (l *Logger) Debug(format string, v ...any) { l.log(DEBUG, format, v...) }
func (l *Logger) Info(format string, v ...any)  { l.log(INFO, format, v...) }
func (l *Logger) Warn(format string, v ...any)  { l.log(WARN, format, v...) }
func (l *Logger) Error(format string, v ...any) { l.log(ERROR, format, v...) }

// Close releases the log file opened by FromConfig, if any.
func (l *Logger) Close() error {
	if l != nil && l.file != nil {
		return l.file.Close()
	}
	return nil
}
