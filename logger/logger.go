// Package logger provides a small prefixed, colour-coded leveled logger.
//
// Lines look like:
//
//	2025/02/08 11:03:54 [SOLVE] [INFO] solved 10x10 maze
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"
)

const (
	levelInfoColor    = "\033[32m"
	levelWarningColor = "\033[33m"
	levelErrorColor   = "\033[31m"
	colorReset        = "\033[0m"
)

var (
	ErrEmptyPrefix = errors.New("logger prefix must not be empty")
	ErrNilWriter   = errors.New("logger writer must not be nil")
)

// Logger writes leveled messages under a component prefix.
type Logger struct {
	prefix string
	color  string
	out    *log.Logger
}

// New creates a Logger for the component named prefix, colouring the prefix
// with color (an ANSI escape, or empty for none).
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if w == nil {
		return nil, ErrNilWriter
	}
	return &Logger{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.write("INFO", levelInfoColor, msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.write("WARNING", levelWarningColor, msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.write("ERROR", levelErrorColor, msg)
}

func (l *Logger) write(level, levelColor, msg string) {
	if l.color == "" {
		l.out.Printf("[%s] [%s] %s", l.prefix, level, msg)
		return
	}
	l.out.Printf("%s[%s]%s %s[%s]%s %s",
		l.color, l.prefix, colorReset,
		levelColor, level, colorReset,
		msg,
	)
}

// Writer returns a writer that logs every write as an Info line. It lets
// libraries that take an io.Writer, such as gin, share the prefix.
func (l *Logger) Writer() io.Writer {
	return writerFunc(func(p []byte) (int, error) {
		l.Info(string(trimNewline(p)))
		return len(p), nil
	})
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) {
	return f(p)
}

func trimNewline(p []byte) []byte {
	for len(p) > 0 && (p[len(p)-1] == '\n' || p[len(p)-1] == '\r') {
		p = p[:len(p)-1]
	}
	return p
}

// String implements fmt.Stringer.
func (l *Logger) String() string {
	return fmt.Sprintf("logger(%s)", l.prefix)
}
