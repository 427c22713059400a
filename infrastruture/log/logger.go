// Package logger provides the named, colour-prefixed logger used across the services.
package logger

import (
	"errors"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-mazestats/config"
	"github.com/beka-birhanu/vinom-mazestats/service/i"
)

var _ i.Logger = &Logger{}

// Logger prefixes every line with a coloured component name and a level tag.
type Logger struct {
	name  string
	color string
	out   *log.Logger
}

// New creates a Logger for the component name writing to w.
func New(name, color string, w io.Writer) (*Logger, error) {
	if name == "" {
		return nil, errors.New("logger name is required")
	}
	if w == nil {
		return nil, errors.New("logger writer is required")
	}

	return &Logger{
		name:  name,
		color: color,
		out:   log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print(config.LogInfoColor, "INFO", msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.print(config.LogWarningColor, "WARNING", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.print(config.LogErrorColor, "ERROR", msg)
}

func (l *Logger) print(levelColor, level, msg string) {
	l.out.Printf("%s[%s]%s %s[%s]%s %s", l.color, l.name, config.ColorReset, levelColor, level, config.LogColorReset, msg)
}
