// Package logger provides the labeled, colored writer logger used across
// the application's components. Every subsystem gets its own label and
// color so interleaved logs stay readable.
package logger

import (
	"errors"
	"io"
	"log"
)

const (
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorReset  = "\033[0m"
)

// Logger is the logging interface handed to services and controllers.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}

// Labeled writes tagged log lines to a writer, coloring the label.
type Labeled struct {
	label string
	color string
	out   *log.Logger
}

// New creates a logger that tags every line with the given label.
func New(label, color string, w io.Writer) (*Labeled, error) {
	if label == "" {
		return nil, errors.New("logger: label must not be empty")
	}
	if w == nil {
		return nil, errors.New("logger: writer must not be nil")
	}

	return &Labeled{
		label: label,
		color: color,
		out:   log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Labeled) Info(msg string) {
	l.print("INFO", "", msg)
}

// Warning logs a warning message.
func (l *Labeled) Warning(msg string) {
	l.print("WARN", colorYellow, msg)
}

// Error logs an error message.
func (l *Labeled) Error(msg string) {
	l.print("ERROR", colorRed, msg)
}

func (l *Labeled) print(level, levelColor, msg string) {
	l.out.Printf("%s[%s]%s %s[%s]%s %s", l.color, l.label, colorReset, levelColor, level, colorReset, msg)
}
