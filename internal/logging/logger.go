// Package logging provides leveled, optionally colored diagnostics with an
// optional plain-text file sink.
//
// Diagnostics never go to stdout: stdout carries the report, so every level
// is written to the writer given to [NewLogger] (stderr in the binary).
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/backmassage/avcp/internal/config"
	"github.com/backmassage/avcp/internal/term"
)

// Logger is safe for concurrent use by the probe workers.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	file    *os.File
	verbose bool
	now     func() time.Time
}

// NewLogger writes diagnostics to out and optionally appends them to
// cfg.LogFile. Call Close() when done if LogFile was set.
func NewLogger(cfg *config.Config, out io.Writer) (*Logger, error) {
	l := &Logger{out: out, verbose: cfg.Verbose, now: time.Now}
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
	}
	return l, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Verbose reports whether Debug lines are emitted.
func (l *Logger) Verbose() bool { return l.verbose }

func (l *Logger) line(level string, style *color.Color, text string) {
	ts := l.now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.out != nil {
		_, _ = fmt.Fprintf(l.out, "%s %s %s\n", ts, style.Sprint("["+level+"]"), text)
	}
	if l.file != nil {
		_, _ = io.WriteString(l.file, ts+" ["+level+"] "+text+"\n")
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", term.Blue, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", term.Green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", term.Yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red).
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", term.Red, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", term.Cyan, fmt.Sprintf(format, args...))
}
