// Package console provides the leveled, markup-aware logger used across the generator.
//
// Format strings may carry style markup such as "$Bold{$Cyan{text}}". Markup is
// rendered with terminal colors when the output supports them and stripped otherwise.
package console

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"sync"

	"github.com/fatih/color"
)

// Logger is the process-wide console logger.
var Logger = New(os.Stdout)

var markupRegex = regexp.MustCompile(`\$(Bold|Red|Green|Yellow|Cyan|Faint)\{([^{}]*)\}`)

var styles = map[string]*color.Color{
	"Bold":   color.New(color.Bold),
	"Red":    color.New(color.FgRed),
	"Green":  color.New(color.FgGreen),
	"Yellow": color.New(color.FgYellow),
	"Cyan":   color.New(color.FgCyan),
	"Faint":  color.New(color.Faint),
}

// ConsoleLogger writes printf-style messages gated by level.
type ConsoleLogger struct {
	// DebugLevel enables Debug output when greater than zero.
	DebugLevel int
	// Quiet suppresses Info and Debug output. Warnings are always written.
	Quiet bool
	// NoColor strips markup instead of rendering it.
	NoColor bool

	mu  sync.Mutex
	out io.Writer
}

// New creates a ConsoleLogger writing to out.
func New(out io.Writer) *ConsoleLogger {
	return &ConsoleLogger{out: out, NoColor: color.NoColor}
}

// SetOutput replaces the writer and returns the previous one.
func (l *ConsoleLogger) SetOutput(out io.Writer) io.Writer {
	l.mu.Lock()
	defer l.mu.Unlock()
	prev := l.out
	l.out = out
	return prev
}

// Debug writes when DebugLevel > 0.
func (l *ConsoleLogger) Debug(format string, args ...interface{}) {
	if l.DebugLevel <= 0 || l.Quiet {
		return
	}
	l.write(format, args...)
}

// Info writes unless the logger is quiet.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	if l.Quiet {
		return
	}
	l.write(format, args...)
}

// Warn always writes, prefixed with a yellow marker.
func (l *ConsoleLogger) Warn(format string, args ...interface{}) {
	l.write("$Yellow{warning:} "+format, args...)
}

func (l *ConsoleLogger) write(format string, args ...interface{}) {
	msg := fmt.Sprintf(l.Render(format), args...)
	if len(msg) == 0 || msg[len(msg)-1] != '\n' {
		msg += "\n"
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.out == nil {
		return
	}
	_, _ = io.WriteString(l.out, msg)
}

// Render expands style markup in s, innermost first.
func (l *ConsoleLogger) Render(s string) string {
	for markupRegex.MatchString(s) {
		s = markupRegex.ReplaceAllStringFunc(s, func(m string) string {
			parts := markupRegex.FindStringSubmatch(m)
			if l.NoColor {
				return parts[2]
			}
			return styles[parts[1]].Sprint(parts[2])
		})
	}
	return s
}
