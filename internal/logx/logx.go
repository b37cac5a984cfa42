// Package logx is the application log. Lines are kept in a bounded in-memory
// buffer for the log panel and optionally copied to a writer (the --log-file
// sink). Nothing is written to the terminal the TUI owns.
package logx

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

// ParseLevel maps a level name to a Level, defaulting to Info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

const maxLines = 500

var (
	mu    sync.Mutex
	level = Info
	buf   = make([]string, 0, maxLines)
	out   io.Writer
	now   = time.Now
)

func SetLevel(l Level) { mu.Lock(); level = l; mu.Unlock() }

// SetOutput copies every accepted line to w; nil disables the copy.
func SetOutput(w io.Writer) { mu.Lock(); out = w; mu.Unlock() }

func Debugf(format string, a ...any) { logf(Debug, "DEBUG", format, a...) }
func Infof(format string, a ...any)  { logf(Info, "INFO", format, a...) }
func Warnf(format string, a ...any)  { logf(Warn, "WARN", format, a...) }
func Errorf(format string, a ...any) { logf(Error, "ERROR", format, a...) }

func logf(l Level, tag, format string, a ...any) {
	mu.Lock()
	defer mu.Unlock()
	if l < level {
		return
	}
	ts := now().Format("2006-01-02T15:04:05.000Z07:00")
	line := fmt.Sprintf("%s %-5s %s", ts, tag, fmt.Sprintf(format, a...))
	if len(buf) >= maxLines {
		copy(buf[0:], buf[1:])
		buf = buf[:len(buf)-1]
	}
	buf = append(buf, line)
	if out != nil {
		fmt.Fprintln(out, line)
	}
}

// Lines returns a copy of the buffered lines, oldest first.
func Lines() []string {
	mu.Lock()
	defer mu.Unlock()
	lines := make([]string, len(buf))
	copy(lines, buf)
	return lines
}

// Reset drops all buffered lines.
func Reset() {
	mu.Lock()
	buf = buf[:0]
	mu.Unlock()
}
