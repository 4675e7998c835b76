package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// DefaultPath is the log file, relative to the working directory.
const DefaultPath = "logs/kickslab.log"

// maxLines bounds the in-memory history shown by the console.
const maxLines = 500

// Logger is a logrus logger that also keeps the most recent lines in memory so the
// console can draw them. Lines are appended to a file on disk as well.
type Logger struct {
	*logrus.Logger

	mu    sync.Mutex
	lines []string
	file  *os.File
}

// New returns a Logger writing to path (created with its directory if needed). If the
// file cannot be opened, output goes to stderr only.
func New(path string, level string) *Logger {
	l := &Logger{Logger: logrus.New(), lines: make([]string, 0, 64)}
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05"})
	if lvl, err := logrus.ParseLevel(level); err == nil {
		l.SetLevel(lvl)
	}
	l.SetOutput(os.Stderr)
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
		if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
			l.file = f
			l.SetOutput(io.MultiWriter(os.Stderr, f))
		}
	}
	l.AddHook(&memoryHook{l: l})
	return l
}

// Discard returns a Logger that only keeps lines in memory. Used by tests.
func Discard() *Logger {
	l := &Logger{Logger: logrus.New()}
	l.SetOutput(io.Discard)
	l.AddHook(&memoryHook{l: l})
	return l
}

// Component returns an entry tagged with the component name.
func (l *Logger) Component(name string) *logrus.Entry {
	return l.WithField("component", name)
}

// Log records a console line (user input or a command reply) at info level.
func (l *Logger) Log(line string) {
	l.WithField("component", "console").Info(line)
}

// ConsoleWriter returns a writer whose output is recorded line by line with Log.
func (l *Logger) ConsoleWriter() io.Writer {
	return consoleWriter{l: l}
}

type consoleWriter struct {
	l *Logger
}

func (w consoleWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if line != "" {
			w.l.Log(line)
		}
	}
	return len(p), nil
}

// Lines returns a copy of the stored lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	l.SetOutput(os.Stderr)
	return l.file.Close()
}

func (l *Logger) append(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
	if len(l.lines) > maxLines {
		l.lines = append(l.lines[:0], l.lines[len(l.lines)-maxLines:]...)
	}
}

// memoryHook formats each entry as "[time] message key=value" for the console.
type memoryHook struct {
	l *Logger
}

func (h *memoryHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *memoryHook) Fire(e *logrus.Entry) error {
	var b strings.Builder
	b.WriteString("[" + e.Time.Format("15:04:05") + "] ")
	if e.Level <= logrus.WarnLevel {
		b.WriteString(strings.ToUpper(e.Level.String()) + " ")
	}
	b.WriteString(e.Message)
	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		if k != "component" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(" " + k + "=" + fmt.Sprint(e.Data[k]))
	}
	h.l.append(b.String())
	return nil
}
