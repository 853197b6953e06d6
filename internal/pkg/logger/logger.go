package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
)

// redactedFields never reach the output, whatever the caller passes.
var redactedFields = map[string]bool{
	"api_key":       true,
	"apikey":        true,
	"authorization": true,
}

// StdLogger is a lightweight implementation backed by Go's log package.
type StdLogger struct {
	verbose bool
	out     *log.Logger
}

// NewStd creates a StdLogger writing to stderr.
func NewStd(verbose bool) *StdLogger {
	return New(os.Stderr, verbose)
}

// New creates a StdLogger writing to w.
func New(w io.Writer, verbose bool) *StdLogger {
	return &StdLogger{verbose: verbose, out: log.New(w, "neuron ", log.LstdFlags)}
}

// SetVerbose toggles output; a non-verbose logger discards everything.
func (l *StdLogger) SetVerbose(verbose bool) {
	l.verbose = verbose
}

func (l *StdLogger) Debug(msg string, fields map[string]interface{}) {
	l.print("[DEBUG]", msg, nil, fields)
}

func (l *StdLogger) Info(msg string, fields map[string]interface{}) {
	l.print("[INFO]", msg, nil, fields)
}

func (l *StdLogger) Warn(msg string, fields map[string]interface{}) {
	l.print("[WARN]", msg, nil, fields)
}

func (l *StdLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.print("[ERROR]", msg, err, fields)
}

func (l *StdLogger) print(level, msg string, err error, fields map[string]interface{}) {
	if !l.verbose {
		return
	}
	parts := []string{level, msg}
	if err != nil {
		parts = append(parts, "error="+err.Error())
	}
	parts = append(parts, formatFields(fields)...)
	l.out.Println(strings.Join(parts, " "))
}

// formatFields renders key=value pairs in key order.
func formatFields(fields map[string]interface{}) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if redactedFields[strings.ToLower(k)] {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return out
}
