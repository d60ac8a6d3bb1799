// Package logging provides module-scoped loggers built on charmbracelet/log.
//
// All output goes to stderr: stdout carries either the MCP stdio stream or the
// CLI's Markdown output. Debug output is switched on per module from the
// DEBUG setting, which is either a boolean or a comma-separated list of glob
// patterns matched against module names.
package logging

import (
	"io"
	"os"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	mu       sync.Mutex
	base     = newBase(os.Stderr)
	loggers  = map[string]*log.Logger{}
	debugAll bool
	patterns []string
	forced   bool
	level    = log.InfoLevel
)

func newBase(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
}

// For returns the logger for module, creating it on first use.
//
// Parameters:
//   - module: Dotted module name, e.g. "config" or "domain.keys"
//
// Returns:
//   - *log.Logger: A logger tagged with the module name
func For(module string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	if l, ok := loggers[module]; ok {
		return l
	}
	l := base.WithPrefix(module)
	l.SetLevel(levelFor(module))
	loggers[module] = l
	return l
}

// Configure applies a DEBUG setting to every existing and future logger.
//
// Parameters:
//   - debug: "true"/"1" for all modules, "false"/"0"/"" for none, or a
//     comma-separated list of glob patterns
func Configure(debug string) {
	mu.Lock()
	defer mu.Unlock()

	debugAll, patterns = parseDebug(debug)
	refresh()
}

// ForceDebug turns debug output on for every module regardless of DEBUG.
func ForceDebug(on bool) {
	mu.Lock()
	defer mu.Unlock()

	forced = on
	refresh()
}

// SetLevel sets the non-debug baseline level, e.g. warn for CLI runs.
func SetLevel(l log.Level) {
	mu.Lock()
	defer mu.Unlock()

	level = l
	refresh()
}

// SetJSON switches every logger to JSON lines. Used for long-running HTTP
// deployments where logs are collected.
func SetJSON(on bool) {
	mu.Lock()
	defer mu.Unlock()

	f := log.TextFormatter
	if on {
		f = log.JSONFormatter
	}
	base.SetFormatter(f)
	for _, l := range loggers {
		l.SetFormatter(f)
	}
}

// SetOutput redirects all loggers. Tests use it to capture output.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	base.SetOutput(w)
	for _, l := range loggers {
		l.SetOutput(w)
	}
}

// DebugEnabled reports whether debug output is on for module.
func DebugEnabled(module string) bool {
	mu.Lock()
	defer mu.Unlock()

	return levelFor(module) == log.DebugLevel
}

// MaskSecret keeps the last four characters of a secret.
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", 8) + s[len(s)-4:]
}

func refresh() {
	for module, l := range loggers {
		l.SetLevel(levelFor(module))
	}
}

func levelFor(module string) log.Level {
	if forced || debugAll {
		return log.DebugLevel
	}
	for _, p := range patterns {
		if ok, _ := path.Match(p, module); ok {
			return log.DebugLevel
		}
		if p == module || strings.HasPrefix(module, p+".") {
			return log.DebugLevel
		}
	}
	return level
}

func parseDebug(debug string) (bool, []string) {
	v := strings.TrimSpace(debug)
	switch strings.ToLower(v) {
	case "", "false", "0", "no", "off":
		return false, nil
	case "true", "1", "yes", "on", "*":
		return true, nil
	}

	var ps []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			ps = append(ps, p)
		}
	}
	return false, ps
}
