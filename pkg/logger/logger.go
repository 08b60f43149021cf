// Package logger provides namespaced debug logging on stderr, enabled
// through the DEBUG environment variable in the style of the npm debug
// package.
package logger

import (
	"fmt"
	"hash/fnv"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/harmonyeval/harmony-verifier/pkg/timeutil"
	"github.com/harmonyeval/harmony-verifier/pkg/tty"
)

// Logger emits debug lines for a single namespace.
type Logger struct {
	namespace string
	enabled   bool
	lastLog   time.Time
	mu        sync.Mutex
	color     string
}

var (
	// DEBUG is read once at startup; tests override this directly.
	debugEnv = os.Getenv("DEBUG")

	// DEBUG_COLORS=0 turns namespace coloring off.
	debugColors = os.Getenv("DEBUG_COLORS") != "0"

	// Colors follow terminal detection plus the NO_COLOR and
	// FORCE_COLOR conventions.
	colorTerm = tty.IsColorEnabled()

	// ANSI 256-color codes readable on light and dark backgrounds.
	colorPalette = []string{
		"\033[38;5;33m",  // blue
		"\033[38;5;35m",  // green
		"\033[38;5;166m", // orange
		"\033[38;5;125m", // purple
		"\033[38;5;37m",  // cyan
		"\033[38;5;161m", // magenta
		"\033[38;5;136m", // yellow
		"\033[38;5;124m", // red
		"\033[38;5;28m",  // dark green
		"\033[38;5;63m",  // light blue
		"\033[38;5;95m",  // brown
		"\033[38;5;21m",  // dark blue
	}

	colorReset = "\033[0m"
)

// New creates a Logger for the given namespace. Whether it is enabled is
// decided once, from the DEBUG environment variable:
//
//	DEBUG=*              all namespaces
//	DEBUG=ns:*           every namespace under ns
//	DEBUG=ns1,ns2        specific namespaces
//	DEBUG=ns:*,-ns:skip  exclusions win over matches
func New(namespace string) *Logger {
	return &Logger{
		namespace: namespace,
		enabled:   computeEnabled(namespace),
		lastLog:   time.Now(),
		color:     selectColor(namespace),
	}
}

// Enabled reports whether this logger writes anything.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Printf logs a formatted line with the elapsed time since the previous
// line from this logger, like "ns message +12ms".
func (l *Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.emit(fmt.Sprintf(format, args...))
}

// Print logs its arguments in fmt.Sprint style.
func (l *Logger) Print(args ...any) {
	if !l.enabled {
		return
	}
	l.emit(fmt.Sprint(args...))
}

func (l *Logger) emit(message string) {
	l.mu.Lock()
	now := time.Now()
	diff := now.Sub(l.lastLog)
	l.lastLog = now
	l.mu.Unlock()

	elapsed := timeutil.FormatDuration(diff)
	if l.color != "" {
		fmt.Fprintf(os.Stderr, "%s%s%s %s +%s\n", l.color, l.namespace, colorReset, message, elapsed)
	} else {
		fmt.Fprintf(os.Stderr, "%s %s +%s\n", l.namespace, message, elapsed)
	}
}

// selectColor assigns a stable palette color to the namespace.
func selectColor(namespace string) string {
	if !debugColors || !colorTerm {
		return ""
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(namespace))
	return colorPalette[h.Sum32()%uint32(len(colorPalette))]
}

// computeEnabled matches the namespace against the DEBUG patterns.
// Exclusion patterns (leading -) take precedence over matches.
func computeEnabled(namespace string) bool {
	enabled := false
	for _, pattern := range strings.Split(debugEnv, ",") {
		pattern = strings.TrimSpace(pattern)
		if exclude, ok := strings.CutPrefix(pattern, "-"); ok {
			if matchPattern(namespace, exclude) {
				return false
			}
			continue
		}
		if matchPattern(namespace, pattern) {
			enabled = true
		}
	}
	return enabled
}

// matchPattern supports a single * wildcard at the start, end, or middle
// of a pattern.
func matchPattern(namespace, pattern string) bool {
	if pattern == "*" || pattern == namespace {
		return true
	}
	if !strings.Contains(pattern, "*") {
		return false
	}
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(namespace, prefix)
	}
	if suffix, ok := strings.CutPrefix(pattern, "*"); ok {
		return strings.HasSuffix(namespace, suffix)
	}
	parts := strings.SplitN(pattern, "*", 2)
	return strings.HasPrefix(namespace, parts[0]) && strings.HasSuffix(namespace, parts[1])
}
