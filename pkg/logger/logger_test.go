//go:build !integration

package logger

import (
	"bytes"
	"os"
	"slices"
	"strings"
	"testing"
	"time"
)

// captureStderr captures stderr output during test execution
func captureStderr(f func()) string {
	old := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	f()

	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		debugEnv  string
		namespace string
		enabled   bool
	}{
		{
			name:      "empty DEBUG disables all loggers",
			debugEnv:  "",
			namespace: "verifier:run",
			enabled:   false,
		},
		{
			name:      "wildcard enables all loggers",
			debugEnv:  "*",
			namespace: "verifier:run",
			enabled:   true,
		},
		{
			name:      "exact match enables logger",
			debugEnv:  "verifier:run",
			namespace: "verifier:run",
			enabled:   true,
		},
		{
			name:      "exact match different namespace disabled",
			debugEnv:  "verifier:run",
			namespace: "github:client",
			enabled:   false,
		},
		{
			name:      "namespace wildcard enables matching loggers",
			debugEnv:  "verifier:*",
			namespace: "verifier:run",
			enabled:   true,
		},
		{
			name:      "namespace wildcard matches deeply nested",
			debugEnv:  "verifier:*",
			namespace: "verifier:artifact:commits",
			enabled:   true,
		},
		{
			name:      "namespace wildcard does not match different prefix",
			debugEnv:  "verifier:*",
			namespace: "github:client",
			enabled:   false,
		},
		{
			name:      "multiple patterns with comma",
			debugEnv:  "verifier:*,github:*",
			namespace: "github:client",
			enabled:   true,
		},
		{
			name:      "exclusion pattern disables specific logger",
			debugEnv:  "verifier:*,-verifier:noise",
			namespace: "verifier:noise",
			enabled:   false,
		},
		{
			name:      "exclusion does not affect other loggers",
			debugEnv:  "verifier:*,-verifier:noise",
			namespace: "verifier:run",
			enabled:   true,
		},
		{
			name:      "exclusion with wildcard",
			debugEnv:  "*,-verifier:*",
			namespace: "verifier:run",
			enabled:   false,
		},
		{
			name:      "suffix wildcard",
			debugEnv:  "*:client",
			namespace: "github:client",
			enabled:   true,
		},
		{
			name:      "middle wildcard",
			debugEnv:  "verifier:*:commits",
			namespace: "verifier:artifact:commits",
			enabled:   true,
		},
		{
			name:      "spaces in patterns are trimmed",
			debugEnv:  "verifier:* , github:*",
			namespace: "github:client",
			enabled:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			debugEnv = tt.debugEnv

			logger := New(tt.namespace)
			if logger.Enabled() != tt.enabled {
				t.Errorf("New(%q) with DEBUG=%q: enabled = %v, want %v",
					tt.namespace, tt.debugEnv, logger.Enabled(), tt.enabled)
			}
		})
	}
}

func TestLogger_Printf(t *testing.T) {
	tests := []struct {
		name      string
		debugEnv  string
		namespace string
		format    string
		args      []any
		wantLog   bool
	}{
		{
			name:      "enabled logger prints",
			debugEnv:  "*",
			namespace: "verifier:run",
			format:    "checked %s",
			args:      []any{"branch"},
			wantLog:   true,
		},
		{
			name:      "disabled logger does not print",
			debugEnv:  "",
			namespace: "verifier:run",
			format:    "checked %s",
			args:      []any{"branch"},
			wantLog:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			debugEnv = tt.debugEnv

			logger := New(tt.namespace)

			output := captureStderr(func() {
				logger.Printf(tt.format, tt.args...)
			})

			if tt.wantLog {
				if output == "" {
					t.Errorf("Printf() should have logged but got empty output")
				}
				if !strings.Contains(output, tt.namespace) {
					t.Errorf("Printf() output should contain namespace %q, got %q", tt.namespace, output)
				}
				if !strings.Contains(output, "checked branch") {
					t.Errorf("Printf() output should contain message, got %q", output)
				}
			} else if output != "" {
				t.Errorf("Printf() should not have logged but got %q", output)
			}
		})
	}
}

func TestLogger_Print(t *testing.T) {
	debugEnv = "*"

	logger := New("verifier:print")

	output := captureStderr(func() {
		logger.Print("fetch", " ", "done")
	})

	if !strings.Contains(output, "verifier:print") {
		t.Errorf("Print() output should contain namespace, got %q", output)
	}
	if !strings.Contains(output, "fetch done") {
		t.Errorf("Print() output should contain message, got %q", output)
	}
	if !strings.Contains(output, "+") {
		t.Errorf("Print() output should contain time diff, got %q", output)
	}
}

func TestLogger_TimeDiff(t *testing.T) {
	debugEnv = "*"

	logger := New("verifier:timediff")

	captureStderr(func() {
		logger.Printf("first message")
	})

	time.Sleep(10 * time.Millisecond)

	output := captureStderr(func() {
		logger.Printf("second message")
	})

	if !strings.Contains(output, "+") {
		t.Errorf("log line should contain time diff, got %q", output)
	}
	if !strings.Contains(output, "ms") && !strings.Contains(output, "s") {
		t.Errorf("second log should show an elapsed unit, got %q", output)
	}
}

func TestColorSelection(t *testing.T) {
	color1 := selectColor("verifier:run")
	color2 := selectColor("verifier:run")
	if color1 != color2 {
		t.Errorf("selectColor should return same color for same namespace")
	}

	color3 := selectColor("github:client")
	found := color3 == "" || slices.Contains(colorPalette, color3)
	if !found {
		t.Errorf("selectColor returned invalid color: %q", color3)
	}
}

func TestColorDisabling(t *testing.T) {
	origDebugColors := debugColors
	origColorTerm := colorTerm
	defer func() {
		debugColors = origDebugColors
		colorTerm = origColorTerm
	}()

	debugColors = false
	colorTerm = true
	if color := selectColor("verifier:run"); color != "" {
		t.Errorf("selectColor should return empty when debugColors=false, got %q", color)
	}

	debugColors = true
	colorTerm = false
	if color := selectColor("verifier:run"); color != "" {
		t.Errorf("selectColor should return empty when colorTerm=false, got %q", color)
	}

	debugColors = true
	colorTerm = true
	if color := selectColor("verifier:run"); color == "" {
		t.Error("selectColor should return color when both enabled")
	}
}

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		pattern   string
		want      bool
	}{
		{"exact match", "verifier:run", "verifier:run", true},
		{"no match", "verifier:run", "github:client", false},
		{"wildcard all", "verifier:run", "*", true},
		{"prefix wildcard", "verifier:run", "verifier:*", true},
		{"prefix wildcard no match", "verifier:run", "github:*", false},
		{"suffix wildcard", "verifier:run", "*:run", true},
		{"suffix wildcard no match", "verifier:run", "*:other", false},
		{"middle wildcard", "verifier:artifact:run", "verifier:*:run", true},
		{"middle wildcard no match prefix", "github:artifact:run", "verifier:*:run", false},
		{"middle wildcard no match suffix", "verifier:artifact:other", "verifier:*:run", false},
		{"no wildcard no match", "verifier:run", "verifier", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchPattern(tt.namespace, tt.pattern)
			if got != tt.want {
				t.Errorf("matchPattern(%q, %q) = %v, want %v", tt.namespace, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestComputeEnabled(t *testing.T) {
	tests := []struct {
		name      string
		debugEnv  string
		namespace string
		want      bool
	}{
		{"single pattern match", "verifier:*", "verifier:run", true},
		{"single pattern no match", "verifier:*", "github:client", false},
		{"multiple patterns first match", "verifier:*,github:*", "verifier:run", true},
		{"multiple patterns second match", "verifier:*,github:*", "github:client", true},
		{"multiple patterns no match", "verifier:*,github:*", "console:table", false},
		{"exclusion disables", "verifier:*,-verifier:noise", "verifier:noise", false},
		{"exclusion allows others", "verifier:*,-verifier:noise", "verifier:run", true},
		{"exclusion wildcard", "*,-verifier:*", "verifier:run", false},
		{"exclusion wildcard allows", "*,-verifier:*", "github:client", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			debugEnv = tt.debugEnv
			got := computeEnabled(tt.namespace)
			if got != tt.want {
				t.Errorf("computeEnabled(%q) with DEBUG=%q = %v, want %v",
					tt.namespace, tt.debugEnv, got, tt.want)
			}
		})
	}
}
