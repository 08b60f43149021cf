//go:build !integration

package verifier

import (
	"strings"
	"testing"
)

func TestSourceValidationNotices_Disabled(t *testing.T) {
	cfg := DefaultConfig().SourceValidation
	if cfg.Enable {
		t.Fatal("source validation should be disabled by default")
	}

	notices := SourceValidationNotices(cfg)
	if len(notices) != 2 {
		t.Fatalf("expected 2 notices, got %d", len(notices))
	}
	if notices[0].Severity != SeverityWarn {
		t.Errorf("first notice severity = %s, want warn", notices[0].Severity)
	}
	if !strings.Contains(notices[0].Message, "disabled") {
		t.Errorf("first notice should say disabled, got: %s", notices[0].Message)
	}
	if !strings.Contains(notices[0].Message, "main") {
		t.Errorf("first notice should list the source branches, got: %s", notices[0].Message)
	}
	if notices[1].Severity != SeverityPass || !strings.Contains(notices[1].Message, "skipped") {
		t.Errorf("second notice should report the skip, got: %+v", notices[1])
	}
}

func TestSourceValidationNotices_EnabledPlaceholder(t *testing.T) {
	cfg := DefaultConfig().SourceValidation
	cfg.Enable = true

	notices := SourceValidationNotices(cfg)
	if len(notices) != 2 {
		t.Fatalf("expected 2 notices, got %d", len(notices))
	}
	if !strings.Contains(notices[0].Message, "no comparison logic") {
		t.Errorf("enabled hook should admit it is a placeholder, got: %s", notices[0].Message)
	}

	// The step can never fail in either mode.
	for _, n := range notices {
		if n.Severity == SeverityFail {
			t.Errorf("source validation produced a failure: %s", n.Message)
		}
	}
}

func TestPolicyNotices(t *testing.T) {
	notices := PolicyNotices(DefaultConfig().Policy)

	if len(notices) != 3 {
		t.Fatalf("expected 3 notices, got %d", len(notices))
	}
	for _, n := range notices {
		if n.Severity != SeverityPass {
			t.Errorf("policy notices are informational, got severity %s for %q", n.Severity, n.Message)
		}
	}

	joined := ""
	for _, n := range notices {
		joined += n.Message + "\n"
	}
	for _, want := range []string{
		"forbidden: true",
		"BRANCH_COMMITS.json, CROSS_BRANCH_ANALYSIS.md, MERGE_TIMELINE.txt",
		"policy constraints verified",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("notices should contain %q, got:\n%s", want, joined)
		}
	}
}
