//go:build !integration

package verifier

import (
	"regexp"
	"testing"
)

func TestDefaultConfig_Identity(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Repo != "harmony" {
		t.Errorf("Repo = %q, want harmony", cfg.Repo)
	}
	if cfg.Branch.Target != "history-report-2025" {
		t.Errorf("Branch.Target = %q, want history-report-2025", cfg.Branch.Target)
	}
	if !cfg.Branch.Mandatory {
		t.Error("target branch must be mandatory")
	}
	if cfg.Branch.Base != "main" {
		t.Errorf("Branch.Base = %q, want main", cfg.Branch.Base)
	}
	if cfg.Env.TokenVar != "MCP_GITHUB_TOKEN" {
		t.Errorf("Env.TokenVar = %q, want MCP_GITHUB_TOKEN", cfg.Env.TokenVar)
	}
	if cfg.Env.OrgVar != "GITHUB_EVAL_ORG" {
		t.Errorf("Env.OrgVar = %q, want GITHUB_EVAL_ORG", cfg.Env.OrgVar)
	}
	if cfg.Env.EnvFile != ".mcp_env" {
		t.Errorf("Env.EnvFile = %q, want .mcp_env", cfg.Env.EnvFile)
	}
	if cfg.Env.RepoRootVar != "GITHUB_REPO_ROOT" {
		t.Errorf("Env.RepoRootVar = %q, want GITHUB_REPO_ROOT", cfg.Env.RepoRootVar)
	}
}

func TestDefaultConfig_Artifacts(t *testing.T) {
	cfg := DefaultConfig()

	wantOrder := []struct {
		name string
		kind ArtifactKind
	}{
		{ArtifactCommitLedger, KindCommitLedger},
		{ArtifactAnalysis, KindAnalysis},
		{ArtifactTimeline, KindTimeline},
	}
	if len(cfg.Artifacts) != len(wantOrder) {
		t.Fatalf("Artifacts length = %d, want %d", len(cfg.Artifacts), len(wantOrder))
	}
	for i, want := range wantOrder {
		if cfg.Artifacts[i].Name != want.name {
			t.Errorf("Artifacts[%d].Name = %q, want %q", i, cfg.Artifacts[i].Name, want.name)
		}
		if cfg.Artifacts[i].Kind != want.kind {
			t.Errorf("Artifacts[%d].Kind = %q, want %q", i, cfg.Artifacts[i].Kind, want.kind)
		}
	}

	ledger := cfg.Artifacts[0].CommitLedger
	if ledger == nil {
		t.Fatal("commit ledger rules missing")
	}
	if ledger.MinBranches != 3 || ledger.MinCommitsPerBranch != 3 {
		t.Errorf("ledger minimums = %d/%d, want 3/3", ledger.MinBranches, ledger.MinCommitsPerBranch)
	}
	if len(ledger.CommitFields) != 4 || ledger.CommitFields[3] != "files_changed" {
		t.Errorf("CommitFields = %v", ledger.CommitFields)
	}
	if len(ledger.ExpectedBranches) != 3 {
		t.Errorf("ExpectedBranches length = %d, want 3", len(ledger.ExpectedBranches))
	}
	if ledger.ExpectedBranches[0] != "pr/45-googlefan256-main" {
		t.Errorf("ExpectedBranches[0] = %q", ledger.ExpectedBranches[0])
	}

	analysis := cfg.Artifacts[1].Analysis
	if analysis == nil {
		t.Fatal("analysis rules missing")
	}
	if analysis.MinLength != 500 {
		t.Errorf("analysis MinLength = %d, want 500", analysis.MinLength)
	}
	if len(analysis.RequiredSections) != 2 || analysis.RequiredSections[0] != "## Top Contributors" {
		t.Errorf("RequiredSections = %v", analysis.RequiredSections)
	}
	if len(analysis.Keywords) != 3 {
		t.Errorf("Keywords = %v", analysis.Keywords)
	}
	if len(analysis.ExpectedContributors) != 3 || analysis.ExpectedContributors[0] != "scott-oai: 35 commits" {
		t.Errorf("ExpectedContributors = %v", analysis.ExpectedContributors)
	}

	timeline := cfg.Artifacts[2].Timeline
	if timeline == nil {
		t.Fatal("timeline rules missing")
	}
	if timeline.MinLines != 10 {
		t.Errorf("timeline MinLines = %d, want 10", timeline.MinLines)
	}
	if len(timeline.ExpectedEntries) != 3 {
		t.Errorf("ExpectedEntries length = %d, want 3", len(timeline.ExpectedEntries))
	}
}

func TestDefaultConfig_PatternsCompile(t *testing.T) {
	cfg := DefaultConfig()

	shaRe := regexp.MustCompile(cfg.Artifacts[0].CommitLedger.SHAPattern)
	if !shaRe.MatchString("3efbf742533a375fc148d75513597e139329578b") {
		t.Error("sha pattern should match a real sha")
	}
	if shaRe.MatchString("3EFBF742533A375FC148D75513597E139329578B") {
		t.Error("sha pattern should reject uppercase")
	}

	lineRe := regexp.MustCompile(cfg.Artifacts[2].Timeline.LinePattern)
	for _, entry := range cfg.Artifacts[2].Timeline.ExpectedEntries {
		if !lineRe.MatchString(entry) {
			t.Errorf("expected entry does not match the line pattern: %s", entry)
		}
	}
}

func TestDefaultConfig_PolicyAndSourceValidation(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.SourceValidation.Enable {
		t.Error("source validation must be disabled")
	}
	if len(cfg.SourceValidation.SourceBranches) != 1 || cfg.SourceValidation.SourceBranches[0] != "main" {
		t.Errorf("SourceBranches = %v, want [main]", cfg.SourceValidation.SourceBranches)
	}
	if !cfg.Policy.ForbidModifyingExistingFiles {
		t.Error("policy must forbid modifying existing files")
	}
	if len(cfg.Policy.AllowedArtifacts) != 3 {
		t.Errorf("AllowedArtifacts = %v", cfg.Policy.AllowedArtifacts)
	}

	if cfg.ExpectedBranchesFile != "" || cfg.ExpectedEntriesFile != "" {
		t.Error("override files default to empty")
	}
}

func TestConfigArtifact(t *testing.T) {
	cfg := DefaultConfig()

	if spec := cfg.Artifact(ArtifactAnalysis); spec == nil || spec.Kind != KindAnalysis {
		t.Errorf("Artifact(%q) = %+v", ArtifactAnalysis, spec)
	}
	if spec := cfg.Artifact("UNKNOWN.txt"); spec != nil {
		t.Errorf("Artifact(UNKNOWN.txt) = %+v, want nil", spec)
	}
}
