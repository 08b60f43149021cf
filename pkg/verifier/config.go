// Package verifier implements the compliance checks for the multi-branch
// history report: static configuration, the three artifact validators,
// and the trailing policy steps.
package verifier

// Artifact file names on the report branch.
const (
	ArtifactCommitLedger = "BRANCH_COMMITS.json"
	ArtifactAnalysis     = "CROSS_BRANCH_ANALYSIS.md"
	ArtifactTimeline     = "MERGE_TIMELINE.txt"
)

// shaPattern matches a full lowercase commit SHA.
const shaPattern = `^[0-9a-f]{40}$`

// EnvConfig names the dotenv file and the environment variables the
// verifier reads its credentials from. RepoRootVar optionally points at
// the directory holding the dotenv file.
type EnvConfig struct {
	TokenVar    string
	OrgVar      string
	EnvFile     string
	RepoRootVar string
}

// BranchConfig identifies the branch the artifacts live on. A mandatory
// branch aborts the whole run when absent.
type BranchConfig struct {
	Target    string
	Mandatory bool
	Base      string
}

// ArtifactKind selects the validator that applies to an artifact. The
// set is closed; each kind has its own rule struct.
type ArtifactKind string

const (
	KindCommitLedger ArtifactKind = "commit-ledger"
	KindAnalysis     ArtifactKind = "analysis"
	KindTimeline     ArtifactKind = "timeline"
)

// CommitLedgerRules are the structural and content rules for the JSON
// commit ledger.
type CommitLedgerRules struct {
	MinBranches         int
	MinCommitsPerBranch int
	CommitFields        []string
	SHAPattern          string
	MinAuthorLen        int
	MinFilesChanged     int
	ExpectedBranches    []string
}

// AnalysisRules are the rules for the markdown analysis document.
type AnalysisRules struct {
	MinLength            int
	RequiredSections     []string
	Keywords             []string
	ExpectedContributors []string
}

// TimelineRules are the rules for the line-oriented merge timeline.
type TimelineRules struct {
	MinLines        int
	LinePattern     string
	ExpectedEntries []string
}

// ArtifactSpec declares one artifact: its file name, the kind of
// validator that applies, and that kind's rules. Exactly one rule
// pointer is set, matching Kind.
type ArtifactSpec struct {
	Name         string
	Kind         ArtifactKind
	CommitLedger *CommitLedgerRules
	Analysis     *AnalysisRules
	Timeline     *TimelineRules
}

// SourceValidationConfig is the dormant cross-validation hook. Enable is
// always false in this version; the branch list and SHA pattern are kept
// for the skip notices.
type SourceValidationConfig struct {
	Enable           bool
	SourceBranches   []string
	CommitSHAPattern string
}

// PolicyConfig holds the static policy constraints reported in the final
// step.
type PolicyConfig struct {
	ForbidModifyingExistingFiles bool
	AllowedArtifacts             []string
}

// Config is the full static verification configuration. Everything is
// hardcoded; the only external inputs are the two credential variables
// and the optional expectation override files.
type Config struct {
	Repo             string
	Env              EnvConfig
	Branch           BranchConfig
	Artifacts        []ArtifactSpec
	SourceValidation SourceValidationConfig
	Policy           PolicyConfig

	// Optional YAML documents replacing the hardcoded expected branch
	// and timeline entry lists. Empty means the hardcoded lists apply.
	ExpectedBranchesFile string
	ExpectedEntriesFile  string
}

// Artifact returns the validation rules for the named artifact, or nil
// when the configuration does not declare it.
func (c *Config) Artifact(name string) *ArtifactSpec {
	for i := range c.Artifacts {
		if c.Artifacts[i].Name == name {
			return &c.Artifacts[i]
		}
	}
	return nil
}

// DefaultConfig returns the static configuration for the harmony
// history-report verification run.
func DefaultConfig() *Config {
	return &Config{
		Repo: "harmony",
		Env: EnvConfig{
			TokenVar:    "MCP_GITHUB_TOKEN",
			OrgVar:      "GITHUB_EVAL_ORG",
			EnvFile:     ".mcp_env",
			RepoRootVar: "GITHUB_REPO_ROOT",
		},
		Branch: BranchConfig{
			Target:    "history-report-2025",
			Mandatory: true,
			Base:      "main",
		},
		Artifacts: []ArtifactSpec{
			{
				Name: ArtifactCommitLedger,
				Kind: KindCommitLedger,
				CommitLedger: &CommitLedgerRules{
					MinBranches:         3,
					MinCommitsPerBranch: 3,
					CommitFields:        []string{"sha", "author", "message", "files_changed"},
					SHAPattern:          shaPattern,
					MinAuthorLen:        3,
					MinFilesChanged:     1,
					ExpectedBranches: []string{
						"pr/45-googlefan256-main",
						"pr/25-neuralsorcerer-patch-1",
						"pr/41-amirhosseinghanipour-fix-race-conditions-and-offline-api",
					},
				},
			},
			{
				Name: ArtifactAnalysis,
				Kind: KindAnalysis,
				Analysis: &AnalysisRules{
					MinLength: 500,
					RequiredSections: []string{
						"## Top Contributors",
						"## Branch Commit Summary",
					},
					Keywords: []string{"contributors", "commits", "branch"},
					ExpectedContributors: []string{
						"scott-oai: 35 commits",
						"egorsmkv: 4 commits",
						"axion66: 2 commits",
					},
				},
			},
			{
				Name: ArtifactTimeline,
				Kind: KindTimeline,
				Timeline: &TimelineRules{
					MinLines:    10,
					LinePattern: `^\d{4}-\d{2}-\d{2} \| .+ \| [0-9a-f]{40}$`,
					ExpectedEntries: []string{
						"2025-08-06 | Merge pull request #29 from axion66/improve-readme-and-checks | 3efbf742533a375fc148d75513597e139329578b",
						"2025-08-06 | Merge pull request #30 from Yuan-ManX/harmony-format | 9d653a4c7382abc42d115014d195d9354e7ad357",
						"2025-08-05 | Merge pull request #26 from jordan-wu-97/jordan/fix-function-call-atomic-bool | 82b3afb9eb043343f322c937262cc50405e892c3",
					},
				},
			},
		},
		SourceValidation: SourceValidationConfig{
			Enable:           false,
			SourceBranches:   []string{"main"},
			CommitSHAPattern: shaPattern,
		},
		Policy: PolicyConfig{
			ForbidModifyingExistingFiles: true,
			AllowedArtifacts: []string{
				ArtifactCommitLedger,
				ArtifactAnalysis,
				ArtifactTimeline,
			},
		},
	}
}
