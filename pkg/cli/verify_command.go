// Package cli implements the harmony-verifier command surface: the
// verification run itself plus the version subcommand. All user-facing
// output goes through pkg/console on stderr; the returned error decides
// the process exit code.
package cli

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/harmonyeval/harmony-verifier/pkg/console"
	"github.com/harmonyeval/harmony-verifier/pkg/envutil"
	"github.com/harmonyeval/harmony-verifier/pkg/github"
	"github.com/harmonyeval/harmony-verifier/pkg/logger"
	"github.com/harmonyeval/harmony-verifier/pkg/styles"
	"github.com/harmonyeval/harmony-verifier/pkg/verifier"
)

var verifyLog = logger.New("cli:verify")

const summaryWidth = 60

// VerifyConfig holds configuration for a verification run. Host and
// Transport redirect the GitHub API to a test server; both zero means
// the public endpoint.
type VerifyConfig struct {
	Config    *verifier.Config
	Host      string
	Transport http.RoundTripper
}

// artifactStatus is one row of the final summary table.
type artifactStatus struct {
	Artifact string `console:"header:Artifact"`
	Status   string `console:"header:Status"`
}

// RunVerify executes the five verification steps in order and returns
// an error when the run aborts. Missing credentials and a missing
// mandatory branch abort immediately; artifact failures abort after all
// three artifacts have been checked. A nil return means every step
// passed.
func RunVerify(config VerifyConfig) error {
	cfg := config.Config
	if cfg == nil {
		cfg = verifier.DefaultConfig()
	}
	run := verifier.NewRun()
	verifyLog.Printf("Starting verification: repo=%s, branch=%s, artifacts=%d",
		cfg.Repo, cfg.Branch.Target, len(cfg.Artifacts))

	fmt.Fprintln(os.Stderr, console.LayoutTitleBox("harmony multi-branch history verification", summaryWidth))

	// A rejected expectations override is a configuration error and is
	// reported before any network activity.
	if err := verifier.LoadExpectations(cfg); err != nil {
		return abort(run, err)
	}

	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, console.FormatProgressMessage("[Step 1/5] Loading GitHub environment"))
	token, org, err := loadEnvironment(cfg)
	if err != nil {
		return abort(run, err)
	}
	if err := run.Advance(verifier.PhaseEnvLoaded); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, console.FormatSuccessMessage(fmt.Sprintf("Environment ready (organization %s, token loaded)", org)))

	client, err := github.NewClient(github.Options{
		Token:     token,
		Org:       org,
		Repo:      cfg.Repo,
		Host:      config.Host,
		Transport: config.Transport,
	})
	if err != nil {
		return abort(run, err)
	}

	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, console.FormatProgressMessage("[Step 2/5] Verifying target branch"))
	if err := verifyBranch(client, cfg.Branch); err != nil {
		return abort(run, err)
	}
	if err := run.Advance(verifier.PhaseBranchVerified); err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, console.FormatProgressMessage(fmt.Sprintf("[Step 3/5] Validating artifact files (%d total)", len(cfg.Artifacts))))
	statuses, allPassed := validateArtifacts(client, cfg)
	if !allPassed {
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage("some artifact files failed validation"))
		return abort(run, errors.New("artifact validation failed"))
	}
	if err := run.Advance(verifier.PhaseArtifactsValidated); err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, console.FormatProgressMessage("[Step 4/5] Source file cross-validation"))
	printFindings(verifier.SourceValidationNotices(cfg.SourceValidation))

	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, console.FormatProgressMessage("[Step 5/5] Policy constraint checks"))
	printFindings(verifier.PolicyNotices(cfg.Policy))
	if err := run.Advance(verifier.PhasePolicyChecked); err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "")
	printSummary(org, cfg, statuses)
	if err := run.Advance(verifier.PhaseDone); err != nil {
		return err
	}
	verifyLog.Printf("Verification finished in phase %s", run.Phase())
	return nil
}

// abort moves the run to ABORTED and passes err through unchanged.
func abort(run *verifier.Run, err error) error {
	if abortErr := run.Abort(); abortErr != nil {
		verifyLog.Printf("Abort on finished run: %v", abortErr)
	}
	return err
}

// loadEnvironment seeds the process environment from the dotenv file
// and resolves the two required credentials. Every missing variable is
// reported on its own line before the step fails.
func loadEnvironment(cfg *verifier.Config) (token, org string, err error) {
	path := envutil.ResolveDotEnvPath(cfg.Env.EnvFile, cfg.Env.RepoRootVar)
	if err := envutil.LoadDotEnv(path); err != nil {
		return "", "", err
	}

	values, missing := envutil.RequireAll(cfg.Env.TokenVar, cfg.Env.OrgVar)
	if len(missing) > 0 {
		for _, name := range missing {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(fmt.Sprintf("environment variable %s not loaded (check %s)", name, cfg.Env.EnvFile)))
		}
		return "", "", errors.New("environment initialization failed: missing token or organization")
	}
	return values[cfg.Env.TokenVar], values[cfg.Env.OrgVar], nil
}

// verifyBranch checks the target branch. A mandatory branch aborts on
// absence or on any API failure; an optional branch only warns and the
// run continues.
func verifyBranch(client *github.Client, branch verifier.BranchConfig) error {
	exists, err := client.BranchExists(branch.Target)
	if err != nil {
		if branch.Mandatory {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
			return fmt.Errorf("verifying branch %s: %w", branch.Target, err)
		}
		fmt.Fprintln(os.Stderr, console.FormatWarningMessage(fmt.Sprintf("branch lookup failed, continuing without %q: %v", branch.Target, err)))
		return nil
	}
	if !exists {
		if branch.Mandatory {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(fmt.Sprintf("target branch %q does not exist (mandatory branch, aborting)", branch.Target)))
			return fmt.Errorf("mandatory branch %s is missing", branch.Target)
		}
		fmt.Fprintln(os.Stderr, console.FormatWarningMessage(fmt.Sprintf("target branch %q does not exist (optional branch, continuing)", branch.Target)))
		return nil
	}
	fmt.Fprintln(os.Stderr, console.FormatSuccessMessage(fmt.Sprintf("Target branch %q exists", branch.Target)))
	return nil
}

// validateArtifacts fetches and validates every artifact in declaration
// order. A fetch or validation failure marks that artifact failed and
// the loop continues, so one run reports the state of all artifacts.
func validateArtifacts(client *github.Client, cfg *verifier.Config) ([]artifactStatus, bool) {
	statuses := make([]artifactStatus, 0, len(cfg.Artifacts))
	allPassed := true

	for _, spec := range cfg.Artifacts {
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, console.FormatInfoMessage(fmt.Sprintf("Validating %s", spec.Name)))

		spinner := console.NewSpinner(fmt.Sprintf("Fetching %s from %s", spec.Name, cfg.Branch.Target))
		spinner.Start()
		content, err := client.FileContent(spec.Name, cfg.Branch.Target)
		spinner.Stop()
		if err != nil {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
			statuses = append(statuses, artifactStatus{Artifact: spec.Name, Status: "failed (fetch)"})
			allPassed = false
			continue
		}

		report := verifier.ValidateArtifact(spec, content)
		printFindings(report.Findings)
		if !report.OK() {
			statuses = append(statuses, artifactStatus{Artifact: spec.Name, Status: "failed"})
			allPassed = false
			continue
		}
		fmt.Fprintln(os.Stderr, console.FormatSuccessMessage(fmt.Sprintf("%s passed", spec.Name)))
		statuses = append(statuses, artifactStatus{Artifact: spec.Name, Status: "passed"})
	}
	return statuses, allPassed
}

// printFindings renders findings with the marker matching each severity.
func printFindings(findings []verifier.Finding) {
	for _, f := range findings {
		switch f.Severity {
		case verifier.SeverityFail:
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(f.Message))
		case verifier.SeverityWarn:
			fmt.Fprintln(os.Stderr, console.FormatWarningMessage(f.Message))
		default:
			fmt.Fprintln(os.Stderr, console.FormatSuccessMessage(f.Message))
		}
	}
}

// printSummary renders the closing box naming the repository, the
// branch and the per-artifact outcomes.
func printSummary(org string, cfg *verifier.Config, statuses []artifactStatus) {
	fmt.Fprintln(os.Stderr, console.LayoutJoinVertical(
		console.LayoutTitleBox("Verification Summary", summaryWidth),
		console.LayoutInfoSection("Repository", fmt.Sprintf("%s/%s", org, cfg.Repo)),
		console.LayoutInfoSection("Branch", cfg.Branch.Target),
		console.RenderStruct(statuses),
		console.LayoutEmphasisBox("All verification steps passed", styles.ColorSuccess),
	))
}
