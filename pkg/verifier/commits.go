package verifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/harmonyeval/harmony-verifier/pkg/logger"
)

var commitsLog = logger.New("verifier:commits")

// ValidateCommitLedger checks the JSON commit ledger: top-level object of
// branch name to commit array, minimum branch and commit counts, required
// commit fields, SHA format and global uniqueness, author and
// files_changed rules. A syntax error stops validation; every other
// failure is recorded and the walk continues so one run reports all
// problems.
func ValidateCommitLedger(content string, rules *CommitLedgerRules) *Report {
	report := NewReport(ArtifactCommitLedger)

	var ledger map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &ledger); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			report.Failf("top-level value is %s, want an object of branch name to commit list", typeErr.Value)
		} else {
			report.Failf("JSON syntax error: %v", err)
		}
		return report
	}
	if ledger == nil {
		// "null" decodes into a nil map without an error.
		report.Failf("top-level value is null, want an object of branch name to commit list")
		return report
	}
	report.Passf("JSON syntax OK")

	if len(ledger) < rules.MinBranches {
		report.Failf("branch count %d below minimum %d", len(ledger), rules.MinBranches)
	}
	var missing []string
	for _, want := range rules.ExpectedBranches {
		if _, ok := ledger[want]; !ok {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		report.Failf("missing expected branches: %s", strings.Join(missing, ", "))
	}
	if len(ledger) >= rules.MinBranches && len(missing) == 0 {
		report.Passf("%d branches present, all expected branches found", len(ledger))
	}

	// Branches are walked in sorted order so findings are deterministic.
	branches := make([]string, 0, len(ledger))
	for name := range ledger {
		branches = append(branches, name)
	}
	sort.Strings(branches)

	shaRe := regexp.MustCompile(rules.SHAPattern)
	seen := make(map[string]bool)
	failuresBefore := len(report.Failures())
	totalCommits := 0

	for _, branch := range branches {
		var commits []json.RawMessage
		if err := json.Unmarshal(ledger[branch], &commits); err != nil {
			report.Failf("branch %q is not an array of commits", branch)
			continue
		}
		if len(commits) < rules.MinCommitsPerBranch {
			report.Failf("branch %q has %d commits, need at least %d", branch, len(commits), rules.MinCommitsPerBranch)
			continue
		}

		for i, raw := range commits {
			idx := i + 1
			totalCommits++

			var commit map[string]json.RawMessage
			if err := json.Unmarshal(raw, &commit); err != nil {
				report.Failf("branch %q commit %d is not an object", branch, idx)
				continue
			}

			var missingFields []string
			for _, field := range rules.CommitFields {
				if _, ok := commit[field]; !ok {
					missingFields = append(missingFields, field)
				}
			}
			if len(missingFields) > 0 {
				report.Failf("branch %q commit %d missing fields: %s", branch, idx, strings.Join(missingFields, ", "))
				continue
			}

			var sha string
			if err := json.Unmarshal(commit["sha"], &sha); err != nil || !shaRe.MatchString(sha) {
				report.Failf("branch %q commit %d sha %s does not match %s", branch, idx, commit["sha"], rules.SHAPattern)
				continue
			}
			if seen[sha] {
				report.Failf("branch %q commit %d duplicate sha %s", branch, idx, sha)
				continue
			}
			seen[sha] = true

			var author string
			if err := json.Unmarshal(commit["author"], &author); err != nil || utf8.RuneCountInString(author) < rules.MinAuthorLen {
				report.Failf("branch %q commit %d author %s shorter than %d characters", branch, idx, commit["author"], rules.MinAuthorLen)
				continue
			}

			if msg := validateFilesChanged(commit["files_changed"], rules.MinFilesChanged); msg != "" {
				report.Failf("branch %q commit %d %s", branch, idx, msg)
				continue
			}
		}
	}

	if len(report.Failures()) == failuresBefore {
		report.Passf("commit checks passed (%d commits across %d branches, all shas unique)", totalCommits, len(branches))
	}

	commitsLog.Printf("Ledger validation: %d branches, %d commits, %d failures",
		len(branches), totalCommits, len(report.Failures()))
	return report
}

// validateFilesChanged checks that the raw JSON value is an integer at or
// above min. It returns an empty string when the value is acceptable.
// A quoted number like "5" is rejected; the field must be a bare JSON
// integer.
func validateFilesChanged(raw json.RawMessage, min int) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || (trimmed[0] != '-' && (trimmed[0] < '0' || trimmed[0] > '9')) {
		return fmt.Sprintf("files_changed %s is not an integer", raw)
	}

	var num json.Number
	if err := json.Unmarshal(trimmed, &num); err != nil {
		return fmt.Sprintf("files_changed %s is not an integer", raw)
	}
	n, err := num.Int64()
	if err != nil {
		return fmt.Sprintf("files_changed %s is not an integer", num)
	}
	if n < int64(min) {
		return fmt.Sprintf("files_changed %d below minimum %d", n, min)
	}
	return ""
}
