package verifier

import (
	"regexp"
	"strings"

	"github.com/harmonyeval/harmony-verifier/pkg/logger"
	"github.com/harmonyeval/harmony-verifier/pkg/stringutil"
)

var timelineLog = logger.New("verifier:timeline")

// entryDisplayLen bounds how much of a missing timeline entry is shown
// in a finding.
const entryDisplayLen = 53

// ValidateTimeline checks the line-oriented merge timeline: minimum
// non-blank line count, the per-line date/description/sha format, and
// the expected entries. The format stage stops at the first bad line;
// the other stages always run.
func ValidateTimeline(content string, rules *TimelineRules) *Report {
	report := NewReport(ArtifactTimeline)

	lines := stringutil.NonBlankLines(content)
	if len(lines) < rules.MinLines {
		report.Failf("%d timeline entries, need at least %d", len(lines), rules.MinLines)
	} else {
		report.Passf("%d timeline entries", len(lines))
	}

	lineRe := regexp.MustCompile(rules.LinePattern)
	formatOK := true
	for i, line := range lines {
		if !lineRe.MatchString(line) {
			report.Failf("line %d does not match the YYYY-MM-DD | description | sha format: %s", i+1, line)
			formatOK = false
			break
		}
	}
	if formatOK && len(lines) > 0 {
		report.Passf("all lines match the timeline format")
	}

	// Expected entries are matched against the raw content, so an entry
	// split across a reflowed line would not count.
	var missing []string
	for _, entry := range rules.ExpectedEntries {
		if !strings.Contains(content, entry) {
			missing = append(missing, stringutil.Truncate(entry, entryDisplayLen))
		}
	}
	if len(missing) > 0 {
		report.Failf("missing expected entries: %s", strings.Join(missing, ", "))
	} else {
		report.Passf("all expected entries present")
	}

	timelineLog.Printf("Timeline validation: %d lines, %d failures", len(lines), len(report.Failures()))
	return report
}
