package verifier

import (
	"strings"

	"github.com/harmonyeval/harmony-verifier/pkg/logger"
	"github.com/harmonyeval/harmony-verifier/pkg/stringutil"
)

var analysisLog = logger.New("verifier:analysis")

// ValidateAnalysis checks the markdown analysis document: minimum byte
// length, required section headers, case-insensitive keywords, and exact
// contributor summary lines. All four stages run regardless of earlier
// failures.
func ValidateAnalysis(content string, rules *AnalysisRules) *Report {
	report := NewReport(ArtifactAnalysis)

	if len(content) < rules.MinLength {
		report.Failf("document length %d bytes below minimum %d", len(content), rules.MinLength)
	} else {
		report.Passf("document length %d bytes", len(content))
	}

	var missingSections []string
	for _, section := range rules.RequiredSections {
		if !strings.Contains(content, section) {
			missingSections = append(missingSections, section)
		}
	}
	if len(missingSections) > 0 {
		report.Failf("missing required sections: %s", strings.Join(missingSections, ", "))
	} else {
		report.Passf("all required sections present")
	}

	var missingKeywords []string
	for _, keyword := range rules.Keywords {
		if !stringutil.ContainsIgnoreCase(content, keyword) {
			missingKeywords = append(missingKeywords, keyword)
		}
	}
	if len(missingKeywords) > 0 {
		report.Failf("missing keywords: %s", strings.Join(missingKeywords, ", "))
	} else {
		report.Passf("all keywords present")
	}

	// Contributor lines are matched exactly; extra contributors are fine.
	var missingContributors []string
	for _, contributor := range rules.ExpectedContributors {
		if !strings.Contains(content, contributor) {
			missingContributors = append(missingContributors, contributor)
		}
	}
	if len(missingContributors) > 0 {
		report.Failf("missing contributor records: %s", strings.Join(missingContributors, ", "))
	} else {
		report.Passf("all expected contributor records present")
	}

	analysisLog.Printf("Analysis validation: %d bytes, %d failures", len(content), len(report.Failures()))
	return report
}
