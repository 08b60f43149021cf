package verifier

// ValidateArtifact routes content to the validator for the artifact's
// kind. An unknown kind passes with a warning so an unrecognized
// artifact never blocks the run.
func ValidateArtifact(spec ArtifactSpec, content string) *Report {
	switch spec.Kind {
	case KindCommitLedger:
		return ValidateCommitLedger(content, spec.CommitLedger)
	case KindAnalysis:
		return ValidateAnalysis(content, spec.Analysis)
	case KindTimeline:
		return ValidateTimeline(content, spec.Timeline)
	default:
		report := NewReport(spec.Name)
		report.Warnf("no validator for artifact kind %q, skipping", spec.Kind)
		return report
	}
}
