package verifier

import "fmt"

// Severity classifies a single finding.
type Severity string

const (
	SeverityPass Severity = "pass"
	SeverityWarn Severity = "warn"
	SeverityFail Severity = "fail"
)

// Finding is one diagnostic produced while validating an artifact.
type Finding struct {
	Severity Severity
	Message  string
}

// Report collects the findings for one artifact. Validators keep
// appending after a failed check where the remaining checks are still
// meaningful, so a single run surfaces every problem at once.
type Report struct {
	Artifact string
	Findings []Finding
}

// NewReport creates an empty report for the named artifact.
func NewReport(artifact string) *Report {
	return &Report{Artifact: artifact}
}

// Passf records a passing check.
func (r *Report) Passf(format string, args ...any) {
	r.add(SeverityPass, format, args...)
}

// Warnf records a non-fatal observation.
func (r *Report) Warnf(format string, args ...any) {
	r.add(SeverityWarn, format, args...)
}

// Failf records a failed check.
func (r *Report) Failf(format string, args ...any) {
	r.add(SeverityFail, format, args...)
}

func (r *Report) add(sev Severity, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{Severity: sev, Message: fmt.Sprintf(format, args...)})
}

// OK reports whether no finding failed.
func (r *Report) OK() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityFail {
			return false
		}
	}
	return true
}

// Failures returns the failed findings in order.
func (r *Report) Failures() []Finding {
	var failed []Finding
	for _, f := range r.Findings {
		if f.Severity == SeverityFail {
			failed = append(failed, f)
		}
	}
	return failed
}
