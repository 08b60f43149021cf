package verifier

import "fmt"

// Phase is the lifecycle state of one verification pass.
type Phase string

const (
	PhaseInit               Phase = "INIT"
	PhaseEnvLoaded          Phase = "ENV_LOADED"
	PhaseBranchVerified     Phase = "BRANCH_VERIFIED"
	PhaseArtifactsValidated Phase = "ARTIFACTS_VALIDATED"
	PhasePolicyChecked      Phase = "POLICY_CHECKED"
	PhaseDone               Phase = "DONE"
	PhaseAborted            Phase = "ABORTED"
)

// phaseSuccessor is the only legal forward path. ABORTED is reachable
// from every phase except the terminal ones.
var phaseSuccessor = map[Phase]Phase{
	PhaseInit:               PhaseEnvLoaded,
	PhaseEnvLoaded:          PhaseBranchVerified,
	PhaseBranchVerified:     PhaseArtifactsValidated,
	PhaseArtifactsValidated: PhasePolicyChecked,
	PhasePolicyChecked:      PhaseDone,
}

// Run tracks the phase of a single verification pass. The zero value is
// not usable; create runs with NewRun.
type Run struct {
	phase Phase
}

// NewRun starts a run in INIT.
func NewRun() *Run {
	return &Run{phase: PhaseInit}
}

// Phase returns the current phase.
func (r *Run) Phase() Phase {
	return r.phase
}

// Terminal reports whether the run has finished, successfully or not.
func (r *Run) Terminal() bool {
	return r.phase == PhaseDone || r.phase == PhaseAborted
}

// Advance moves the run to next, which must be the immediate successor
// of the current phase. Skipping or revisiting a phase is an error.
func (r *Run) Advance(next Phase) error {
	want, ok := phaseSuccessor[r.phase]
	if !ok {
		return fmt.Errorf("run already finished in phase %s", r.phase)
	}
	if next != want {
		return fmt.Errorf("illegal phase transition %s -> %s, expected %s", r.phase, next, want)
	}
	r.phase = next
	return nil
}

// Abort moves the run to ABORTED. Aborting a finished run is an error.
func (r *Run) Abort() error {
	if r.Terminal() {
		return fmt.Errorf("run already finished in phase %s", r.phase)
	}
	r.phase = PhaseAborted
	return nil
}
