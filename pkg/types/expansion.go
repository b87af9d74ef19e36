package types

import "time"

// ExpansionStep is one stage of the partition expansion sequence
type ExpansionStep string

const (
	StepUnmount        ExpansionStep = "unmount"
	StepCheck          ExpansionStep = "check"
	StepGrowPartition  ExpansionStep = "grow-partition"
	StepGrowFilesystem ExpansionStep = "grow-filesystem"
)

// ExpansionSteps lists the steps in their fixed execution order
var ExpansionSteps = []ExpansionStep{
	StepUnmount,
	StepCheck,
	StepGrowPartition,
	StepGrowFilesystem,
}

// StepStatus is the recorded outcome of one expansion step
type StepStatus string

const (
	StepSucceeded StepStatus = "succeeded"
	// StepAdvisory marks a failure that was logged but did not stop the sequence
	StepAdvisory StepStatus = "advisory-failure"
	StepFailed   StepStatus = "failed"
	StepSkipped  StepStatus = "skipped"
	StepDryRun   StepStatus = "dry-run"
)

// StepOutcome records what happened to one expansion step
type StepOutcome struct {
	Step     ExpansionStep
	Command  []string
	Status   StepStatus
	Err      error
	Duration time.Duration
}

// ExpansionReport is the ordered record of an expansion run
type ExpansionReport struct {
	Device    string
	Disk      string
	Partition string
	Outcomes  []StepOutcome
}

// Outcome returns the recorded outcome for step, if any
func (r *ExpansionReport) Outcome(step ExpansionStep) (StepOutcome, bool) {
	for _, o := range r.Outcomes {
		if o.Step == step {
			return o, true
		}
	}
	return StepOutcome{}, false
}

// Steps returns the steps in the order they were recorded
func (r *ExpansionReport) Steps() []ExpansionStep {
	steps := make([]ExpansionStep, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		steps = append(steps, o.Step)
	}
	return steps
}

// Completed reports whether every step ran without a gating failure
func (r *ExpansionReport) Completed() bool {
	if len(r.Outcomes) != len(ExpansionSteps) {
		return false
	}
	for _, o := range r.Outcomes {
		if o.Status == StepFailed || o.Status == StepSkipped {
			return false
		}
	}
	return true
}
