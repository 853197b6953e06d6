package domain

// State is a step of the execution mediator's state machine.
type State string

const (
	StateIdle                 State = "idle"
	StateGenerating           State = "generating"
	StateGenerated            State = "generated"
	StateSafetyCheck          State = "safety_check"
	StateAwaitingConfirmation State = "awaiting_confirmation"
	StateExplaining           State = "explaining"
	StateReady                State = "ready"
	StateExecuting            State = "executing"
	StateDone                 State = "done"
)
