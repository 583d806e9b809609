// internal/core/services/flow.go
package services

// FlowPhase is the lifecycle state shared by the single-entity controllers:
// idle until Load, then loading, then ready or error. Failures are terminal
// for the attempt; a new user action starts a new one.
type FlowPhase int

const (
	PhaseIdle FlowPhase = iota
	PhaseLoading
	PhaseReady
	PhaseError
)

func (p FlowPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}
