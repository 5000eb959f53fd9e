package health

import "sync/atomic"

// State describes where the process is in its lifecycle. States only ever
// advance: STARTING -> READY -> DRAINING -> STOPPED, with the single shortcut
// STARTING -> STOPPED when startup fails.
type State int32

const (
	StateStarting State = iota
	StateReady
	StateDraining
	StateStopped
)

// String returns the wire name of the state, used in health endpoint bodies
// and logs
func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateReady:
		return "ready"
	case StateDraining:
		return "draining"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// Reporter exposes the lifecycle state to concurrent readers (the health
// endpoint) while only the lifecycle controller writes it. Reads are atomic,
// so a transition is visible to every request goroutine immediately.
type Reporter struct {
	state atomic.Int32
}

// NewReporter starts at StateStarting
func NewReporter() *Reporter {
	return &Reporter{}
}

// Report advances the state. Transitions are monotonic: an attempt to move
// backwards is dropped, so once the process is READY it can never report
// STARTING again, and STOPPED is terminal.
func (r *Reporter) Report(next State) bool {
	for {
		current := r.state.Load()
		if int32(next) <= current {
			return false
		}
		if r.state.CompareAndSwap(current, int32(next)) {
			return true
		}
	}
}

// Current returns the last reported state
func (r *Reporter) Current() State {
	return State(r.state.Load())
}

// Ready reports whether new traffic should be routed to this process
func (r *Reporter) Ready() bool {
	return r.Current() == StateReady
}
