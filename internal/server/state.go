package server

// State is the lifecycle stage of a Server.
// Transitions only go forward: Unstarted, Bound, Serving, Stopping, Stopped.
type State int32

const (
	StateUnstarted State = iota
	StateBound
	StateServing
	StateStopping
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateUnstarted:
		return "unstarted"
	case StateBound:
		return "bound"
	case StateServing:
		return "serving"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}
