package workers

// State is the position of a [Loop] in its cycle.
type State int32

const (
	StateIdle State = iota
	StateFetching
	StateDiffing
	StatePersisting
	StateNotifying
	StateBackoff
)

// StageFunc is called by a feed when it enters a stage of its cycle.
type StageFunc func(State)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateDiffing:
		return "diffing"
	case StatePersisting:
		return "persisting"
	case StateNotifying:
		return "notifying"
	case StateBackoff:
		return "backoff"
	default:
		return "unknown"
	}
}
