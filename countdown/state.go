package countdown

type State int

const (
	StateIdle State = iota
	StateRunning
	StateFinished
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	case StateStopped:
		return "stopped"
	default:
		return "<unknown>"
	}
}

// IsDone is true when the countdown will not call any callback anymore.
func (s State) IsDone() bool {
	return s == StateFinished || s == StateStopped
}
