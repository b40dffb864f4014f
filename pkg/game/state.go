package game

type State int

const (
	StatePlaying State = iota
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Result is the outcome of a command.
type Result int

const (
	// ResultOK means the command was applied.
	ResultOK Result = iota
	// ResultBlocked means the move or rotation was illegal and the piece
	// was left where it was.
	ResultBlocked
	// ResultLocked means the piece could not descend and was locked.
	ResultLocked
	// ResultWrongState means the command is not accepted in the current
	// state. Nothing changed.
	ResultWrongState
)

func (r Result) String() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultBlocked:
		return "blocked"
	case ResultLocked:
		return "locked"
	case ResultWrongState:
		return "wrong state"
	default:
		return "unknown"
	}
}

func (r Result) OK() bool {
	return r == ResultOK
}
