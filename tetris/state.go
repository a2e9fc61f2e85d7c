package tetris

import (
	"time"
)

// Action is a single input event consumed by the game loop.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionDown
	ActionRotate
	ActionQuit
	ActionRestart
)

func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionDown:
		return "down"
	case ActionRotate:
		return "rotate"
	case ActionQuit:
		return "quit"
	case ActionRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Status is the state of the game loop.
type Status int

const (
	// Falling means a piece is active and descending.
	Falling Status = iota
	// Locking means the active piece could not descend and is merged into the board this frame.
	Locking
	// GameOver means a freshly spawned piece was already blocked.
	GameOver
	// Quit means the player asked to leave.
	Quit
)

func (s Status) String() string {
	switch s {
	case Falling:
		return "falling"
	case Locking:
		return "locking"
	case GameOver:
		return "game over"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Playing reports whether the active piece still responds to gravity and input.
func (s Status) Playing() bool {
	return s == Falling || s == Locking
}

// DefaultFallInterval is how long a piece hovers on a row before gravity moves it down.
const DefaultFallInterval = 270 * time.Millisecond

// Board holds the settled cells and the grids derived from them.
type Board struct {
	Width, Height int
	Locked        *LockedPositions
	// Grid is the locked cells only, rebuilt every frame.
	Grid Grid
	// View is Grid with the falling piece painted on top; this is what gets rendered.
	View Grid
}

// Pieces holds the falling piece and the one-piece lookahead.
type Pieces struct {
	Current Piece
	Next    Piece
	Source  PieceSource
}

// Gravity accumulates frame time towards the next automatic descent.
type Gravity struct {
	Interval time.Duration
	Elapsed  time.Duration
	Lock     bool
}

// Rules holds the game-wide settings that outlive a round.
type Rules struct {
	// Restart keeps the loop running after GameOver so ActionRestart can start a new round.
	Restart bool
}

// Session tracks the state machine and counters for one round.
type Session struct {
	Status Status
	Lines  int
	Pieces int
}
