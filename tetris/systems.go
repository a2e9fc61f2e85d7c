package tetris

import (
	"time"

	"github.com/plus3/tetr/engine"
)

func frameDuration(frame *engine.UpdateFrame) time.Duration {
	return time.Duration(frame.DeltaTime * float64(time.Second))
}

// GridSystem rebuilds the board's grid from the locked positions.
type GridSystem struct {
	Board engine.Singleton[Board]
}

func (s *GridSystem) Execute(frame *engine.UpdateFrame) {
	board := s.Board.Get()
	board.Grid.Reset()
	board.Grid.Load(board.Locked)
}

// GravitySystem moves the falling piece down one row every fall interval.
// A piece that cannot descend is flagged for locking.
type GravitySystem struct {
	Board   engine.Singleton[Board]
	Pieces  engine.Singleton[Pieces]
	Gravity engine.Singleton[Gravity]
	Session engine.Singleton[Session]
}

func (s *GravitySystem) Execute(frame *engine.UpdateFrame) {
	session := s.Session.Get()
	if !session.Status.Playing() {
		return
	}

	gravity := s.Gravity.Get()
	gravity.Elapsed += frameDuration(frame)
	if gravity.Elapsed < gravity.Interval {
		return
	}
	gravity.Elapsed = 0

	current := &s.Pieces.Get().Current
	current.Y++
	if !IsValidPosition(*current, s.Board.Get().Grid) {
		current.Y--
		gravity.Lock = true
		session.Status = Locking
	}
}

// InputSystem applies the frame's actions in order. Every move is validated
// against the grid and reverted when it collides.
type InputSystem struct {
	Board   engine.Singleton[Board]
	Pieces  engine.Singleton[Pieces]
	Session engine.Singleton[Session]
	Rules   engine.Singleton[Rules]
}

func (s *InputSystem) Execute(frame *engine.UpdateFrame) {
	session := s.Session.Get()
	grid := s.Board.Get().Grid
	current := &s.Pieces.Get().Current

	for _, event := range frame.Events {
		action, ok := event.(Action)
		if !ok {
			continue
		}

		switch action {
		case ActionQuit:
			session.Status = Quit
			frame.Commands.Stop()
			return
		case ActionRestart:
			if session.Status == GameOver && s.Rules.Get().Restart {
				world := frame.World
				frame.Commands.Defer(func() { newRound(world) })
			}
			continue
		}

		if !session.Status.Playing() {
			continue
		}

		switch action {
		case ActionLeft:
			current.X--
			if !IsValidPosition(*current, grid) {
				current.X++
			}
		case ActionRight:
			current.X++
			if !IsValidPosition(*current, grid) {
				current.X--
			}
		case ActionDown:
			current.Y++
			if !IsValidPosition(*current, grid) {
				current.Y--
			}
		case ActionRotate:
			current.Rotate()
			if !IsValidPosition(*current, grid) {
				current.RotateBack()
			}
		}
	}
}

// LockSystem merges a flagged piece into the locked positions and brings in the next piece.
// If the new piece is already blocked the game is over, which stops the loop
// unless restarts are enabled.
type LockSystem struct {
	Board   engine.Singleton[Board]
	Pieces  engine.Singleton[Pieces]
	Gravity engine.Singleton[Gravity]
	Session engine.Singleton[Session]
	Rules   engine.Singleton[Rules]
}

func (s *LockSystem) Execute(frame *engine.UpdateFrame) {
	gravity := s.Gravity.Get()
	session := s.Session.Get()
	if !gravity.Lock || session.Status != Locking {
		return
	}

	board := s.Board.Get()
	pieces := s.Pieces.Get()

	board.Locked.Lock(pieces.Current)
	board.Grid.Paint(pieces.Current)

	pieces.Current = pieces.Next
	pieces.Current.Center(board.Width)
	pieces.Next = pieces.Source.Next()
	gravity.Lock = false
	session.Pieces++

	if IsValidPosition(pieces.Current, board.Grid) {
		session.Status = Falling
		return
	}
	session.Status = GameOver
	if !s.Rules.Get().Restart {
		frame.Commands.Stop()
	}
}

// LineClearSystem clears full rows and counts them. The grid is reloaded from
// the locked positions after a clear so both agree for the rest of the frame.
type LineClearSystem struct {
	Board   engine.Singleton[Board]
	Session engine.Singleton[Session]
}

func (s *LineClearSystem) Execute(frame *engine.UpdateFrame) {
	board := s.Board.Get()
	cleared := ClearRows(board.Grid, board.Locked)
	if cleared == 0 {
		return
	}

	s.Session.Get().Lines += cleared
	board.Grid.Reset()
	board.Grid.Load(board.Locked)
}

// ViewSystem composes the frame that gets rendered: the grid with the falling piece on top.
type ViewSystem struct {
	Board   engine.Singleton[Board]
	Pieces  engine.Singleton[Pieces]
	Session engine.Singleton[Session]
}

func (s *ViewSystem) Execute(frame *engine.UpdateFrame) {
	board := s.Board.Get()
	board.View.CopyFrom(board.Grid)
	if s.Session.Get().Status.Playing() {
		board.View.Paint(s.Pieces.Get().Current)
	}
}
