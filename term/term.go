// Package term plays tetris in a terminal through tcell.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetr/engine"
	"github.com/plus3/tetr/tetris"
)

// FrameInterval caps the terminal frontend at 60 frames per second.
const FrameInterval = time.Second / 60

// KeyAction maps a terminal key event to the game action it triggers.
func KeyAction(ev *tcell.EventKey) (tetris.Action, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return tetris.ActionLeft, true
	case tcell.KeyRight:
		return tetris.ActionRight, true
	case tcell.KeyDown:
		return tetris.ActionDown, true
	case tcell.KeyUp:
		return tetris.ActionRotate, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return tetris.ActionQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return tetris.ActionQuit, true
		case 'r', 'R':
			return tetris.ActionRestart, true
		}
	}
	return 0, false
}

const eventBuffer = 100

// Input buffers screen events between frames.
type Input struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	exited chan struct{}
}

// Listen starts reading events from screen. The reader stops once the screen
// is finalized or Close is called.
func Listen(screen tcell.Screen) *Input {
	in := &Input{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	go in.read()
	return in
}

func (in *Input) read() {
	defer close(in.exited)
	for {
		ev := in.screen.PollEvent()
		if ev == nil {
			close(in.events)
			return
		}
		select {
		case in.events <- ev:
		case <-in.done:
			return
		}
	}
}

// Close releases a reader blocked on a full buffer. Events still in flight are dropped.
func (in *Input) Close() {
	close(in.done)
}

// Poll drains the events received since the last call and returns their actions in order.
func (in *Input) Poll() []tetris.Action {
	var actions []tetris.Action
	for {
		select {
		case ev, ok := <-in.events:
			if !ok {
				return actions
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if action, ok := KeyAction(ev); ok {
					actions = append(actions, action)
				}
			case *tcell.EventResize:
				in.screen.Sync()
			}
		default:
			return actions
		}
	}
}

// Run plays a game in the terminal until the player quits or ctx is done.
func Run(ctx context.Context, options ...tetris.Option) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	options = append(options, tetris.WithSystem(NewRenderer(screen)))
	game := tetris.NewGame(options...)

	input := Listen(screen)
	defer input.Close()
	game.Run(ctx, FrameInterval, input.Poll)
	return nil
}

// Renderer is a system that draws the board and next piece after every frame.
type Renderer struct {
	Board   engine.Singleton[tetris.Board]
	Pieces  engine.Singleton[tetris.Pieces]
	Session engine.Singleton[tetris.Session]

	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

const (
	cellColumns = 2
	originX     = 1
	originY     = 1
)

var (
	frameStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

func (r *Renderer) Execute(frame *engine.UpdateFrame) {
	board := r.Board.Get()
	session := r.Session.Get()

	r.screen.Clear()
	r.drawFrame(board.Width, board.Height)
	r.drawCells(originX+1, originY+1, board.View)

	panelX := originX + board.Width*cellColumns + 4
	r.drawText(panelX, originY+1, textStyle, "Next")
	r.drawPiece(panelX, originY+2, r.Pieces.Get().Next)

	switch session.Status {
	case tetris.GameOver:
		r.drawText(panelX, originY+6, alertStyle, "GAME OVER")
		r.drawText(panelX, originY+7, textStyle, "r restart, q quit")
	default:
		r.drawText(panelX, originY+6, textStyle, "arrows move, up rotates")
	}

	r.screen.Show()
}

func (r *Renderer) drawFrame(width, height int) {
	right := originX + width*cellColumns + 1
	bottom := originY + height + 1
	for x := originX; x <= right; x++ {
		r.screen.SetContent(x, originY, '─', nil, frameStyle)
		r.screen.SetContent(x, bottom, '─', nil, frameStyle)
	}
	for y := originY; y <= bottom; y++ {
		r.screen.SetContent(originX, y, '│', nil, frameStyle)
		r.screen.SetContent(right, y, '│', nil, frameStyle)
	}
	r.screen.SetContent(originX, originY, '┌', nil, frameStyle)
	r.screen.SetContent(right, originY, '┐', nil, frameStyle)
	r.screen.SetContent(originX, bottom, '└', nil, frameStyle)
	r.screen.SetContent(right, bottom, '┘', nil, frameStyle)
}

func (r *Renderer) drawCells(left, top int, grid tetris.Grid) {
	for y, row := range grid {
		for x, c := range row {
			r.drawCell(left+x*cellColumns, top+y, c)
		}
	}
}

func (r *Renderer) drawPiece(left, top int, p tetris.Piece) {
	for y := range 4 {
		for x := range 4 {
			r.drawCell(left+x*cellColumns, top+y, tetris.Background)
		}
	}
	for y, row := range p.Shape {
		for x, filled := range row {
			if filled {
				r.drawCell(left+x*cellColumns, top+y, p.Color)
			}
		}
	}
}

func (r *Renderer) drawCell(x, y int, c tetris.Color) {
	style := tcell.StyleDefault.Background(cellColor(c))
	for i := range cellColumns {
		r.screen.SetContent(x+i, y, ' ', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, style tcell.Style, s string) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func cellColor(c tetris.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
