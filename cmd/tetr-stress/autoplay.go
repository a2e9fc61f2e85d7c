package main

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/tetr/engine"
	"github.com/plus3/tetr/tetris"
)

var botActions = []tetris.Action{
	tetris.ActionLeft,
	tetris.ActionRight,
	tetris.ActionDown,
	tetris.ActionRotate,
}

// Player drives one game with random input and restarts it whenever it ends.
type Player struct {
	game *tetris.Game
	rng  *rand.Rand

	// Rounds counts finished rounds; Lines and Pieces add up over all of them.
	Rounds int
	Lines  int
	Pieces int
}

func NewPlayer(seed uint64, fallInterval time.Duration) *Player {
	return &Player{
		game: tetris.NewGame(
			tetris.WithSource(tetris.NewRandomSource(seed)),
			tetris.WithFallInterval(fallInterval),
			tetris.WithRestart(),
		),
		rng: rand.New(rand.NewPCG(seed, ^seed)),
	}
}

// Step advances the game by one frame of dt with up to two random actions.
func (p *Player) Step(dt time.Duration) {
	if p.game.Status() == tetris.GameOver {
		p.Rounds++
		p.Lines += p.game.Lines()
		p.Pieces += p.game.Placed()
		p.game.Step(dt, tetris.ActionRestart)
		return
	}

	var actions [2]tetris.Action
	n := p.rng.IntN(len(actions) + 1)
	for i := range n {
		actions[i] = botActions[p.rng.IntN(len(botActions))]
	}
	p.game.Step(dt, actions[:n]...)
}

// Totals adds the round in progress to the finished ones.
func (p *Player) Totals() (lines, pieces int) {
	return p.Lines + p.game.Lines(), p.Pieces + p.game.Placed()
}

func (p *Player) Scheduler() *engine.Scheduler {
	return p.game.Scheduler()
}
