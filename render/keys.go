package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetr/tetris"
)

var keyActions = map[ebiten.Key]tetris.Action{
	ebiten.KeyArrowLeft:  tetris.ActionLeft,
	ebiten.KeyArrowRight: tetris.ActionRight,
	ebiten.KeyArrowDown:  tetris.ActionDown,
	ebiten.KeyArrowUp:    tetris.ActionRotate,
	ebiten.KeyQ:          tetris.ActionQuit,
	ebiten.KeyEscape:     tetris.ActionQuit,
	ebiten.KeyR:          tetris.ActionRestart,
}

// KeyAction maps a key to the game action it triggers.
func KeyAction(key ebiten.Key) (tetris.Action, bool) {
	action, ok := keyActions[key]
	return action, ok
}

// AppendActions appends the actions for keys to dst, in key order, skipping unbound keys.
func AppendActions(dst []tetris.Action, keys []ebiten.Key) []tetris.Action {
	for _, key := range keys {
		if action, ok := KeyAction(key); ok {
			dst = append(dst, action)
		}
	}
	return dst
}
