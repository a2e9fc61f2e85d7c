package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/tetr/tetris"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var (
	gridLineColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	bannerColor   = color.RGBA{A: 0xc0}
)

func drawBoard(screen *ebiten.Image, view tetris.Grid) {
	for y, row := range view {
		for x, c := range row {
			if c == tetris.Background {
				continue
			}
			vector.DrawFilledRect(screen, float32(x*CellSize), float32(y*CellSize), CellSize, CellSize, c, false)
		}
	}

	w, h := ScreenSize(view.Width(), view.Height())
	for x := 0; x <= view.Width(); x++ {
		px := float32(x * CellSize)
		vector.StrokeLine(screen, px, 0, px, float32(h), 1, gridLineColor, false)
	}
	for y := 0; y <= view.Height(); y++ {
		py := float32(y * CellSize)
		vector.StrokeLine(screen, 0, py, float32(w), py, 1, gridLineColor, false)
	}
}

func drawGameOver(screen *ebiten.Image, game *tetris.Game) {
	if game.Status() != tetris.GameOver {
		return
	}

	face := basicfont.Face7x13
	w, h := ScreenSize(game.Size())
	bannerHeight := 3 * CellSize
	top := (h - bannerHeight) / 2
	vector.DrawFilledRect(screen, 0, float32(top), float32(w), float32(bannerHeight), bannerColor, false)

	drawCentered(screen, "GAME OVER", face, w, top+CellSize+face.Ascent)
	drawCentered(screen, "R restart  Q quit", face, w, top+2*CellSize+face.Ascent)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, width, y int) {
	x := (width - font.MeasureString(face, s).Ceil()) / 2
	text.Draw(screen, s, face, x, y, color.White)
}
