package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetr/tetris"
)

// BoardInspector shows the round's status, the current and next pieces and
// every locked position.
type BoardInspector struct {
	game          *tetris.Game
	maxLockedRows int
}

func NewBoardInspector(game *tetris.Game, maxLockedRows int) *BoardInspector {
	return &BoardInspector{
		game:          game,
		maxLockedRows: maxLockedRows,
	}
}

func (bi *BoardInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 460), imgui.CondOnce)
	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	g := bi.game
	w, h := g.Size()
	imgui.Text(fmt.Sprintf("Status: %s", g.Status()))
	imgui.Text(fmt.Sprintf("Grid: %dx%d", w, h))
	imgui.Text(fmt.Sprintf("Lines: %d", g.Lines()))
	imgui.Text(fmt.Sprintf("Pieces: %d", g.Placed()))

	if imgui.Button("Reset") {
		g.Reset()
	}

	imgui.Separator()
	current := g.Current()
	imgui.Text(fmt.Sprintf("Current at (%d, %d)", current.X, current.Y))
	imgui.TextColored(colorVec(current.Color), current.Shape.String())
	imgui.Text("Next")
	imgui.TextColored(colorVec(g.Next().Color), g.Next().Shape.String())

	locked := g.Locked()
	if imgui.TreeNodeStr(fmt.Sprintf("Locked Positions (%d)", locked.Len())) {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("LockedTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("X")
			imgui.TableSetupColumn("Y")
			imgui.TableSetupColumn("Color")
			imgui.TableHeadersRow()

			rows := lockedRows(locked, bi.maxLockedRows)
			for _, row := range rows {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", row.Point.X))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", row.Point.Y))
				imgui.TableNextColumn()
				imgui.TextColored(colorVec(row.Color), hexColor(row.Color))
			}

			imgui.EndTable()
			if len(rows) < locked.Len() {
				imgui.Text(fmt.Sprintf("... %d more", locked.Len()-len(rows)))
			}
		}
		imgui.TreePop()
	}

	imgui.End()
}

type lockedRow struct {
	Point tetris.Point
	Color tetris.Color
}

// lockedRows lists up to limit locked cells, bottom row first.
func lockedRows(locked *tetris.LockedPositions, limit int) []lockedRow {
	points := locked.Points()
	if limit >= 0 && len(points) > limit {
		points = points[:limit]
	}

	rows := make([]lockedRow, 0, len(points))
	for _, p := range points {
		c, _ := locked.Get(p)
		rows = append(rows, lockedRow{Point: p, Color: c})
	}
	return rows
}

func colorVec(c tetris.Color) imgui.Vec4 {
	return imgui.NewVec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
}

func hexColor(c tetris.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
