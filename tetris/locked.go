package tetris

import (
	"cmp"
	"slices"

	"github.com/kamstrup/intmap"
)

// cellKey packs a coordinate into one integer: x in the upper 32 bits, y in the lower 32 bits.
type cellKey uint64

func packPoint(p Point) cellKey {
	return cellKey(uint64(uint32(int32(p.X)))<<32 | uint64(uint32(int32(p.Y))))
}

func (k cellKey) Point() Point {
	return Point{
		X: int(int32(uint32(k >> 32))),
		Y: int(int32(uint32(k & 0xFFFFFFFF))),
	}
}

// LockedPositions is the authoritative store of settled cells, mapping a coordinate to its colour.
// The grid is only ever a view derived from it.
type LockedPositions struct {
	cells *intmap.Map[cellKey, Color]
}

func NewLockedPositions() *LockedPositions {
	return &LockedPositions{
		cells: intmap.New[cellKey, Color](GridWidth * GridHeight),
	}
}

func (l *LockedPositions) Put(p Point, c Color) {
	l.cells.Put(packPoint(p), c)
}

func (l *LockedPositions) Get(p Point) (Color, bool) {
	return l.cells.Get(packPoint(p))
}

func (l *LockedPositions) Has(p Point) bool {
	return l.cells.Has(packPoint(p))
}

func (l *LockedPositions) Delete(p Point) bool {
	return l.cells.Del(packPoint(p))
}

func (l *LockedPositions) Len() int {
	return l.cells.Len()
}

func (l *LockedPositions) Clear() {
	l.cells.Clear()
}

// Lock merges every occupied cell of the piece into the store, including cells above the grid.
func (l *LockedPositions) Lock(p Piece) {
	for _, cell := range p.Cells() {
		l.Put(cell, p.Color)
	}
}

// Each calls fn for every locked cell in unspecified order until fn returns false.
func (l *LockedPositions) Each(fn func(Point, Color) bool) {
	l.cells.ForEach(func(k cellKey, c Color) bool {
		return fn(k.Point(), c)
	})
}

// Points returns every locked coordinate ordered bottom-most row first, then by column.
func (l *LockedPositions) Points() []Point {
	points := make([]Point, 0, l.Len())
	l.Each(func(p Point, _ Color) bool {
		points = append(points, p)
		return true
	})

	slices.SortFunc(points, func(a, b Point) int {
		if a.Y != b.Y {
			return cmp.Compare(b.Y, a.Y)
		}
		return cmp.Compare(a.X, b.X)
	})
	return points
}

// Clone returns an independent copy of the store.
func (l *LockedPositions) Clone() *LockedPositions {
	out := &LockedPositions{
		cells: intmap.New[cellKey, Color](max(l.Len(), GridWidth*GridHeight)),
	}
	l.cells.ForEach(func(k cellKey, c Color) bool {
		out.cells.Put(k, c)
		return true
	})
	return out
}
