package ui

import "gesture-snake/game/types"

// Layout maps world coordinates (origin at the centre, y up) onto a screen
// rectangle (origin top-left, y down).
type Layout struct {
	Scale   float32 // pixels per world unit
	OriginX float32 // screen position of the world origin
	OriginY float32
	Board   Rect // screen rectangle covered by the bounds
}

type Rect struct {
	X, Y, Width, Height float32
}

// NewLayout fits bounds into a width x height area offset by (x, y), keeping
// the aspect ratio and centring the board.
func NewLayout(bounds types.Bounds, x, y, width, height float32) Layout {
	bw, bh := float32(bounds.Width()), float32(bounds.Height())
	scale := width / bw
	if s := height / bh; s < scale {
		scale = s
	}
	board := Rect{
		Width:  bw * scale,
		Height: bh * scale,
	}
	board.X = x + (width-board.Width)/2
	board.Y = y + (height-board.Height)/2
	return Layout{
		Scale:   scale,
		OriginX: board.X - float32(bounds.MinX)*scale,
		OriginY: board.Y + float32(bounds.MaxY)*scale,
		Board:   board,
	}
}

// Project returns the screen position of a world cell centre
func (l Layout) Project(c types.Cell) (float32, float32) {
	return l.OriginX + float32(c.X)*l.Scale, l.OriginY - float32(c.Y)*l.Scale
}

// CellRect is the screen square of a cell of the given size centred on c
func (l Layout) CellRect(c types.Cell, unit int) Rect {
	sx, sy := l.Project(c)
	size := float32(unit) * l.Scale
	return Rect{X: sx - size/2, Y: sy - size/2, Width: size, Height: size}
}
