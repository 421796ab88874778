// Package term is a terminal frontend built on tcell. Each grid cell takes
// two columns so the board looks roughly square.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"gesture-snake/game"
	"gesture-snake/game/types"
	"gesture-snake/input"
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBody   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(30, 200, 90))
	styleHead   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(60, 255, 130)).Bold(true)
	styleFood   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleCrash  = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

const crashFlash = time.Second

// Pauser is the part of the driver the frontend controls
type Pauser interface {
	TogglePause() bool
	Paused() bool
}

type Renderer struct {
	screen tcell.Screen

	lastSeq    uint64
	crashCell  types.Cell
	crashText  string
	crashUntil time.Time
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Grid converts a world cell to a board column and row, top-left first
func Grid(b types.Bounds, unit int, c types.Cell) (col, row int) {
	firstX := ceilDiv(b.MinX, unit)
	lastY := floorDiv(b.MaxY, unit)
	return floorDiv(c.X, unit) - firstX, lastY - floorDiv(c.Y, unit)
}

// GridSize is the number of columns and rows of whole cells inside b
func GridSize(b types.Bounds, unit int) (cols, rows int) {
	return floorDiv(b.MaxX, unit) - ceilDiv(b.MinX, unit) + 1,
		floorDiv(b.MaxY, unit) - ceilDiv(b.MinY, unit) + 1
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

// Draw renders f. seq is the FrameBuffer sequence number.
func (r *Renderer) Draw(f game.Frame, seq uint64, paused bool) {
	if seq != r.lastSeq {
		r.lastSeq = seq
		if f.Terminated {
			r.crashCell = f.CrashCell
			r.crashText = fmt.Sprintf("%s collision! Final score: %d", f.Collision, f.FinalScore)
			r.crashUntil = time.Now().Add(crashFlash)
		}
	}

	s := r.screen
	s.Clear()

	cols, rows := GridSize(f.Bounds, f.GridUnit)
	const top, left = 1, 0

	r.text(left, 0, fmt.Sprintf("Score: %d  High Score: %d", f.Score, f.HighScore), styleText)

	// border
	w, h := cols*2+2, rows+2
	for x := 0; x < w; x++ {
		s.SetContent(left+x, top, '─', nil, styleBorder)
		s.SetContent(left+x, top+h-1, '─', nil, styleBorder)
	}
	for y := 0; y < h; y++ {
		s.SetContent(left, top+y, '│', nil, styleBorder)
		s.SetContent(left+w-1, top+y, '│', nil, styleBorder)
	}
	s.SetContent(left, top, '┌', nil, styleBorder)
	s.SetContent(left+w-1, top, '┐', nil, styleBorder)
	s.SetContent(left, top+h-1, '└', nil, styleBorder)
	s.SetContent(left+w-1, top+h-1, '┘', nil, styleBorder)

	put := func(c types.Cell, ch rune, style tcell.Style) {
		col, row := Grid(f.Bounds, f.GridUnit, c)
		if col < 0 || row < 0 || col >= cols || row >= rows {
			return
		}
		x, y := left+1+col*2, top+1+row
		s.SetContent(x, y, ch, nil, style)
		s.SetContent(x+1, y, ch, nil, style)
	}

	put(f.Food, '●', styleFood)
	for _, c := range f.Body {
		put(c, '█', styleBody)
	}
	put(f.Head, '█', styleHead)

	status, statusStyle := "", styleDim
	switch {
	case time.Now().Before(r.crashUntil):
		put(r.crashCell, '✖', styleCrash)
		status, statusStyle = r.crashText, styleCrash
	case paused:
		status = "Paused (p to resume)"
	case f.Phase == game.Idle:
		status = "Arrows or WASD to start, q to quit"
	}
	r.text(left, top+h, status, statusStyle)

	st := f.Stats
	panelX := left + w + 2
	for i, line := range []string{
		"Session",
		fmt.Sprintf("Games   %d", st.GamesPlayed),
		fmt.Sprintf("Avg     %.1f", st.AverageScore),
		fmt.Sprintf("Median  %.1f", st.MedianScore),
		fmt.Sprintf("Best    %d", st.MaxScore),
		fmt.Sprintf("Walls   %d", st.WallDeaths),
		fmt.Sprintf("Self    %d", st.SelfDeaths),
		"",
		fmt.Sprintf("Length  %d", len(f.Body)+1),
		fmt.Sprintf("Delay   %s", f.Delay),
	} {
		style := styleDim
		if i == 0 {
			style = styleText
		}
		r.text(panelX, top+i, line, style)
	}

	s.Show()
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// Run draws frames at fps and routes key presses until the user quits or
// ctx is cancelled. Directions go to slot.
func Run(ctx context.Context, screen tcell.Screen, frames *game.FrameBuffer, slot *input.Slot, pauser Pauser, fps int) error {
	renderer := NewRenderer(screen)

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				cmd, dir := MapKey(ev.Key(), ev.Rune())
				switch cmd {
				case CmdDirection:
					slot.Publish(dir)
				case CmdPause:
					pauser.TogglePause()
				case CmdQuit:
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			f, seq := frames.Load()
			renderer.Draw(f, seq, pauser.Paused())
		}
	}
}
