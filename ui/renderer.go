package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gesture-snake/game"
	"gesture-snake/game/types"
)

const (
	borderPadding = 10
	crashFlash    = time.Second
)

var (
	bodyColor  = rl.Color{R: 30, G: 200, B: 90, A: 255}
	headColor  = rl.Color{R: 60, G: 255, B: 130, A: 255}
	boardColor = rl.Color{R: 18, G: 18, B: 24, A: 255}
	panelColor = rl.Color{R: 40, G: 40, B: 48, A: 255}
)

// Renderer draws frames with raylib. It must be used from the thread that
// opened the window.
type Renderer struct {
	screenWidth  int32
	screenHeight int32
	gameWidth    int32
	statsPanel   int32
	graphWidth   int32
	graphHeight  int32

	lastSeq    uint64
	crashCell  types.Cell
	crashCause types.CollisionType
	crashAt    time.Time
	crashScore int
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	r.statsPanel = r.screenWidth / 4
	r.gameWidth = r.screenWidth - r.statsPanel

	r.graphWidth = r.statsPanel - 20
	r.graphHeight = r.screenHeight / 5
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Draw renders one frame. seq is the FrameBuffer sequence number, used to
// notice a collision exactly once.
func (r *Renderer) Draw(f game.Frame, seq uint64, paused bool) {
	r.UpdateDimensions()
	if seq != r.lastSeq {
		r.lastSeq = seq
		if f.Terminated {
			r.crashCell = f.CrashCell
			r.crashCause = f.Collision
			r.crashScore = f.FinalScore
			r.crashAt = time.Now()
		}
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := min32(r.screenHeight/30, r.statsPanel/12)
	lineHeight := fontSize + fontSize/3

	layout := NewLayout(f.Bounds,
		borderPadding, float32(borderPadding+lineHeight),
		float32(r.gameWidth-2*borderPadding), float32(r.screenHeight-2*borderPadding-lineHeight))

	board := layout.Board
	rl.DrawRectangleV(rl.Vector2{X: board.X, Y: board.Y}, rl.Vector2{X: board.Width, Y: board.Height}, boardColor)
	rl.DrawRectangleLinesEx(rl.Rectangle{X: board.X - 1, Y: board.Y - 1, Width: board.Width + 2, Height: board.Height + 2}, 1, rl.Gray)

	food := layout.CellRect(f.Food, f.GridUnit)
	rl.DrawCircleV(rl.Vector2{X: food.X + food.Width/2, Y: food.Y + food.Height/2}, food.Width/2, rl.Red)

	for _, c := range f.Body {
		drawCell(layout.CellRect(c, f.GridUnit), bodyColor)
	}
	head := layout.CellRect(f.Head, f.GridUnit)
	drawCell(head, headColor)
	drawHeading(head, f.Direction)

	if time.Since(r.crashAt) < crashFlash {
		crash := layout.CellRect(r.crashCell, f.GridUnit)
		rl.DrawRectangleLinesEx(rl.Rectangle{X: crash.X, Y: crash.Y, Width: crash.Width, Height: crash.Height}, 3, rl.Orange)
		text := fmt.Sprintf("%s collision! Final score: %d", r.crashCause, r.crashScore)
		r.drawCentered(text, board, fontSize, rl.Orange)
	} else if paused {
		r.drawCentered("Paused", board, fontSize, rl.White)
	} else if f.Phase == game.Idle {
		r.drawCentered("Choose a direction to start", board, fontSize, rl.LightGray)
	}

	header := fmt.Sprintf("Score: %d  High Score: %d", f.Score, f.HighScore)
	textWidth := rl.MeasureText(header, fontSize)
	rl.DrawText(header, int32(board.X+board.Width/2)-textWidth/2, borderPadding, fontSize, rl.White)

	r.drawStatsPanel(f, fontSize, lineHeight)
	rl.EndDrawing()
}

func drawCell(c Rect, color rl.Color) {
	rl.DrawRectangleV(rl.Vector2{X: c.X + 1, Y: c.Y + 1}, rl.Vector2{X: c.Width - 2, Y: c.Height - 2}, color)
}

// drawHeading puts a small triangle on the head pointing where it moves
func drawHeading(c Rect, dir types.Direction) {
	cx, cy := c.X+c.Width/2, c.Y+c.Height/2
	h := c.Width / 2
	var tip, left, right rl.Vector2
	switch dir {
	case types.Right:
		tip, left, right = rl.Vector2{X: cx + h, Y: cy}, rl.Vector2{X: cx, Y: cy - h}, rl.Vector2{X: cx, Y: cy + h}
	case types.Left:
		tip, left, right = rl.Vector2{X: cx - h, Y: cy}, rl.Vector2{X: cx, Y: cy + h}, rl.Vector2{X: cx, Y: cy - h}
	case types.Down:
		tip, left, right = rl.Vector2{X: cx, Y: cy + h}, rl.Vector2{X: cx + h, Y: cy}, rl.Vector2{X: cx - h, Y: cy}
	case types.Up:
		tip, left, right = rl.Vector2{X: cx, Y: cy - h}, rl.Vector2{X: cx - h, Y: cy}, rl.Vector2{X: cx + h, Y: cy}
	default:
		return
	}
	// raylib wants counter-clockwise vertices
	rl.DrawTriangle(tip, left, right, rl.Yellow)
}

func (r *Renderer) drawCentered(text string, board Rect, fontSize int32, color rl.Color) {
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, int32(board.X+board.Width/2)-w/2, int32(board.Y+board.Height/2)-fontSize/2, fontSize, color)
}

func (r *Renderer) drawStatsPanel(f game.Frame, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 5
	statsY := int32(10)
	s := f.Stats

	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, panelColor)

	lines := []string{
		fmt.Sprintf("Games: %d", s.GamesPlayed),
		fmt.Sprintf("Avg: %.1f", s.AverageScore),
		fmt.Sprintf("Median: %.1f", s.MedianScore),
		fmt.Sprintf("Best: %d", s.MaxScore),
		fmt.Sprintf("Avg time: %s", s.AverageDuration.Round(time.Second)),
		fmt.Sprintf("Longest: %s", s.MaxDuration.Round(time.Second)),
		fmt.Sprintf("Walls: %d  Self: %d", s.WallDeaths, s.SelfDeaths),
		"",
		fmt.Sprintf("Length: %d", len(f.Body)+1),
		fmt.Sprintf("Delay: %s", f.Delay),
	}
	rl.DrawText("Session", statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	for _, line := range lines {
		rl.DrawText(line, statsX+5, statsY, fontSize, rl.LightGray)
		statsY += lineHeight
	}

	r.drawScoreGraph(s.Recent, statsX, fontSize)
}

func (r *Renderer) drawScoreGraph(scores []int, graphX, fontSize int32) {
	graphY := r.screenHeight - r.graphHeight - fontSize*2
	rl.DrawRectangleLines(graphX, graphY, r.graphWidth, r.graphHeight, rl.White)
	rl.DrawText("Recent runs", graphX, graphY-fontSize-5, fontSize, rl.White)

	if len(scores) < 2 {
		return
	}
	maxScore := 1
	for _, score := range scores {
		if score > maxScore {
			maxScore = score
		}
	}
	steps := float32(game.RecentRuns - 1)
	for j := 1; j < len(scores); j++ {
		x1 := graphX + int32(float32(r.graphWidth)*float32(j-1)/steps)
		y1 := graphY + r.graphHeight - int32(float32(r.graphHeight)*float32(scores[j-1])/float32(maxScore))
		x2 := graphX + int32(float32(r.graphWidth)*float32(j)/steps)
		y2 := graphY + r.graphHeight - int32(float32(r.graphHeight)*float32(scores[j])/float32(maxScore))
		rl.DrawLine(x1, y1, x2, y2, bodyColor)
	}
}
