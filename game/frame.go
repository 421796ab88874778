package game

import (
	"time"

	"gesture-snake/game/types"
)

// Phase is the lifecycle state of the current run
type Phase int

const (
	Idle Phase = iota
	Running
	Terminated
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return "idle"
	}
}

// Frame is a read-only snapshot taken between ticks. Slices are owned by the
// frame and never mutated after publication.
type Frame struct {
	Tick      uint64
	RunID     string
	Phase     Phase
	Head      types.Cell
	Body      []types.Cell // placed segments, head-adjacent first
	Direction types.Direction
	Food      types.Cell
	Bounds    types.Bounds
	GridUnit  int
	Score     int
	HighScore int
	Delay     time.Duration

	Ate          bool
	NewHighScore bool

	// Terminated is set only on the tick that ended a run. Head, Body and
	// Score already describe the reset actor; the run's last state is kept
	// in CrashCell and FinalScore.
	Terminated bool
	Collision  types.CollisionType
	CrashCell  types.Cell
	FinalScore int

	Stats StatsSummary
}

// Cells returns the head followed by the body
func (f Frame) Cells() []types.Cell {
	cells := make([]types.Cell, 0, len(f.Body)+1)
	cells = append(cells, f.Head)
	return append(cells, f.Body...)
}
