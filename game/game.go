package game

import (
	"time"

	"github.com/google/uuid"

	"gesture-snake/config"
	"gesture-snake/game/entity"
	"gesture-snake/game/manager"
	"gesture-snake/game/types"
	"gesture-snake/log"
)

// RecentRuns is how many past scores each frame carries for the stats panel
const RecentRuns = 40

// DirectionSource yields at most one directional intent per call and never
// blocks. ok is false when nothing was produced since the last poll.
type DirectionSource interface {
	PollDirection() (dir types.Direction, ok bool)
}

// NoInput is a DirectionSource that never produces an intent
type NoInput struct{}

func (NoInput) PollDirection() (types.Direction, bool) {
	return types.Stop, false
}

// Engine is the single-actor game state machine. It is not safe for
// concurrent use: one goroutine calls AdvanceOneTick, everyone else reads
// the Frames it returns.
type Engine struct {
	cfg          config.Game
	bounds       types.Bounds
	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	source       DirectionSource
	stats        *Stats
	clock        Clock
	logger       *log.Logger

	phase    Phase
	tick     uint64
	runID    string
	runStart time.Time
	summary  StatsSummary
}

// NewEngineOptions contains options for creating a new Engine.
type NewEngineOptions struct {
	Config config.Game
	Source DirectionSource
	Stats  *Stats
	Clock  Clock
	Logger *log.Logger
}

func NewEngine(opts NewEngineOptions) *Engine {
	if opts.Source == nil {
		opts.Source = NoInput{}
	}
	if opts.Stats == nil {
		opts.Stats = NewStats()
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	seed := opts.Config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	bounds := opts.Config.Bounds()
	collisionMgr := manager.NewCollisionManager(bounds, opts.Config.PickupDistance)
	e := &Engine{
		cfg:          opts.Config,
		bounds:       bounds,
		snake:        entity.NewSnake(types.Cell{}),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(bounds, opts.Config.GridUnit, opts.Config.FoodStart, seed, collisionMgr),
		stateMgr: manager.NewStateManager(
			opts.Config.Reward,
			opts.Config.BaseDelay,
			opts.Config.DelayStep,
			opts.Config.MinDelay,
		),
		source: opts.Source,
		stats:  opts.Stats,
		clock:  opts.Clock,
		logger: opts.Logger,
	}
	e.summary = e.stats.Summary(RecentRuns)
	e.startRun()
	return e
}

// SetSource swaps the direction source between ticks
func (e *Engine) SetSource(source DirectionSource) {
	if source == nil {
		source = NoInput{}
	}
	e.source = source
}

func (e *Engine) Stats() *Stats {
	return e.stats
}

func (e *Engine) Phase() Phase {
	return e.phase
}

// NextWait is how long the driver sleeps before the next tick: the current
// delay, or the collision pause right after a run ended.
func (e *Engine) NextWait() time.Duration {
	if e.phase == Terminated {
		return e.cfg.CollisionPause
	}
	return e.stateMgr.GetDelay()
}

// AdvanceOneTick runs one simulation step and returns the resulting frame
func (e *Engine) AdvanceOneTick() Frame {
	e.tick++
	if e.phase == Terminated {
		e.startRun()
	}

	// Direction update
	if dir, ok := e.source.PollDirection(); ok {
		prev := e.snake.Direction
		if e.snake.SetDirection(dir) {
			e.logger.Trace("tick %d: direction %s -> %s", e.tick, prev, dir)
		} else if dir != prev {
			e.logger.Trace("tick %d: rejected %s while heading %s", e.tick, dir, prev)
		}
	}
	if e.phase == Idle && e.snake.Direction != types.Stop {
		e.phase = Running
	}

	e.snake.Propagate()
	e.snake.Move(e.cfg.GridUnit)

	if e.collisionMgr.IsWallCollision(e.snake.Head) {
		return e.terminate(types.WallCollision)
	}

	ate, newHigh := false, false
	if e.collisionMgr.IsFoodCollision(e.snake.Head, e.foodMgr.GetFood()) {
		ate = true
		food := e.foodMgr.Relocate(e.snake)
		e.snake.Grow()
		newHigh = e.stateMgr.RecordPickup()
		e.logger.Debug("run %s: food eaten at %v, score %d, next food %v, delay %s",
			e.runID, e.snake.Head, e.stateMgr.GetScore(), food, e.stateMgr.GetDelay())
	}

	if e.collisionMgr.IsSelfCollision(e.snake) {
		return e.terminate(types.SelfCollision)
	}

	frame := e.Snapshot()
	frame.Ate = ate
	frame.NewHighScore = newHigh
	return frame
}

// Snapshot returns the current state without advancing
func (e *Engine) Snapshot() Frame {
	return Frame{
		Tick:      e.tick,
		RunID:     e.runID,
		Phase:     e.phase,
		Head:      e.snake.Head,
		Body:      e.snake.PlacedBody(),
		Direction: e.snake.Direction,
		Food:      e.foodMgr.GetFood(),
		Bounds:    e.bounds,
		GridUnit:  e.cfg.GridUnit,
		Score:     e.stateMgr.GetScore(),
		HighScore: e.stateMgr.GetHighScore(),
		Delay:     e.stateMgr.GetDelay(),
		Stats:     e.summary,
	}
}

// terminate ends the current run and resets the actor. The collision pause
// is applied by the driver through NextWait.
func (e *Engine) terminate(cause types.CollisionType) Frame {
	crash := e.snake.Head
	finalScore := e.stateMgr.GetScore()
	record := RunRecord{
		RunID:     e.runID,
		StartTime: e.runStart,
		EndTime:   e.clock.Now(),
		Score:     finalScore,
		Length:    e.snake.Length(),
		Cause:     cause,
	}
	e.stats.AddRun(record)
	e.summary = e.stats.Summary(RecentRuns)
	e.logger.Info("run %s ended: %s collision at %v, score %d, length %d, high score %d",
		e.runID, cause, crash, finalScore, record.Length, e.stateMgr.GetHighScore())

	e.snake.Reset()
	e.stateMgr.Reset()
	if e.cfg.RelocateFoodOnReset {
		e.foodMgr.Relocate(e.snake)
	}
	e.phase = Terminated

	frame := e.Snapshot()
	frame.Terminated = true
	frame.Collision = cause
	frame.CrashCell = crash
	frame.FinalScore = finalScore
	return frame
}

func (e *Engine) startRun() {
	e.runID = uuid.New().String()
	e.runStart = e.clock.Now()
	e.phase = Idle
	e.logger.Debug("run %s started", e.runID)
}
