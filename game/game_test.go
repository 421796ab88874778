package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gesture-snake/config"
	"gesture-snake/game/entity"
	"gesture-snake/game/types"
	"gesture-snake/input"
	"gesture-snake/log"
	mocks "gesture-snake/mocks/gesture-snake/game"
)

func testConfig() config.Game {
	cfg := config.Default().Game
	cfg.Seed = 42
	return cfg
}

func newTestEngine(cfg config.Game, src DirectionSource) *Engine {
	return NewEngine(NewEngineOptions{
		Config: cfg,
		Source: src,
		Clock:  NewManualClock(time.Unix(0, 0)),
		Logger: log.Discard(),
	})
}

func TestEngine_NewEngineStartsIdle(t *testing.T) {
	e := newTestEngine(testConfig(), nil)

	frame := e.Snapshot()
	assert.Equal(t, Idle, frame.Phase)
	assert.Equal(t, types.Cell{}, frame.Head)
	assert.Empty(t, frame.Body)
	assert.Equal(t, types.Stop, frame.Direction)
	assert.Equal(t, types.Cell{X: 0, Y: 100}, frame.Food)
	assert.Equal(t, 100*time.Millisecond, e.NextWait())
}

func TestEngine_NoIntentKeepsHeading(t *testing.T) {
	e := newTestEngine(testConfig(), input.NewScript(types.Right))
	e.foodMgr.SetFood(types.Cell{X: -200, Y: -200})

	for i := 1; i <= 5; i++ {
		frame := e.AdvanceOneTick()
		assert.Equal(t, types.Cell{X: 20 * i, Y: 0}, frame.Head)
		assert.Equal(t, Running, frame.Phase)
	}
}

func TestEngine_IdleWithoutIntentDoesNotMove(t *testing.T) {
	e := newTestEngine(testConfig(), nil)

	for i := 0; i < 10; i++ {
		frame := e.AdvanceOneTick()
		assert.Equal(t, types.Cell{}, frame.Head)
		assert.Equal(t, Idle, frame.Phase)
		assert.False(t, frame.Terminated)
	}
}

func TestEngine_RepeatedUpIsIdempotent(t *testing.T) {
	const n = 6
	steps := make([]types.Direction, n)
	for i := range steps {
		steps[i] = types.Up
	}
	e := newTestEngine(testConfig(), input.NewScript(steps...))
	e.foodMgr.SetFood(types.Cell{X: 200, Y: -200})

	for i := 1; i <= n; i++ {
		frame := e.AdvanceOneTick()
		assert.Equal(t, types.Up, frame.Direction)
		assert.Equal(t, types.Cell{X: 0, Y: 20 * i}, frame.Head)
	}
}

func TestEngine_RejectsReversalAndStop(t *testing.T) {
	src := mocks.NewDirectionSource(t)
	src.EXPECT().PollDirection().Return(types.Stop, true).Once()
	src.EXPECT().PollDirection().Return(types.Right, true).Once()
	src.EXPECT().PollDirection().Return(types.Left, true).Once()
	src.EXPECT().PollDirection().Return(types.Up, true).Once()
	src.EXPECT().PollDirection().Return(types.Down, true).Once()

	e := newTestEngine(testConfig(), src)
	e.foodMgr.SetFood(types.Cell{X: -200, Y: -200})

	frame := e.AdvanceOneTick()
	assert.Equal(t, types.Stop, frame.Direction)
	assert.Equal(t, types.Cell{}, frame.Head)
	assert.Equal(t, Idle, frame.Phase)

	frame = e.AdvanceOneTick()
	assert.Equal(t, types.Right, frame.Direction)
	assert.Equal(t, types.Cell{X: 20, Y: 0}, frame.Head)

	frame = e.AdvanceOneTick()
	assert.Equal(t, types.Right, frame.Direction, "reversal must be ignored")
	assert.Equal(t, types.Cell{X: 40, Y: 0}, frame.Head)

	frame = e.AdvanceOneTick()
	assert.Equal(t, types.Up, frame.Direction)
	assert.Equal(t, types.Cell{X: 40, Y: 20}, frame.Head)

	frame = e.AdvanceOneTick()
	assert.Equal(t, types.Up, frame.Direction, "reversal must be ignored")
	assert.Equal(t, types.Cell{X: 40, Y: 40}, frame.Head)
}

func TestEngine_HeadNeverReversesWithinOneTick(t *testing.T) {
	seq := []types.Direction{
		types.Right, types.Left, types.Up, types.Down, types.Left,
		types.Right, types.Down, types.Up, types.Right, types.Left,
	}
	e := newTestEngine(testConfig(), input.NewScript(seq...))
	e.foodMgr.SetFood(types.Cell{X: 280, Y: 280})

	prev := e.Snapshot()
	for range seq {
		frame := e.AdvanceOneTick()
		require.False(t, frame.Terminated)
		if prev.Direction != types.Stop {
			assert.NotEqual(t, prev.Direction.Opposite(), frame.Direction)
		}
		step := types.Cell{X: frame.Head.X - prev.Head.X, Y: frame.Head.Y - prev.Head.Y}
		assert.Equal(t, frame.Direction.Offset(20), step)
		prev = frame
	}
}

func TestEngine_WallCollisionAtPositiveBound(t *testing.T) {
	e := newTestEngine(testConfig(), input.NewScript(types.Right))
	e.foodMgr.SetFood(types.Cell{X: -200, Y: -200})
	e.stateMgr.UpdateScore(50)

	// 290 / 20 = 14 steps stay inside, the 15th reaches x = 300
	for i := 1; i <= 14; i++ {
		frame := e.AdvanceOneTick()
		require.False(t, frame.Terminated, "tick %d", i)
		assert.Equal(t, 20*i, frame.Head.X)
	}

	frame := e.AdvanceOneTick()
	require.True(t, frame.Terminated)
	assert.Equal(t, types.WallCollision, frame.Collision)
	assert.Equal(t, types.Cell{X: 300, Y: 0}, frame.CrashCell)
	assert.Equal(t, Terminated, frame.Phase)
	assert.Equal(t, 0, frame.Score)
	assert.Equal(t, 50, frame.HighScore)
	assert.Equal(t, types.Cell{}, frame.Head)
	assert.Equal(t, types.Stop, frame.Direction)
	assert.Empty(t, frame.Body)
	assert.Equal(t, time.Second, e.NextWait())

	frame = e.AdvanceOneTick()
	assert.False(t, frame.Terminated)
	assert.Equal(t, Idle, frame.Phase)
	assert.Equal(t, types.Cell{}, frame.Head)
	assert.Equal(t, 100*time.Millisecond, e.NextWait())
}

func TestEngine_GrowthIsDeferredOneTick(t *testing.T) {
	e := newTestEngine(testConfig(), input.NewScript(types.Right))
	e.foodMgr.SetFood(types.Cell{X: 20, Y: 0})

	frame := e.AdvanceOneTick()
	require.True(t, frame.Ate)
	assert.Len(t, frame.Body, 0, "new segment is inert on the pickup tick")
	assert.Equal(t, 10, frame.Score)
	assert.NotEqual(t, frame.Head, frame.Food)
	assert.True(t, frame.Bounds.Contains(frame.Food))

	e.foodMgr.SetFood(types.Cell{X: -200, Y: -200})
	frame = e.AdvanceOneTick()
	require.Len(t, frame.Body, 1)
	assert.Equal(t, types.Cell{X: 20, Y: 0}, frame.Body[0])
	assert.Equal(t, types.Cell{X: 40, Y: 0}, frame.Head)

	frame = e.AdvanceOneTick()
	assert.Equal(t, []types.Cell{{X: 40, Y: 0}}, frame.Body)
}

func TestEngine_BodyFollowsPreMovePositions(t *testing.T) {
	e := newTestEngine(testConfig(), input.NewScript(types.Right, types.Stop, types.Up))
	e.foodMgr.SetFood(types.Cell{X: -200, Y: -200})
	e.snake.Body = []entity.Segment{
		{Pos: types.Cell{X: -20, Y: 0}, Placed: true},
		{Pos: types.Cell{X: -40, Y: 0}, Placed: true},
		{Pos: types.Cell{X: -60, Y: 0}, Placed: true},
	}

	e.AdvanceOneTick()
	e.AdvanceOneTick()
	frame := e.AdvanceOneTick()

	assert.Equal(t, types.Cell{X: 40, Y: 20}, frame.Head)
	assert.Equal(t, []types.Cell{{X: 40, Y: 0}, {X: 20, Y: 0}, {X: 0, Y: 0}}, frame.Body)
}

func TestEngine_SelfCollisionFiresOnExactTick(t *testing.T) {
	e := newTestEngine(testConfig(), input.NewScript(types.Down, types.Left, types.Up))
	e.foodMgr.SetFood(types.Cell{X: 200, Y: 200})
	e.snake.Direction = types.Right
	e.snake.Body = []entity.Segment{
		{Pos: types.Cell{X: -20, Y: 0}, Placed: true},
		{Pos: types.Cell{X: -40, Y: 0}, Placed: true},
		{Pos: types.Cell{X: -60, Y: 0}, Placed: true},
		{Pos: types.Cell{X: -80, Y: 0}, Placed: true},
	}
	e.phase = Running

	frame := e.AdvanceOneTick()
	require.False(t, frame.Terminated)
	assert.Equal(t, types.Cell{X: 0, Y: -20}, frame.Head)

	frame = e.AdvanceOneTick()
	require.False(t, frame.Terminated)
	assert.Equal(t, types.Cell{X: -20, Y: -20}, frame.Head)

	frame = e.AdvanceOneTick()
	require.True(t, frame.Terminated)
	assert.Equal(t, types.SelfCollision, frame.Collision)
	assert.Equal(t, types.Cell{X: -20, Y: 0}, frame.CrashCell)
	assert.Empty(t, frame.Body)
	assert.Equal(t, types.Cell{}, frame.Head)
}

func TestEngine_ScoreAndHighScore(t *testing.T) {
	tests := []struct {
		name          string
		reward        int
		wantScore     int
		wantHighScore int
	}{
		{name: "below seeded high score", reward: 10, wantScore: 30, wantHighScore: 50},
		{name: "beats seeded high score", reward: 20, wantScore: 60, wantHighScore: 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Reward = tt.reward
			e := newTestEngine(cfg, input.NewScript(types.Right))
			e.stateMgr.UpdateScore(50)

			var frame Frame
			for i := 1; i <= 3; i++ {
				e.foodMgr.SetFood(types.Cell{X: 20 * i, Y: 0})
				frame = e.AdvanceOneTick()
				require.True(t, frame.Ate, "pickup %d", i)
				require.False(t, frame.Terminated)
			}
			assert.Equal(t, tt.wantScore, frame.Score)
			assert.Equal(t, tt.wantHighScore, frame.HighScore)
		})
	}
}

func TestEngine_DelayShrinksPerPickupAboveFloor(t *testing.T) {
	cfg := testConfig()
	cfg.BaseDelay = 100 * time.Millisecond
	cfg.DelayStep = 10 * time.Millisecond
	cfg.MinDelay = 75 * time.Millisecond
	e := newTestEngine(cfg, input.NewScript(types.Right))

	want := []time.Duration{90, 80, 80, 80}
	for i, w := range want {
		e.foodMgr.SetFood(types.Cell{X: 20 * (i + 1), Y: 0})
		frame := e.AdvanceOneTick()
		require.True(t, frame.Ate)
		assert.Equal(t, w*time.Millisecond, e.NextWait())
		assert.Greater(t, e.NextWait(), cfg.MinDelay)
	}
}

func TestEngine_ResetKeepsFoodAndHighScore(t *testing.T) {
	e := newTestEngine(testConfig(), input.NewScript(types.Down))
	e.foodMgr.SetFood(types.Cell{X: 0, Y: -20})

	frame := e.AdvanceOneTick()
	require.True(t, frame.Ate)
	food := types.Cell{X: 100, Y: 100}
	e.foodMgr.SetFood(food)

	var last Frame
	for i := 0; i < 20; i++ {
		last = e.AdvanceOneTick()
		if last.Terminated {
			break
		}
	}
	require.True(t, last.Terminated)
	assert.Equal(t, types.WallCollision, last.Collision)
	assert.Equal(t, 10, last.FinalScore)
	assert.Equal(t, 10, last.HighScore)
	assert.Equal(t, 0, last.Score)
	assert.Equal(t, food, last.Food, "food is not moved by the reset")
	assert.Equal(t, 1, last.Stats.GamesPlayed)
	assert.Equal(t, 10, last.Stats.MaxScore)
}

func TestEngine_RelocateFoodOnReset(t *testing.T) {
	cfg := testConfig()
	cfg.RelocateFoodOnReset = true
	e := newTestEngine(cfg, input.NewScript(types.Left))
	e.foodMgr.SetFood(types.Cell{X: 100, Y: 100})
	e.snake.Head = types.Cell{X: -280, Y: 0}

	frame := e.AdvanceOneTick()
	require.True(t, frame.Terminated)
	assert.True(t, frame.Bounds.Contains(frame.Food))
	assert.NotEqual(t, frame.Head, frame.Food)
}

func TestEngine_NewRunIDAfterRestart(t *testing.T) {
	e := newTestEngine(testConfig(), input.NewScript(types.Left))
	e.snake.Head = types.Cell{X: -280, Y: 0}

	first := e.Snapshot().RunID
	frame := e.AdvanceOneTick()
	require.True(t, frame.Terminated)
	assert.Equal(t, first, frame.RunID)

	frame = e.AdvanceOneTick()
	assert.NotEqual(t, first, frame.RunID)
	assert.Len(t, e.Stats().GetRuns(), 1)
	assert.Equal(t, first, e.Stats().GetRuns()[0].RunID)
}
