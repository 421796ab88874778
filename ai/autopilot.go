package ai

import (
	"gesture-snake/game"
	"gesture-snake/game/types"
	"gesture-snake/log"
)

// Rewards for one transition
const (
	RewardFood   = 1.0
	RewardDeath  = -1.0
	RewardCloser = 0.1
	RewardAway   = -0.15
)

// Autopilot plays the game as a DirectionSource. PollDirection and Observe
// must be called from the goroutine that advances the engine.
type Autopilot struct {
	learner *QLearning

	frame    game.Frame
	hasFrame bool

	// pending transition, completed by the next Observe
	pending    bool
	lastState  State
	lastAction Action
	lastDist   int
}

func NewAutopilot(seed uint64) *Autopilot {
	return &Autopilot{learner: NewQLearning(seed)}
}

func (a *Autopilot) Learner() *QLearning {
	return a.learner
}

// PollDirection chooses the next move from the latest observed frame
func (a *Autopilot) PollDirection() (types.Direction, bool) {
	if !a.hasFrame {
		return types.Up, true
	}
	heading := a.frame.Direction
	if heading == types.Stop {
		heading = types.Up
	}

	state := Sense(a.frame, heading)
	action := a.learner.GetAction(state)

	a.pending = true
	a.lastState = state
	a.lastAction = action
	a.lastDist = manhattan(a.frame.Head, a.frame.Food)
	return apply(heading, action), true
}

// Observe is a FrameHandler that learns from the frame the last move produced
func (a *Autopilot) Observe(f game.Frame) {
	if a.pending {
		reward := RewardAway
		switch {
		case f.Terminated:
			reward = RewardDeath
		case f.Ate:
			reward = RewardFood
		case manhattan(f.Head, f.Food) < a.lastDist:
			reward = RewardCloser
		}
		next := Sense(f, f.Direction)
		a.learner.Update(a.lastState, a.lastAction, reward, next, f.Terminated)
		a.pending = false
	}
	if f.Terminated {
		a.learner.EndEpisode()
		log.Debug("autopilot: episode %d, epsilon %.3f, %d states",
			a.learner.Episodes, a.learner.Epsilon, a.learner.TableSize())
	}
	a.frame = f
	a.hasFrame = true
}

// Sense builds the learner's view of f for a snake heading the given way
func Sense(f game.Frame, heading types.Direction) State {
	var s State
	s.FoodDir = [2]int{sign(f.Food.X - f.Head.X), sign(f.Food.Y - f.Head.Y)}
	for i, dir := range [3]types.Direction{heading.TurnLeft(), heading, heading.TurnRight()} {
		s.DangerDirs[i] = isDanger(f, f.Head.Add(dir.Offset(f.GridUnit)))
	}
	return s
}

func isDanger(f game.Frame, pos types.Cell) bool {
	if !f.Bounds.Contains(pos) {
		return true
	}
	for _, c := range f.Body {
		if c == pos {
			return true
		}
	}
	return false
}

func apply(heading types.Direction, action Action) types.Direction {
	switch action {
	case TurnLeft:
		return heading.TurnLeft()
	case TurnRight:
		return heading.TurnRight()
	default:
		return heading
	}
}

func manhattan(a, b types.Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
