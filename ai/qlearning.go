// Package ai drives the snake with a small tabular Q-learning agent. It
// learns while it plays and keeps its table in memory only.
package ai

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/exp/rand"
)

// Action is a move relative to the current heading
type Action int

const (
	TurnLeft Action = iota
	Straight
	TurnRight
)

const numActions = 3

func (a Action) String() string {
	switch a {
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	default:
		return "straight"
	}
}

// State is what the agent sees of the board around the head
type State struct {
	FoodDir    [2]int  // sign of food minus head on each axis
	DangerDirs [3]bool // left, ahead, right
}

func (s State) key() string {
	return fmt.Sprintf("%d%d%d%d%d",
		s.FoodDir[0], s.FoodDir[1],
		boolToInt(s.DangerDirs[0]),
		boolToInt(s.DangerDirs[1]),
		boolToInt(s.DangerDirs[2]))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

type QTable map[string][numActions]float64

type QLearning struct {
	LearningRate float64
	Discount     float64
	Epsilon      float64
	EpsilonDecay float64
	MinEpsilon   float64
	TotalReward  float64
	Episodes     int

	mutex  sync.RWMutex
	qTable QTable
	rng    *rand.Rand
}

func NewQLearning(seed uint64) *QLearning {
	return &QLearning{
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      0.2,
		EpsilonDecay: 0.97,
		MinEpsilon:   0.01,
		qTable:       make(QTable),
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// GetAction picks an action epsilon-greedily
func (q *QLearning) GetAction(state State) Action {
	if q.rng.Float64() < q.Epsilon {
		return Action(q.rng.Intn(numActions))
	}
	return q.BestAction(state)
}

// BestAction returns the action with the highest known value. Unseen
// states prefer going straight.
func (q *QLearning) BestAction(state State) Action {
	q.mutex.RLock()
	defer q.mutex.RUnlock()

	values := q.qTable[state.key()]
	best := Straight
	bestValue := values[Straight]
	for a := Action(0); a < numActions; a++ {
		if values[a] > bestValue {
			best, bestValue = a, values[a]
		}
	}
	return best
}

// Update applies one Q-learning step. terminal skips the bootstrap term.
func (q *QLearning) Update(state State, action Action, reward float64, next State, terminal bool) {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	maxNextQ := 0.0
	if !terminal {
		maxNextQ = math.Inf(-1)
		for _, v := range q.qTable[next.key()] {
			maxNextQ = math.Max(maxNextQ, v)
		}
	}

	values := q.qTable[state.key()]
	values[action] += q.LearningRate * (reward + q.Discount*maxNextQ - values[action])
	q.qTable[state.key()] = values
	q.TotalReward += reward
}

// EndEpisode decays exploration after a finished run
func (q *QLearning) EndEpisode() {
	q.Episodes++
	q.Epsilon = math.Max(q.MinEpsilon, q.Epsilon*q.EpsilonDecay)
}

// Value returns the stored value of action in state
func (q *QLearning) Value(state State, action Action) float64 {
	q.mutex.RLock()
	defer q.mutex.RUnlock()
	return q.qTable[state.key()][action]
}

// TableSize is the number of states seen so far
func (q *QLearning) TableSize() int {
	q.mutex.RLock()
	defer q.mutex.RUnlock()
	return len(q.qTable)
}
