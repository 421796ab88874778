package manager

import "time"

// StateManager owns the per-run score and tick delay and the
// process-lifetime high score.
type StateManager struct {
	reward    int
	baseDelay time.Duration
	delayStep time.Duration
	minDelay  time.Duration

	score     int
	highScore int
	delay     time.Duration
}

// NewStateManager creates a manager at baseline. minDelay is an exclusive floor.
func NewStateManager(reward int, baseDelay, delayStep, minDelay time.Duration) *StateManager {
	return &StateManager{
		reward:    reward,
		baseDelay: baseDelay,
		delayStep: delayStep,
		minDelay:  minDelay,
		delay:     baseDelay,
	}
}

// RecordPickup adds the reward, raises the high score if needed and
// speeds the game up by one step. It reports whether a new high score was set.
func (sm *StateManager) RecordPickup() bool {
	sm.score += sm.reward
	if next := sm.delay - sm.delayStep; next > sm.minDelay {
		sm.delay = next
	}
	return sm.UpdateScore(sm.score)
}

// UpdateScore raises the high score to score if it is larger
func (sm *StateManager) UpdateScore(score int) bool {
	if score > sm.highScore {
		sm.highScore = score
		return true
	}
	return false
}

// Reset zeroes the run score and restores the baseline delay
func (sm *StateManager) Reset() {
	sm.score = 0
	sm.delay = sm.baseDelay
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetDelay() time.Duration {
	return sm.delay
}
