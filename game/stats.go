package game

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"gesture-snake/game/types"
)

// MaxRunRecords is how many finished runs are kept for the median and the
// recent-runs panel. Totals cover the whole session.
const MaxRunRecords = 200

// RunRecord describes one finished run
type RunRecord struct {
	RunID     string              `json:"runId"`
	StartTime time.Time           `json:"startTime"`
	EndTime   time.Time           `json:"endTime"`
	Score     int                 `json:"score"`
	Length    int                 `json:"length"`
	Cause     types.CollisionType `json:"cause"`
}

func (r RunRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StatsSummary is a copy of the aggregates, safe to hand to renderers
type StatsSummary struct {
	SessionID       string
	GamesPlayed     int
	AverageScore    float64
	MedianScore     float64
	MaxScore        int
	AverageDuration time.Duration
	MaxDuration     time.Duration
	WallDeaths      int
	SelfDeaths      int
	Recent          []int // scores of the latest runs, oldest first
}

// Stats collects finished runs for the current process. Nothing is written
// to disk.
type Stats struct {
	SessionID string

	mutex         sync.RWMutex
	runs          []RunRecord
	gamesPlayed   int
	totalScore    int
	totalDuration time.Duration
	maxScore      int
	maxDuration   time.Duration
	wallDeaths    int
	selfDeaths    int
}

func NewStats() *Stats {
	return &Stats{
		SessionID: uuid.New().String(),
		runs:      make([]RunRecord, 0, MaxRunRecords),
	}
}

// AddRun records a finished run
func (s *Stats) AddRun(r RunRecord) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if len(s.runs) == MaxRunRecords {
		copy(s.runs, s.runs[1:])
		s.runs = s.runs[:len(s.runs)-1]
	}
	s.runs = append(s.runs, r)

	s.gamesPlayed++
	s.totalScore += r.Score
	s.totalDuration += r.Duration()
	if r.Score > s.maxScore {
		s.maxScore = r.Score
	}
	if r.Duration() > s.maxDuration {
		s.maxDuration = r.Duration()
	}
	switch r.Cause {
	case types.WallCollision:
		s.wallDeaths++
	case types.SelfCollision:
		s.selfDeaths++
	}
}

// GetRuns returns a copy of the retained run records
func (s *Stats) GetRuns() []RunRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	runs := make([]RunRecord, len(s.runs))
	copy(runs, s.runs)
	return runs
}

func (s *Stats) GetGamesPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.gamesPlayed
}

func (s *Stats) GetAverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.gamesPlayed == 0 {
		return 0
	}
	return float64(s.totalScore) / float64(s.gamesPlayed)
}

// GetMedianScore is computed over the retained runs only
func (s *Stats) GetMedianScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.medianLocked()
}

func (s *Stats) medianLocked() float64 {
	if len(s.runs) == 0 {
		return 0
	}
	scores := make([]int, len(s.runs))
	for i, r := range s.runs {
		scores[i] = r.Score
	}
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

func (s *Stats) GetMaxScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.maxScore
}

func (s *Stats) GetAverageDuration() time.Duration {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.gamesPlayed == 0 {
		return 0
	}
	return s.totalDuration / time.Duration(s.gamesPlayed)
}

// Summary returns the aggregates with at most recent run scores attached
func (s *Stats) Summary(recent int) StatsSummary {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	summary := StatsSummary{
		SessionID:   s.SessionID,
		GamesPlayed: s.gamesPlayed,
		MedianScore: s.medianLocked(),
		MaxScore:    s.maxScore,
		MaxDuration: s.maxDuration,
		WallDeaths:  s.wallDeaths,
		SelfDeaths:  s.selfDeaths,
	}
	if s.gamesPlayed > 0 {
		summary.AverageScore = float64(s.totalScore) / float64(s.gamesPlayed)
		summary.AverageDuration = s.totalDuration / time.Duration(s.gamesPlayed)
	}

	start := len(s.runs) - recent
	if start < 0 {
		start = 0
	}
	summary.Recent = make([]int, 0, len(s.runs)-start)
	for _, r := range s.runs[start:] {
		summary.Recent = append(summary.Recent, r.Score)
	}
	return summary
}
