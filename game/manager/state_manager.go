package manager

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Difficulty configures the tick interval progression.
type Difficulty struct {
	InitialInterval time.Duration
	Step            time.Duration
	MinInterval     time.Duration
	SpeedUpEvery    int
}

// RoundRecord describes one finished round.
type RoundRecord struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Score     int       `json:"score"`
	Cause     string    `json:"cause"`
}

// Duration is how long the round was played.
func (r RoundRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// SessionStats summarises the finished rounds of this process.
type SessionStats struct {
	HighScore       int           `json:"highScore"`
	GamesPlayed     int           `json:"gamesPlayed"`
	AverageScore    float64       `json:"averageScore"`
	AverageDuration float64       `json:"averageDuration"` // seconds
	Rounds          []RoundRecord `json:"rounds"`
}

// StateManager owns score, best score, difficulty and round history.
// Best score lives only as long as the process.
type StateManager struct {
	difficulty Difficulty
	score      int
	highScore  int
	interval   time.Duration
	current    RoundRecord
	history    []RoundRecord
	now        func() time.Time
}

func NewStateManager(difficulty Difficulty) *StateManager {
	sm := &StateManager{
		difficulty: difficulty,
		interval:   difficulty.InitialInterval,
		history:    make([]RoundRecord, 0),
		now:        time.Now,
	}
	sm.BeginRound()
	return sm
}

// BeginRound starts timing a new round under a fresh ID.
func (sm *StateManager) BeginRound() RoundRecord {
	sm.current = RoundRecord{
		ID:        uuid.New().String(),
		StartTime: sm.now(),
	}
	return sm.current
}

// AddPoint increments the score. Every SpeedUpEvery points the interval
// shrinks by Step, clamped at MinInterval. Returns true if it shrank.
func (sm *StateManager) AddPoint() bool {
	sm.score++
	if sm.difficulty.SpeedUpEvery <= 0 || sm.score%sm.difficulty.SpeedUpEvery != 0 {
		return false
	}

	next := sm.interval - sm.difficulty.Step
	if next < sm.difficulty.MinInterval {
		next = sm.difficulty.MinInterval
	}
	if next == sm.interval {
		return false
	}
	sm.interval = next
	return true
}

// EndRound records the round, updates the best score and resets score and
// difficulty.
func (sm *StateManager) EndRound(cause CollisionType) RoundRecord {
	if sm.score >= sm.highScore {
		sm.highScore = sm.score
	}

	record := sm.current
	record.EndTime = sm.now()
	record.Score = sm.score
	record.Cause = cause.String()
	sm.history = append(sm.history, record)

	sm.score = 0
	sm.interval = sm.difficulty.InitialInterval
	return record
}

func (sm *StateManager) Score() int {
	return sm.score
}

func (sm *StateManager) HighScore() int {
	return sm.highScore
}

func (sm *StateManager) Interval() time.Duration {
	return sm.interval
}

func (sm *StateManager) CurrentRound() RoundRecord {
	return sm.current
}

func (sm *StateManager) GetScoreHistory() []int {
	scores := make([]int, len(sm.history))
	for i, r := range sm.history {
		scores[i] = r.Score
	}
	return scores
}

// Stats summarises the finished rounds.
func (sm *StateManager) Stats() SessionStats {
	stats := SessionStats{
		HighScore:   sm.highScore,
		GamesPlayed: len(sm.history),
		Rounds:      append([]RoundRecord(nil), sm.history...),
	}
	if len(sm.history) == 0 {
		return stats
	}

	var totalScore int
	var totalDuration float64
	for _, r := range sm.history {
		totalScore += r.Score
		totalDuration += r.Duration().Seconds()
	}
	stats.AverageScore = float64(totalScore) / float64(len(sm.history))
	stats.AverageDuration = totalDuration / float64(len(sm.history))
	return stats
}

// SaveStats writes the session summary as JSON. The file is a report only;
// it is never loaded back.
func (sm *StateManager) SaveStats(filename string) error {
	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create stats directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(sm.Stats(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}
	return nil
}
