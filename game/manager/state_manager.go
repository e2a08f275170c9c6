package manager

import (
	"time"
)

// GameRecord is one finished game in the current session.
type GameRecord struct {
	ID        string
	Score     uint16
	Speed     uint16
	StartTime time.Time
	EndTime   time.Time
}

// StateManager keeps the session high score and history in memory.
type StateManager struct {
	highScore    uint16
	scoreHistory []GameRecord
}

func NewStateManager() *StateManager {
	return &StateManager{
		scoreHistory: make([]GameRecord, 0),
	}
}

// AddToHistory records a finished game and reports whether it set a new high score.
func (sm *StateManager) AddToHistory(record GameRecord) bool {
	sm.scoreHistory = append(sm.scoreHistory, record)
	if record.Score > sm.highScore {
		sm.highScore = record.Score
		return true
	}
	return false
}

func (sm *StateManager) GetHighScore() uint16 {
	return sm.highScore
}

func (sm *StateManager) GetScoreHistory() []GameRecord {
	out := make([]GameRecord, len(sm.scoreHistory))
	copy(out, sm.scoreHistory)
	return out
}

// AverageScore is the mean over all recorded games, 0 when none were played.
func (sm *StateManager) AverageScore() float64 {
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	sum := 0
	for _, r := range sm.scoreHistory {
		sum += int(r.Score)
	}
	return float64(sum) / float64(len(sm.scoreHistory))
}
