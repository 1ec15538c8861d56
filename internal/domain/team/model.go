package team

import (
	"fmt"
	"strings"
)

// Record holds one team's accumulated league statistics. The display name is
// fixed at creation; all counters move only through ApplyResult.
type Record struct {
	Name          string
	Points        int
	GoalsFor      int
	GoalsAgainst  int
	MatchesPlayed int
}

// NewRecord creates a zeroed record for the trimmed display name.
func NewRecord(name string) (*Record, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, fmt.Errorf("team name is required")
	}

	return &Record{Name: trimmed}, nil
}

// ApplyResult records one played match from this team's perspective:
// 3 points for a win, 1 for a draw, 0 for a loss.
func (r *Record) ApplyResult(goalsFor, goalsAgainst int) {
	r.MatchesPlayed++
	r.GoalsFor += goalsFor
	r.GoalsAgainst += goalsAgainst

	switch {
	case goalsFor > goalsAgainst:
		r.Points += 3
	case goalsFor == goalsAgainst:
		r.Points++
	}
}

func (r Record) GoalDifference() int {
	return r.GoalsFor - r.GoalsAgainst
}

// Summary renders the record in the shape shared with the ranking export
// file. Labels and field order are a compatibility contract.
func (r Record) Summary() string {
	return fmt.Sprintf("%s — %d pts (GF:%d GA:%d GD:%d)",
		r.Name, r.Points, r.GoalsFor, r.GoalsAgainst, r.GoalDifference())
}
