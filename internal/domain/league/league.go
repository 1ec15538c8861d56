package league

import (
	"strings"

	"github.com/riskibarqy/psl-scoreboard/internal/domain/match"
	"github.com/riskibarqy/psl-scoreboard/internal/domain/team"
)

// League owns every team record for one competition. Lookup keys are the
// trimmed, lower-cased name; the record keeps the first-seen display casing.
//
// The league does no locking of its own: callers must serialize mutating
// calls with each other and with the read operations.
type League struct {
	teams map[string]*team.Record
}

func New() *League {
	return &League{teams: make(map[string]*team.Record)}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// EnsureTeam creates a record for the name if none exists. Blank names are
// ignored rather than stored as empty records.
func (l *League) EnsureTeam(name string) {
	key := normalize(name)
	if key == "" {
		return
	}
	if _, ok := l.teams[key]; ok {
		return
	}

	record, err := team.NewRecord(name)
	if err != nil {
		return
	}
	l.teams[key] = record
}

// SeedTeams ensures a record exists for every given name.
func (l *League) SeedTeams(names []string) {
	for _, name := range names {
		l.EnsureTeam(name)
	}
}

// Clear removes every team record, returning the league to its empty state.
func (l *League) Clear() {
	l.teams = make(map[string]*team.Record)
}

// ProcessLine parses one raw result line and, when it is well formed,
// applies the match to both teams (creating them on first appearance).
// Malformed lines change no state and report false.
func (l *League) ProcessLine(line string) bool {
	event, ok := match.ParseLine(line)
	if !ok {
		return false
	}

	l.EnsureTeam(event.HomeTeam)
	l.EnsureTeam(event.AwayTeam)

	home := l.teams[normalize(event.HomeTeam)]
	away := l.teams[normalize(event.AwayTeam)]
	if home == nil || away == nil {
		return false
	}

	home.ApplyResult(event.HomeGoals, event.AwayGoals)
	away.ApplyResult(event.AwayGoals, event.HomeGoals)

	return true
}

// Size returns the number of team records in the league.
func (l *League) Size() int {
	return len(l.teams)
}

// Teams returns a snapshot copy of every record. The copies do not track
// later mutations.
func (l *League) Teams() []team.Record {
	out := make([]team.Record, 0, len(l.teams))
	for _, record := range l.teams {
		out = append(out, *record)
	}

	return out
}

// Ranking computes a fresh ranked table from the current records.
func (l *League) Ranking() []RankRow {
	return Rankings(l.Teams())
}
