package match

import (
	"regexp"
	"strconv"
	"strings"
)

// Event is one parsed match result connecting two teams and their scores.
// It is transient: the league applies it and nothing stores it.
type Event struct {
	HomeTeam  string
	HomeGoals int
	AwayTeam  string
	AwayGoals int
}

// linePattern accepts results shaped like "Team A 2, Team B 1". Team names
// may contain spaces; the score is the last whitespace-separated integer on
// each side. The pattern is anchored so trailing garbage fails the line.
var linePattern = regexp.MustCompile(`^\s*(.+?)\s+(\d+)\s*,\s*(.+?)\s+(\d+)\s*$`)

// ParseLine turns one raw text line into an Event. The second return value is
// false when the line does not match the expected shape; malformed input is
// never an error condition, only a rejection.
func ParseLine(line string) (Event, bool) {
	groups := linePattern.FindStringSubmatch(line)
	if groups == nil {
		return Event{}, false
	}

	homeTeam := strings.TrimSpace(groups[1])
	awayTeam := strings.TrimSpace(groups[3])
	if homeTeam == "" || awayTeam == "" {
		return Event{}, false
	}

	homeGoals, err := strconv.Atoi(groups[2])
	if err != nil {
		return Event{}, false
	}
	awayGoals, err := strconv.Atoi(groups[4])
	if err != nil {
		return Event{}, false
	}

	return Event{
		HomeTeam:  homeTeam,
		HomeGoals: homeGoals,
		AwayTeam:  awayTeam,
		AwayGoals: awayGoals,
	}, true
}

// IsBlank reports whether the line is empty or whitespace-only. Blank lines
// are skipped by batch processing rather than counted as failures.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
