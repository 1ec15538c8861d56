package league

import (
	"sort"
	"strings"

	"github.com/riskibarqy/psl-scoreboard/internal/domain/team"
)

// RankRow pairs a 1-based rank with a read-only copy of a team record.
// Teams on equal points share a rank number.
type RankRow struct {
	Rank int
	Team team.Record
}

// Rankings orders records by points descending, breaking ties by display
// name ascending (case-insensitive), and assigns competition ranks: every
// team in a tie group gets the group's rank, and the next group's rank skips
// past the whole tie (points [10,10,7] rank as [1,1,3]).
//
// Goal difference is not a tie-breaker; only points and name decide the
// order.
func Rankings(records []team.Record) []RankRow {
	sorted := make([]team.Record, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Points != sorted[j].Points {
			return sorted[i].Points > sorted[j].Points
		}
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})

	rows := make([]RankRow, 0, len(sorted))
	position := 0
	for position < len(sorted) {
		points := sorted[position].Points

		groupEnd := position
		for groupEnd < len(sorted) && sorted[groupEnd].Points == points {
			groupEnd++
		}

		for i := position; i < groupEnd; i++ {
			rows = append(rows, RankRow{Rank: position + 1, Team: sorted[i]})
		}
		position = groupEnd
	}

	return rows
}
