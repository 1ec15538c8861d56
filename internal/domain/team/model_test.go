package team

import "testing"

func TestNewRecord_TrimsName(t *testing.T) {
	t.Parallel()

	r, err := NewRecord("  Kaizer Chiefs  ")
	if err != nil {
		t.Fatalf("new record: %v", err)
	}
	if r.Name != "Kaizer Chiefs" {
		t.Fatalf("unexpected name: %q", r.Name)
	}
	if r.Points != 0 || r.GoalsFor != 0 || r.GoalsAgainst != 0 || r.MatchesPlayed != 0 {
		t.Fatalf("expected zeroed counters, got %+v", r)
	}
}

func TestNewRecord_RejectsBlankName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "   ", "\t"} {
		if _, err := NewRecord(name); err == nil {
			t.Fatalf("expected error for name %q", name)
		}
	}
}

func TestApplyResult_PointRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		goalsFor     int
		goalsAgainst int
		wantPoints   int
	}{
		{name: "win", goalsFor: 3, goalsAgainst: 1, wantPoints: 3},
		{name: "draw", goalsFor: 2, goalsAgainst: 2, wantPoints: 1},
		{name: "loss", goalsFor: 0, goalsAgainst: 4, wantPoints: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r, err := NewRecord("Orlando Pirates")
			if err != nil {
				t.Fatalf("new record: %v", err)
			}
			r.ApplyResult(tc.goalsFor, tc.goalsAgainst)

			if r.Points != tc.wantPoints {
				t.Fatalf("unexpected points: got=%d want=%d", r.Points, tc.wantPoints)
			}
			if r.MatchesPlayed != 1 {
				t.Fatalf("unexpected matches played: %d", r.MatchesPlayed)
			}
			if r.GoalsFor != tc.goalsFor || r.GoalsAgainst != tc.goalsAgainst {
				t.Fatalf("unexpected goal totals: %+v", r)
			}
		})
	}
}

func TestApplyResult_Accumulates(t *testing.T) {
	t.Parallel()

	r, err := NewRecord("AmaZulu")
	if err != nil {
		t.Fatalf("new record: %v", err)
	}
	r.ApplyResult(2, 0)
	r.ApplyResult(1, 1)
	r.ApplyResult(0, 3)

	if r.MatchesPlayed != 3 {
		t.Fatalf("unexpected matches played: %d", r.MatchesPlayed)
	}
	if r.Points != 4 {
		t.Fatalf("unexpected points: %d", r.Points)
	}
	if got := r.GoalDifference(); got != -1 {
		t.Fatalf("unexpected goal difference: %d", got)
	}
}

func TestSummary_Format(t *testing.T) {
	t.Parallel()

	r := Record{Name: "Stellenbosch", Points: 7, GoalsFor: 9, GoalsAgainst: 4, MatchesPlayed: 3}
	want := "Stellenbosch — 7 pts (GF:9 GA:4 GD:5)"
	if got := r.Summary(); got != want {
		t.Fatalf("unexpected summary: got=%q want=%q", got, want)
	}
}
