package match

import (
	"math"
	"testing"
)

func TestExportUnsetStore(t *testing.T) {
	var s Store
	rows, ok := Export(&s, nil, nil)
	if ok || rows != nil {
		t.Fatalf("Export on an unset store = (%v, %v), want (nil, false)", rows, ok)
	}
}

func TestExportRowDerivation(t *testing.T) {
	var s Store
	s.Set([]Entry{
		{TargetIndex: 0, Candidates: []Candidate{{SourceIndex: 0, SharedLen: 4}, {SourceIndex: 1, SharedLen: 6}}},
		{TargetIndex: 1, Candidates: []Candidate{{SourceIndex: 0, SharedLen: 2}}},
	})
	sourceLens := []float64{8, 6}
	targetLens := []float64{10, 5}

	rows, ok := Export(&s, sourceLens, targetLens)
	if !ok {
		t.Fatalf("Export returned ok=false on a set store")
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}

	r := rows[0]
	if r.SourceID != 0 || r.TargetID != 0 {
		t.Fatalf("rows[0] ids = (%d, %d), want (0, 0)", r.SourceID, r.TargetID)
	}
	if math.Abs(r.SharedLen-4) > 1e-9 {
		t.Errorf("rows[0].SharedLen = %v, want 4", r.SharedLen)
	}
	if math.Abs(r.SourceWeighted-0.5) > 1e-9 {
		t.Errorf("rows[0].SourceWeighted = %v, want 0.5 (4/8)", r.SourceWeighted)
	}
	if math.Abs(r.TargetWeighted-0.4) > 1e-9 {
		t.Errorf("rows[0].TargetWeighted = %v, want 0.4 (4/10)", r.TargetWeighted)
	}

	r2 := rows[2]
	if r2.SourceID != 0 || r2.TargetID != 1 {
		t.Fatalf("rows[2] ids = (%d, %d), want (0, 1)", r2.SourceID, r2.TargetID)
	}
	if math.Abs(r2.SourceWeighted-(2.0/8.0)) > 1e-9 {
		t.Errorf("rows[2].SourceWeighted = %v, want 0.25", r2.SourceWeighted)
	}
	if math.Abs(r2.TargetWeighted-(2.0/5.0)) > 1e-9 {
		t.Errorf("rows[2].TargetWeighted = %v, want 0.4", r2.TargetWeighted)
	}
}
