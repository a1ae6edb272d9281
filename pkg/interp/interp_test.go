package interp

import (
	"math"
	"testing"

	"github.com/azybler/anime/pkg/match"
)

// E5 — extensive interpolation over E1's geometry.
func TestE5ExtensiveInterpolation(t *testing.T) {
	entries := []match.Entry{
		{TargetIndex: 0, Candidates: []match.Candidate{{SourceIndex: 0, SharedLen: 10.0}}},
	}
	sourceLens := []float64{10.0, 10.0}
	targetLens := []float64{10.0}
	y := []float64{3.0, 7.0}

	got, err := Interpolate(entries, sourceLens, targetLens, ModeExtensive, y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got[0]-3.0) > 1e-9 {
		t.Errorf("got[0] = %v, want ~3.0", got[0])
	}
}

// E6 — intensive interpolation over E4's geometry with a constant source
// attribute; expect the target value equals the constant exactly.
func TestE6IntensiveInterpolationConstants(t *testing.T) {
	entries := []match.Entry{
		{TargetIndex: 0, Candidates: []match.Candidate{
			{SourceIndex: 0, SharedLen: 5.0},
			{SourceIndex: 1, SharedLen: 5.0},
		}},
	}
	sourceLens := []float64{5.0, 5.0}
	targetLens := []float64{10.0}
	y := []float64{42.0, 42.0}

	got, err := Interpolate(entries, sourceLens, targetLens, ModeIntensive, y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got[0]-42.0) > 1e-12 {
		t.Errorf("got[0] = %v, want 42.0", got[0])
	}
}

func TestIncorrectLength(t *testing.T) {
	_, err := Interpolate(nil, []float64{1, 2}, []float64{1}, ModeExtensive, []float64{1})
	if err != ErrIncorrectLength {
		t.Fatalf("err = %v, want ErrIncorrectLength", err)
	}
}

func TestContainsNullRejectsInf(t *testing.T) {
	_, err := Interpolate(nil, []float64{1, 2}, []float64{1}, ModeExtensive, []float64{1, math.Inf(1)})
	if err != ErrContainsNull {
		t.Fatalf("err = %v, want ErrContainsNull", err)
	}
}

func TestUnmatchedTargetIsZero(t *testing.T) {
	sourceLens := []float64{10.0}
	targetLens := []float64{5.0, 5.0}
	y := []float64{9.0}

	got, err := Interpolate(nil, sourceLens, targetLens, ModeExtensive, y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range got {
		if v != 0 {
			t.Errorf("got[%d] = %v, want 0 for an unmatched target", i, v)
		}
	}
}

// NaN and the finite-max sentinel are skipped, not errors.
func TestNaNAndMaxSentinelAreSkippedNotErrors(t *testing.T) {
	entries := []match.Entry{
		{TargetIndex: 0, Candidates: []match.Candidate{
			{SourceIndex: 0, SharedLen: 4.0},
			{SourceIndex: 1, SharedLen: 6.0},
		}},
	}
	sourceLens := []float64{10.0, 10.0}
	targetLens := []float64{10.0}

	withNaN := []float64{5.0, math.NaN()}
	gotNaN, err := Interpolate(entries, sourceLens, targetLens, ModeExtensive, withNaN)
	if err != nil {
		t.Fatalf("NaN source value should not error, got %v", err)
	}

	withMax := []float64{5.0, math.MaxFloat64}
	gotMax, err := Interpolate(entries, sourceLens, targetLens, ModeExtensive, withMax)
	if err != nil {
		t.Fatalf("max-float sentinel should not error, got %v", err)
	}

	want := 5.0 * (4.0 / 10.0)
	if math.Abs(gotNaN[0]-want) > 1e-9 {
		t.Errorf("gotNaN[0] = %v, want %v (source 1 skipped)", gotNaN[0], want)
	}
	if math.Abs(gotMax[0]-want) > 1e-9 {
		t.Errorf("gotMax[0] = %v, want %v (source 1 skipped)", gotMax[0], want)
	}
}

// Property: extensive conservation when sources fully and exclusively cover
// the target.
func TestExtensiveConservation(t *testing.T) {
	entries := []match.Entry{
		{TargetIndex: 0, Candidates: []match.Candidate{
			{SourceIndex: 0, SharedLen: 5.0},
			{SourceIndex: 1, SharedLen: 5.0},
		}},
	}
	sourceLens := []float64{5.0, 5.0}
	targetLens := []float64{10.0}
	y := []float64{2.0, 3.0}

	got, err := Interpolate(entries, sourceLens, targetLens, ModeExtensive, y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := y[0] + y[1]
	if math.Abs(got[0]-want) > 1e-9 {
		t.Errorf("got[0] = %v, want %v (sum of fully contained sources)", got[0], want)
	}
}

// Property: intensive idempotence already covered by TestE6; this adds a
// partial-weight case to confirm normalization still yields the constant.
func TestIntensiveIdempotencePartialWeight(t *testing.T) {
	entries := []match.Entry{
		{TargetIndex: 0, Candidates: []match.Candidate{
			{SourceIndex: 0, SharedLen: 3.0},
		}},
	}
	sourceLens := []float64{10.0}
	targetLens := []float64{10.0}
	y := []float64{7.5}

	got, err := Interpolate(entries, sourceLens, targetLens, ModeIntensive, y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got[0]-7.5) > 1e-9 {
		t.Errorf("got[0] = %v, want 7.5", got[0])
	}
}
