package models

import "testing"

func TestCountBuckets(t *testing.T) {
	analysis := &PhotoAnalysis{
		People: []PersonTag{
			{ColorRed, ExpressionSmile},
			{ColorRed, ExpressionSmile},
			{ColorGreen, ExpressionWink},
		},
	}
	counts := analysis.CountBuckets()

	if got := counts[Bucket{ColorRed, ExpressionSmile}]; got != 2 {
		t.Errorf("red/smile count = %d, want 2", got)
	}
	if got := counts[Bucket{ColorGreen, ExpressionWink}]; got != 1 {
		t.Errorf("green/wink count = %d, want 1", got)
	}
	// Absent pairs read as zero, never fail.
	if got := counts[Bucket{ColorOrange, ExpressionSleep}]; got != 0 {
		t.Errorf("absent bucket = %d, want 0", got)
	}
}

func TestCountBucketsOrderInvariant(t *testing.T) {
	forward := &PhotoAnalysis{People: []PersonTag{
		{ColorRed, ExpressionSmile},
		{ColorGreen, ExpressionWink},
		{ColorRed, ExpressionSleep},
	}}
	reversed := &PhotoAnalysis{People: []PersonTag{
		{ColorRed, ExpressionSleep},
		{ColorGreen, ExpressionWink},
		{ColorRed, ExpressionSmile},
	}}

	a, b := forward.CountBuckets(), reversed.CountBuckets()
	if len(a) != len(b) {
		t.Fatalf("bucket counts differ in size: %d vs %d", len(a), len(b))
	}
	for k, v := range a {
		if b[k] != v {
			t.Errorf("bucket %v: %d vs %d", k, v, b[k])
		}
	}
}

func TestPhotoAnalysisNormalize(t *testing.T) {
	// The tag list is authoritative: a zero total self-heals to its length.
	analysis := &PhotoAnalysis{
		TotalPeople: 0,
		People:      []PersonTag{{ColorRed, ExpressionSmile}, {ColorGreen, ExpressionWink}},
	}
	analysis.Normalize()
	if analysis.TotalPeople != 2 {
		t.Errorf("TotalPeople = %d, want 2", analysis.TotalPeople)
	}

	// A larger advisory total is kept.
	analysis = &PhotoAnalysis{TotalPeople: 5, People: []PersonTag{{ColorRed, ExpressionSmile}}}
	analysis.Normalize()
	if analysis.TotalPeople != 5 {
		t.Errorf("TotalPeople = %d, want 5", analysis.TotalPeople)
	}

	// Negative totals clamp.
	analysis = &PhotoAnalysis{TotalPeople: -3}
	analysis.Normalize()
	if analysis.TotalPeople != 0 {
		t.Errorf("TotalPeople = %d, want 0", analysis.TotalPeople)
	}
}

func TestWaveTotalEnemyCount(t *testing.T) {
	wave := &Wave{Enemies: []EnemyRequirement{
		{ColorRed, ExpressionSmile, 2},
		{ColorGreen, ExpressionWink, 1},
		{ColorOrange, ExpressionSleep, -4}, // negative counts contribute nothing
	}}
	if got := wave.TotalEnemyCount(); got != 3 {
		t.Errorf("TotalEnemyCount = %d, want 3", got)
	}

	empty := &Wave{}
	if got := empty.TotalEnemyCount(); got != 0 {
		t.Errorf("empty TotalEnemyCount = %d, want 0", got)
	}
}

func TestHintText(t *testing.T) {
	if got := HintText(nil); got != "Target: (none)" {
		t.Errorf("empty hint = %q", got)
	}

	requires := []EnemyRequirement{
		{ColorRed, ExpressionSmile, 2},
		{ColorAquaBlue, ExpressionWink, 1},
	}
	want := "Target: smile×red×2, wink×aqua_blue×1"
	if got := HintText(requires); got != want {
		t.Errorf("hint = %q, want %q", got, want)
	}
}
