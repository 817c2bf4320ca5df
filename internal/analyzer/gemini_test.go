package analyzer

import (
	"errors"
	"testing"

	"github.com/tatianab/snapwave/internal/models"
)

func TestParseAnalysis(t *testing.T) {
	text := `{"total_people": 2, "people": [
		{"shirt_color": "red", "emotion": "smile"},
		{"shirt_color": "sky blue", "emotion": "winking"}
	]}`
	analysis, err := ParseAnalysis(text)
	if err != nil {
		t.Fatalf("ParseAnalysis failed: %v", err)
	}
	if analysis.TotalPeople != 2 {
		t.Errorf("TotalPeople = %d, want 2", analysis.TotalPeople)
	}
	if len(analysis.People) != 2 {
		t.Fatalf("People = %v, want 2 entries", analysis.People)
	}
	// Free-text labels go through normalization.
	if analysis.People[1].Color != models.ColorAquaBlue {
		t.Errorf("color = %q, want aqua_blue", analysis.People[1].Color)
	}
	if analysis.People[1].Expression != models.ExpressionWink {
		t.Errorf("expression = %q, want wink", analysis.People[1].Expression)
	}
}

func TestParseAnalysisStripsCodeFences(t *testing.T) {
	text := "```json\n{\"total_people\": 1, \"people\": [{\"shirt_color\": \"green\", \"emotion\": \"smile\"}]}\n```"
	analysis, err := ParseAnalysis(text)
	if err != nil {
		t.Fatalf("ParseAnalysis failed on fenced output: %v", err)
	}
	if len(analysis.People) != 1 || analysis.People[0].Color != models.ColorGreen {
		t.Errorf("parsed = %+v", analysis)
	}
}

func TestParseAnalysisSelfHealsTotal(t *testing.T) {
	text := `{"total_people": 0, "people": [
		{"shirt_color": "red", "emotion": "smile"},
		{"shirt_color": "orange", "emotion": "sleep"}
	]}`
	analysis, err := ParseAnalysis(text)
	if err != nil {
		t.Fatalf("ParseAnalysis failed: %v", err)
	}
	if analysis.TotalPeople != 2 {
		t.Errorf("TotalPeople = %d, want self-healed 2", analysis.TotalPeople)
	}
}

func TestParseAnalysisUnknownLabelsFallBack(t *testing.T) {
	text := `{"total_people": 1, "people": [{"shirt_color": "houndstooth", "emotion": "contemplative"}]}`
	analysis, err := ParseAnalysis(text)
	if err != nil {
		t.Fatalf("ParseAnalysis failed: %v", err)
	}
	if analysis.People[0].Color != models.ColorOther {
		t.Errorf("color = %q, want other", analysis.People[0].Color)
	}
	if analysis.People[0].Expression != models.ExpressionSmile {
		t.Errorf("expression = %q, want the smile fallback", analysis.People[0].Expression)
	}
}

func TestParseAnalysisMalformed(t *testing.T) {
	for _, text := range []string{"", "not json at all", "```\ngarbage\n```", `{"total_people": "many"}`} {
		_, err := ParseAnalysis(text)
		if err == nil {
			t.Errorf("ParseAnalysis(%q) should fail", text)
			continue
		}
		if !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("ParseAnalysis(%q) error = %v, want ErrMalformedResponse", text, err)
		}
	}
}

func TestParseAnalysisEmptyPeople(t *testing.T) {
	analysis, err := ParseAnalysis(`{"total_people": 0, "people": []}`)
	if err != nil {
		t.Fatalf("ParseAnalysis failed: %v", err)
	}
	if analysis.TotalPeople != 0 || len(analysis.People) != 0 {
		t.Errorf("parsed = %+v, want empty analysis", analysis)
	}
}
