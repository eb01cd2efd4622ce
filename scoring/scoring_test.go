package scoring

import (
	"testing"

	"rank-predictor/models"
)

func record(chosen, correct string) models.QuestionRecord {
	return models.QuestionRecord{
		QuestionText:       "Question ID :1 test",
		CorrectAnswerLabel: correct,
		ChosenAnswerLabel:  chosen,
	}
}

func TestScore(t *testing.T) {
	questions := []models.QuestionRecord{
		record("A", "A"),
		record("B", "C"),
		record("--", "D"),
	}
	if got := Score(questions, 4, 1); got != 3 {
		t.Fatalf("Score = %v, want 3", got)
	}
}

func TestScoreEmpty(t *testing.T) {
	if got := Score(nil, 4, 1); got != 0 {
		t.Fatalf("Score = %v, want 0", got)
	}
}

func TestScoreAllWrongGoesNegative(t *testing.T) {
	questions := []models.QuestionRecord{
		record("B", "A"),
		record("C", "A"),
	}
	if got := Score(questions, 4, 1); got != -2 {
		t.Fatalf("Score = %v, want -2", got)
	}
}

func TestScoreUnansweredNeverPenalized(t *testing.T) {
	for _, correct := range []string{"A", "N/A", "", "--"} {
		questions := []models.QuestionRecord{record("--", correct)}
		if got := Score(questions, 4, 1); got != 0 {
			t.Errorf("Score with correct=%q = %v, want 0", correct, got)
		}
	}
}

func TestScoreOnlyFirstCharacterCounts(t *testing.T) {
	questions := []models.QuestionRecord{record("A. Jupiter", "A. The planet Jupiter")}
	if got := Score(questions, 4, 1); got != 4 {
		t.Fatalf("Score = %v, want 4", got)
	}
}

func TestScoreEmptyLabelsNeverMatch(t *testing.T) {
	// an answered question with an empty label is incorrect, not a
	// match of two empty option codes
	questions := []models.QuestionRecord{record("   ", "")}
	if got := Score(questions, 4, 1); got != -1 {
		t.Fatalf("Score = %v, want -1", got)
	}
}

func TestOptionCode(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"A. Jupiter", "A"},
		{"  B option", "B"},
		{"क. पहला विकल्प", "क"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range tests {
		if got := OptionCode(tc.label); got != tc.want {
			t.Errorf("OptionCode(%q) = %q, want %q", tc.label, got, tc.want)
		}
	}
}

func TestIsCorrect(t *testing.T) {
	if !IsCorrect(record("A. one", "A. two")) {
		t.Error("matching option codes should be correct")
	}
	if IsCorrect(record("B", "A")) {
		t.Error("different option codes should not be correct")
	}
	if IsCorrect(record("", "")) {
		t.Error("empty labels should never match")
	}
	// क and ख share a UTF-8 lead byte; rune comparison must tell them apart
	if IsCorrect(record("क. पहला", "ख. दूसरा")) {
		t.Error("distinct multibyte option codes should not match")
	}
	if !IsCorrect(record("क. पहला", "क. सही")) {
		t.Error("matching multibyte option codes should be correct")
	}
}
