package scoring

import (
	"testing"

	"rank-predictor/models"
)

func attempt(userID int, marks float64, category, shift string) models.Attempt {
	return models.Attempt{UserID: userID, TotalMarks: marks, Category: category, Shift: shift}
}

func TestRanksCompetitionTies(t *testing.T) {
	attempts := []models.Attempt{
		attempt(1, 90, "GEN", "S1"),
		attempt(2, 90, "GEN", "S1"),
		attempt(3, 80, "GEN", "S1"),
		attempt(4, 70, "GEN", "S1"),
	}
	wantOverall := map[int]int{1: 1, 2: 1, 3: 3, 4: 4}
	for userID, want := range wantOverall {
		rank, err := Ranks(attempts, userID)
		if err != nil {
			t.Fatalf("Ranks(%d): %v", userID, err)
		}
		if rank.OverallRank != want {
			t.Errorf("user %d overall rank = %d, want %d", userID, rank.OverallRank, want)
		}
	}
}

func TestRanksByCohort(t *testing.T) {
	attempts := []models.Attempt{
		attempt(1, 50, "GEN", "S1"),
		attempt(2, 60, "GEN", "S2"),
		attempt(3, 70, "OBC", "S1"),
		attempt(4, 80, "OBC", "S2"),
	}
	rank, err := Ranks(attempts, 1)
	if err != nil {
		t.Fatalf("Ranks: %v", err)
	}
	if rank.OverallRank != 4 {
		t.Errorf("overall rank = %d, want 4", rank.OverallRank)
	}
	// only user 2 shares GEN with a higher score
	if rank.CategoryRank != 2 {
		t.Errorf("category rank = %d, want 2", rank.CategoryRank)
	}
	// only user 3 shares S1 with a higher score
	if rank.ShiftRank != 2 {
		t.Errorf("shift rank = %d, want 2", rank.ShiftRank)
	}
}

func TestRanksResubmittedUser(t *testing.T) {
	// user 7 resubmitted: the old 50-mark row must neither be ranked nor
	// count as a competitor against the new 90-mark row
	attempts := []models.Attempt{
		{ID: 1, UserID: 7, TotalMarks: 50, Category: "GEN", Shift: "S1"},
		{ID: 2, UserID: 8, TotalMarks: 70, Category: "GEN", Shift: "S1"},
		{ID: 3, UserID: 7, TotalMarks: 90, Category: "GEN", Shift: "S1"},
	}

	rank, err := Ranks(attempts, 7)
	if err != nil {
		t.Fatalf("Ranks: %v", err)
	}
	if rank.OverallRank != 1 {
		t.Errorf("user 7 overall rank = %d, want 1", rank.OverallRank)
	}

	rank, err = Ranks(attempts, 8)
	if err != nil {
		t.Fatalf("Ranks: %v", err)
	}
	if rank.OverallRank != 2 {
		t.Errorf("user 8 overall rank = %d, want 2", rank.OverallRank)
	}
}

func TestAverageIgnoresSupersededAttempts(t *testing.T) {
	attempts := []models.Attempt{
		{ID: 1, UserID: 7, TotalMarks: 50, Category: "GEN", Shift: "S1"},
		{ID: 2, UserID: 8, TotalMarks: 70, Category: "GEN", Shift: "S1"},
		{ID: 3, UserID: 7, TotalMarks: 90, Category: "GEN", Shift: "S1"},
	}
	if got := Average(attempts, "GEN", "S1"); got != 80 {
		t.Fatalf("Average = %v, want 80", got)
	}
	if got := CohortSize(attempts, "GEN", "S1"); got != 2 {
		t.Fatalf("CohortSize = %d, want 2", got)
	}
}

func TestRanksUnknownUser(t *testing.T) {
	attempts := []models.Attempt{attempt(1, 50, "GEN", "S1")}
	if _, err := Ranks(attempts, 99); err != ErrAttemptNotFound {
		t.Fatalf("err = %v, want ErrAttemptNotFound", err)
	}
}

func TestAverage(t *testing.T) {
	attempts := []models.Attempt{
		attempt(1, 10, "GEN", "S1"),
		attempt(2, 20, "GEN", "S1"),
		attempt(3, 30, "GEN", "S1"),
		attempt(4, 99, "OBC", "S1"),
		attempt(5, 99, "GEN", "S2"),
	}
	if got := Average(attempts, "GEN", "S1"); got != 20 {
		t.Fatalf("Average = %v, want 20", got)
	}
	if got := CohortSize(attempts, "GEN", "S1"); got != 3 {
		t.Fatalf("CohortSize = %d, want 3", got)
	}
}

func TestAverageEmptyCohort(t *testing.T) {
	if got := Average(nil, "GEN", "S1"); got != 0 {
		t.Fatalf("Average = %v, want 0", got)
	}
	if got := CohortSize(nil, "GEN", "S1"); got != 0 {
		t.Fatalf("CohortSize = %d, want 0", got)
	}
}
