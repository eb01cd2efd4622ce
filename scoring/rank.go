package scoring

import (
	"github.com/pkg/errors"

	"rank-predictor/models"
)

// ErrAttemptNotFound means the user has no attempt in the supplied population.
var ErrAttemptNotFound = errors.New("no attempt recorded for user")

// latestByUser collapses the population to one attempt per user, keeping the
// newest row. Storage keeps attempts unique per (user, exam), so fetched
// populations normally pass through unchanged; rows that predate a
// resubmission still collapse here instead of counting against their own user.
func latestByUser(attempts []models.Attempt) []models.Attempt {
	byUser := make(map[int]models.Attempt, len(attempts))
	order := make([]int, 0, len(attempts))
	for _, a := range attempts {
		current, seen := byUser[a.UserID]
		if !seen {
			order = append(order, a.UserID)
		}
		if !seen || a.ID > current.ID {
			byUser[a.UserID] = a
		}
	}
	out := make([]models.Attempt, 0, len(order))
	for _, userID := range order {
		out = append(out, byUser[userID])
	}
	return out
}

// Ranks computes the user's 1-based position among all attempts, among
// attempts sharing the user's category and among attempts sharing the user's
// shift. Competition ranking: equal marks share a rank, the next distinct
// score jumps by the size of the tied block.
func Ranks(attempts []models.Attempt, userID int) (models.RankResult, error) {
	population := latestByUser(attempts)

	var target *models.Attempt
	for i := range population {
		if population[i].UserID == userID {
			target = &population[i]
			break
		}
	}
	if target == nil {
		return models.RankResult{}, ErrAttemptNotFound
	}

	rank := models.RankResult{OverallRank: 1, CategoryRank: 1, ShiftRank: 1}
	for _, a := range population {
		if a.TotalMarks <= target.TotalMarks {
			continue
		}
		rank.OverallRank++
		if a.Category == target.Category {
			rank.CategoryRank++
		}
		if a.Shift == target.Shift {
			rank.ShiftRank++
		}
	}
	return rank, nil
}

// Average returns the mean total marks of the exact (category, shift) cohort,
// 0 when the cohort is empty.
func Average(attempts []models.Attempt, category, shift string) float64 {
	var sum float64
	n := 0
	for _, a := range latestByUser(attempts) {
		if a.Category == category && a.Shift == shift {
			sum += a.TotalMarks
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// CohortSize counts the (category, shift) cohort, letting callers tell "no
// peers yet" apart from a genuine zero average.
func CohortSize(attempts []models.Attempt, category, shift string) int {
	n := 0
	for _, a := range latestByUser(attempts) {
		if a.Category == category && a.Shift == shift {
			n++
		}
	}
	return n
}
