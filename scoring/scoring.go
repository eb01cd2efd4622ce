package scoring

import (
	"strings"
	"unicode/utf8"

	"rank-predictor/models"
)

// Unanswered is the label the portal renders for a question the candidate
// skipped.
const Unanswered = "--"

// OptionCode reduces a free-text option label ("A. 42 tigers") to its
// single-letter option code. Empty labels reduce to "".
func OptionCode(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(label)
	return string(r)
}

// Answered reports whether the candidate picked an option at all.
func Answered(q models.QuestionRecord) bool {
	return strings.TrimSpace(q.ChosenAnswerLabel) != Unanswered
}

// IsCorrect compares chosen and correct labels by option code. A label with no
// option code never matches.
func IsCorrect(q models.QuestionRecord) bool {
	chosen := OptionCode(q.ChosenAnswerLabel)
	return chosen != "" && chosen == OptionCode(q.CorrectAnswerLabel)
}

// Score totals an attempt under the exam's marking scheme: +positive per
// correct answer, -negative per incorrect one, skipped questions contribute
// nothing. Penalties can drive the total below zero.
func Score(questions []models.QuestionRecord, positivePerCorrect, negativePerIncorrect float64) float64 {
	var total float64
	for _, q := range questions {
		switch {
		case !Answered(q):
			// contributes 0
		case IsCorrect(q):
			total += positivePerCorrect
		default:
			total -= negativePerIncorrect
		}
	}
	return total
}
