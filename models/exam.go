package models

type Exam struct {
	ID                   int     `json:"id"`
	ShiftTime            string  `json:"shift_time"`
	ExamDate             string  `json:"exam_date,omitempty"`
	PositivePerCorrect   float64 `json:"positive_per_correct"`
	NegativePerIncorrect float64 `json:"negative_per_incorrect"`
}
