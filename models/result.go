package models

// Result is the payload returned after an answer-key submission has been
// scored and ranked.
type Result struct {
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	TestDate     string     `json:"test_date"`
	TestTime     string     `json:"test_time"`
	RollNumber   string     `json:"roll_number"`
	Subject      string     `json:"subject"`
	TestCenter   string     `json:"test_center"`
	TotalMarks   float64    `json:"total_marks"`
	Rank         RankResult `json:"rank"`
	AverageMarks float64    `json:"average_marks"`
	CohortSize   int        `json:"cohort_size"`
}
