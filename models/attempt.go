package models

type Attempt struct {
	ID          int     `json:"id"`
	UserID      int     `json:"user_id"`
	ExamID      int     `json:"exam_id"`
	RollNumber  string  `json:"roll_number,omitempty"`
	TotalMarks  float64 `json:"total_marks"`
	Category    string  `json:"category,omitempty"`
	Shift       string  `json:"shift,omitempty"`
	DocumentURL string  `json:"document_url,omitempty"`
}
