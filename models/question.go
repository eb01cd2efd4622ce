package models

type Question struct {
	QuestionID    string `json:"question_id"`
	ExamID        int    `json:"exam_id"`
	CorrectOption string `json:"correct_option"`
}
