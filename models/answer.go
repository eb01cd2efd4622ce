package models

type Answer struct {
	ID           int    `json:"id"`
	UserID       int    `json:"user_id"`
	QuestionID   string `json:"question_id"`
	ChosenOption string `json:"chosen_option"`
	IsCorrect    bool   `json:"is_correct"`
	AttemptID    int    `json:"attempt_id"`
}
