package models

// CandidateInfo maps a label from the answer-key info table ("Candidate Name",
// "Test Time", ...) to its value. Keys are whatever the portal rendered.
type CandidateInfo map[string]string

type QuestionRecord struct {
	QuestionText       string `json:"question_text"`
	CorrectAnswerLabel string `json:"correct_answer_label"`
	ChosenAnswerLabel  string `json:"chosen_answer_label"`
}

// ExamDocument is the structured form of one answer-key page. Questions keep
// document order.
type ExamDocument struct {
	CandidateInfo CandidateInfo    `json:"candidate_info"`
	Questions     []QuestionRecord `json:"questions"`
}
