package controllers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"rank-predictor/models"
	"rank-predictor/utils"
)

type ExamController struct{}

// CreateExam registers an exam session: the shift time parsed out of answer
// keys plus the marking scheme applied to that session.
func (ec ExamController) CreateExam(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var exam models.Exam
		if err := json.NewDecoder(r.Body).Decode(&exam); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid request body"})
			return
		}
		if exam.ShiftTime == "" {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "shift_time is required"})
			return
		}
		if exam.PositivePerCorrect <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "positive_per_correct must be greater than zero"})
			return
		}
		if exam.NegativePerIncorrect < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "negative_per_incorrect must not be negative"})
			return
		}

		res, err := db.Exec(
			"INSERT INTO exams (shift_time, exam_date, positive_per_correct, negative_per_incorrect) VALUES (?, ?, ?, ?)",
			exam.ShiftTime, exam.ExamDate, exam.PositivePerCorrect, exam.NegativePerIncorrect,
		)
		if isDuplicateKey(err) {
			utils.RespondWithError(w, http.StatusConflict, models.Error{Message: "Exam already exists for shift " + exam.ShiftTime})
			return
		}
		if err != nil {
			logrus.Errorf("exam insert failed: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to create exam"})
			return
		}
		id, err := res.LastInsertId()
		if err != nil {
			logrus.Errorf("exam id lookup failed: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to create exam"})
			return
		}
		exam.ID = int(id)

		utils.ResponseJSON(w, exam)
	}
}

func (ec ExamController) GetExams(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := db.Query("SELECT id, shift_time, exam_date, positive_per_correct, negative_per_incorrect FROM exams")
		if err != nil {
			logrus.Errorf("exam query failed: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to get exams"})
			return
		}
		defer rows.Close()

		var exams []models.Exam
		for rows.Next() {
			var exam models.Exam
			if err := rows.Scan(&exam.ID, &exam.ShiftTime, &exam.ExamDate, &exam.PositivePerCorrect, &exam.NegativePerIncorrect); err != nil {
				logrus.Errorf("exam scan failed: %v", err)
				utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to parse exams"})
				return
			}
			exams = append(exams, exam)
		}

		utils.ResponseJSON(w, exams)
	}
}
