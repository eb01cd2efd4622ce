package controllers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"rank-predictor/extractor"
	"rank-predictor/models"
	"rank-predictor/scoring"
	"rank-predictor/utils"
)

type ResultController struct{}

type SubmitResultRequest struct {
	HTML     string `json:"html"`
	Category string `json:"category"`
}

// SubmitResult runs the full pipeline for one answer-key page: extract,
// look up the exam by shift, persist user/questions/attempt/answers, then
// rank the attempt against its cohorts.
func (rc ResultController) SubmitResult(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SubmitResultRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid request body"})
			return
		}
		if req.HTML == "" {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "html is required"})
			return
		}
		if req.Category == "" {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "category is required"})
			return
		}

		doc, err := extractor.Extract(req.HTML)
		if err != nil {
			if err == extractor.ErrNoCandidateInfo {
				utils.RespondWithError(w, http.StatusUnprocessableEntity, models.Error{Message: "Document not recognized as an answer key"})
				return
			}
			logrus.Errorf("extraction failed: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to parse document"})
			return
		}

		shift := doc.CandidateInfo["Test Time"]
		if shift == "" {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, models.Error{Message: "Document has no Test Time field"})
			return
		}

		var exam models.Exam
		err = db.QueryRow("SELECT id, exam_date, positive_per_correct, negative_per_incorrect FROM exams WHERE shift_time = ?", shift).
			Scan(&exam.ID, &exam.ExamDate, &exam.PositivePerCorrect, &exam.NegativePerIncorrect)
		if err == sql.ErrNoRows {
			utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "No exam configured for shift " + shift})
			return
		}
		if err != nil {
			logrus.Errorf("exam lookup failed: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to look up exam"})
			return
		}

		name := doc.CandidateInfo["Candidate Name"]
		userID, err := findOrCreateUser(db, name, req.Category)
		if err != nil {
			logrus.Errorf("user lookup failed: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to create user"})
			return
		}

		if err := upsertQuestions(db, exam.ID, doc.Questions); err != nil {
			logrus.Errorf("question upsert failed: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to store questions"})
			return
		}

		totalMarks := scoring.Score(doc.Questions, exam.PositivePerCorrect, exam.NegativePerIncorrect)

		// Best effort: a failed archive should never fail the submission.
		documentURL := ""
		if os.Getenv("AWS_RESULTS_BUCKET") != "" {
			fileName := fmt.Sprintf("results/%s.html", uuid.New().String())
			documentURL, err = utils.UploadResultToS3([]byte(req.HTML), fileName)
			if err != nil {
				logrus.Warnf("failed to archive document: %v", err)
				documentURL = ""
			}
		}

		// One attempt per (user, exam): a resubmission replaces the
		// previous row, latest write wins like the question upserts.
		res, err := db.Exec(
			"INSERT INTO attempts (user_id, exam_id, roll_number, total_marks, category, shift, document_url) VALUES (?, ?, ?, ?, ?, ?, ?) "+
				"ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id), roll_number = VALUES(roll_number), total_marks = VALUES(total_marks), "+
				"category = VALUES(category), shift = VALUES(shift), document_url = VALUES(document_url)",
			userID, exam.ID, doc.CandidateInfo["Roll Number"], totalMarks, req.Category, shift, documentURL,
		)
		if err != nil {
			logrus.Errorf("attempt insert failed: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to store attempt"})
			return
		}
		attemptID, err := res.LastInsertId()
		if err != nil {
			logrus.Errorf("attempt id lookup failed: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to store attempt"})
			return
		}

		if _, err := db.Exec("DELETE FROM answers WHERE attempt_id = ?", attemptID); err != nil {
			logrus.Errorf("answer cleanup failed: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to store answers"})
			return
		}
		if err := insertAnswers(db, userID, int(attemptID), doc.Questions); err != nil {
			logrus.Errorf("answer insert failed: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to store answers"})
			return
		}

		attempts, err := fetchAttempts(db, exam.ID)
		if err != nil {
			logrus.Errorf("attempt fetch failed: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to fetch attempts"})
			return
		}
		rank, err := scoring.Ranks(attempts, userID)
		if err != nil {
			logrus.Errorf("rank computation failed: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to compute rank"})
			return
		}

		utils.ResponseJSON(w, models.Result{
			Name:         name,
			Category:     req.Category,
			TestDate:     doc.CandidateInfo["Test Date"],
			TestTime:     shift,
			RollNumber:   doc.CandidateInfo["Roll Number"],
			Subject:      doc.CandidateInfo["Subject"],
			TestCenter:   doc.CandidateInfo["Test Center Name"],
			TotalMarks:   totalMarks,
			Rank:         rank,
			AverageMarks: scoring.Average(attempts, req.Category, shift),
			CohortSize:   scoring.CohortSize(attempts, req.Category, shift),
		})
	}
}

func (rc ResultController) GetRank(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		examID, err := strconv.Atoi(r.URL.Query().Get("exam_id"))
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "exam_id is required"})
			return
		}
		userID, err := strconv.Atoi(r.URL.Query().Get("user_id"))
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "user_id is required"})
			return
		}

		attempts, err := fetchAttempts(db, examID)
		if err != nil {
			logrus.Errorf("attempt fetch failed: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to fetch attempts"})
			return
		}

		rank, err := scoring.Ranks(attempts, userID)
		if err == scoring.ErrAttemptNotFound {
			utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "No attempt recorded for this user"})
			return
		}
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to compute rank"})
			return
		}

		utils.ResponseJSON(w, rank)
	}
}

type AverageResponse struct {
	AverageMarks float64 `json:"average_marks"`
	CohortSize   int     `json:"cohort_size"`
}

func (rc ResultController) GetAverage(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		examID, err := strconv.Atoi(r.URL.Query().Get("exam_id"))
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "exam_id is required"})
			return
		}
		category := r.URL.Query().Get("category")
		shift := r.URL.Query().Get("shift")
		if category == "" || shift == "" {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "category and shift are required"})
			return
		}

		attempts, err := fetchAttempts(db, examID)
		if err != nil {
			logrus.Errorf("attempt fetch failed: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to fetch attempts"})
			return
		}

		utils.ResponseJSON(w, AverageResponse{
			AverageMarks: scoring.Average(attempts, category, shift),
			CohortSize:   scoring.CohortSize(attempts, category, shift),
		})
	}
}

func findOrCreateUser(db *sql.DB, name, category string) (int, error) {
	var id int
	err := db.QueryRow("SELECT id FROM users WHERE name = ? AND category = ?", name, category).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, err
	}
	res, err := db.Exec("INSERT INTO users (name, category, role) VALUES (?, ?, 'candidate')", name, category)
	if isDuplicateKey(err) {
		// lost the race to a concurrent submission, the row exists now
		err = db.QueryRow("SELECT id FROM users WHERE name = ? AND category = ?", name, category).Scan(&id)
		return id, err
	}
	if err != nil {
		return 0, err
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(lastID), nil
}

// upsertQuestions stores one row per extracted question identifier. Upserts
// are idempotent per identifier and independent of each other, so they are
// issued concurrently; latest write wins on the correct option.
func upsertQuestions(db *sql.DB, examID int, questions []models.QuestionRecord) error {
	var wg sync.WaitGroup
	errCh := make(chan error, len(questions))
	for _, q := range questions {
		questionID := extractor.QuestionID(q.QuestionText)
		if questionID == "" {
			continue
		}
		wg.Add(1)
		go func(questionID, correctOption string) {
			defer wg.Done()
			_, err := db.Exec(
				"INSERT INTO questions (question_id, exam_id, correct_option) VALUES (?, ?, ?) ON DUPLICATE KEY UPDATE correct_option = VALUES(correct_option)",
				questionID, examID, correctOption,
			)
			if err != nil {
				errCh <- err
			}
		}(questionID, scoring.OptionCode(q.CorrectAnswerLabel))
	}
	wg.Wait()
	close(errCh)
	return <-errCh
}

func insertAnswers(db *sql.DB, userID, attemptID int, questions []models.QuestionRecord) error {
	var placeholders []string
	var args []interface{}
	for _, q := range questions {
		questionID := extractor.QuestionID(q.QuestionText)
		if questionID == "" {
			continue
		}
		chosenOption := scoring.Unanswered
		if scoring.Answered(q) {
			chosenOption = scoring.OptionCode(q.ChosenAnswerLabel)
		}
		placeholders = append(placeholders, "(?, ?, ?, ?, ?)")
		args = append(args, userID, questionID, chosenOption, scoring.IsCorrect(q), attemptID)
	}
	if len(placeholders) == 0 {
		return nil
	}
	query := "INSERT INTO answers (user_id, question_id, chosen_option, is_correct, attempt_id) VALUES " + strings.Join(placeholders, ", ")
	_, err := db.Exec(query, args...)
	return err
}

func fetchAttempts(db *sql.DB, examID int) ([]models.Attempt, error) {
	rows, err := db.Query("SELECT id, user_id, category, shift, total_marks FROM attempts WHERE exam_id = ?", examID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []models.Attempt
	for rows.Next() {
		var a models.Attempt
		if err := rows.Scan(&a.ID, &a.UserID, &a.Category, &a.Shift, &a.TotalMarks); err != nil {
			return nil, err
		}
		a.ExamID = examID
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}
