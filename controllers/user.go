package controllers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"rank-predictor/models"
	"rank-predictor/utils"
)

type Controller struct{}

// Signup creates an admin account. Admin accounts configure exam sessions;
// candidate users are created implicitly from submitted answer keys.
func (c Controller) Signup(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var user models.User
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid request body"})
			return
		}
		if user.Name == "" {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Name is required"})
			return
		}
		if user.Password == "" {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Password is required"})
			return
		}

		hashedPassword, err := utils.HashPassword(user.Password)
		if err != nil {
			logrus.Errorf("password hashing failed: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to create user"})
			return
		}

		// the unique key decides, no check-then-insert
		res, err := db.Exec("INSERT INTO users (name, password, role) VALUES (?, ?, 'admin')", user.Name, hashedPassword)
		if isDuplicateKey(err) {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "User already exists"})
			return
		}
		if err != nil {
			logrus.Errorf("user insert failed: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to create user"})
			return
		}
		id, _ := res.LastInsertId()

		user.ID = int(id)
		user.Password = ""
		user.Role = "admin"
		utils.ResponseJSON(w, user)
	}
}

func (c Controller) Login(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var user models.User
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid request body"})
			return
		}
		if user.Name == "" || user.Password == "" {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Name and password are required"})
			return
		}

		var hashedPassword string
		var id int
		err := db.QueryRow("SELECT id, password FROM users WHERE name = ? AND role = 'admin'", user.Name).Scan(&id, &hashedPassword)
		if err == sql.ErrNoRows {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: "Invalid credentials"})
			return
		}
		if err != nil {
			logrus.Errorf("user lookup failed: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to log in"})
			return
		}

		if !utils.ComparePasswords(hashedPassword, []byte(user.Password)) {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: "Invalid credentials"})
			return
		}

		user.ID = id
		user.Role = "admin"
		token, err := utils.GenerateToken(user, 24*time.Hour)
		if err != nil {
			logrus.Errorf("token generation failed: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to generate token"})
			return
		}

		utils.ResponseJSON(w, map[string]string{"token": token})
	}
}

func (c Controller) TokenVerifyMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := utils.VerifyToken(r); err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: err.Error()})
			return
		}
		next.ServeHTTP(w, r)
	}
}
