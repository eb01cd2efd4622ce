package main

import (
	"net/http"
	"os"
	"rank-predictor/controllers"
	"rank-predictor/driver"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on environment")
	}
	if os.Getenv("SECRET") == "" {
		logrus.Fatal("SECRET variable is not set")
	}

	db := driver.ConnectDB()
	defer db.Close()
	if err := driver.Migrate(db); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}

	controller := controllers.Controller{}
	examController := controllers.ExamController{}
	resultController := controllers.ResultController{}
	router := mux.NewRouter()

	router.HandleFunc("/signup", controller.Signup(db)).Methods("POST")
	router.HandleFunc("/login", controller.Login(db)).Methods("POST")

	router.HandleFunc("/exams", examController.GetExams(db)).Methods("GET")
	router.HandleFunc("/exams/create", controller.TokenVerifyMiddleware(examController.CreateExam(db))).Methods("POST")

	router.HandleFunc("/results", resultController.SubmitResult(db)).Methods("POST")
	router.HandleFunc("/rank", resultController.GetRank(db)).Methods("GET")
	router.HandleFunc("/average", resultController.GetAverage(db)).Methods("GET")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	logrus.Infof("Server started on port %s", port)
	logrus.Fatal(http.ListenAndServe(":"+port, router))
}
