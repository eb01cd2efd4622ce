package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// These paths all reject the request before any database access, so the
// handlers take a nil *sql.DB.

func postResult(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/results", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ResultController{}.SubmitResult(nil)(rec, req)
	return rec
}

func TestSubmitResultInvalidBody(t *testing.T) {
	if rec := postResult(t, "{not json"); rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestSubmitResultMissingHTML(t *testing.T) {
	if rec := postResult(t, `{"category":"GEN"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestSubmitResultMissingCategory(t *testing.T) {
	if rec := postResult(t, `{"html":"<html></html>"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestSubmitResultUnrecognizedDocument(t *testing.T) {
	rec := postResult(t, `{"html":"<html><body><p>hello</p></body></html>","category":"GEN"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}

func TestSubmitResultMissingTestTime(t *testing.T) {
	html := `<html><body><table border='1'><tr><td>Candidate Name</td><td>X</td></tr></table></body></html>`
	rec := postResult(t, `{"html":"`+html+`","category":"GEN"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}

func TestGetRankMissingParams(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/rank?user_id=1", nil)
	rec := httptest.NewRecorder()
	ResultController{}.GetRank(nil)(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestGetAverageMissingParams(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/average?exam_id=1&category=GEN", nil)
	rec := httptest.NewRecorder()
	ResultController{}.GetAverage(nil)(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
