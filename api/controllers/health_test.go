package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(_ context.Context) error {
	return s.err
}

func TestHealthOK(t *testing.T) {
	handler := Health(stubPinger{}, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if decodeJSON(t, rec)["status"] != "OK" {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestHealthDBError(t *testing.T) {
	handler := Health(stubPinger{err: errors.New("connection refused")}, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}
	body := decodeJSON(t, rec)
	if body["status"] != "DB ERROR" || body["error"] != "connection refused" {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}
