package responses

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/srmns/quotation-backend/pkg/errors"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestWriteErrorValidationListsEveryMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	err := pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
		WithDetails([]string{"Customer name is required", "At least one item is required"})
	WriteError(context.Background(), nil, rec, err)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	msgs, ok := body["errors"].([]any)
	if !ok || len(msgs) != 2 {
		t.Fatalf("expected 2 errors, got %v", body)
	}
	if msgs[0] != "Customer name is required" {
		t.Fatalf("unexpected first message %v", msgs[0])
	}
}

func TestWriteErrorDuplicateQuotation(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(context.Background(), nil, rec, pkgerrors.New(pkgerrors.CodeDuplicate, "quotation number taken"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "Duplicate quotation" {
		t.Fatalf("expected fixed duplicate message, got %v", body)
	}
}

func TestWriteErrorNotFoundMergesDetails(t *testing.T) {
	rec := httptest.NewRecorder()

	err := pkgerrors.New(pkgerrors.CodeNotFound, "Quotation not found").
		WithDetails(map[string]any{"quotation_no": "QT-2026-0042"})
	WriteError(context.Background(), nil, rec, err)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "Quotation not found" {
		t.Fatalf("unexpected error message %v", body["error"])
	}
	if body["quotation_no"] != "QT-2026-0042" {
		t.Fatalf("expected quotation_no echoed, got %v", body)
	}
}

func TestWriteErrorUntypedBecomesInternal(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(context.Background(), nil, rec, context.DeadlineExceeded)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "internal server error" {
		t.Fatalf("expected public message, got %v", body)
	}
}

func TestWriteMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteMessage(rec, http.StatusCreated, "Item saved")

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}
	if decodeBody(t, rec)["message"] != "Item saved" {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}
