package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/srmns/quotation-backend/internal/quotations"
	pkgerrors "github.com/srmns/quotation-backend/pkg/errors"
	"github.com/srmns/quotation-backend/pkg/pagination"
)

type stubQuotationService struct {
	createResult *quotations.QuotationDTO
	createErr    error
	createReq    *quotations.SaveQuotationRequest

	updateResult *quotations.QuotationDTO
	updateErr    error
	updateID     uint

	byIDResult *quotations.QuotationDTO
	byIDErr    error

	byNumberResult *quotations.QuotationDTO
	byNumberErr    error
	byNumberArg    string

	listResult *quotations.ListResult
	listErr    error
	listParams pagination.Params
}

func (s *stubQuotationService) Create(_ context.Context, req quotations.SaveQuotationRequest) (*quotations.QuotationDTO, error) {
	s.createReq = &req
	return s.createResult, s.createErr
}

func (s *stubQuotationService) Update(_ context.Context, id uint, req quotations.SaveQuotationRequest) (*quotations.QuotationDTO, error) {
	s.updateID = id
	return s.updateResult, s.updateErr
}

func (s *stubQuotationService) GetByID(_ context.Context, _ uint) (*quotations.QuotationDTO, error) {
	return s.byIDResult, s.byIDErr
}

func (s *stubQuotationService) GetByNumber(_ context.Context, quotationNo string) (*quotations.QuotationDTO, error) {
	s.byNumberArg = quotationNo
	return s.byNumberResult, s.byNumberErr
}

func (s *stubQuotationService) List(_ context.Context, params pagination.Params) (*quotations.ListResult, error) {
	s.listParams = params
	return s.listResult, s.listErr
}

func quotationRouter(svc quotations.Service) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/quotations", ListQuotations(svc, nil))
	r.Post("/api/quotations", CreateQuotation(svc, nil))
	r.Get("/api/quotations/{id}", GetQuotation(svc, nil))
	r.Put("/api/quotations/{id}", UpdateQuotation(svc, nil))
	r.Get("/api/quotations/number/{quotationNo}", GetQuotationByNumber(svc, nil))
	return r
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return body
}

const validQuotationBody = `{
	"customerInfo": {"billTo": "ACME", "contactNo": "12345", "stateName": "TN"},
	"totals": {"totalAmount": 100, "cgst": 9, "sgst": 9, "grandTotal": 118},
	"items": [{"description": "net", "qty": 2, "rate": 50, "amount": 100}]
}`

func TestCreateQuotationReturnsMessage(t *testing.T) {
	svc := &stubQuotationService{createResult: &quotations.QuotationDTO{QuotationNo: "QT-2026-0001"}}
	router := quotationRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/quotations", strings.NewReader(validQuotationBody))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	if decodeJSON(t, rec)["message"] != "Quotation created" {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
	if svc.createReq == nil || svc.createReq.CustomerInfo.BillTo != "ACME" {
		t.Fatalf("request not forwarded: %+v", svc.createReq)
	}
}

func TestCreateQuotationValidationErrors(t *testing.T) {
	svc := &stubQuotationService{
		createErr: pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails([]string{"Customer name is required", "At least one item is required"}),
	}
	router := quotationRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/quotations", strings.NewReader(`{"items":[]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	msgs, ok := decodeJSON(t, rec)["errors"].([]any)
	if !ok || len(msgs) != 2 {
		t.Fatalf("expected errors list, got %s", rec.Body.String())
	}
}

func TestCreateQuotationDuplicate(t *testing.T) {
	svc := &stubQuotationService{
		createErr: pkgerrors.New(pkgerrors.CodeDuplicate, "quotation number already taken"),
	}
	router := quotationRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/quotations", strings.NewReader(validQuotationBody))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if decodeJSON(t, rec)["error"] != "Duplicate quotation" {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestUpdateQuotationReturnsMessage(t *testing.T) {
	svc := &stubQuotationService{updateResult: &quotations.QuotationDTO{QuotationNo: "QT-2026-0001"}}
	router := quotationRouter(svc)

	req := httptest.NewRequest(http.MethodPut, "/api/quotations/7", strings.NewReader(validQuotationBody))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	if decodeJSON(t, rec)["message"] != "Quotation updated successfully" {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
	if svc.updateID != 7 {
		t.Fatalf("expected id 7, got %d", svc.updateID)
	}
}

func TestGetQuotationNotFoundIsBare(t *testing.T) {
	svc := &stubQuotationService{byIDErr: pkgerrors.New(pkgerrors.CodeNotFound, "Quotation not found")}
	router := quotationRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/quotations/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
	body := decodeJSON(t, rec)
	if body["error"] != "Quotation not found" {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
	if _, present := body["quotation_no"]; present {
		t.Fatalf("lookup by id must not echo a number: %s", rec.Body.String())
	}
}

func TestGetQuotationByNumberEchoesNumber(t *testing.T) {
	svc := &stubQuotationService{
		byNumberErr: pkgerrors.New(pkgerrors.CodeNotFound, "Quotation not found").
			WithDetails(map[string]any{"quotation_no": "QT-2026-0042"}),
	}
	router := quotationRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/quotations/number/QT-2026-0042", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
	body := decodeJSON(t, rec)
	if body["quotation_no"] != "QT-2026-0042" {
		t.Fatalf("expected echoed number, got %s", rec.Body.String())
	}
	if svc.byNumberArg != "QT-2026-0042" {
		t.Fatalf("unexpected service arg %q", svc.byNumberArg)
	}
}

func TestListQuotationsForwardsPagination(t *testing.T) {
	svc := &stubQuotationService{listResult: &quotations.ListResult{
		Quotations: []quotations.QuotationDTO{},
		Pagination: pagination.Meta{Page: 3, PerPage: 25, Total: 60, Pages: 3},
		Stats:      quotations.Stats{TotalValue: 1234.5, ThisMonth: 4},
	}}
	router := quotationRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/quotations?page=3&per_page=25", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.listParams.Page != 3 || svc.listParams.PerPage != 25 {
		t.Fatalf("unexpected params %+v", svc.listParams)
	}
	body := decodeJSON(t, rec)
	stats, ok := body["stats"].(map[string]any)
	if !ok || stats["total_value"] != 1234.5 {
		t.Fatalf("unexpected stats %v", body["stats"])
	}
	if _, ok := body["pagination"].(map[string]any); !ok {
		t.Fatalf("expected pagination meta, got %s", rec.Body.String())
	}
}

func TestListQuotationsRejectsBadPage(t *testing.T) {
	svc := &stubQuotationService{}
	router := quotationRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/quotations?page=zero", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}
