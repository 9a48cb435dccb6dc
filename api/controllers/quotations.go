package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/srmns/quotation-backend/api/responses"
	"github.com/srmns/quotation-backend/api/validators"
	"github.com/srmns/quotation-backend/internal/quotations"
	pkgerrors "github.com/srmns/quotation-backend/pkg/errors"
	"github.com/srmns/quotation-backend/pkg/logger"
	"github.com/srmns/quotation-backend/pkg/pagination"
)

// ListQuotations returns one page of quotations plus global stats.
func ListQuotations(svc quotations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		page, err := validators.ParseQueryInt(r, "page", 1, 1, 1<<30)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		perPage, err := validators.ParseQueryInt(r, "per_page", pagination.DefaultPerPage, 1, pagination.MaxPerPage)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.List(ctx, pagination.Params{Page: page, PerPage: perPage})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, result)
	}
}

// GetQuotation looks a quotation up by numeric id.
func GetQuotation(svc quotations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := parseIDParam(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		dto, err := svc.GetByID(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, dto)
	}
}

// GetQuotationByNumber looks a quotation up by its assigned number.
func GetQuotationByNumber(svc quotations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		quotationNo := chi.URLParam(r, "quotationNo")
		if logg != nil {
			ctx = logg.WithQuotationNo(ctx, quotationNo)
		}

		dto, err := svc.GetByNumber(ctx, quotationNo)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, dto)
	}
}

// CreateQuotation assigns the next number and stores the quotation.
func CreateQuotation(svc quotations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req quotations.SaveQuotationRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		dto, err := svc.Create(ctx, req)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithQuotationNo(ctx, dto.QuotationNo), "quotation.created")
		}
		responses.WriteMessage(w, http.StatusCreated, "Quotation created")
	}
}

// UpdateQuotation replaces a quotation's fields and item set.
func UpdateQuotation(svc quotations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := parseIDParam(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req quotations.SaveQuotationRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if _, err := svc.Update(ctx, id, req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteMessage(w, http.StatusOK, "Quotation updated successfully")
	}
}

func parseIDParam(r *http.Request, key string) (uint, error) {
	raw := chi.URLParam(r, key)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, pkgerrors.New(pkgerrors.CodeNotFound, "Quotation not found")
	}
	return uint(id), nil
}
