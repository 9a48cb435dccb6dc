package controllers

import (
	"net/http"

	"github.com/srmns/quotation-backend/api/responses"
	"github.com/srmns/quotation-backend/pkg/config"
)

// CompanyInfo returns the configured issuer identity.
func CompanyInfo(company config.CompanyConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteJSON(w, http.StatusOK, map[string]string{
			"name":        company.Name,
			"description": company.Description,
			"phone":       company.Phone,
			"gstin":       company.GSTIN,
			"address":     company.Address,
			"branch":      company.Branch,
		})
	}
}
