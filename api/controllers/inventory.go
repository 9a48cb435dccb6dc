package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/srmns/quotation-backend/api/responses"
	"github.com/srmns/quotation-backend/api/validators"
	"github.com/srmns/quotation-backend/internal/inventory"
	pkgerrors "github.com/srmns/quotation-backend/pkg/errors"
	"github.com/srmns/quotation-backend/pkg/logger"
)

// The inventory endpoints predate the quotation ones and report errors under
// a "message" key instead of "error". writeInventoryError keeps that shape
// for client-caused failures and defers to the shared writer otherwise.
func writeInventoryError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if typed := pkgerrors.As(err); typed != nil {
		switch typed.Code() {
		case pkgerrors.CodeValidation, pkgerrors.CodeBadRequest, pkgerrors.CodeNotFound:
			meta := pkgerrors.MetadataFor(typed.Code())
			responses.WriteMessage(w, meta.HTTPStatus, typed.Message())
			return
		}
	}
	responses.WriteError(ctx, logg, w, err)
}

// ListInventory returns every inventory row as a bare array.
func ListInventory(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		items, err := svc.List(ctx)
		if err != nil {
			writeInventoryError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, items)
	}
}

// SaveInventoryItem upserts a single item by name.
func SaveInventoryItem(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req inventory.SaveItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			writeInventoryError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "Invalid payload"))
			return
		}

		item, err := svc.Upsert(ctx, req)
		if err != nil {
			writeInventoryError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusCreated, map[string]any{
			"message": "Inventory saved successfully",
			"item":    item,
		})
	}
}

// BulkSaveInventory applies a batch of upserts atomically.
func BulkSaveInventory(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req inventory.BulkSaveRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			writeInventoryError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "Invalid payload"))
			return
		}

		if err := svc.BulkUpsert(ctx, req); err != nil {
			writeInventoryError(ctx, logg, w, err)
			return
		}

		responses.WriteMessage(w, http.StatusCreated, "Inventory bulk saved/updated successfully")
	}
}

// UpdateInventoryItem partially updates an item by id.
func UpdateInventoryItem(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := parseInventoryID(r)
		if err != nil {
			writeInventoryError(ctx, logg, w, err)
			return
		}

		var req inventory.UpdateItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			writeInventoryError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "Invalid payload"))
			return
		}

		if _, err := svc.Update(ctx, id, req); err != nil {
			writeInventoryError(ctx, logg, w, err)
			return
		}

		responses.WriteMessage(w, http.StatusOK, "Inventory updated successfully")
	}
}

// DeleteInventoryItem removes an item by id.
func DeleteInventoryItem(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := parseInventoryID(r)
		if err != nil {
			writeInventoryError(ctx, logg, w, err)
			return
		}

		if err := svc.Delete(ctx, id); err != nil {
			writeInventoryError(ctx, logg, w, err)
			return
		}

		responses.WriteMessage(w, http.StatusOK, "Inventory deleted successfully")
	}
}

func parseInventoryID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, pkgerrors.New(pkgerrors.CodeNotFound, "Item not found")
	}
	return uint(id), nil
}
