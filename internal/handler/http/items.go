// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// listItems returns the caller's items, most recent first.
func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	items, err := h.services.ItemService.ListItems(ctx, userID)
	if err != nil {
		h.writeServiceError(w, r, "list", err)
		return
	}
	if items == nil {
		items = []models.Item{}
	}

	h.recordItemOp("list", http.StatusOK)
	utils.WriteJSON(w, models.ItemsResponse{Items: items}, http.StatusOK)
}

// createItem stores a new item owned by the caller. Any owner sent by the
// client is ignored.
func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	var req models.ItemRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		h.writeServiceError(w, r, "create", err)
		return
	}

	item, err := h.services.ItemService.CreateItem(ctx, req.ToItem(userID))
	if err != nil {
		h.writeServiceError(w, r, "create", err)
		return
	}

	logger.FromRequest(r).Debug().Int64("item_id", item.ID).Msg("item created")
	h.recordItemOp("create", http.StatusCreated)
	utils.WriteJSON(w, models.ItemResponse{Item: item}, http.StatusCreated)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	itemID, err := itemIDFromRequest(r)
	if err != nil {
		h.writeServiceError(w, r, "get", err)
		return
	}

	item, err := h.services.ItemService.GetItem(ctx, userID, itemID)
	if err != nil {
		h.writeServiceError(w, r, "get", err)
		return
	}

	h.recordItemOp("get", http.StatusOK)
	utils.WriteJSON(w, models.ItemResponse{Item: item}, http.StatusOK)
}

// updateItem replaces title and description of an item the caller owns.
func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	itemID, err := itemIDFromRequest(r)
	if err != nil {
		h.writeServiceError(w, r, "update", err)
		return
	}

	var req models.ItemRequest
	if err = utils.DecodeJSON(r, &req); err != nil {
		h.writeServiceError(w, r, "update", err)
		return
	}

	item := req.ToItem(userID)
	item.ID = itemID

	updated, err := h.services.ItemService.UpdateItem(ctx, item)
	if err != nil {
		h.writeServiceError(w, r, "update", err)
		return
	}

	h.recordItemOp("update", http.StatusOK)
	utils.WriteJSON(w, models.ItemResponse{Item: updated}, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	itemID, err := itemIDFromRequest(r)
	if err != nil {
		h.writeServiceError(w, r, "delete", err)
		return
	}

	if err = h.services.ItemService.DeleteItem(ctx, userID, itemID); err != nil {
		h.writeServiceError(w, r, "delete", err)
		return
	}

	h.recordItemOp("delete", http.StatusOK)
	utils.WriteJSON(w, models.OKResponse{OK: true}, http.StatusOK)
}

// itemIDFromRequest parses the {id} path parameter. Range checks are left to
// the service layer.
func itemIDFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, ErrInvalidItemID
	}
	return id, nil
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("operation", operation).Msg("item operation failed")
	} else {
		log.Debug().Err(err).Str("operation", operation).Int("status", status).Msg("item request rejected")
	}

	h.recordItemOp(operation, status)
	utils.WriteError(w, message, status)
}

func (h *Handler) recordItemOp(operation string, status int) {
	if h.metrics == nil {
		return
	}
	h.metrics.ItemOperationsTotal.WithLabelValues(operation, strconv.Itoa(status)).Inc()
}
