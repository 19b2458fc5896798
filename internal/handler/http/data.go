// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-nexus-keeper/internal/app"
	"github.com/MKhiriev/go-nexus-keeper/internal/logger"
	"github.com/MKhiriev/go-nexus-keeper/internal/utils"
	"github.com/MKhiriev/go-nexus-keeper/models"
	"github.com/go-chi/chi/v5"
)

// maxItemSize bounds a PUT body. Encrypted items are a few kilobytes.
const maxItemSize = 1 << 20

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	bag := chi.URLParam(r, "bag")

	items, err := h.services.DataBagService.ListItems(r.Context(), bag)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listItems").Str("bag", bag).Msg("error listing data bag")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, items, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listItems").Msg("error writing response")
	}
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	bag, id := chi.URLParam(r, "bag"), chi.URLParam(r, "item")

	item, err := h.services.DataBagService.GetItem(r.Context(), bag, id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getItem").Str("bag", bag).Str("item", id).Msg("error reading data bag item")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, item, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getItem").Msg("error writing response")
	}
}

func (h *Handler) putItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	bag, id := chi.URLParam(r, "bag"), chi.URLParam(r, "item")

	var item models.EncryptedItem
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxItemSize)).Decode(&item); err != nil {
		log.Err(err).Str("func", "*Handler.putItem").Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	switch {
	case item.ID == "":
		item.ID = id
	case item.ID != id:
		utils.WriteError(w, app.MsgItemIDMismatch, http.StatusBadRequest)
		return
	}

	if err := h.services.DataBagService.PutItem(r.Context(), bag, item); err != nil {
		log.Err(err).Str("func", "*Handler.putItem").Str("bag", bag).Str("item", id).Msg("error storing data bag item")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	bag, id := chi.URLParam(r, "bag"), chi.URLParam(r, "item")

	if err := h.services.DataBagService.DeleteItem(r.Context(), bag, id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteItem").Str("bag", bag).Str("item", id).Msg("error deleting data bag item")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
