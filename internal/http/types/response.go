// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bluehathi/leadsetu-sub001/internal/storage"
)

// Response is the envelope every JSON endpoint writes.
type Response struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Status  int         `json:"status"`
}

func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{
		Data:   data,
		Status: status,
	})
}

func WriteMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{
		Message: message,
		Status:  status,
	})
}

// WriteError maps storage sentinel errors onto HTTP statuses. Cross-workspace
// rows surface as ErrNotFound upstream, so they map to 404 here like any
// other missing row.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		WriteMessage(w, http.StatusNotFound, "not found")
	case errors.Is(err, storage.ErrDuplicateKey):
		WriteMessage(w, http.StatusConflict, "already exists")
	case errors.Is(err, storage.ErrForeignKeyViolation):
		WriteMessage(w, http.StatusUnprocessableEntity, "referenced resource does not exist")
	case errors.Is(err, storage.ErrNoWorkspace):
		WriteMessage(w, http.StatusForbidden, "no workspace")
	default:
		WriteMessage(w, http.StatusInternalServerError, "internal error")
	}
}

func WriteForbidden(w http.ResponseWriter) {
	WriteMessage(w, http.StatusForbidden, "forbidden")
}

func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteMessage(w, http.StatusBadRequest, message)
}
