package handler

import (
	"net/http"

	"github.com/hearth-app/hearth/internal/api"
	apperrors "github.com/hearth-app/hearth/internal/errors"
	"github.com/hearth-app/hearth/internal/logger"
	mw "github.com/hearth-app/hearth/internal/middleware"
	"github.com/hearth-app/hearth/internal/utils"
)

func (h *Handler) UpdateLastLogin(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "User is not authenticated."})
		return
	}

	if err := h.user.TouchLastLogin(r.Context(), *user); err != nil {
		logger.Log.Error("updating last login", "error", err, "userId", user.Id)
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) GetUserDocument(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "User is not authenticated."})
		return
	}

	var body api.GetUserDocumentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	doc, err := h.user.GetDocument(r.Context(), body.Uid, *user)
	if err != nil {
		if e, ok := err.(*apperrors.ErrorWithStatusCode); ok && e.StatusCode == http.StatusNotFound {
			utils.WriteJSON(w, http.StatusNotFound, api.UserDocumentResponse{
				Exists:  false,
				Message: "User document not found.",
			})
			return
		}
		logger.Log.Error("getting user document", "error", err, "uid", body.Uid)
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.UserDocumentResponse{Exists: true, Data: &doc})
}

func (h *Handler) CreateUserDocument(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "User is not authenticated."})
		return
	}

	var body api.CreateUserDocumentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	err := h.user.CreateDocument(r.Context(), body.Uid, body.CreatedAt, body.ProfileId, body.Email, *user)
	if err != nil {
		if e, ok := err.(*apperrors.ErrorWithStatusCode); ok && e.StatusCode == http.StatusConflict {
			utils.WriteJSON(w, http.StatusConflict, map[string]any{
				"success": false,
				"message": "User document already exists.",
			})
			return
		}
		logger.Log.Error("creating user document", "error", err, "uid", body.Uid)
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "User document created successfully.",
	})
}
