package handler

import (
	"net/http"

	"github.com/hearth-app/hearth/internal/api"
	"github.com/hearth-app/hearth/internal/domain"
	"github.com/hearth-app/hearth/internal/logger"
	mw "github.com/hearth-app/hearth/internal/middleware"
	"github.com/hearth-app/hearth/internal/utils"
)

func (h *Handler) AddNotePage(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "User is not authenticated."})
		return
	}

	var body api.AddNotePageRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	page, err := h.note.Create(r.Context(), domain.NotePageCreationData{
		Author:  *user,
		Title:   body.Title,
		Content: body.Content,
	})
	if err != nil {
		logger.Log.Error("adding note page", "error", err, "userId", user.Id)
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, page)
}

func (h *Handler) GetNotesPages(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "User is not authenticated."})
		return
	}

	pages, err := h.note.List(r.Context(), user.Id)
	if err != nil {
		logger.Log.Error("listing note pages", "error", err, "userId", user.Id)
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, pages)
}

func (h *Handler) UpdateNotePage(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "User is not authenticated."})
		return
	}

	var body api.UpdateNotePageRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	err := h.note.Update(r.Context(), body.NotePageId, body.Title, body.Content, *user)
	if err != nil {
		logger.Log.Error("updating note page", "error", err, "notePageId", body.NotePageId, "userId", user.Id)
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"success": "Note page updated successfully."})
}

func (h *Handler) DeleteNotePage(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "User is not authenticated."})
		return
	}

	var body api.DeleteNotePageRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	err := h.note.Delete(r.Context(), body.NotePageId, *user)
	if err != nil {
		logger.Log.Error("deleting note page", "error", err, "notePageId", body.NotePageId, "userId", user.Id)
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"success": "Note page deleted successfully."})
}
