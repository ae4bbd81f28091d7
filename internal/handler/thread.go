package handler

import (
	"net/http"

	"github.com/hearth-app/hearth/internal/api"
	"github.com/hearth-app/hearth/internal/domain"
	"github.com/hearth-app/hearth/internal/logger"
	mw "github.com/hearth-app/hearth/internal/middleware"
	"github.com/hearth-app/hearth/internal/utils"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "User is not authenticated."})
		return
	}

	var body api.CreateThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	thread, err := h.thread.Create(r.Context(), domain.ThreadCreationData{
		Author:    *user,
		Title:     body.Title,
		Content:   body.Content,
		Name:      body.Name,
		AvatarURL: body.AvatarURL,
	})
	if err != nil {
		logger.Log.Error("creating thread", "error", err, "userId", user.Id)
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, thread)
}

func (h *Handler) GetThreads(w http.ResponseWriter, r *http.Request) {
	threads, err := h.thread.List(r.Context())
	if err != nil {
		logger.Log.Error("listing threads", "error", err)
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, threads)
}
