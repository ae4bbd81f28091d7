package handler

import (
	"net/http"

	"github.com/hearth-app/hearth/internal/api"
	"github.com/hearth-app/hearth/internal/domain"
	"github.com/hearth-app/hearth/internal/logger"
	mw "github.com/hearth-app/hearth/internal/middleware"
	"github.com/hearth-app/hearth/internal/utils"
)

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "User is not authenticated."})
		return
	}

	var body api.AddCommentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	_, err := h.comment.Create(r.Context(), domain.CommentCreationData{
		Author:    *user,
		ThreadId:  body.ThreadId,
		Content:   body.Content,
		Name:      body.Name,
		AvatarURL: body.AvatarURL,
	})
	if err != nil {
		logger.Log.Error("adding comment", "error", err, "threadId", body.ThreadId, "userId", user.Id)
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]string{"message": "Comment added successfully."})
}

func (h *Handler) GetComments(w http.ResponseWriter, r *http.Request) {
	var body api.GetCommentsRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	comments, err := h.comment.List(r.Context(), body.ThreadId)
	if err != nil {
		logger.Log.Error("listing comments", "error", err, "threadId", body.ThreadId)
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, comments)
}

func (h *Handler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "User is not authenticated."})
		return
	}

	var body api.UpdateCommentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	err := h.comment.Edit(r.Context(), body.ThreadId, body.CommentId, body.Content, *user)
	if err != nil {
		logger.Log.Error("updating comment", "error", err,
			"threadId", body.ThreadId, "commentId", body.CommentId, "userId", user.Id)
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"success": "Comment updated successfully."})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "User is not authenticated."})
		return
	}

	var body api.DeleteCommentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	err := h.comment.Delete(r.Context(), body.ThreadId, body.CommentId, *user)
	if err != nil {
		logger.Log.Error("deleting comment", "error", err,
			"threadId", body.ThreadId, "commentId", body.CommentId, "userId", user.Id)
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"success": "Comment marked as deleted."})
}
