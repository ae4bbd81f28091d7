package handler

import (
	"fmt"
	"net/http"

	"github.com/hearth-app/hearth/internal/api"
	"github.com/hearth-app/hearth/internal/domain"
	"github.com/hearth-app/hearth/internal/logger"
	mw "github.com/hearth-app/hearth/internal/middleware"
	"github.com/hearth-app/hearth/internal/utils"
)

func (h *Handler) GetProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profile.List(r.Context())
	if err != nil {
		logger.Log.Error("listing profiles", "error", err)
		utils.WriteError(w, err)
		return
	}

	// The old API treated an empty collection as an error and clients came
	// to rely on it.
	if len(profiles) == 0 {
		utils.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "No profiles found."})
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.ProfilesResponse{Profiles: profiles})
}

func (h *Handler) GetProfileByUserId(w http.ResponseWriter, r *http.Request) {
	var body api.GetProfileByUserIdRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	profile, found, err := h.profile.LookupByUserId(r.Context(), body.UserId)
	if err != nil {
		logger.Log.Error("looking up profile", "error", err, "userId", body.UserId)
		utils.WriteError(w, err)
		return
	}

	if !found {
		utils.WriteJSON(w, http.StatusOK, api.ProfileLookupResponse{
			Exists:  false,
			Message: "No profile found for this user.",
		})
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.ProfileLookupResponse{Exists: true, Profile: &profile})
}

func (h *Handler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "User is not authenticated."})
		return
	}

	var body api.CreateProfileRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	profile, err := h.profile.Create(r.Context(), *user, body.Name, body.Bio, body.AvatarURL)
	if err != nil {
		logger.Log.Error("creating profile", "error", err, "userId", user.Id)
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, profile)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "User is not authenticated."})
		return
	}

	var body api.UpdateProfileRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	profile, err := h.profile.Update(r.Context(), body.Id, domain.ProfileUpdate{
		Name:          body.Name,
		Bio:           body.Bio,
		AvatarURL:     body.AvatarURL,
		CanStartQuest: body.CanStartQuest,
	}, *user)
	if err != nil {
		logger.Log.Error("updating profile", "error", err, "profileId", body.Id, "userId", user.Id)
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "User is not authenticated."})
		return
	}

	var body api.DeleteProfileRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	if err := h.profile.Delete(r.Context(), body.Id, *user); err != nil {
		logger.Log.Error("deleting profile", "error", err, "profileId", body.Id, "userId", user.Id)
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Profile with ID %s successfully deleted.", body.Id),
	})
}
