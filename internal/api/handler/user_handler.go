package handler

import (
	"encoding/json"
	"net/http"

	"jobboard/internal/api/middleware"
	"jobboard/internal/app/service"
	"jobboard/internal/common"
	"jobboard/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Post("/profile/update", h.updateProfile)
}

type updateProfileResponse struct {
	Message string      `json:"message"`
	User    *model.User `json:"user"`
	Success bool        `json:"success"`
}

func (h *UserHandler) updateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, updateProfileResponse{
		Message: "Profile updated successfully",
		User:    user,
		Success: true,
	})
}
