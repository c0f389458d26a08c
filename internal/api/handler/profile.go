package handler

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/botarena/internal/api/request"
	"github.com/mcoot/botarena/internal/api/response"
	"github.com/mcoot/botarena/internal/model"
	"github.com/mcoot/botarena/internal/services/profile"
)

// ProfileHandler handles profile endpoints
type ProfileHandler struct {
	profiles *profile.Service
	logger   *slog.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profiles *profile.Service, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
		logger:   logger,
	}
}

// Create handles POST /create-profile
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateProfileRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}

	p, err := h.profiles.Create(r.Context(), profile.CreateRequest{
		ID:         string(req.TelegramID),
		Nickname:   req.Nickname,
		Race:       req.Race,
		Allocation: req.ExtraPoints,
	})
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProfileResponse{
		Message: "Profile created.",
		Profile: response.ProfileFromModel(p),
	})
}

// Get handles GET /profile/{id}
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	p, ok, err := h.profiles.Lookup(r.Context(), model.ProfileID(id))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	if !ok {
		response.JSON(w, http.StatusOK, response.LookupResponse{Exists: false})
		return
	}

	resp := response.ProfileFromModel(p)
	response.JSON(w, http.StatusOK, response.LookupResponse{Exists: true, Profile: &resp})
}

// Allocate handles POST /allocate-points
func (h *ProfileHandler) Allocate(w http.ResponseWriter, r *http.Request) {
	var req request.AllocatePointsRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}

	p, err := h.profiles.Allocate(r.Context(), string(req.TelegramID), req.Allocation)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProfileResponse{
		Message: "Points allocated.",
		Profile: response.ProfileFromModel(p),
	})
}

// Spend handles POST /spend-points
func (h *ProfileHandler) Spend(w http.ResponseWriter, r *http.Request) {
	var req request.SpendPointsRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}

	p, err := h.profiles.Spend(r.Context(), string(req.TelegramID), req.Points)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProfileResponse{
		Message: "Points spent.",
		Profile: response.ProfileFromModel(p),
	})
}

// Reset handles POST /reset-profiles
func (h *ProfileHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.profiles.Reset(r.Context()); err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessageResponse{Message: "Profiles reset."})
}
