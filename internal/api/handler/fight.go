package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/botarena/internal/api/request"
	"github.com/mcoot/botarena/internal/api/response"
	"github.com/mcoot/botarena/internal/services/fight"
)

// FightHandler handles the fight endpoint
type FightHandler struct {
	fights *fight.Controller
	logger *slog.Logger
}

// NewFightHandler creates a new fight handler
func NewFightHandler(fights *fight.Controller, logger *slog.Logger) *FightHandler {
	return &FightHandler{
		fights: fights,
		logger: logger,
	}
}

// Fight handles POST /fight
func (h *FightHandler) Fight(w http.ResponseWriter, r *http.Request) {
	var req request.FightRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}

	result, err := h.fights.Fight(r.Context(), string(req.TelegramID), req.Hit, req.Defend)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FightResponseFromResult(result))
}
