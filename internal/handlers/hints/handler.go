package hints

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"gitlab.com/elp-2025.net/internal/core/ports/primary"
	hintsvc "gitlab.com/elp-2025.net/internal/core/services/hint"
	"gitlab.com/elp-2025.net/internal/handlers/response"
	"gitlab.com/elp-2025.net/internal/static/errs"
)

// HintHandler handles hint API requests
type HintHandler struct {
	hintService hintsvc.IHintService
	logger      primary.Logger
}

// NewHintHandler creates a new hint handler
func NewHintHandler(hintService hintsvc.IHintService, logger primary.Logger) *HintHandler {
	return &HintHandler{
		hintService: hintService,
		logger:      logger,
	}
}

// RegisterRoutes registers the API routes for HintHandler
func (h *HintHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/questions/{questionId}/hints", h.GenerateHints).Methods("POST")
	router.HandleFunc("/api/questions/{questionId}/hints/{n}", h.GetHint).Methods("GET")
	router.HandleFunc("/api/questions/{questionId}/reveal", h.CanReveal).Methods("GET")
}

type generateHintsRequest struct {
	Context string `json:"context"`
}

// GenerateHints returns the hint set for a question, generating it on
// first request.
func (h *HintHandler) GenerateHints(w http.ResponseWriter, r *http.Request) {
	questionID := mux.Vars(r)["questionId"]

	var req generateHintsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	set, err := h.hintService.GenerateHints(r.Context(), questionID, req.Context)
	if err != nil {
		h.logger.Error("Failed to generate hints", "questionId", questionID, "error", err)
		http.Error(w, "Failed to generate hints", http.StatusBadGateway)
		return
	}

	response.WriteSuccess(w, set)
}

// GetHint returns one stored hint by its 1-indexed position.
func (h *HintHandler) GetHint(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	questionID := vars["questionId"]

	n, err := strconv.Atoi(vars["n"])
	if err != nil {
		http.Error(w, "Invalid hint number", http.StatusBadRequest)
		return
	}

	hint, err := h.hintService.GetHint(r.Context(), questionID, n)
	if err != nil {
		if errors.Is(err, errs.ErrHintNotFound) {
			http.Error(w, "Hint not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to get hint", "questionId", questionID, "error", err)
		http.Error(w, "Failed to get hint", http.StatusInternalServerError)
		return
	}

	response.WriteSuccess(w, map[string]interface{}{"questionId": questionID, "n": n, "hint": hint})
}

// CanReveal reports whether the full solution may be shown.
func (h *HintHandler) CanReveal(w http.ResponseWriter, r *http.Request) {
	questionID := mux.Vars(r)["questionId"]

	consumed, err := strconv.Atoi(r.URL.Query().Get("consumed"))
	if err != nil {
		consumed = 0
	}

	allowed, err := h.hintService.CanRevealSolution(r.Context(), questionID, consumed)
	if err != nil {
		h.logger.Error("Failed to evaluate reveal gate", "questionId", questionID, "error", err)
		http.Error(w, "Failed to evaluate reveal gate", http.StatusInternalServerError)
		return
	}

	response.WriteSuccess(w, map[string]interface{}{"questionId": questionID, "canReveal": allowed})
}
