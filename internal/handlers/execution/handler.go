package execution

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/elp-2025.net/internal/core/ports/primary"
	executionsvc "gitlab.com/elp-2025.net/internal/core/services/execution"
	"gitlab.com/elp-2025.net/internal/domain"
	"gitlab.com/elp-2025.net/internal/static/errs"
)

// ExecutionHandler handles code execution API requests
type ExecutionHandler struct {
	executionService executionsvc.IExecutionService
	logger           primary.Logger
}

// NewExecutionHandler creates a new execution handler
func NewExecutionHandler(executionService executionsvc.IExecutionService, logger primary.Logger) *ExecutionHandler {
	return &ExecutionHandler{
		executionService: executionService,
		logger:           logger,
	}
}

// RegisterRoutes registers the API routes for ExecutionHandler
func (h *ExecutionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/executions", h.Execute).Methods("POST")
}

// Execute handles grading requests
func (h *ExecutionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var req ExecuteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	request := domain.NewExecutionRequest(req.QuestionID, req.Code, req.Language, req.TestCases)
	result, err := h.executionService.Execute(r.Context(), request)
	if err != nil {
		h.writeExecutionError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (h *ExecutionHandler) writeExecutionError(w http.ResponseWriter, err error) {
	h.logger.Error("Failed to execute code", "error", err)
	switch {
	case errors.Is(err, errs.ErrCodeTooLarge), errors.Is(err, errs.ErrUnsupportedLanguage):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, errs.ErrExecutionTimeout):
		http.Error(w, err.Error(), http.StatusGatewayTimeout)
	default:
		http.Error(w, "Failed to execute code", http.StatusInternalServerError)
	}
}
