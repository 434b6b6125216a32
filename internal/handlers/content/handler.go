package content

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/elp-2025.net/internal/core/ports/primary"
	fraudsvc "gitlab.com/elp-2025.net/internal/core/services/fraud"
	"gitlab.com/elp-2025.net/internal/core/services/generation"
	"gitlab.com/elp-2025.net/internal/handlers/response"
)

// ContentHandler handles content generation and fraud API requests
type ContentHandler struct {
	generationService generation.IGenerationService
	fraudService      fraudsvc.IFraudService
	logger            primary.Logger
}

// NewContentHandler creates a new content handler
func NewContentHandler(
	generationService generation.IGenerationService,
	fraudService fraudsvc.IFraudService,
	logger primary.Logger,
) *ContentHandler {
	return &ContentHandler{
		generationService: generationService,
		fraudService:      fraudService,
		logger:            logger,
	}
}

// RegisterRoutes registers the API routes for ContentHandler
func (h *ContentHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/questions/generate", h.GenerateQuestions).Methods("POST")
	router.HandleFunc("/api/feedback", h.GenerateFeedback).Methods("POST")
	router.HandleFunc("/api/fraud", h.AssessFraud).Methods("POST")
}

type generateQuestionsRequest struct {
	Type     string `json:"type"`
	Topic    string `json:"topic"`
	Language string `json:"language"`
	Count    int    `json:"count"`
}

// GenerateQuestions returns a question batch wrapped in a provenance
// envelope. The payload shape is identical for real and fallback data.
func (h *ContentHandler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	var req generateQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	var envelope interface{}
	var err error
	switch req.Type {
	case "theory":
		envelope, err = h.generationService.GenerateTheoryQuestions(r.Context(), req.Topic, req.Count)
	case "coding", "":
		envelope, err = h.generationService.GenerateCodingQuestions(r.Context(), req.Topic, req.Language, req.Count)
	default:
		http.Error(w, "Unknown question type", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.Error("Failed to generate questions", "topic", req.Topic, "error", err)
		http.Error(w, "Failed to generate questions", http.StatusInternalServerError)
		return
	}

	response.WriteSuccess(w, envelope)
}

// GenerateFeedback returns feedback text for a graded submission.
func (h *ContentHandler) GenerateFeedback(w http.ResponseWriter, r *http.Request) {
	var req generation.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	feedback, err := h.generationService.GenerateFeedback(r.Context(), &req)
	if err != nil {
		h.logger.Error("Failed to generate feedback", "error", err)
		http.Error(w, "Feedback is unavailable right now", http.StatusBadGateway)
		return
	}

	response.WriteSuccess(w, map[string]string{"feedback": feedback})
}

// AssessFraud scores a submission and returns the remediation decision.
func (h *ContentHandler) AssessFraud(w http.ResponseWriter, r *http.Request) {
	var req generation.FraudSignals
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	assessment, err := h.fraudService.AssessSubmission(r.Context(), &req)
	if err != nil {
		h.logger.Error("Failed to assess fraud", "submissionId", req.SubmissionID, "error", err)
		http.Error(w, "Fraud assessment is unavailable right now", http.StatusBadGateway)
		return
	}

	response.WriteSuccess(w, assessment)
}
