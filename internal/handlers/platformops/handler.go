package platformops

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/elp-2025.net/internal/core/ports/primary"
	"gitlab.com/elp-2025.net/internal/core/ports/secondary"
	"gitlab.com/elp-2025.net/internal/domain"
	"gitlab.com/elp-2025.net/internal/handlers/response"
)

// PlatformHandler handles requests that fan out to sibling microservices
type PlatformHandler struct {
	platformClient secondary.PlatformClient
	logger         primary.Logger
}

// NewPlatformHandler creates a new platform handler
func NewPlatformHandler(platformClient secondary.PlatformClient, logger primary.Logger) *PlatformHandler {
	return &PlatformHandler{
		platformClient: platformClient,
		logger:         logger,
	}
}

// RegisterRoutes registers the API routes for PlatformHandler
func (h *PlatformHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/analytics/events", h.SendEvent).Methods("POST")
	router.HandleFunc("/api/courses/{courseId}", h.LookupCourse).Methods("GET")
	router.HandleFunc("/api/courses/{courseId}/complete", h.CompleteCourse).Methods("POST")
	router.HandleFunc("/api/assessments/sync", h.SyncAssessment).Methods("POST")
	router.HandleFunc("/api/chat", h.AskChat).Methods("POST")
	router.HandleFunc("/api/content/validate", h.ValidateContent).Methods("POST")
	router.HandleFunc("/api/content/generate", h.RequestGeneration).Methods("POST")
}

// SendEvent forwards a learning event to the analytics service.
func (h *PlatformHandler) SendEvent(w http.ResponseWriter, r *http.Request) {
	var event map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	h.respond(w, func() (*domain.FallbackEnvelope, error) {
		return h.platformClient.SendAnalyticsEvent(r.Context(), event)
	})
}

// LookupCourse fetches a catalog entry.
func (h *PlatformHandler) LookupCourse(w http.ResponseWriter, r *http.Request) {
	courseID := mux.Vars(r)["courseId"]
	h.respond(w, func() (*domain.FallbackEnvelope, error) {
		return h.platformClient.LookupCourse(r.Context(), courseID)
	})
}

type completeCourseRequest struct {
	UserID string `json:"userId"`
}

// CompleteCourse records a course completion.
func (h *PlatformHandler) CompleteCourse(w http.ResponseWriter, r *http.Request) {
	courseID := mux.Vars(r)["courseId"]
	var req completeCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	h.respond(w, func() (*domain.FallbackEnvelope, error) {
		return h.platformClient.RecordCourseCompletion(r.Context(), req.UserID, courseID)
	})
}

// SyncAssessment pushes an assessment record to the assessment service.
func (h *PlatformHandler) SyncAssessment(w http.ResponseWriter, r *http.Request) {
	var assessment map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&assessment); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	h.respond(w, func() (*domain.FallbackEnvelope, error) {
		return h.platformClient.SyncAssessment(r.Context(), assessment)
	})
}

type chatRequest struct {
	Question string `json:"question"`
}

// AskChat queries the RAG chat service.
func (h *PlatformHandler) AskChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	h.respond(w, func() (*domain.FallbackEnvelope, error) {
		return h.platformClient.AskChat(r.Context(), req.Question)
	})
}

// ValidateContent asks the content studio to validate authored content.
func (h *PlatformHandler) ValidateContent(w http.ResponseWriter, r *http.Request) {
	var content map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&content); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	h.respond(w, func() (*domain.FallbackEnvelope, error) {
		return h.platformClient.ValidateContent(r.Context(), content)
	})
}

// RequestGeneration queues a content-generation job.
func (h *PlatformHandler) RequestGeneration(w http.ResponseWriter, r *http.Request) {
	var request map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	h.respond(w, func() (*domain.FallbackEnvelope, error) {
		return h.platformClient.RequestContentGeneration(r.Context(), request)
	})
}

// respond runs one platform call and writes its envelope. Fallback
// envelopes come back as successes; only unrecognized failures reach the
// error branch.
func (h *PlatformHandler) respond(w http.ResponseWriter, call func() (*domain.FallbackEnvelope, error)) {
	envelope, err := call()
	if err != nil {
		h.logger.Error("Platform call failed", "error", err)
		http.Error(w, "Service call failed", http.StatusInternalServerError)
		return
	}
	if envelope.Provenance == domain.ProvenanceMock {
		h.logger.Warn("Serving fallback data", "note", envelope.Note)
	}
	response.WriteSuccess(w, envelope)
}
