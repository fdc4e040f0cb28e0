// Package chat implements the mediator service: one conversational endpoint
// that classifies a question, dispatches it to the stats API, and composes a
// grounded natural-language answer.
package chat

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/courtsideai/courtside/internal/api/respond"
	"github.com/courtsideai/courtside/internal/backend"
	"github.com/courtsideai/courtside/internal/compose"
	"github.com/courtsideai/courtside/internal/dispatch"
	"github.com/courtsideai/courtside/internal/intent"
)

// Envelope is the chat response: the answer plus diagnostics. Debug is not
// a contract for consumers, only observability.
type Envelope struct {
	Answer string         `json:"answer"`
	Intent intent.Intent  `json:"intent"`
	Debug  map[string]any `json:"debug"`
}

// Handler runs the classify -> dispatch -> compose pipeline per request.
// Each request is independent; the only shared state is read-only lookup
// tables and clients.
type Handler struct {
	classifier *intent.Classifier
	backend    *backend.Client
	composer   *compose.Composer
	logger     *slog.Logger
}

// New creates a chat Handler.
func New(classifier *intent.Classifier, bc *backend.Client, composer *compose.Composer, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{classifier: classifier, backend: bc, composer: composer, logger: logger}
}

type chatRequest struct {
	Message string `json:"message"`
}

// Chat serves POST /chat. The message comes from the JSON body, with a
// query-string fallback (?message= or ?q=) for quick manual testing.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if r.Body != nil {
		// A malformed body is not fatal; the query fallback may still apply.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	if req.Message == "" {
		req.Message = r.URL.Query().Get("message")
	}
	if req.Message == "" {
		req.Message = r.URL.Query().Get("q")
	}
	if req.Message == "" {
		respond.Error(w, http.StatusBadRequest, "No message provided", nil)
		return
	}

	requestID := uuid.NewString()
	logger := h.logger.With("request_id", requestID)

	cmd := h.classifier.Classify(r.Context(), req.Message)
	logger.Info("classified", "intent", cmd.Intent,
		"player", cmd.PlayerName, "team", cmd.TeamName, "season", cmd.Season)

	result := dispatch.Dispatch(r.Context(), h.backend, cmd)
	if errMsg, ok := result["error"]; ok {
		logger.Warn("backend retrieval failed", "error", errMsg)
	}

	answer := h.composer.Compose(r.Context(), req.Message, cmd, result)

	respond.JSON(w, http.StatusOK, Envelope{
		Answer: answer,
		Intent: cmd.Intent,
		Debug: map[string]any{
			"request_id": requestID,
			"command":    cmd,
			"backend":    result,
		},
	})
}
