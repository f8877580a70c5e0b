package http

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mason-build/mason/pkg/domain/interfaces"
	"github.com/mason-build/mason/pkg/domain/model"
	"github.com/mason-build/mason/pkg/utils/async"
)

// RegenerateHandler triggers an apply run over HTTP. The run executes
// asynchronously; the endpoint only acknowledges acceptance.
type RegenerateHandler struct {
	token    string
	applyUC  interfaces.ApplyUseCase
	newInput func() *interfaces.ApplyInput
}

// regenerateRequest is the optional request body.
type regenerateRequest struct {
	Style string `json:"style,omitempty"` // Override manifest style for this run
	Fresh bool   `json:"fresh,omitempty"` // Delete targets before writing
}

// NewRegenerateHandler creates a new RegenerateHandler
func NewRegenerateHandler(token string, applyUC interfaces.ApplyUseCase, newInput func() *interfaces.ApplyInput) *RegenerateHandler {
	return &RegenerateHandler{
		token:    token,
		applyUC:  applyUC,
		newInput: newInput,
	}
}

// Handle processes regeneration requests
func (h *RegenerateHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	if !h.authorize(r) {
		logger.Warn("Rejected regenerate request with invalid token")
		writeError(w, goerr.New("invalid token"), http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, goerr.Wrap(err, "failed to read request body"), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var req regenerateRequest
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			writeError(w, goerr.Wrap(err, "invalid JSON payload"), http.StatusBadRequest)
			return
		}
	}

	input := h.newInput()
	if req.Style != "" {
		style := model.Style(req.Style)
		if err := style.Validate(); err != nil {
			writeError(w, err, http.StatusBadRequest)
			return
		}
		input.Manifest.Project.Style = style
	}
	if req.Fresh {
		input.Fresh = true
	}

	logger.Info("Accepted regenerate request",
		"style", input.Manifest.Project.Style,
		"fresh", input.Fresh,
	)

	// Run the apply asynchronously so the HTTP response does not wait on
	// file writes or git.
	async.Dispatch(ctx, func(ctx context.Context) error {
		_, err := h.applyUC.Apply(ctx, input)
		return err
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status": "accepted",
		"style":  string(input.Manifest.Project.Style),
	}); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// authorize checks the bearer token. An empty configured token disables
// the endpoint entirely.
func (h *RegenerateHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}

	auth := r.Header.Get("Authorization")
	supplied := strings.TrimPrefix(auth, "Bearer ")
	if supplied == auth {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(supplied), []byte(h.token)) == 1
}
