package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/okian/spithack/internal/domain/model"
	"github.com/okian/spithack/internal/domain/submission"
	"github.com/okian/spithack/internal/domain/wizard"
	"github.com/okian/spithack/pkg/logger"
)

// IdempotencyHeader carries the client key used to acknowledge a repeated post once.
const IdempotencyHeader = "Idempotency-Key"

// FormDependencies accepts registrations and project submissions.
type FormDependencies interface {
	VerifyTeamCode(ctx context.Context, code string) submission.Result
	SubmitRegistration(ctx context.Context, key string, reg wizard.Registration) (model.Receipt, error)
	SubmitProject(ctx context.Context, key string, sub submission.Submission) (model.Receipt, error)
}

// FormsHandler handles form posts.
type FormsHandler struct {
	deps   FormDependencies
	logger logger.Logger
}

// NewFormsHandler creates a new forms handler.
func NewFormsHandler(deps FormDependencies, log logger.Logger) *FormsHandler {
	return &FormsHandler{deps: deps, logger: log}
}

type verifyRequest struct {
	Code string `json:"code"`
}

type verifyResponse struct {
	submission.Result
	Badge string `json:"badge,omitempty"`
}

// HandlePostRegistration handles POST /api/registrations.
func (h *FormsHandler) HandlePostRegistration(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_registration"
	var reg wizard.Registration
	if err := decode(w, r, &reg); err != nil {
		writeError(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	receipt, err := h.deps.SubmitRegistration(r.Context(), idempotencyKey(r), reg)
	h.respond(r.Context(), w, op, receipt, err)
}

// HandlePostSubmission handles POST /api/submissions.
func (h *FormsHandler) HandlePostSubmission(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_submission"
	var sub submission.Submission
	if err := decode(w, r, &sub); err != nil {
		writeError(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	receipt, err := h.deps.SubmitProject(r.Context(), idempotencyKey(r), sub)
	h.respond(r.Context(), w, op, receipt, err)
}

// HandleVerifyTeamCode handles POST /api/team-codes/verify. An invalid code
// is a normal 200 answer with valid=false.
func (h *FormsHandler) HandleVerifyTeamCode(w http.ResponseWriter, r *http.Request) {
	const op = "api.verify_team_code"
	var req verifyRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	res := h.deps.VerifyTeamCode(r.Context(), req.Code)
	writeJSON(w, http.StatusOK, verifyResponse{Result: res, Badge: res.Badge()})
}

func (h *FormsHandler) respond(ctx context.Context, w http.ResponseWriter, op string, receipt model.Receipt, err error) {
	if err != nil {
		status, _ := classify(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error(ctx, "form post failed", logger.String("op", op), logger.Error(err))
		}
		writeError(w, Wrap(op, err))
		return
	}
	status := http.StatusAccepted
	if receipt.Duplicate {
		status = http.StatusOK
	}
	writeJSON(w, status, receipt)
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func idempotencyKey(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(IdempotencyHeader))
}
