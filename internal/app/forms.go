package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/okian/spithack/internal/domain/model"
	"github.com/okian/spithack/internal/domain/submission"
	"github.com/okian/spithack/internal/domain/validation"
	"github.com/okian/spithack/internal/domain/wizard"
	"github.com/okian/spithack/pkg/logger"
	"github.com/okian/spithack/pkg/metrics"
)

// Receipt statuses.
const (
	StatusAccepted  = "accepted"
	StatusDuplicate = "duplicate"
)

// SubmitRegistration validates reg and queues it for delivery. A repeated
// idempotency key is acknowledged without queueing again. An empty key
// disables duplicate detection.
func (s *Service) SubmitRegistration(ctx context.Context, key string, reg wizard.Registration) (model.Receipt, error) {
	reg.ApplyDefaults()
	kind := string(reg.Kind)
	if err := reg.Validate(); err != nil {
		outcome := "invalid"
		if errors.Is(err, wizard.ErrUnknownKind) {
			outcome = "unknown_kind"
		}
		if errors.Is(err, validation.ErrInvalid) {
			metrics.RecordValidationFailure(string(model.FormRegistration))
		}
		metrics.RecordRegistration(kind, outcome)
		return model.Receipt{}, err
	}

	receipt, err := s.accept(ctx, model.FormRegistration, key, reg.Normalize(), wizard.Confirmation())
	metrics.RecordRegistration(kind, outcomeOf(receipt, err))
	return receipt, err
}

// SubmitProject validates sub and queues it for delivery.
func (s *Service) SubmitProject(ctx context.Context, key string, sub submission.Submission) (model.Receipt, error) {
	if sub.Repository != nil && sub.Repository.Branch == "" {
		r := *sub.Repository
		r.Branch = submission.DefaultBranch
		sub.Repository = &r
	}
	typ := string(sub.Type)
	if err := sub.Validate(); err != nil {
		if errors.Is(err, validation.ErrInvalid) {
			metrics.RecordValidationFailure(string(model.FormSubmission))
		}
		metrics.RecordSubmission(typ, "invalid")
		return model.Receipt{}, err
	}

	receipt, err := s.accept(ctx, model.FormSubmission, key, sub, submission.Confirmation())
	metrics.RecordSubmission(typ, outcomeOf(receipt, err))
	return receipt, err
}

func (s *Service) accept(ctx context.Context, kind model.FormKind, key string, payload any, note model.Notification) (model.Receipt, error) {
	s.mu.RLock()
	started, deduper, q := s.started, s.deduper, s.formQueue
	s.mu.RUnlock()
	if !started {
		return model.Receipt{}, ErrNotStarted
	}

	dedupeKey := ""
	if key != "" {
		dedupeKey = string(kind) + ":" + key
		if deduper.SeenAndRecord(ctx, dedupeKey) {
			metrics.RecordDuplicateForm(string(kind))
			s.logger.Debug(ctx, "duplicate form ignored",
				logger.String("kind", string(kind)),
				logger.String("idempotency_key", key),
			)
			return model.Receipt{Status: StatusDuplicate, Duplicate: true, Notification: note}, nil
		}
	}

	env := model.Envelope{
		ReceiptID:      uuid.NewString(),
		Kind:           kind,
		IdempotencyKey: key,
		Payload:        payload,
		ReceivedAt:     time.Now(),
	}
	if !q.Enqueue(ctx, env) {
		if dedupeKey != "" {
			deduper.Unrecord(ctx, dedupeKey)
		}
		metrics.RecordErrorByComponent("service", "backpressure")
		s.logger.Warn(ctx, "form rejected, queue full", logger.String("kind", string(kind)))
		return model.Receipt{}, ErrBackpressure
	}

	s.logger.Info(ctx, "form accepted",
		logger.String("kind", string(kind)),
		logger.String("receipt_id", env.ReceiptID),
	)
	return model.Receipt{ID: env.ReceiptID, Status: StatusAccepted, Notification: note}, nil
}

func outcomeOf(r model.Receipt, err error) string {
	switch {
	case errors.Is(err, ErrBackpressure):
		return "rejected"
	case err != nil:
		return "error"
	case r.Duplicate:
		return StatusDuplicate
	default:
		return StatusAccepted
	}
}
