// internal/forms/jobapplication/handler.go
// Package jobapplication processes job application submissions: schema
// validation, row projection and the append to the applications sheet.
package jobapplication

import (
	"context"
	"time"

	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/config"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/errors"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/logger"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/metrics"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/validation"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/forms"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/forms/projector"
)

// FormName labels this form in logs and metrics.
const FormName = "job-application"

// Store is the append-only row sink behind this form.
type Store interface {
	AppendRow(ctx context.Context, row []string) error
}

// Notifier sends the applicant a confirmation message.
type Notifier interface {
	SendConfirmation(ctx context.Context, toEmail, name, message string) error
}

// Handler executes the job application pipeline.
type Handler struct {
	config   *Config
	store    Store
	notifier Notifier
	logger   logger.Logger
	clock    func() time.Time
}

// NewHandler creates a job application handler. store and notifier may be nil
// when the deployment runs without sheet credentials or email.
func NewHandler(cfg *Config, store Store, notifier Notifier, log logger.Logger) *Handler {
	return &Handler{
		config:   cfg,
		store:    store,
		notifier: notifier,
		logger:   log.WithFields(map[string]interface{}{"form": FormName}),
		clock:    time.Now,
	}
}

// Execute validates the payload, projects it into a sheet row and appends it.
// Violations are returned without an error; the transport layer turns them
// into a 422. The store is consulted only for fully valid submissions.
func (h *Handler) Execute(ctx context.Context, payload map[string]interface{}) (*forms.Receipt, []validation.Violation, error) {
	started := h.clock()
	defer func() {
		metrics.SubmissionDuration.WithLabelValues(FormName).Observe(time.Since(started).Seconds())
	}()

	rec, violations := validation.Validate(payload, Fields)
	if len(violations) > 0 {
		metrics.SubmissionsRejected.WithLabelValues(FormName, "validation").Inc()
		h.logger.Info("Submission rejected", map[string]interface{}{
			"violations": len(violations),
		})
		return nil, violations, nil
	}

	now := h.clock()
	row := projector.Project(rec, projector.RowSpec{
		Columns:         Columns,
		TimestampLayout: h.config.TimestampLayout,
	}, now)

	if err := h.appendRow(ctx, row); err != nil {
		return nil, nil, err
	}

	h.notify(ctx, rec)

	metrics.SubmissionsAccepted.WithLabelValues(FormName).Inc()
	h.logger.Info("Application accepted", map[string]interface{}{
		"position": rec.Get(fieldPositionApplied),
	})

	return &forms.Receipt{
		ApplicantName: rec.Get(fieldFullName),
		Position:      rec.Get(fieldPositionApplied),
		SubmittedAt:   now.Format(h.config.TimestampLayout),
	}, nil, nil
}

// appendRow writes the projected row under the configured store policy.
// Best-effort swallows store faults so a valid application is never lost to
// a sheet outage; strict surfaces them to the caller.
func (h *Handler) appendRow(ctx context.Context, row []string) error {
	if h.store == nil {
		if h.config.Policy == config.PolicyStrict {
			return errors.NewStoreUnavailableError("sheet client not configured")
		}
		h.logger.Warn("Store not configured, accepting submission without persistence", nil)
		return nil
	}

	started := h.clock()
	err := h.store.AppendRow(ctx, row)
	metrics.StoreAppendDuration.WithLabelValues(FormName).Observe(time.Since(started).Seconds())
	if err == nil {
		return nil
	}

	metrics.StoreAppendFailures.WithLabelValues(FormName).Inc()
	if h.config.Policy == config.PolicyStrict {
		return errors.NewStoreAppendFailedError(err)
	}
	h.logger.WithError(err).Warn("Sheet append failed, submission accepted anyway", nil)
	return nil
}

// notify sends the confirmation email. Always best-effort.
func (h *Handler) notify(ctx context.Context, rec *validation.Record) {
	if h.notifier == nil {
		return
	}
	if err := h.notifier.SendConfirmation(ctx, rec.Get(fieldEmail), rec.Get(fieldFullName), SuccessMessage); err != nil {
		h.logger.WithError(err).Warn("Confirmation email failed", map[string]interface{}{
			"email": rec.Get(fieldEmail),
		})
	}
}
