// internal/server/server.go
// Package server exposes the submission pipeline over HTTP.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/config"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/errors"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/logger"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/observability"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/validation"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/forms"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/forms/jobapplication"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/forms/projector"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/forms/talentregistration"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/pkg/registry"
)

// FormHandler executes one form pipeline end to end.
type FormHandler interface {
	Execute(ctx context.Context, payload map[string]interface{}) (*forms.Receipt, []validation.Violation, error)
}

// Pinger checks whether a store backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server wires the form handlers, limiter and middleware into one HTTP server.
type Server struct {
	cfg          *config.Config
	logger       logger.Logger
	obs          *observability.Observability
	limiter      Limiter
	registry     *registry.Registry
	applications FormHandler
	registrations FormHandler
	storePinger  Pinger

	httpServer *http.Server
}

// Options carries the collaborators assembled in main.
type Options struct {
	Config        *config.Config
	Logger        logger.Logger
	Observability *observability.Observability
	Limiter       Limiter
	Applications  FormHandler
	Registrations FormHandler
	// StorePinger backs the health endpoint; nil reports disconnected.
	StorePinger Pinger
}

// New builds the server and its route table.
func New(opts Options) (*Server, error) {
	s := &Server{
		cfg:           opts.Config,
		logger:        opts.Logger,
		obs:           opts.Observability,
		limiter:       opts.Limiter,
		registry:      registry.New(),
		applications:  opts.Applications,
		registrations: opts.Registrations,
		storePinger:   opts.StorePinger,
	}

	if err := s.registry.Register(registry.Definition{
		Name:    jobapplication.FormName,
		Route:   "/api/applications",
		Method:  http.MethodPost,
		Policy:  string(opts.Config.Forms.JobApplication.Policy),
		Headers: rowHeaders(jobapplication.Columns),
		Enabled: opts.Config.Forms.JobApplication.Enabled,
	}); err != nil {
		return nil, err
	}
	if err := s.registry.Register(registry.Definition{
		Name:    talentregistration.FormName,
		Route:   "/api/registrations",
		Method:  http.MethodPost,
		Policy:  string(opts.Config.Forms.TalentRegistration.Policy),
		Headers: rowHeaders(talentregistration.Columns),
		Enabled: opts.Config.Forms.TalentRegistration.Enabled,
	}); err != nil {
		return nil, err
	}

	s.httpServer = &http.Server{
		Addr:         opts.Config.Server.Addr(),
		Handler:      s.routes(),
		ReadTimeout:  config.GetDuration(opts.Config.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(opts.Config.Server.WriteTimeout),
	}
	return s, nil
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/applications", s.withRateLimit(s.handleSubmission(jobapplication.FormName, s.applications, jobapplication.SuccessMessage)))
	mux.HandleFunc("POST /api/registrations", s.withRateLimit(s.handleSubmission(talentregistration.FormName, s.registrations, talentregistration.SuccessMessage)))
	mux.HandleFunc("GET /api/positions", s.handlePositions)
	mux.HandleFunc("GET /api/forms", s.handleForms)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /{$}", s.handleRoot)

	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /debug/pprof/", pprof.Index)
	mux.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("GET /debug/pprof/trace", pprof.Trace)

	return s.withRequestLogging(s.withRecovery(s.withCORS(mux)))
}

// handleSubmission decodes the body and runs one form pipeline. The rate
// limiter has already passed by the time the body is read.
func (s *Server) handleSubmission(formName string, handler FormHandler, successMessage string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()

		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			s.writeError(w, errors.NewInvalidPayloadError(err))
			return
		}

		receipt, violations, err := handler.Execute(r.Context(), payload)
		s.obs.RecordSubmissionDuration(r.Context(), time.Since(started), formName)
		switch {
		case err != nil:
			s.obs.RecordSubmission(r.Context(), formName, "error")
			s.writeError(w, err)
		case len(violations) > 0:
			s.obs.RecordSubmission(r.Context(), formName, "rejected")
			s.writeViolations(w, violations)
		default:
			s.obs.RecordSubmission(r.Context(), formName, "accepted")
			s.writeSuccess(w, successMessage, receipt)
		}
	}
}

func (s *Server) handlePositions(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"positions": jobapplication.AvailablePositions,
	})
}

func (s *Server) handleForms(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"forms": s.registry.List(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sheetsStatus := "disconnected"
	if s.storePinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		if err := s.storePinger.Ping(ctx); err == nil {
			sheetsStatus = "connected"
		} else {
			s.logger.WithError(err).Warn("Health check could not reach the store", nil)
		}
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":        "healthy",
		"google_sheets": sheetsStatus,
		"timestamp":     time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": s.cfg.App.Name + " API is running",
		"version": s.cfg.App.Version,
	})
}

// Start runs the HTTP server until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("HTTP server starting", map[string]interface{}{
		"addr": s.httpServer.Addr,
	})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the composed route table, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.routes()
}

func rowHeaders(columns []projector.Column) []string {
	return projector.RowSpec{Columns: columns}.Headers()
}
