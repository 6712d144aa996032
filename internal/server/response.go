// internal/server/response.go
package server

import (
	"encoding/json"
	"net/http"

	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/errors"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/validation"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/forms"
)

// submissionResponse is the caller-visible acceptance envelope.
type submissionResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    *forms.Receipt `json:"data,omitempty"`
}

// errorResponse is the caller-visible failure envelope. Errors carries the
// exhaustive violation list for rejected submissions, nothing otherwise.
type errorResponse struct {
	Success bool                   `json:"success"`
	Code    errors.ErrorCode       `json:"code"`
	Message string                 `json:"message"`
	Errors  []validation.Violation `json:"errors,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.WithError(err).Error("Failed to encode response", nil)
	}
}

func (s *Server) writeSuccess(w http.ResponseWriter, message string, receipt *forms.Receipt) {
	s.writeJSON(w, http.StatusOK, submissionResponse{
		Success: true,
		Message: message,
		Data:    receipt,
	})
}

func (s *Server) writeViolations(w http.ResponseWriter, violations []validation.Violation) {
	s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
		Success: false,
		Code:    errors.ErrCodeValidationFailed,
		Message: "Submission data validation failed",
		Errors:  violations,
	})
}

// writeError maps an internal error to its HTTP status. Only the stable
// message crosses the wire; details stay in the logs.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	stdErr := errors.Normalize(err)
	if stdErr.Code == errors.ErrCodeInternal || stdErr.Code == errors.ErrCodeStoreAppendFailed {
		s.logger.Error("Request failed", map[string]interface{}{
			"code":    string(stdErr.Code),
			"details": stdErr.Details,
		})
	}
	s.writeJSON(w, errors.HTTPStatus(stdErr.Code), errorResponse{
		Success: false,
		Code:    stdErr.Code,
		Message: stdErr.Message,
	})
}
