// internal/forms/jobapplication/handler_test.go
package jobapplication

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/config"
	commonerrors "github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/errors"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/logger"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/validation"
)

// ==========================
// Test Helper Functions
// ==========================

type fakeStore struct {
	rows [][]string
	err  error
}

func (s *fakeStore) AppendRow(ctx context.Context, row []string) error {
	if s.err != nil {
		return s.err
	}
	s.rows = append(s.rows, row)
	return nil
}

type fakeNotifier struct {
	sent []string
	err  error
}

func (n *fakeNotifier) SendConfirmation(ctx context.Context, toEmail, name, message string) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, toEmail)
	return nil
}

func createTestConfig(policy config.StorePolicy) *Config {
	return &Config{
		Policy:          policy,
		TimestampLayout: time.RFC3339,
	}
}

func createValidApplication() map[string]interface{} {
	return map[string]interface{}{
		"fullName":        "Jane Nguyen",
		"email":           "jane.nguyen@example.com",
		"phone":           "+61 412 345 678",
		"positionApplied": "Backend Developer",
		"experienceLevel": "Mid Level",
		"currentCompany":  "Acme Pty Ltd",
		"expectedSalary":  "95000 AUD",
		"availability":    "2 weeks",
		"coverLetter":     "I have five years of experience building backend services and would love to join the team.",
		"linkedinProfile": "https://linkedin.com/in/janenguyen",
		"skills":          "Go, PostgreSQL, Kubernetes",
		"education":       "BSc Computer Science, UNSW",
	}
}

func newHandler(t *testing.T, policy config.StorePolicy, store Store, notifier Notifier) *Handler {
	h := NewHandler(createTestConfig(policy), store, notifier, logger.NewTestLogger(t))
	frozen := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	h.clock = func() time.Time { return frozen }
	return h
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_Success(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	h := newHandler(t, config.PolicyBestEffort, store, notifier)

	receipt, violations, err := h.Execute(context.Background(), createValidApplication())

	require.NoError(t, err)
	assert.Empty(t, violations)
	require.NotNil(t, receipt)
	assert.Equal(t, "Jane Nguyen", receipt.ApplicantName)
	assert.Equal(t, "Backend Developer", receipt.Position)
	assert.Equal(t, "2025-03-14T09:26:53Z", receipt.SubmittedAt)

	require.Len(t, store.rows, 1)
	row := store.rows[0]
	require.Len(t, row, len(Columns))
	assert.Equal(t, "2025-03-14T09:26:53Z", row[0])
	assert.Equal(t, "Jane Nguyen", row[1])
	assert.Equal(t, "jane.nguyen@example.com", row[2])
	assert.Equal(t, "Backend Developer", row[4])
	// Optional fields left out project as empty cells, never omitted ones.
	assert.Equal(t, "", row[11]) // portfolio URL
	assert.Equal(t, "", row[14]) // references

	assert.Equal(t, []string{"jane.nguyen@example.com"}, notifier.sent)
}

func TestHandler_Execute_ValidationFailures(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(payload map[string]interface{})
		field    string
		kind     validation.ViolationKind
	}{
		{
			name:   "missing full name",
			mutate: func(p map[string]interface{}) { delete(p, "fullName") },
			field:  "fullName",
			kind:   validation.ViolationMissing,
		},
		{
			name:   "whitespace-only cover letter counts as missing",
			mutate: func(p map[string]interface{}) { p["coverLetter"] = "   " },
			field:  "coverLetter",
			kind:   validation.ViolationMissing,
		},
		{
			name:   "short full name",
			mutate: func(p map[string]interface{}) { p["fullName"] = "J" },
			field:  "fullName",
			kind:   validation.ViolationLength,
		},
		{
			name:   "bad email",
			mutate: func(p map[string]interface{}) { p["email"] = "not-an-email" },
			field:  "email",
			kind:   validation.ViolationFormat,
		},
		{
			name:   "phone too short",
			mutate: func(p map[string]interface{}) { p["phone"] = "123" },
			field:  "phone",
			kind:   validation.ViolationLength,
		},
		{
			name:   "phone with no digits",
			mutate: func(p map[string]interface{}) { p["phone"] = "abc-defg-hijk" },
			field:  "phone",
			kind:   validation.ViolationFormat,
		},
		{
			name:   "phone with leading zero",
			mutate: func(p map[string]interface{}) { p["phone"] = "0123456789" },
			field:  "phone",
			kind:   validation.ViolationFormat,
		},
		{
			name:   "unknown experience level",
			mutate: func(p map[string]interface{}) { p["experienceLevel"] = "Intern" },
			field:  "experienceLevel",
			kind:   validation.ViolationEnum,
		},
		{
			name:   "linkedin without scheme",
			mutate: func(p map[string]interface{}) { p["linkedinProfile"] = "linkedin.com/in/jane" },
			field:  "linkedinProfile",
			kind:   validation.ViolationFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			h := newHandler(t, config.PolicyBestEffort, store, nil)

			payload := createValidApplication()
			tt.mutate(payload)

			receipt, violations, err := h.Execute(context.Background(), payload)

			require.NoError(t, err)
			assert.Nil(t, receipt)
			require.Len(t, violations, 1)
			assert.Equal(t, tt.field, violations[0].Field)
			assert.Equal(t, tt.kind, violations[0].Kind)

			// Rejected submissions never reach the store.
			assert.Empty(t, store.rows)
		})
	}
}

func TestHandler_Execute_ReportsAllViolationsTogether(t *testing.T) {
	h := newHandler(t, config.PolicyBestEffort, &fakeStore{}, nil)

	payload := createValidApplication()
	delete(payload, "email")
	payload["fullName"] = "X"
	payload["availability"] = "whenever"

	_, violations, err := h.Execute(context.Background(), payload)

	require.NoError(t, err)
	require.Len(t, violations, 3)
	fields := []string{violations[0].Field, violations[1].Field, violations[2].Field}
	assert.Equal(t, []string{"fullName", "email", "availability"}, fields)
}

// ==========================
// Store Policy Tests
// ==========================

func TestHandler_Execute_BestEffortSwallowsAppendFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("quota exceeded")}
	h := newHandler(t, config.PolicyBestEffort, store, nil)

	receipt, violations, err := h.Execute(context.Background(), createValidApplication())

	require.NoError(t, err)
	assert.Empty(t, violations)
	require.NotNil(t, receipt)
	assert.Equal(t, "Jane Nguyen", receipt.ApplicantName)
}

func TestHandler_Execute_BestEffortWithoutStore(t *testing.T) {
	h := newHandler(t, config.PolicyBestEffort, nil, nil)

	receipt, violations, err := h.Execute(context.Background(), createValidApplication())

	require.NoError(t, err)
	assert.Empty(t, violations)
	assert.NotNil(t, receipt)
}

func TestHandler_Execute_StrictSurfacesAppendFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("quota exceeded")}
	h := newHandler(t, config.PolicyStrict, store, nil)

	receipt, violations, err := h.Execute(context.Background(), createValidApplication())

	require.Error(t, err)
	assert.Nil(t, receipt)
	assert.Empty(t, violations)
	assert.True(t, commonerrors.IsCode(err, commonerrors.ErrCodeStoreAppendFailed))
}

func TestHandler_Execute_StrictWithoutStore(t *testing.T) {
	h := newHandler(t, config.PolicyStrict, nil, nil)

	receipt, _, err := h.Execute(context.Background(), createValidApplication())

	require.Error(t, err)
	assert.Nil(t, receipt)
	assert.True(t, commonerrors.IsCode(err, commonerrors.ErrCodeStoreUnavailable))
}

func TestHandler_Execute_NotifierFailureDoesNotFailSubmission(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{err: errors.New("ses throttled")}
	h := newHandler(t, config.PolicyBestEffort, store, notifier)

	receipt, violations, err := h.Execute(context.Background(), createValidApplication())

	require.NoError(t, err)
	assert.Empty(t, violations)
	assert.NotNil(t, receipt)
	assert.Len(t, store.rows, 1)
}

func TestHandler_Execute_Deterministic(t *testing.T) {
	store := &fakeStore{}
	h := newHandler(t, config.PolicyBestEffort, store, nil)

	_, _, err := h.Execute(context.Background(), createValidApplication())
	require.NoError(t, err)
	_, _, err = h.Execute(context.Background(), createValidApplication())
	require.NoError(t, err)

	require.Len(t, store.rows, 2)
	assert.Equal(t, store.rows[0], store.rows[1])
}
