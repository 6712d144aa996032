// test/e2e/e2e_test.go
// End-to-end tests: real handlers, real validation and projection, a real
// HTTP server from httptest. Only the sheet store and email are faked.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/config"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/logger"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/observability"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/forms/jobapplication"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/forms/talentregistration"
	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/server"
)

type memoryStore struct {
	mu   sync.Mutex
	rows [][]string
	err  error
}

func (s *memoryStore) AppendRow(ctx context.Context, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.rows = append(s.rows, append([]string(nil), row...))
	return nil
}

func (s *memoryStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

func (s *memoryStore) Ping(ctx context.Context) error { return nil }

type fixture struct {
	ts          *httptest.Server
	jobStore    *memoryStore
	talentStore *memoryStore
}

func setup(t *testing.T, perMinute int) *fixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Name = "submission-server"
	cfg.App.Version = "1.0.0"
	cfg.Server.Port = 0
	cfg.Server.FrontendURL = "http://localhost:3000"
	cfg.RateLimit.PerMinute = perMinute
	cfg.Forms.JobApplication.Enabled = true
	cfg.Forms.JobApplication.Policy = config.PolicyBestEffort
	cfg.Forms.TalentRegistration.Enabled = true
	cfg.Forms.TalentRegistration.Policy = config.PolicyStrict

	log := logger.NewTestLogger(t)
	jobStore := &memoryStore{}
	talentStore := &memoryStore{}

	srv, err := server.New(server.Options{
		Config:        cfg,
		Logger:        log,
		Observability: observability.New("e2e"),
		Limiter:       server.NewLocalLimiter(perMinute),
		Applications: jobapplication.NewHandler(
			jobapplication.LoadConfig(cfg.Forms.JobApplication), jobStore, nil, log),
		Registrations: talentregistration.NewHandler(
			talentregistration.LoadConfig(cfg.Forms.TalentRegistration), talentStore, nil, log),
		StorePinger: jobStore,
	})
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return &fixture{ts: ts, jobStore: jobStore, talentStore: talentStore}
}

func (f *fixture) post(t *testing.T, path string, payload map[string]interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(f.ts.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func validApplication() map[string]interface{} {
	return map[string]interface{}{
		"fullName":        "Jane Nguyen",
		"email":           "jane.nguyen@example.com",
		"phone":           "+61 412 345 678",
		"positionApplied": "Backend Developer",
		"experienceLevel": "Mid Level",
		"availability":    "2 weeks",
		"coverLetter":     "I have five years of experience building backend services and would love to join the team.",
		"skills":          "Go, PostgreSQL, Kubernetes",
		"education":       "BSc Computer Science, UNSW",
	}
}

func validRegistration() map[string]interface{} {
	agreements := make([]interface{}, len(talentregistration.Agreements))
	for i, a := range talentregistration.Agreements {
		agreements[i] = a
	}
	return map[string]interface{}{
		"fullName":            "Minh Tran",
		"dateOfBirth":         "2003-07-21",
		"email":               "minh.tran@example.com",
		"mobileNumber":        "+61 400 111 222",
		"facebookProfile":     "https://facebook.com/minhtran",
		"countryOfOrigin":     "Vietnam",
		"currentUniversity":   "University of Sydney",
		"nswResident":         "yes",
		"videoLink":           "https://youtube.com/watch?v=abc123",
		"performanceCategory": []interface{}{"Vocal"},
		"agreements":          agreements,
		"heardAboutUs":        []interface{}{"UAVS Website"},
	}
}

func TestE2E_ApplicationLifecycle(t *testing.T) {
	f := setup(t, 100)

	resp, body := f.post(t, "/api/applications", validApplication())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Jane Nguyen", data["applicant_name"])
	assert.Equal(t, "Backend Developer", data["position"])
	assert.NotEmpty(t, data["submitted_at"])

	require.Equal(t, 1, f.jobStore.count())
	assert.Len(t, f.jobStore.rows[0], 15)
}

func TestE2E_RegistrationLifecycle(t *testing.T) {
	f := setup(t, 100)

	resp, body := f.post(t, "/api/registrations", validRegistration())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Minh Tran", data["applicant_name"])
	assert.Equal(t, "n/a", data["position"])

	require.Equal(t, 1, f.talentStore.count())
	assert.Len(t, f.talentStore.rows[0], 17)
}

func TestE2E_ValidationFailureListsEveryProblem(t *testing.T) {
	f := setup(t, 100)

	payload := validApplication()
	delete(payload, "email")
	payload["experienceLevel"] = "Intern"

	resp, body := f.post(t, "/api/applications", payload)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, false, body["success"])

	errs := body["errors"].([]interface{})
	require.Len(t, errs, 2)
	first := errs[0].(map[string]interface{})
	assert.Equal(t, "email", first["field"])
	assert.Equal(t, "missing", first["violation_kind"])

	assert.Equal(t, 0, f.jobStore.count())
}

func TestE2E_StrictPolicySurfacesStoreFailure(t *testing.T) {
	f := setup(t, 100)
	f.talentStore.err = fmt.Errorf("quota exceeded")

	resp, body := f.post(t, "/api/registrations", validRegistration())
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestE2E_BestEffortPolicySwallowsStoreFailure(t *testing.T) {
	f := setup(t, 100)
	f.jobStore.err = fmt.Errorf("quota exceeded")

	resp, body := f.post(t, "/api/applications", validApplication())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
}

func TestE2E_RateLimit(t *testing.T) {
	f := setup(t, 5)

	for i := 0; i < 5; i++ {
		resp, _ := f.post(t, "/api/applications", validApplication())
		assert.Equal(t, http.StatusOK, resp.StatusCode, "request %d", i+1)
	}
	resp, _ := f.post(t, "/api/applications", validApplication())
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, 5, f.jobStore.count())
}

func TestE2E_AuxiliaryEndpoints(t *testing.T) {
	f := setup(t, 100)

	resp, err := http.Get(f.ts.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "connected", health["google_sheets"])

	resp2, err := http.Get(f.ts.URL + "/api/positions")
	require.NoError(t, err)
	defer resp2.Body.Close()
	var positions map[string]interface{}
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&positions))
	assert.Len(t, positions["positions"], 15)
}

func TestE2E_ConcurrentSubmissions(t *testing.T) {
	f := setup(t, 1000)

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			raw, _ := json.Marshal(validApplication())
			resp, err := http.Post(f.ts.URL+"/api/applications", "application/json", bytes.NewReader(raw))
			if err == nil {
				resp.Body.Close()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, n, f.jobStore.count())
}
