package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Samrat25/HireX/internal/app"
	"github.com/Samrat25/HireX/internal/common"
	"github.com/Samrat25/HireX/internal/domain/candidate"
	"github.com/Samrat25/HireX/internal/domain/identity"
	"github.com/Samrat25/HireX/internal/domain/job"
	"github.com/Samrat25/HireX/internal/http/handlers"
	"github.com/Samrat25/HireX/internal/http/metrics"
	httpmw "github.com/Samrat25/HireX/internal/http/middleware"
	"github.com/Samrat25/HireX/internal/kv"
	"github.com/Samrat25/HireX/internal/repository/kvstore"
	"github.com/Samrat25/HireX/internal/security"
)

type memoryProvider struct {
	mu       sync.Mutex
	profiles map[string]*identity.Profile
}

func newMemoryProvider() *memoryProvider {
	return &memoryProvider{profiles: make(map[string]*identity.Profile)}
}

func (p *memoryProvider) GetProfile(ctx context.Context, userID string) (*identity.Profile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	profile := p.profiles[userID]
	if profile == nil {
		return nil, common.NewError(common.CodeNotFound, "profile not found", nil)
	}
	copied := *profile
	return &copied, nil
}

func (p *memoryProvider) CreateProfile(ctx context.Context, profile identity.Profile) (*identity.Profile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	copied := profile
	p.profiles[profile.UserID] = &copied
	result := copied
	return &result, nil
}

func (p *memoryProvider) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	return nil
}

type testEnv struct {
	server   *httptest.Server
	verifier *security.TokenVerifier
}

func newTestEnv(t *testing.T, applyLimit int) *testEnv {
	t.Helper()
	store := kv.NewMemory()
	jobRepo := kvstore.NewJobRepository(store)
	candidateRepo := kvstore.NewCandidateRepository(store)
	bulkWriter := kvstore.NewBulkWriter(store)

	verifier := security.NewTokenVerifier("test-secret")
	identityService := app.NewIdentityService(newMemoryProvider(), nil)
	workflowService := app.NewWorkflowService(candidateRepo, jobRepo, nil)

	collector := metrics.NewCollector()
	router := NewRouter(RouterDependencies{
		JobHandler:         handlers.NewJobHandler(app.NewJobService(jobRepo)),
		ApplicationHandler: handlers.NewApplicationHandler(workflowService, httpmw.NewRateLimiter(), applyLimit, time.Minute),
		CandidateHandler:   handlers.NewCandidateHandler(workflowService),
		ReportHandler:      handlers.NewReportHandler(app.NewReportService(candidateRepo)),
		AnalyticsHandler:   handlers.NewAnalyticsHandler(app.NewAnalyticsService(jobRepo, candidateRepo)),
		DataHandler:        handlers.NewDataHandler(app.NewDataService(jobRepo, candidateRepo, bulkWriter)),
		MetricsHandler:     handlers.NewMetricsHandler(collector),
		MeHandler:          handlers.NewMeHandler(),
		AuthMiddleware:     httpmw.NewAuthMiddleware(verifier, identityService),
		Metrics:            collector,
		RequestTimeout:     5 * time.Second,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return &testEnv{server: server, verifier: verifier}
}

func (e *testEnv) token(t *testing.T, userID, email, name string) string {
	t.Helper()
	token, err := e.verifier.Generate(security.Claims{UserID: userID, Email: email, Name: name}, time.Minute)
	if err != nil {
		t.Fatalf("expected token, got %v", err)
	}
	return token
}

func (e *testEnv) request(t *testing.T, method, path, token, defaultRole string, payload interface{}) *http.Response {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("expected payload encoded, got %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, e.server.URL+path, body)
	if err != nil {
		t.Fatalf("expected request, got %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if defaultRole != "" {
		req.Header.Set("X-Default-Role", defaultRole)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.server.Client().Do(req)
	if err != nil {
		t.Fatalf("expected response, got %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		t.Fatalf("expected body decoded, got %v", err)
	}
}

func TestRouterPublicEndpoints(t *testing.T) {
	env := newTestEnv(t, 5)

	resp := env.request(t, http.MethodGet, "/health", "", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = env.request(t, http.MethodGet, "/jobs", "", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from /jobs, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = env.request(t, http.MethodGet, "/metrics", "", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestRouterRequiresAuth(t *testing.T) {
	env := newTestEnv(t, 5)

	resp := env.request(t, http.MethodPost, "/jobs", "", "", map[string]string{"title": "x"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = env.request(t, http.MethodPost, "/jobs", "garbage", "", map[string]string{"title": "x"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bad token, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestRouterRoleEnforcement(t *testing.T) {
	env := newTestEnv(t, 5)
	candidateToken := env.token(t, "cand-1", "jane@example.com", "Jane Doe")

	resp := env.request(t, http.MethodPost, "/jobs", candidateToken, "", map[string]string{"title": "x"})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for candidate, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = env.request(t, http.MethodGet, "/analytics", candidateToken, "", nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for candidate analytics, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestRouterJobAndApplicationFlow(t *testing.T) {
	env := newTestEnv(t, 5)
	adminToken := env.token(t, "admin-1", "admin@example.com", "Admin")
	candidateToken := env.token(t, "cand-1", "jane@example.com", "Jane Doe")

	resp := env.request(t, http.MethodPost, "/jobs", adminToken, "admin", map[string]string{
		"title":       "Professor of Computer Science",
		"department":  "Computer Science",
		"salary":      "$80,000",
		"deadline":    "2025-12-15",
		"description": "Teach and research.",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 creating job, got %d", resp.StatusCode)
	}
	var posting job.Job
	decodeBody(t, resp, &posting)

	resp = env.request(t, http.MethodPost, "/applications", candidateToken, "", map[string]string{
		"job_id": posting.ID.String(),
		"phone":  "+1 555 0100",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 applying, got %d", resp.StatusCode)
	}
	var application candidate.Candidate
	decodeBody(t, resp, &application)
	if application.Status != candidate.StatusApplied {
		t.Fatalf("expected status applied, got %s", application.Status)
	}

	resp = env.request(t, http.MethodPost, "/applications/"+application.ID.String()+"/resume", candidateToken, "", map[string]interface{}{
		"score":  85,
		"skills": []string{"Go", "SQL"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 completing resume, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	otherToken := env.token(t, "cand-2", "john@example.com", "John Roe")
	resp = env.request(t, http.MethodPost, "/applications/"+application.ID.String()+"/quiz", otherToken, "", map[string]int{"score": 90})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for foreign application, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = env.request(t, http.MethodGet, "/applications", candidateToken, "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 listing own applications, got %d", resp.StatusCode)
	}
	var own []candidate.Candidate
	decodeBody(t, resp, &own)
	if len(own) != 1 {
		t.Fatalf("expected 1 application, got %d", len(own))
	}

	resp = env.request(t, http.MethodGet, "/candidates", adminToken, "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 listing candidates, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = env.request(t, http.MethodGet, "/analytics", adminToken, "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for analytics, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestRouterApplyRateLimit(t *testing.T) {
	env := newTestEnv(t, 1)
	adminToken := env.token(t, "admin-1", "admin@example.com", "Admin")
	candidateToken := env.token(t, "cand-1", "jane@example.com", "Jane Doe")

	resp := env.request(t, http.MethodPost, "/jobs", adminToken, "admin", map[string]string{
		"title":       "Professor of Computer Science",
		"department":  "Computer Science",
		"salary":      "$80,000",
		"deadline":    "2025-12-15",
		"description": "Teach and research.",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 creating job, got %d", resp.StatusCode)
	}
	var posting job.Job
	decodeBody(t, resp, &posting)

	payload := map[string]string{"job_id": posting.ID.String()}
	resp = env.request(t, http.MethodPost, "/applications", candidateToken, "", payload)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 on first apply, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = env.request(t, http.MethodPost, "/applications", candidateToken, "", payload)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 when rate limited, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestRouterMe(t *testing.T) {
	env := newTestEnv(t, 5)
	token := env.token(t, "cand-1", "jane@example.com", "Jane Doe")

	resp := env.request(t, http.MethodGet, "/me", token, "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from /me, got %d", resp.StatusCode)
	}
	var profile identity.Profile
	decodeBody(t, resp, &profile)
	if profile.UserID != "cand-1" || profile.Role != identity.RoleCandidate {
		t.Fatalf("unexpected profile %+v", profile)
	}
}
