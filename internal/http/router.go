package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/Samrat25/HireX/internal/domain/identity"
	"github.com/Samrat25/HireX/internal/http/handlers"
	"github.com/Samrat25/HireX/internal/http/metrics"
	httpmw "github.com/Samrat25/HireX/internal/http/middleware"
)

type RouterDependencies struct {
	JobHandler         *handlers.JobHandler
	ApplicationHandler *handlers.ApplicationHandler
	CandidateHandler   *handlers.CandidateHandler
	ReportHandler      *handlers.ReportHandler
	AnalyticsHandler   *handlers.AnalyticsHandler
	DataHandler        *handlers.DataHandler
	MetricsHandler     *handlers.MetricsHandler
	MeHandler          *handlers.MeHandler
	AuthMiddleware     *httpmw.AuthMiddleware
	Metrics            *metrics.Collector
	RequestTimeout     time.Duration
}

type Router struct {
	deps RouterDependencies
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(), httpmw.RequestID, httpmw.Logging, httpmw.BodyLimit(maxBodyBytes), httpmw.Recover, httpmw.Metrics(r.deps.Metrics), httpmw.Timeout(r.deps.RequestTimeout))
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.MetricsHandler.Get(w, req)
			return
		case req.Method == http.MethodGet && path == "/jobs":
			r.deps.JobHandler.ListActive(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/jobs/"):
			r.deps.JobHandler.Get(w, req)
			return
		}

		if strings.HasPrefix(path, "/me") || strings.HasPrefix(path, "/jobs") || strings.HasPrefix(path, "/applications") || strings.HasPrefix(path, "/candidates") || strings.HasPrefix(path, "/analytics") || strings.HasPrefix(path, "/data") || strings.HasPrefix(path, "/admin") {
			protected := r.deps.AuthMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				r.handleProtected(w, req)
			}))
			protected.ServeHTTP(w, req)
			return
		}

		http.NotFound(w, req)
	})
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path
	admin := httpmw.RequireRole(identity.RoleAdmin)

	switch {
	case req.Method == http.MethodGet && path == "/me":
		r.deps.MeHandler.Get(w, req)
		return
	case req.Method == http.MethodPost && path == "/applications":
		r.deps.ApplicationHandler.Apply(w, req)
		return
	case req.Method == http.MethodGet && path == "/applications":
		r.deps.ApplicationHandler.ListOwn(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/applications/") && strings.HasSuffix(path, "/resume"):
		r.deps.ApplicationHandler.CompleteResume(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/applications/") && strings.HasSuffix(path, "/quiz"):
		r.deps.ApplicationHandler.CompleteQuiz(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/applications/") && strings.HasSuffix(path, "/ai-interview"):
		r.deps.ApplicationHandler.CompleteAIInterview(w, req)
		return
	case req.Method == http.MethodPost && path == "/jobs":
		admin(http.HandlerFunc(r.deps.JobHandler.Create)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/admin/jobs":
		admin(http.HandlerFunc(r.deps.JobHandler.List)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/jobs/") && strings.HasSuffix(path, "/status"):
		admin(http.HandlerFunc(r.deps.JobHandler.UpdateStatus)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/jobs/"):
		admin(http.HandlerFunc(r.deps.JobHandler.Update)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/jobs/"):
		admin(http.HandlerFunc(r.deps.JobHandler.Delete)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/candidates":
		admin(http.HandlerFunc(r.deps.CandidateHandler.List)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/candidates/") && strings.HasSuffix(path, "/final-interview/schedule"):
		admin(http.HandlerFunc(r.deps.CandidateHandler.ScheduleFinalInterview)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/candidates/") && strings.HasSuffix(path, "/final-interview"):
		admin(http.HandlerFunc(r.deps.CandidateHandler.CompleteFinalInterview)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/candidates/") && strings.HasSuffix(path, "/report/send"):
		admin(http.HandlerFunc(r.deps.ReportHandler.Send)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/candidates/") && strings.HasSuffix(path, "/report"):
		admin(http.HandlerFunc(r.deps.ReportHandler.Generate)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/candidates/"):
		admin(http.HandlerFunc(r.deps.CandidateHandler.Get)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/candidates/"):
		admin(http.HandlerFunc(r.deps.CandidateHandler.Delete)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/analytics":
		admin(http.HandlerFunc(r.deps.AnalyticsHandler.Get)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/data/export":
		admin(http.HandlerFunc(r.deps.DataHandler.Export)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/data/import":
		admin(http.HandlerFunc(r.deps.DataHandler.Import)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && path == "/data":
		admin(http.HandlerFunc(r.deps.DataHandler.Clear)).ServeHTTP(w, req)
		return
	}

	http.NotFound(w, req)
}
