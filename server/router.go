package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"careerportal-api/handlers"
	"careerportal-api/middleware"
	"careerportal-api/services/auth"
)

// Dependencies are the handlers and optional collaborators the router wires.
// RateLimiter and Auth may be nil, which disables rate limiting and recruiter
// authentication respectively.
type Dependencies struct {
	Payments     *handlers.PaymentHandler
	Resumes      *handlers.ResumeHandler
	Applications *handlers.ApplicationHandler
	Health       *handlers.HealthHandler
	RateLimiter  *middleware.RateLimiter
	Auth         *auth.JWTService
	CORSOrigins  string
}

func NewRouter(deps Dependencies) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.CORS(deps.CORSOrigins))
	router.Use(middleware.Logging)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	var payment http.Handler = http.HandlerFunc(deps.Payments.ProcessPayment)
	if deps.RateLimiter != nil {
		payment = deps.RateLimiter.Middleware(payment)
	}
	api.Handle("/payment", payment).Methods(http.MethodPost, http.MethodOptions)

	api.HandleFunc("/resume", deps.Resumes.SaveResume).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/resumebuilder", deps.Resumes.SaveResumeUser).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/experience", deps.Resumes.SaveExperience).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/health", deps.Health.Check).Methods(http.MethodGet)

	recruiter := func(h http.HandlerFunc) http.Handler {
		if deps.Auth == nil {
			return h
		}
		return middleware.RequireRole(deps.Auth, auth.RoleRecruiter)(h)
	}
	router.Handle("/applications", recruiter(deps.Applications.ListApplications)).
		Methods(http.MethodGet, http.MethodOptions)
	router.Handle("/applications/{id:[0-9]+}/status", recruiter(deps.Applications.UpdateStatus)).
		Methods(http.MethodPut, http.MethodOptions)

	return router
}
