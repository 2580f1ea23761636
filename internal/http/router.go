package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/Poirot101/oct-recruitment-system/internal/common"
	"github.com/Poirot101/oct-recruitment-system/internal/domain/user"
	"github.com/Poirot101/oct-recruitment-system/internal/http/handlers"
	"github.com/Poirot101/oct-recruitment-system/internal/http/metrics"
	httpmw "github.com/Poirot101/oct-recruitment-system/internal/http/middleware"
	"github.com/Poirot101/oct-recruitment-system/internal/http/response"
	"github.com/Poirot101/oct-recruitment-system/internal/observability"
)

type RouterDependencies struct {
	AuthHandler        *handlers.AuthHandler
	UserHandler        *handlers.UserHandler
	ProfileHandler     *handlers.ProfileHandler
	ApplicationHandler *handlers.ApplicationHandler
	AuthMiddleware     *httpmw.AuthMiddleware
	Metrics            *metrics.Collector
	Logger             *observability.Logger
	AllowedOrigins     []string
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
	handler := httpmw.Chain(r.baseHandler(), httpmw.RequestID, httpmw.Logging(r.deps.Logger), httpmw.BodyLimit(maxBodyBytes), httpmw.Recover, httpmw.CORS(r.deps.AllowedOrigins), httpmw.Metrics(r.deps.Metrics), httpmw.Timeout(r.deps.RequestTimeout))
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/":
			response.JSON(w, http.StatusOK, map[string]string{"message": "campus recruitment api"})
			return
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.Metrics.Handler().ServeHTTP(w, req)
			return
		case req.Method == http.MethodPost && path == "/login":
			r.deps.AuthHandler.Login(w, req)
			return
		}

		if strings.HasPrefix(path, "/applications") || strings.HasPrefix(path, "/apply") || strings.HasPrefix(path, "/application/") || strings.HasPrefix(path, "/profiles") || strings.HasPrefix(path, "/create_profile") || strings.HasPrefix(path, "/users") {
			protected := r.deps.AuthMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				r.handleProtected(w, req)
			}))
			protected.ServeHTTP(w, req)
			return
		}

		response.Error(w, common.NewError(common.CodeNotFound, "route not found", nil))
	})
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path

	switch {
	case req.Method == http.MethodGet && path == "/applications":
		httpmw.RequireRole(user.RoleStudent, user.RoleRecruiter, user.RoleAdmin)(http.HandlerFunc(r.deps.ApplicationHandler.List)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/apply":
		httpmw.RequireRole(user.RoleStudent)(http.HandlerFunc(r.deps.ApplicationHandler.Apply)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/application/change_status":
		httpmw.RequireRole(user.RoleRecruiter, user.RoleAdmin)(http.HandlerFunc(r.deps.ApplicationHandler.ChangeStatus)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/application/accept":
		httpmw.RequireRole(user.RoleStudent)(http.HandlerFunc(r.deps.ApplicationHandler.Accept)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/application/reject":
		httpmw.RequireRole(user.RoleStudent)(http.HandlerFunc(r.deps.ApplicationHandler.Reject)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/profiles":
		httpmw.RequireRole(user.RoleStudent, user.RoleRecruiter, user.RoleAdmin)(http.HandlerFunc(r.deps.ProfileHandler.List)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/create_profile":
		httpmw.RequireRole(user.RoleRecruiter, user.RoleAdmin)(http.HandlerFunc(r.deps.ProfileHandler.Create)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/users/me":
		r.deps.UserHandler.Me(w, req)
		return
	case req.Method == http.MethodGet && path == "/users":
		httpmw.RequireRole(user.RoleAdmin)(http.HandlerFunc(r.deps.UserHandler.List)).ServeHTTP(w, req)
		return
	}

	response.Error(w, common.NewError(common.CodeNotFound, "route not found", nil))
}
