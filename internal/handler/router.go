package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/employee-directory-api/internal/middleware"
	"github.com/employee-directory-api/internal/service"
)

// Router настраивает маршруты API
type Router struct {
	mux         *http.ServeMux
	logger      *slog.Logger
	empHandler  *EmployeeHandler
	authHandler *AuthHandler
	authService service.AuthService
}

// NewRouter создаёт новый роутер
func NewRouter(empHandler *EmployeeHandler, authHandler *AuthHandler, authService service.AuthService, logger *slog.Logger) *Router {
	return &Router{
		mux:         http.NewServeMux(),
		logger:      logger,
		empHandler:  empHandler,
		authHandler: authHandler,
		authService: authService,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	// Все операции над сотрудниками доступны только с валидным токеном
	r.mux.Handle("/employees/", middleware.Auth(r.authService)(http.HandlerFunc(r.employeesRouter)))

	r.mux.HandleFunc("/auth/register/", postOnly(r.authHandler.Register))
	r.mux.HandleFunc("/auth/login/", postOnly(r.authHandler.Login))
	r.mux.HandleFunc("/auth/refresh/", postOnly(r.authHandler.Refresh))

	// Health check
	r.mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

// employeesRouter обрабатывает все запросы к /employees/
func (r *Router) employeesRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/employees")
	path = strings.Trim(path, "/")

	// /employees/ - список и создание
	if path == "" {
		switch req.Method {
		case http.MethodGet:
			r.empHandler.List(w, req)
		case http.MethodPost:
			r.empHandler.Create(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
		return
	}

	parts := strings.Split(path, "/")

	if len(parts) == 1 && parts[0] != "" {
		// /employees/{id}/
		switch req.Method {
		case http.MethodGet:
			r.empHandler.Retrieve(w, req)
		case http.MethodPut:
			r.empHandler.Update(w, req, false)
		case http.MethodPatch:
			r.empHandler.Update(w, req, true)
		case http.MethodDelete:
			r.empHandler.Delete(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
		return
	}

	http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
}

// postOnly допускает только POST запросы
func postOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
			return
		}
		next(w, req)
	}
}
