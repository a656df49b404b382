package authhandler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"motorph/internal/domain/auth"
	"motorph/internal/domain/employee"
	"motorph/internal/requestctx"
	"motorph/internal/transport/http/api"
	"motorph/internal/transport/http/middleware"
	"motorph/internal/transport/http/shared"
)

type Handler struct {
	Auth      *auth.Service
	Directory auth.Directory
	Secret    string
	TTL       time.Duration
	Logger    *zap.Logger
}

func NewHandler(svc *auth.Service, directory auth.Directory, secret string, ttl time.Duration, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Auth: svc, Directory: directory, Secret: secret, TTL: ttl, Logger: logger}
}

type loginRequest struct {
	EmployeeID int    `json:"employeeId" validate:"gt=0"`
	Password   string `json:"password" validate:"required"`
}

type profileView struct {
	EmployeeID  int                        `json:"employeeId"`
	FirstName   string                     `json:"firstName"`
	LastName    string                     `json:"lastName"`
	FullName    string                     `json:"fullName"`
	Position    string                     `json:"position"`
	Department  string                     `json:"department"`
	Status      string                     `json:"status"`
	Permissions employee.PermissionProfile `json:"permissions"`
}

func newProfileView(emp employee.Employee) profileView {
	return profileView{
		EmployeeID:  emp.ID(),
		FirstName:   emp.FirstName(),
		LastName:    emp.LastName(),
		FullName:    emp.FullName(),
		Position:    emp.Position(),
		Department:  string(emp.Department()),
		Status:      emp.Status().String(),
		Permissions: emp.Permissions(),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.HandleLogin)
	r.With(middleware.RequirePermission(auth.PermSelfRead)).Get("/me", h.HandleMe)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	var payload loginRequest
	if !shared.DecodeJSON(w, r, requestID, &payload) {
		return
	}
	if shared.Reject(w, requestID, payload) {
		return
	}

	emp, err := h.Auth.Authenticate(payload.EmployeeID, payload.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.Logger.Info("login rejected", zap.Int("employeeId", payload.EmployeeID), zap.String("requestId", requestID))
			api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "login_failed", "login failed", requestID)
		return
	}

	claims := auth.ClaimsFor(emp)
	token, err := auth.GenerateToken(h.Secret, claims, h.TTL)
	if err != nil {
		h.Logger.Error("issue token failed", zap.Int("employeeId", emp.ID()), zap.Error(err))
		api.Fail(w, http.StatusInternalServerError, "token_error", "failed to issue token", requestID)
		return
	}

	h.Logger.Info("login", zap.Int("employeeId", emp.ID()), zap.String("requestId", requestID))
	api.Success(w, map[string]any{
		"token":       token,
		"employee":    newProfileView(emp),
		"permissions": claims.Permissions,
	}, requestID)
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	emp, err := h.Directory.GetEmployeeByID(claims.EmployeeID)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", requestID)
		return
	}
	api.Success(w, map[string]any{
		"employee":    newProfileView(emp),
		"permissions": claims.Permissions,
	}, requestID)
}
