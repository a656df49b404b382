package employeehandler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"motorph/internal/domain/auth"
	"motorph/internal/domain/employee"
	"motorph/internal/requestctx"
	"motorph/internal/transport/http/api"
	"motorph/internal/transport/http/middleware"
	"motorph/internal/transport/http/shared"
)

const maxPageSize = 200

type Handler struct {
	Service *employee.Service
	Logger  *zap.Logger
}

func NewHandler(svc *employee.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Service: svc, Logger: logger}
}

type EmployeeFields struct {
	FirstName         string  `json:"firstName" validate:"required"`
	LastName          string  `json:"lastName" validate:"required"`
	BirthDate         string  `json:"birthDate" validate:"required,birthdate"`
	Position          string  `json:"position" validate:"required"`
	Status            string  `json:"status" validate:"omitempty,oneof=Regular Probationary"`
	BasicSalary       float64 `json:"basicSalary" validate:"gte=0"`
	RiceSubsidy       float64 `json:"riceSubsidy" validate:"gte=0"`
	PhoneAllowance    float64 `json:"phoneAllowance" validate:"gte=0"`
	ClothingAllowance float64 `json:"clothingAllowance" validate:"gte=0"`
}

func (f EmployeeFields) params(id int) employee.Params {
	return employee.Params{
		ID:                id,
		FirstName:         f.FirstName,
		LastName:          f.LastName,
		BirthDate:         f.BirthDate,
		Position:          f.Position,
		Status:            employee.ParseEmploymentStatus(f.Status),
		BasicSalary:       f.BasicSalary,
		RiceSubsidy:       f.RiceSubsidy,
		PhoneAllowance:    f.PhoneAllowance,
		ClothingAllowance: f.ClothingAllowance,
	}
}

type createPayload struct {
	EmployeeID int `json:"employeeId" validate:"gt=0"`
	EmployeeFields
}

type salaryPayload struct {
	BasicSalary *float64 `json:"basicSalary" validate:"required,gte=0"`
}

type employeeView struct {
	EmployeeID        int                        `json:"employeeId"`
	FirstName         string                     `json:"firstName"`
	LastName          string                     `json:"lastName"`
	FullName          string                     `json:"fullName"`
	BirthDate         string                     `json:"birthDate"`
	Position          string                     `json:"position"`
	Department        string                     `json:"department"`
	Status            string                     `json:"status"`
	BasicSalary       float64                    `json:"basicSalary"`
	RiceSubsidy       float64                    `json:"riceSubsidy"`
	PhoneAllowance    float64                    `json:"phoneAllowance"`
	ClothingAllowance float64                    `json:"clothingAllowance"`
	Permissions       employee.PermissionProfile `json:"permissions"`
}

func newEmployeeView(emp employee.Employee) employeeView {
	return employeeView{
		EmployeeID:        emp.ID(),
		FirstName:         emp.FirstName(),
		LastName:          emp.LastName(),
		FullName:          emp.FullName(),
		BirthDate:         emp.BirthDate(),
		Position:          emp.Position(),
		Department:        string(emp.Department()),
		Status:            emp.Status().String(),
		BasicSalary:       emp.BasicSalary(),
		RiceSubsidy:       emp.RiceSubsidy(),
		PhoneAllowance:    emp.PhoneAllowance(),
		ClothingAllowance: emp.ClothingAllowance(),
		Permissions:       emp.Permissions(),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermEmployeesRead)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermEmployeesWrite)).Post("/", h.handleCreate)
		r.With(middleware.RequirePermission(auth.PermEmployeesRead)).Get("/{employeeID}", h.handleGet)
		r.With(middleware.RequirePermission(auth.PermEmployeesWrite)).Put("/{employeeID}", h.handleUpdate)
		r.With(middleware.RequirePermission(auth.PermEmployeesWrite)).Delete("/{employeeID}", h.handleDelete)
		r.With(middleware.RequirePermission(auth.PermEmployeesWrite)).Put("/{employeeID}/salary", h.handleUpdateSalary)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	all := h.Service.GetAllEmployees()
	start, end := shared.ParsePagination(r, maxPageSize).Bounds(len(all))

	out := make([]employeeView, 0, end-start)
	for _, emp := range all[start:end] {
		out = append(out, newEmployeeView(emp))
	}
	api.Success(w, map[string]any{"employees": out, "total": len(all)}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	var payload createPayload
	if !shared.DecodeJSON(w, r, requestID, &payload) {
		return
	}
	if shared.Reject(w, requestID, payload) {
		return
	}

	emp, err := employee.New(payload.params(payload.EmployeeID))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_employee", err.Error(), requestID)
		return
	}
	if err := h.Service.AddEmployee(r.Context(), &emp); err != nil {
		writeServiceError(w, err, requestID)
		return
	}
	view := newEmployeeView(emp)
	h.logChange(r, "employee created", emp.ID())
	api.Created(w, view, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	id, ok := employeeID(w, r, requestID)
	if !ok {
		return
	}
	emp, err := h.Service.GetEmployeeByID(id)
	if err != nil {
		writeServiceError(w, err, requestID)
		return
	}
	api.Success(w, newEmployeeView(emp), requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	id, ok := employeeID(w, r, requestID)
	if !ok {
		return
	}
	var payload EmployeeFields
	if !shared.DecodeJSON(w, r, requestID, &payload) {
		return
	}
	if shared.Reject(w, requestID, payload) {
		return
	}

	emp, err := employee.New(payload.params(id))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_employee", err.Error(), requestID)
		return
	}
	if err := h.Service.UpdateEmployee(r.Context(), &emp); err != nil {
		writeServiceError(w, err, requestID)
		return
	}
	view := newEmployeeView(emp)
	h.logChange(r, "employee updated", id)
	api.Success(w, view, requestID)
}

func (h *Handler) handleUpdateSalary(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	id, ok := employeeID(w, r, requestID)
	if !ok {
		return
	}
	var payload salaryPayload
	if !shared.DecodeJSON(w, r, requestID, &payload) {
		return
	}
	if shared.Reject(w, requestID, payload) {
		return
	}

	emp, err := h.Service.GetEmployeeByID(id)
	if err != nil {
		writeServiceError(w, err, requestID)
		return
	}
	if err := emp.SetBasicSalary(*payload.BasicSalary); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_employee", err.Error(), requestID)
		return
	}
	if err := h.Service.UpdateEmployee(r.Context(), &emp); err != nil {
		writeServiceError(w, err, requestID)
		return
	}
	h.logChange(r, "employee salary updated", id)
	api.Success(w, newEmployeeView(emp), requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	id, ok := employeeID(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Service.DeleteEmployee(r.Context(), id); err != nil {
		writeServiceError(w, err, requestID)
		return
	}
	h.logChange(r, "employee deleted", id)
	api.Success(w, map[string]any{"deleted": id}, requestID)
}

func (h *Handler) logChange(r *http.Request, msg string, employeeID int) {
	actor := 0
	if claims, ok := middleware.GetClaims(r.Context()); ok {
		actor = claims.EmployeeID
	}
	h.Logger.Info(msg,
		zap.Int("employeeId", employeeID),
		zap.Int("actorId", actor),
		zap.String("requestId", requestctx.GetRequestID(r.Context())),
	)
}

func employeeID(w http.ResponseWriter, r *http.Request, requestID string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "employeeID"))
	if err != nil || id <= 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_employee_id", "employee id must be a positive integer", requestID)
		return 0, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, employee.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", requestID)
	case errors.Is(err, employee.ErrDuplicateID):
		api.Fail(w, http.StatusConflict, "employee_exists", "employee id already exists", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "employee_error", "employee operation failed", requestID)
	}
}
