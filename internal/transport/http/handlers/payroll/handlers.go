package payrollhandler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"motorph/internal/domain/auth"
	"motorph/internal/domain/employee"
	"motorph/internal/domain/payroll"
	"motorph/internal/requestctx"
	"motorph/internal/transport/http/api"
	"motorph/internal/transport/http/middleware"
)

type Handler struct {
	Employees *employee.Service
	Engine    *payroll.Engine
	PDF       *payroll.PDFRenderer
	Logger    *zap.Logger
	Now       func() time.Time
}

func NewHandler(employees *employee.Service, engine *payroll.Engine, pdf *payroll.PDFRenderer, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Employees: employees, Engine: engine, PDF: pdf, Logger: logger, Now: time.Now}
}

type periodView struct {
	Range string `json:"range"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// hoursView pairs worked hours with the basic salary they earn, without
// allowances or deductions.
type hoursView struct {
	EmployeeID    int     `json:"employeeId"`
	Range         string  `json:"range,omitempty"`
	Hours         float64 `json:"hours"`
	SalaryOnHours float64 `json:"salaryOnHours"`
}

func (h *Handler) newHoursView(emp *employee.Employee, rangeText string, hours float64) hoursView {
	return hoursView{
		EmployeeID:    emp.ID(),
		Range:         rangeText,
		Hours:         hours,
		SalaryOnHours: h.Engine.SalaryOnHours(emp, hours),
	}
}

type resultView struct {
	payroll.Result
	Formatted map[string]string `json:"formatted"`
}

func newResultView(result payroll.Result) resultView {
	return resultView{
		Result: result,
		Formatted: map[string]string{
			"gross":           payroll.FormatAmount(result.Gross),
			"totalDeductions": payroll.FormatAmount(result.TotalDeductions),
			"net":             payroll.FormatAmount(result.Net),
		},
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermPayrollRead)).Get("/periods", h.handleListPeriods)
		r.With(middleware.RequirePermission(auth.PermPayrollRead)).Get("/employees/{employeeID}", h.handleCompute)
		r.With(middleware.RequirePermission(auth.PermPayrollRead)).Get("/employees/{employeeID}/hours", h.handleHours)
		r.With(middleware.RequirePermission(auth.PermPayrollRead)).Get("/employees/{employeeID}/net", h.handleNet)
		r.With(middleware.RequirePermission(auth.PermPayrollRead)).Get("/employees/{employeeID}/payslip", h.handlePayslip)
		r.With(middleware.RequirePermission(auth.PermPayrollExport)).Get("/employees/{employeeID}/payslip.pdf", h.handlePayslipPDF)
		r.With(middleware.RequirePermission(auth.PermPayrollExport)).Get("/register.csv", h.handleRegister)
	})
}

func (h *Handler) handleListPeriods(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	periods := payroll.DefaultPayPeriods()
	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year < 1 || year > 9999 {
			api.Fail(w, http.StatusBadRequest, "invalid_year", "year must be between 1 and 9999", requestID)
			return
		}
		periods = payroll.PayPeriods(year, time.January, time.December)
	}

	out := make([]periodView, 0, len(periods))
	for _, p := range periods {
		out = append(out, periodView{
			Range: p.String(),
			Start: p.Start.Format(payroll.DateLayout),
			End:   p.End.Format(payroll.DateLayout),
		})
	}
	api.Success(w, out, requestID)
}

func (h *Handler) handleCompute(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	emp, ok := h.lookup(w, r, requestID)
	if !ok {
		return
	}
	result, err := h.Engine.Compute(&emp)
	if err != nil {
		h.fail(w, err, requestID)
		return
	}
	api.Success(w, newResultView(result), requestID)
}

func (h *Handler) handleHours(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	emp, ok := h.lookup(w, r, requestID)
	if !ok {
		return
	}

	rangeText := r.URL.Query().Get("range")
	if rangeText == "" {
		api.Success(w, h.newHoursView(&emp, "", h.Engine.StandardHours(&emp)), requestID)
		return
	}
	if _, err := payroll.ParseDateRange(rangeText); err != nil {
		h.fail(w, err, requestID)
		return
	}
	api.Success(w, h.newHoursView(&emp, rangeText, h.Engine.HoursWorkedForRange(&emp, rangeText)), requestID)
}

// handleNet computes on the range query when given, else on the hours query,
// else on the fixed monthly basis. Periods without worked hours yield a zero
// result rather than an error.
func (h *Handler) handleNet(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	emp, ok := h.lookup(w, r, requestID)
	if !ok {
		return
	}

	query := r.URL.Query()
	var (
		result payroll.Result
		err    error
	)
	switch {
	case query.Get("range") != "":
		result, err = h.Engine.ComputeForRange(&emp, query.Get("range"))
	case query.Get("hours") != "":
		hours, parseErr := strconv.ParseFloat(query.Get("hours"), 64)
		if parseErr != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_hours", "hours must be a number", requestID)
			return
		}
		result, err = h.Engine.ComputeForHours(&emp, hours)
	default:
		result, err = h.Engine.Compute(&emp)
	}
	if err != nil && !errors.Is(err, payroll.ErrInvalidHours) {
		h.fail(w, err, requestID)
		return
	}
	api.Success(w, newResultView(result), requestID)
}

func (h *Handler) handlePayslip(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	emp, ok := h.lookup(w, r, requestID)
	if !ok {
		return
	}
	api.Write(w, "text/plain; charset=utf-8", []byte(h.Engine.Payslip(&emp)))
}

func (h *Handler) handlePayslipPDF(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	emp, ok := h.lookup(w, r, requestID)
	if !ok {
		return
	}

	rangeText := r.URL.Query().Get("range")
	var (
		result payroll.Result
		err    error
	)
	if rangeText != "" {
		result, err = h.Engine.ComputeForRange(&emp, rangeText)
	} else {
		result, err = h.Engine.Compute(&emp)
	}
	if err != nil && !errors.Is(err, payroll.ErrInvalidHours) {
		h.fail(w, err, requestID)
		return
	}

	data, err := h.PDF.Render(&emp, result, rangeText)
	if err != nil {
		h.Logger.Error("render payslip failed", zap.Int("employeeId", emp.ID()), zap.Error(err))
		api.Fail(w, http.StatusInternalServerError, "payslip_failed", "failed to render payslip", requestID)
		return
	}
	path, err := h.PDF.Archive(emp.ID(), data, h.Now())
	if err != nil {
		h.Logger.Warn("archive payslip failed", zap.Int("employeeId", emp.ID()), zap.Error(err))
	} else if path != "" {
		h.Logger.Info("payslip archived", zap.Int("employeeId", emp.ID()), zap.String("path", path))
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payslip-%d.pdf", emp.ID()))
	api.Write(w, "application/pdf", data)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	data, err := payroll.RegisterCSV(payroll.BuildRegister(h.Employees.GetAllEmployees()))
	if err != nil {
		h.Logger.Error("export register failed", zap.Error(err))
		api.Fail(w, http.StatusInternalServerError, "register_failed", "failed to export register", requestID)
		return
	}
	w.Header().Set("Content-Disposition", "attachment; filename=payroll-register.csv")
	api.Write(w, "text/csv; charset=utf-8", data)
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request, requestID string) (employee.Employee, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "employeeID"))
	if err != nil || id <= 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_employee_id", "employee id must be a positive integer", requestID)
		return employee.Employee{}, false
	}
	emp, err := h.Employees.GetEmployeeByID(id)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", requestID)
		return employee.Employee{}, false
	}
	return emp, true
}

func (h *Handler) fail(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, payroll.ErrInvalidDateRange):
		api.Fail(w, http.StatusBadRequest, "invalid_range", "range must be \"YYYY-MM-DD to YYYY-MM-DD\"", requestID)
	default:
		h.Logger.Error("payroll computation failed", zap.Error(err))
		api.Fail(w, http.StatusInternalServerError, "payroll_failed", "payroll computation failed", requestID)
	}
}
