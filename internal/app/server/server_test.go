package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"motorph/internal/platform/config"
)

const employeeCSV = `Employee #,Last Name,First Name,Birthday,Address,Phone Number,SSS #,Philhealth #,TIN #,Pag-ibig #,Status,Position,Immediate Supervisor,Basic Salary,Rice Subsidy,Phone Allowance,Clothing Allowance,Gross Semi-monthly Rate,Hourly Rate
10001,Garcia,Manuel III,10/11/1983,"Valero Carpark Building, Makati City",966-860-270,44-4506057-3,820126853951,442-605-657-000,691295330870,Regular,Chief Executive Officer,N/A,"90,000","1,500","2,000","1,000","45,000",535.71
10006,Villanueva,Andrea Mae,02/14/1988,"Makati City",918-621-603,49-1632020-8,382189453145,317-674-022-000,441093369646,Regular,HR Manager,Garcia Manuel III,"52,670","1,500","1,000","1,000","26,335",313.51
10011,Aquino,Bianca Sofia,08/04/1989,"Quezon City",882-550-989,30-8870406-2,171519773969,191-754-260-000,210133802079,Regular,Account Manager,Garcia Manuel III,"53,500","1,500","1,000","1,000","26,750",318.45
`

const attendanceCSV = `Employee #,Last Name,First Name,Date,Log In,Log Out
10001,Garcia,Manuel III,06/03/2024,8:00,17:00
10001,Garcia,Manuel III,06/04/2024,8:00,16:00
10001,Garcia,Manuel III,06/20/2024,8:00,17:00
`

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	employees := filepath.Join(dir, "employees.csv")
	attendance := filepath.Join(dir, "attendance.csv")
	if err := os.WriteFile(employees, []byte(employeeCSV), 0o644); err != nil {
		t.Fatalf("write employees: %v", err)
	}
	if err := os.WriteFile(attendance, []byte(attendanceCSV), 0o644); err != nil {
		t.Fatalf("write attendance: %v", err)
	}

	cfg := config.Config{
		Environment:    "test",
		EmployeeFile:   employees,
		AttendanceFile: attendance,
		JWTSecret:      "test-secret",
		TokenTTL:       time.Hour,
		PayslipDir:     filepath.Join(dir, "payslips"),
		MaxBodyBytes:   1 << 20,
	}
	app, err := New(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	t.Cleanup(app.Close)
	return app
}

func do(t *testing.T, app *App, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return env
}

func login(t *testing.T, app *App, id int, password string) string {
	t.Helper()
	rec := do(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]any{"employeeId": id, "password": password})
	if rec.Code != http.StatusOK {
		t.Fatalf("login %d: expected 200, got %d: %s", id, rec.Code, rec.Body.String())
	}
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(decode(t, rec).Data, &data); err != nil || data.Token == "" {
		t.Fatalf("expected token, got %s", rec.Body.String())
	}
	return data.Token
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := newTestApp(t)

	for _, body := range []map[string]any{
		{"employeeId": 10006, "password": "02/15/1988"},
		{"employeeId": 99999, "password": "02/14/1988"},
		{"employeeId": 10006, "password": "2/14/1988"},
	} {
		rec := do(t, app, http.MethodPost, "/api/v1/auth/login", "", body)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if env := decode(t, rec); env.Error == nil || env.Error.Code != "invalid_credentials" {
			t.Fatalf("unexpected body %s", rec.Body.String())
		}
	}
}

func TestMe(t *testing.T) {
	app := newTestApp(t)

	if rec := do(t, app, http.MethodGet, "/api/v1/me", "", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	token := login(t, app, 10001, "10/11/1983")
	rec := do(t, app, http.MethodGet, "/api/v1/me", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"fullName":"Manuel III Garcia"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestDepartmentGates(t *testing.T) {
	app := newTestApp(t)
	hr := login(t, app, 10006, "02/14/1988")
	finance := login(t, app, 10011, "08/04/1989")
	ops := login(t, app, 10001, "10/11/1983")

	tests := []struct {
		name  string
		token string
		path  string
		want  int
	}{
		{name: "hr lists employees", token: hr, path: "/api/v1/employees", want: http.StatusOK},
		{name: "hr cannot run payroll", token: hr, path: "/api/v1/payroll/employees/10001", want: http.StatusForbidden},
		{name: "finance runs payroll", token: finance, path: "/api/v1/payroll/employees/10001", want: http.StatusOK},
		{name: "finance cannot list employees", token: finance, path: "/api/v1/employees", want: http.StatusForbidden},
		{name: "operations denied payroll", token: ops, path: "/api/v1/payroll/register.csv", want: http.StatusForbidden},
		{name: "anonymous payroll", token: "", path: "/api/v1/payroll/periods", want: http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if rec := do(t, app, http.MethodGet, tc.path, tc.token, nil); rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}

func TestPayrollEndpoints(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, 10011, "08/04/1989")

	rec := do(t, app, http.MethodGet, "/api/v1/payroll/employees/10001/payslip", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("payslip: expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Net Salary: 77862.50") {
		t.Fatalf("unexpected payslip:\n%s", rec.Body.String())
	}

	rec = do(t, app, http.MethodGet, "/api/v1/payroll/employees/10001/hours?range=2024-06-01%20to%202024-06-15", token, nil)
	var hours struct {
		Hours float64 `json:"hours"`
	}
	if err := json.Unmarshal(decode(t, rec).Data, &hours); err != nil || hours.Hours != 17 {
		t.Fatalf("expected 17 hours, got %s", rec.Body.String())
	}

	rec = do(t, app, http.MethodGet, "/api/v1/payroll/employees/10001/hours", token, nil)
	if err := json.Unmarshal(decode(t, rec).Data, &hours); err != nil || hours.Hours != 160 {
		t.Fatalf("expected 160 standard hours, got %s", rec.Body.String())
	}

	rec = do(t, app, http.MethodGet, "/api/v1/payroll/employees/10001/net?range=2024-06-01to2024-06-15", token, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed range: expected 400, got %d", rec.Code)
	}

	rec = do(t, app, http.MethodGet, "/api/v1/payroll/employees/10001/net?hours=0", token, nil)
	var result struct {
		Net   float64 `json:"net"`
		Basis string  `json:"basis"`
	}
	if err := json.Unmarshal(decode(t, rec).Data, &result); err != nil || result.Net != 0 || result.Basis != "actual" {
		t.Fatalf("expected zero actual-basis net, got %s", rec.Body.String())
	}

	rec = do(t, app, http.MethodGet, "/api/v1/payroll/employees/424242", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown employee: expected 404, got %d", rec.Code)
	}

	rec = do(t, app, http.MethodGet, "/api/v1/payroll/register.csv", token, nil)
	if rec.Code != http.StatusOK || !strings.HasPrefix(rec.Body.String(), "employee_id,") {
		t.Fatalf("unexpected register %d: %s", rec.Code, rec.Body.String())
	}
	if lines := strings.Count(strings.TrimSpace(rec.Body.String()), "\n"); lines != 3 {
		t.Fatalf("expected 3 register rows, got %d", lines)
	}

	rec = do(t, app, http.MethodGet, "/api/v1/payroll/employees/10001/payslip.pdf", token, nil)
	if rec.Code != http.StatusOK || !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Fatalf("unexpected pdf response %d", rec.Code)
	}
	archived, err := filepath.Glob(filepath.Join(app.Config.PayslipDir, "10001-*.pdf"))
	if err != nil || len(archived) != 1 {
		t.Fatalf("expected one archived payslip, got %v (%v)", archived, err)
	}

	rec = do(t, app, http.MethodGet, "/api/v1/payroll/periods", token, nil)
	var periods []struct {
		Range string `json:"range"`
	}
	if err := json.Unmarshal(decode(t, rec).Data, &periods); err != nil || len(periods) != 14 {
		t.Fatalf("expected 14 default periods, got %s", rec.Body.String())
	}
}

func TestEmployeeDirectory(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, 10006, "02/14/1988")

	newHire := map[string]any{
		"employeeId":  10040,
		"firstName":   "Juan",
		"lastName":    "Cruz",
		"birthDate":   "01/15/1990",
		"position":    "IT Operations and Systems",
		"status":      "Probationary",
		"basicSalary": 30000,
		"riceSubsidy": 1500,
	}
	rec := do(t, app, http.MethodPost, "/api/v1/employees", token, newHire)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"department":"IT"`) {
		t.Fatalf("expected IT department, got %s", rec.Body.String())
	}

	if rec := do(t, app, http.MethodPost, "/api/v1/employees", token, newHire); rec.Code != http.StatusConflict {
		t.Fatalf("duplicate: expected 409, got %d", rec.Code)
	}

	invalid := map[string]any{"employeeId": 10041, "firstName": "A", "lastName": "B", "birthDate": "1990-01-15", "position": "Clerk"}
	if rec := do(t, app, http.MethodPost, "/api/v1/employees", token, invalid); rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid: expected 400, got %d", rec.Code)
	}

	rec = do(t, app, http.MethodPut, "/api/v1/employees/10040/salary", token, map[string]any{"basicSalary": 32000})
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"basicSalary":32000`) {
		t.Fatalf("salary: unexpected %d: %s", rec.Code, rec.Body.String())
	}
	if rec := do(t, app, http.MethodPut, "/api/v1/employees/10040/salary", token, map[string]any{"basicSalary": -1}); rec.Code != http.StatusBadRequest {
		t.Fatalf("negative salary: expected 400, got %d", rec.Code)
	}

	if rec := do(t, app, http.MethodDelete, "/api/v1/employees/10040", token, nil); rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", rec.Code)
	}
	if rec := do(t, app, http.MethodGet, "/api/v1/employees/10040", token, nil); rec.Code != http.StatusNotFound {
		t.Fatalf("after delete: expected 404, got %d", rec.Code)
	}

	if rec := do(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]any{"employeeId": 10040, "password": "01/15/1990"}); rec.Code != http.StatusUnauthorized {
		t.Fatalf("deleted employee login: expected 401, got %d", rec.Code)
	}
}

func TestMissingCatalogStillServes(t *testing.T) {
	cfg := config.Config{
		EmployeeFile:   filepath.Join(t.TempDir(), "missing.csv"),
		AttendanceFile: filepath.Join(t.TempDir(), "missing.csv"),
		TokenTTL:       time.Hour,
	}
	app, err := New(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	defer app.Close()

	if len(app.Employees.GetAllEmployees()) != 0 {
		t.Fatal("expected empty catalog")
	}
	rec := do(t, app, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected healthy, got %d", rec.Code)
	}
}
