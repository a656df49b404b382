package payroll

import (
	"testing"
	"time"

	"motorph/internal/domain/attendance"
	"motorph/internal/domain/employee"
	"motorph/internal/platform/record"
)

type fakeHours struct {
	hours float64
	calls int
	id    int
	start time.Time
	end   time.Time
}

func (f *fakeHours) HoursWorked(employeeID int, start, end time.Time) float64 {
	f.calls++
	f.id, f.start, f.end = employeeID, start, end
	return f.hours
}

func TestEngineStandardHours(t *testing.T) {
	engine := NewEngine(&fakeHours{}, nil)
	emp := newEmployee(t, employee.Params{BasicSalary: 1})

	if engine.StandardHours(emp) != 160 {
		t.Fatalf("expected 160, got %v", engine.StandardHours(emp))
	}
	if engine.StandardHours(nil) != 0 {
		t.Fatalf("expected 0 for nil, got %v", engine.StandardHours(nil))
	}
}

func TestEngineHoursWorkedForRange(t *testing.T) {
	hours := &fakeHours{hours: 42}
	engine := NewEngine(hours, nil)
	emp := newEmployee(t, employee.Params{ID: 10005, BasicSalary: 16000})

	got := engine.HoursWorkedForRange(emp, "2024-06-01 to 2024-06-15")
	if got != 42 {
		t.Fatalf("expected 42, got %v", got)
	}
	if hours.id != 10005 || !hours.start.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) || !hours.end.Equal(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected query: id=%d start=%v end=%v", hours.id, hours.start, hours.end)
	}
}

func TestEngineMalformedRange(t *testing.T) {
	hours := &fakeHours{hours: 42}
	engine := NewEngine(hours, nil)
	emp := newEmployee(t, employee.Params{BasicSalary: 16000})

	if got := engine.HoursWorkedForRange(emp, "2024-06-01to2024-06-15"); got != 0 {
		t.Fatalf("expected 0 hours, got %v", got)
	}
	if got := engine.NetPayForRange(emp, "2024-06-01to2024-06-15"); got != 0 {
		t.Fatalf("expected 0 net, got %v", got)
	}
	if hours.calls != 0 {
		t.Fatalf("expected no attendance query, got %d", hours.calls)
	}
	if got := engine.HoursWorkedForRange(nil, "2024-06-01 to 2024-06-15"); got != 0 {
		t.Fatalf("expected 0 for nil, got %v", got)
	}
}

func TestEngineNetPayForRangeMatchesHours(t *testing.T) {
	engine := NewEngine(&fakeHours{hours: 80}, nil)
	emp := newEmployee(t, employee.Params{BasicSalary: 16000, RiceSubsidy: 1500, PhoneAllowance: 500, ClothingAllowance: 500})

	want := NetPayForHours(emp, 80)
	if got := engine.NetPayForRange(emp, "2024-06-01 to 2024-06-30"); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestEngineNoHoursInRange(t *testing.T) {
	engine := NewEngine(&fakeHours{}, nil)
	emp := newEmployee(t, employee.Params{BasicSalary: 16000, RiceSubsidy: 1500})

	if got := engine.NetPayForRange(emp, "2024-06-01 to 2024-06-15"); got != 0 {
		t.Fatalf("expected 0 net without hours, got %v", got)
	}
}

func TestEngineWithLedger(t *testing.T) {
	src := record.StringSource("Employee #,Last Name,First Name,Date,Log In,Log Out\n" +
		"10001,Garcia,Manuel III,06/03/2024,8:00,17:00\n" +
		"10001,Garcia,Manuel III,06/04/2024,8:00,16:00\n" +
		"10001,Garcia,Manuel III,06/20/2024,8:00,17:00\n" +
		"10002,Lim,Antonio,06/03/2024,8:00,17:00\n")
	engine := NewEngine(attendance.NewLedger(src, nil), nil)
	emp := newEmployee(t, employee.Params{ID: 10001, BasicSalary: 16000, RiceSubsidy: 1500})

	if got := engine.HoursWorkedForRange(emp, "2024-06-01 to 2024-06-15"); got != 17 {
		t.Fatalf("expected 17 hours, got %v", got)
	}

	result, err := engine.ComputeForRange(emp, "2024-06-01 to 2024-06-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Basis != BasisActual || result.Hours != 17 || result.BasicPay != 1700 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Net != engine.NetPayForHours(emp, 17) {
		t.Fatalf("expected net %v, got %v", engine.NetPayForHours(emp, 17), result.Net)
	}
}
