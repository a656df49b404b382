package attendance

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"motorph/internal/platform/record"
)

const (
	DateLayout = "01/02/2006"
	// TimeLayout accepts "8:30" as well as "08:30".
	TimeLayout = "15:04"

	colEmployeeID = 0
	colDate       = 3
	colTimeIn     = 4
	colTimeOut    = 5

	MinPunchFields = 6
)

// Punch is one time-in/time-out pair for an employee on a date.
type Punch struct {
	EmployeeID int
	Date       time.Time
	TimeIn     time.Time
	TimeOut    time.Time
}

// Hours is the punch duration; negative when time-out precedes time-in.
func (p Punch) Hours() float64 {
	return p.TimeOut.Sub(p.TimeIn).Hours()
}

// Ledger aggregates worked hours from the attendance source. Every query
// re-reads the source; nothing is cached between calls.
type Ledger struct {
	src    record.Source
	logger *zap.Logger
}

func NewLedger(src record.Source, logger *zap.Logger) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ledger{src: src, logger: logger}
}

// HoursWorked returns the hours employeeID worked within [start, end]
// inclusive. A source failure yields 0.
func (l *Ledger) HoursWorked(employeeID int, start, end time.Time) float64 {
	hours, err := l.Hours(employeeID, start, end)
	if err != nil {
		l.logger.Warn("attendance source unreadable", zap.Int("employeeId", employeeID), zap.Error(err))
		return 0
	}
	return hours
}

// Hours is HoursWorked with the source failure reported.
func (l *Ledger) Hours(employeeID int, start, end time.Time) (float64, error) {
	first, last := dateOnly(start), dateOnly(end)
	total := 0.0
	err := record.ReadRows(l.src, func(line int, fields []string) {
		punch, ok := parsePunch(fields, employeeID)
		if !ok {
			return
		}
		if punch.Date.Before(first) || punch.Date.After(last) {
			return
		}
		hours := punch.Hours()
		if hours < 0 {
			l.logger.Debug("skip punch crossing midnight", zap.Int("line", line), zap.Int("employeeId", employeeID))
			return
		}
		total += hours
	})
	if err != nil {
		return 0, fmt.Errorf("read attendance: %w", err)
	}
	return total, nil
}

// parsePunch returns false for rows that are short, malformed or belong to
// another employee.
func parsePunch(fields []string, employeeID int) (Punch, bool) {
	if len(fields) < MinPunchFields {
		return Punch{}, false
	}
	id, err := strconv.Atoi(fields[colEmployeeID])
	if err != nil || id != employeeID {
		return Punch{}, false
	}
	date, err := time.Parse(DateLayout, fields[colDate])
	if err != nil {
		return Punch{}, false
	}
	timeIn, err := time.Parse(TimeLayout, fields[colTimeIn])
	if err != nil {
		return Punch{}, false
	}
	timeOut, err := time.Parse(TimeLayout, fields[colTimeOut])
	if err != nil {
		return Punch{}, false
	}
	return Punch{EmployeeID: id, Date: date, TimeIn: timeIn, TimeOut: timeOut}, true
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
