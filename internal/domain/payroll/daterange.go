package payroll

import (
	"fmt"
	"strings"
	"time"
)

// DateRange is an inclusive pay period.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseDateRange accepts exactly "YYYY-MM-DD to YYYY-MM-DD".
func ParseDateRange(text string) (DateRange, error) {
	parts := strings.Split(text, RangeSeparator)
	if len(parts) != 2 {
		return DateRange{}, ErrInvalidDateRange
	}
	start, err := time.Parse(DateLayout, parts[0])
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: start: %v", ErrInvalidDateRange, err)
	}
	end, err := time.Parse(DateLayout, parts[1])
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: end: %v", ErrInvalidDateRange, err)
	}
	return DateRange{Start: start, End: end}, nil
}

func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + RangeSeparator + r.End.Format(DateLayout)
}

// PayPeriods lists the semi-monthly periods (1st-15th, 16th-last day) of
// year from the from month through the to month.
func PayPeriods(year int, from, to time.Month) []DateRange {
	var periods []DateRange
	for m := from; m <= to; m++ {
		first := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
		mid := time.Date(year, m, 15, 0, 0, 0, 0, time.UTC)
		last := first.AddDate(0, 1, -1)
		periods = append(periods,
			DateRange{Start: first, End: mid},
			DateRange{Start: mid.AddDate(0, 0, 1), End: last},
		)
	}
	return periods
}

// DefaultPayPeriods are the June to December 2024 periods offered by default.
func DefaultPayPeriods() []DateRange {
	return PayPeriods(2024, time.June, time.December)
}
