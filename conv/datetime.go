package conv

import (
	"fmt"

	"github.com/wippyai/rfc-runtime/errors"
)

// Date is a calendar date in the RFC external format YYYYMMDD.
// The zero Date is the initial (unset) date, rendered as "00000000".
type Date struct {
	Year  int
	Month int
	Day   int
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// NewDate validates and constructs a date. February 29 is accepted in leap
// years only.
func NewDate(year, month, day int) (Date, error) {
	if year < 0 || year > 9999 {
		return Date{}, errors.InvalidFormat(errors.PhaseEncode, nil,
			fmt.Sprintf("year %d out of range 0-9999", year))
	}
	if month < 1 || month > 12 {
		return Date{}, errors.InvalidFormat(errors.PhaseEncode, nil,
			fmt.Sprintf("month %d out of range 1-12", month))
	}
	max := daysInMonth[month]
	if month == 2 && isLeapYear(year) {
		max = 29
	}
	if day < 1 || day > max {
		return Date{}, errors.InvalidFormat(errors.PhaseEncode, nil,
			fmt.Sprintf("day %d out of range 1-%d for month %d", day, max, month))
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// ParseDate parses the external format YYYYMMDD.
func ParseDate(s string) (Date, error) {
	if len(s) != 8 {
		return Date{}, errors.InvalidFormat(errors.PhaseDecode, nil,
			fmt.Sprintf("date %q is not 8 digits", s))
	}
	if s == "00000000" || s == "        " {
		return Date{}, nil
	}
	var y, m, d int
	if _, err := fmt.Sscanf(s, "%4d%2d%2d", &y, &m, &d); err != nil {
		return Date{}, errors.InvalidFormat(errors.PhaseDecode, nil,
			fmt.Sprintf("date %q is not YYYYMMDD", s))
	}
	return NewDate(y, m, d)
}

// IsZero reports whether the date is the initial value.
func (d Date) IsZero() bool { return d == Date{} }

// String renders the external format YYYYMMDD.
func (d Date) String() string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, d.Month, d.Day)
}

// Time is a wall-clock time in the RFC external format HHMMSS.
// The zero Time is midnight, rendered as "000000".
type Time struct {
	Hour   int
	Minute int
	Second int
}

// NewTime validates and constructs a time of day.
func NewTime(hour, minute, second int) (Time, error) {
	if hour < 0 || hour > 23 {
		return Time{}, errors.InvalidFormat(errors.PhaseEncode, nil,
			fmt.Sprintf("hour %d out of range 0-23", hour))
	}
	if minute < 0 || minute > 59 {
		return Time{}, errors.InvalidFormat(errors.PhaseEncode, nil,
			fmt.Sprintf("minute %d out of range 0-59", minute))
	}
	if second < 0 || second > 59 {
		return Time{}, errors.InvalidFormat(errors.PhaseEncode, nil,
			fmt.Sprintf("second %d out of range 0-59", second))
	}
	return Time{Hour: hour, Minute: minute, Second: second}, nil
}

// ParseTime parses the external format HHMMSS.
func ParseTime(s string) (Time, error) {
	if len(s) != 6 {
		return Time{}, errors.InvalidFormat(errors.PhaseDecode, nil,
			fmt.Sprintf("time %q is not 6 digits", s))
	}
	if s == "000000" || s == "      " {
		return Time{}, nil
	}
	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%2d%2d%2d", &h, &m, &sec); err != nil {
		return Time{}, errors.InvalidFormat(errors.PhaseDecode, nil,
			fmt.Sprintf("time %q is not HHMMSS", s))
	}
	return NewTime(h, m, sec)
}

// String renders the external format HHMMSS.
func (t Time) String() string {
	return fmt.Sprintf("%02d%02d%02d", t.Hour, t.Minute, t.Second)
}
