package todo

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

var (
	dateRegexp     = regexp.MustCompile(`^[12][0-9]{3}-[01][0-9]-[0-3][0-9]$`)
	dateTimeRegexp = regexp.MustCompile(`^[12][0-9]{3}-[01][0-9]-[0-3][0-9] [0-2][0-9]:[0-5][0-9]$`)
)

// Due is the value of the due metadata: a date, or a date and time of day when one was written
// explicitly. Dates are held at midnight, local time.
type Due struct {
	Time     time.Time
	HasClock bool
}

// NewDate returns a date-only due value.
func NewDate(year int, month time.Month, day int) Due {
	return Due{Time: time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

func (d Due) String() string {
	if d.HasClock {
		return d.Time.Format(dateTimeLayout)
	}
	return d.Time.Format(dateLayout)
}

// Before compares with now at the granularity of the due value: the date alone for dates, the
// full time for date-times.
func (d Due) Before(now time.Time) bool {
	if d.HasClock {
		return d.Time.Before(now)
	}
	return civil(d.Time).Before(civil(now))
}

// DaysFrom returns the number of calendar days between now and the due date, ignoring any time
// of day. It is negative for past dates.
func (d Due) DaysFrom(now time.Time) int {
	return int(civil(d.Time).Sub(civil(now)).Hours() / 24)
}

// civil drops the time of day and the location, so that differences count calendar days.
func civil(t time.Time) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// ParseDue converts the textual form of the due metadata. It accepts YYYY-MM-DD HH:MM,
// YYYY-MM-DD, today and tomorrow. The empty string means the due date is to be removed and
// yields Unset.
func ParseDue(s string, now time.Time) (Value, error) {
	s = strings.TrimSpace(s)
	switch {
	case dateTimeRegexp.MatchString(s):
		t, err := time.ParseInLocation(dateTimeLayout, s, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: due %q: %v", ErrInvalidMetadata, s, err)
		}
		return Due{Time: t, HasClock: true}, nil
	case dateRegexp.MatchString(s):
		t, err := time.ParseInLocation(dateLayout, s, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: due %q: %v", ErrInvalidMetadata, s, err)
		}
		return Due{Time: t}, nil
	case s == "today":
		y, m, d := now.Date()
		return NewDate(y, m, d), nil
	case s == "tomorrow":
		y, m, d := now.Date()
		return NewDate(y, m, d+1), nil
	case s == "":
		return Unset{}, nil
	}
	return nil, fmt.Errorf("%w: due %q: not YYYY-MM-DD, YYYY-MM-DD HH:MM, today or tomorrow", ErrInvalidMetadata, s)
}
