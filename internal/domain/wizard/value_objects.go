package wizard

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrHourOutOfRange = errors.New("hour must be between 00:00 and 24:00")
	ErrEndTooEarly    = errors.New("end time leaves no room for a start hour")
	ErrInvalidDate    = errors.New("invalid calendar date")
	ErrDateInPast     = errors.New("date cannot be in the past")
)

const (
	DefaultStartHour = 8
	DefaultEndHour   = 14
)

// HourTime is an on-the-hour time of day ("HH:00"). Hour 24 is only ever
// produced by the overlap adjustment when the start slides to 23:00; pickers
// offer 0-23.
type HourTime struct {
	hour int
}

func NewHourTime(hour int) (HourTime, error) {
	if hour < 0 || hour > 24 {
		return HourTime{}, ErrHourOutOfRange
	}
	return HourTime{hour: hour}, nil
}

func (t HourTime) Hour() int { return t.hour }

func (t HourTime) String() string {
	return fmt.Sprintf("%02d:00", t.hour)
}

// Label renders the 12-hour picker caption, e.g. "08:00 AM". The suffix
// follows the hour value alone, so "13:00 PM" is intentional.
func (t HourTime) Label() string {
	suffix := "PM"
	if t.hour < 12 {
		suffix = "AM"
	}
	return fmt.Sprintf("%02d:00 %s", t.hour, suffix)
}

func (t HourTime) Before(other HourTime) bool {
	return t.hour < other.hour
}

// TimeOption is one selectable slot of the day.
type TimeOption struct {
	Value string
	Label string
}

// TimeOptions lists the 24 on-the-hour slots offered by both pickers.
func TimeOptions() []TimeOption {
	opts := make([]TimeOption, 24)
	for h := 0; h < 24; h++ {
		t := HourTime{hour: h}
		opts[h] = TimeOption{Value: t.String(), Label: t.Label()}
	}
	return opts
}

// TimeRange holds the reservation window for a single day.
// Invariant: start < end, always. Edits that would break it pull the other
// endpoint along in the same operation, so no intermediate state with
// start >= end is ever observable.
type TimeRange struct {
	start HourTime
	end   HourTime
}

func DefaultTimeRange() TimeRange {
	return TimeRange{
		start: HourTime{hour: DefaultStartHour},
		end:   HourTime{hour: DefaultEndHour},
	}
}

func NewTimeRange(start, end HourTime) (TimeRange, error) {
	if !start.Before(end) {
		return TimeRange{}, errors.New("start time must be before end time")
	}
	return TimeRange{start: start, end: end}, nil
}

func (r TimeRange) Start() HourTime { return r.start }
func (r TimeRange) End() HourTime   { return r.end }

// Hours is the duration of the window in whole hours.
func (r TimeRange) Hours() int {
	return r.end.hour - r.start.hour
}

// WithStart moves the start of the window. If the new start meets or passes
// the end, the end is forced to one hour after the start.
func (r TimeRange) WithStart(start HourTime) (TimeRange, error) {
	if start.hour > 23 {
		return TimeRange{}, ErrHourOutOfRange
	}
	next := TimeRange{start: start, end: r.end}
	if start.hour >= r.end.hour {
		next.end = HourTime{hour: start.hour + 1}
	}
	return next, nil
}

// WithEnd moves the end of the window. If the new end meets or precedes the
// start, the start is forced to one hour before the end; an end of 00:00
// leaves no valid start and is rejected.
func (r TimeRange) WithEnd(end HourTime) (TimeRange, error) {
	if end.hour > 24 {
		return TimeRange{}, ErrHourOutOfRange
	}
	next := TimeRange{start: r.start, end: end}
	if end.hour <= r.start.hour {
		if end.hour-1 < 0 {
			return TimeRange{}, ErrEndTooEarly
		}
		next.start = HourTime{hour: end.hour - 1}
	}
	return next, nil
}

// CalendarDate is an ISO "YYYY-MM-DD" day. The zero value means no date has
// been picked yet.
type CalendarDate struct {
	value string
}

const calendarLayout = "2006-01-02"

// NewCalendarDate parses an ISO date and rejects days before today; the
// calendar must not offer past dates.
func NewCalendarDate(value string, today time.Time) (CalendarDate, error) {
	d, err := time.Parse(calendarLayout, value)
	if err != nil {
		return CalendarDate{}, ErrInvalidDate
	}

	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if d.Before(midnight) {
		return CalendarDate{}, ErrDateInPast
	}

	return CalendarDate{value: d.Format(calendarLayout)}, nil
}

// ReconstructCalendarDate restores a stored date without the minimum-date
// check; a session may legitimately outlive midnight.
func ReconstructCalendarDate(value string) (CalendarDate, error) {
	if value == "" {
		return CalendarDate{}, nil
	}
	d, err := time.Parse(calendarLayout, value)
	if err != nil {
		return CalendarDate{}, ErrInvalidDate
	}
	return CalendarDate{value: d.Format(calendarLayout)}, nil
}

func (d CalendarDate) IsZero() bool {
	return d.value == ""
}

func (d CalendarDate) String() string {
	return d.value
}

// Display renders the review-screen form, e.g. "7/14/2026".
func (d CalendarDate) Display() string {
	if d.IsZero() {
		return ""
	}
	t, err := time.Parse(calendarLayout, d.value)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d/%d/%d", t.Month(), t.Day(), t.Year())
}

// At combines the date with an hour slot in the given location. Hour 24
// normalizes to midnight of the following day.
func (d CalendarDate) At(t HourTime, loc *time.Location) (time.Time, error) {
	if d.IsZero() {
		return time.Time{}, ErrInvalidDate
	}
	day, err := time.ParseInLocation(calendarLayout, d.value, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), 0, 0, 0, loc), nil
}
