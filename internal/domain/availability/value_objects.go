package availability

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDate              = errors.New("invalid date")
	ErrInvalidTimeOfDay         = errors.New("invalid time of day")
	ErrEndNotAfterStart         = errors.New("end_time must be after start_time")
	ErrInvalidSlotDuration      = errors.New("slot_duration must divide evenly into the time range")
	ErrSlotDurationOutOfRange   = errors.New("slot_duration must be between 5 and 180 minutes")
	ErrNegativeBreakDuration    = errors.New("break_duration cannot be negative")
	ErrInvalidTimezone          = errors.New("invalid timezone")
	ErrInvalidRecurrencePattern = errors.New("invalid recurrence_pattern")
	ErrInvalidAppointmentType   = errors.New("invalid appointment_type")
	ErrNotesTooLong             = errors.New("notes must be 500 characters or fewer")
)

const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 180
	MaxNotesLength         = 500
)

// Date is a calendar date with no time or zone attached. Slots derived from
// it only become instants once combined with a TimeOfDay and a zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) After(other Date) bool {
	return d.toTime().After(other.toTime())
}

func (d Date) Before(other Date) bool {
	return d.toTime().Before(other.toTime())
}

// AddDays relies on time.AddDate's normalization, so month and year
// boundaries roll over correctly.
func (d Date) AddDays(days int) Date {
	return DateOf(d.toTime().AddDate(0, 0, days))
}

// AddMonths clamps to the last day of the target month instead of letting
// time.AddDate normalize the overflow, so a month-end anchor stays at month
// end (Jan 31 + 1 month is Feb 28, not Mar 3).
func (d Date) AddMonths(months int) Date {
	first := time.Date(d.Year, d.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	day := d.Day
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return Date{Year: first.Year(), Month: first.Month(), Day: day}
}

func (d Date) toTime() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// TimeOfDay is a local wall-clock time, stored as minutes since midnight.
type TimeOfDay struct {
	minutes int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

func (t TimeOfDay) Hour() int {
	return t.minutes / 60
}

func (t TimeOfDay) Minute() int {
	return t.minutes % 60
}

func (t TimeOfDay) MinutesSinceMidnight() int {
	return t.minutes
}

func (t TimeOfDay) AddMinutes(m int) TimeOfDay {
	return TimeOfDay{minutes: t.minutes + m}
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.minutes > other.minutes
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// TimeWindow is a provider's declared working window on a single date,
// in local wall-clock time.
type TimeWindow struct {
	start TimeOfDay
	end   TimeOfDay
}

func NewTimeWindow(start, end TimeOfDay) (TimeWindow, error) {
	if !end.After(start) {
		return TimeWindow{}, ErrEndNotAfterStart
	}
	return TimeWindow{start: start, end: end}, nil
}

func (w TimeWindow) Start() TimeOfDay {
	return w.start
}

func (w TimeWindow) End() TimeOfDay {
	return w.end
}

func (w TimeWindow) Minutes() int {
	return w.end.MinutesSinceMidnight() - w.start.MinutesSinceMidnight()
}

// SlotDuration is the length of one bookable slot in minutes.
type SlotDuration struct {
	minutes int
}

func NewSlotDuration(minutes int) (SlotDuration, error) {
	if minutes < MinSlotDurationMinutes || minutes > MaxSlotDurationMinutes {
		return SlotDuration{}, ErrSlotDurationOutOfRange
	}
	return SlotDuration{minutes: minutes}, nil
}

func (d SlotDuration) Minutes() int {
	return d.minutes
}

// Divides reports whether the window splits into a whole number of slots.
func (d SlotDuration) Divides(w TimeWindow) bool {
	return w.Minutes()%d.minutes == 0
}

type BreakDuration struct {
	minutes int
}

func NewBreakDuration(minutes int) (BreakDuration, error) {
	if minutes < 0 {
		return BreakDuration{}, ErrNegativeBreakDuration
	}
	return BreakDuration{minutes: minutes}, nil
}

func (d BreakDuration) Minutes() int {
	return d.minutes
}

type Location struct {
	Type       string
	Address    string
	RoomNumber *string
}

type Pricing struct {
	BaseFeeCents      *int64
	InsuranceAccepted *bool
	Currency          *string
}

type Notes struct {
	value string
}

func NewNotes(value string) (Notes, error) {
	if len(value) > MaxNotesLength {
		return Notes{}, ErrNotesTooLong
	}
	return Notes{value: value}, nil
}

func (n Notes) String() string {
	return n.value
}

func (n Notes) IsEmpty() bool {
	return n.value == ""
}
