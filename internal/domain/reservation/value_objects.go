package reservation

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar day without time of day or location. The zero value means "not set".
type Date struct {
	year  int
	month time.Month
	day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return Date{}, ErrInvalidDateFormat
	}
	return DateOf(t), nil
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) Before(other Date) bool {
	return d.midnight().Before(other.midnight())
}

func (d Date) After(other Date) bool {
	return d.midnight().After(other.midnight())
}

func (d Date) AddDays(days int) Date {
	return DateOf(d.midnight().AddDate(0, 0, days))
}

// AddYears keeps the month and clamps the day to the end of that month,
// so Feb 29 plus one year is Feb 28.
func (d Date) AddYears(years int) Date {
	year := d.year + years
	return Date{year: year, month: d.month, day: min(d.day, daysIn(d.month, year))}
}

func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.midnight().Format(DateLayout)
}

func (d Date) midnight() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func daysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

type RoomNumber int

func (r RoomNumber) Int() int { return int(r) }

type GuestCount int

func (g GuestCount) Int() int { return int(g) }

// Slot is the (room, date) pair that can be held by at most one reservation.
type Slot struct {
	Room RoomNumber
	Date Date
}

func NewSlot(room RoomNumber, date Date) Slot {
	return Slot{Room: room, Date: date}
}
