package date

import (
	"slices"
	"time"
)

// Calendar answers whether a date is a business day in some market.
type Calendar interface {
	Name() string
	IsBusinessDay(on Date) bool
}

// Adjust moves 'on' forward to the first business day of the calendar
// (following convention). A business day is returned unchanged.
func Adjust(c Calendar, on Date) Date {
	for !c.IsBusinessDay(on) {
		on = on.Add(1)
	}
	return on
}

// weekends is a calendar closed on Saturdays, Sundays and an explicit
// holiday list.
type weekends struct {
	name     string
	holidays []Date
}

// NewCalendar returns a calendar closed on weekends and on the given holidays.
func NewCalendar(name string, holidays ...Date) Calendar {
	return &weekends{name: name, holidays: holidays}
}

func (c *weekends) Name() string { return c.name }

func (c *weekends) IsBusinessDay(on Date) bool {
	if wd := on.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !slices.Contains(c.holidays, on)
}
