package date

import (
	"testing"
	"time"
)

func TestCalendarIsBusinessDay(t *testing.T) {
	holiday := New(2023, time.January, 6)
	cal := NewCalendar("test", holiday)

	tests := []struct {
		on   Date
		want bool
	}{
		{New(2023, time.January, 5), true},  // Thursday
		{New(2023, time.January, 6), false}, // holiday
		{New(2023, time.January, 7), false}, // Saturday
		{New(2023, time.January, 8), false}, // Sunday
		{New(2023, time.January, 9), true},  // Monday
	}
	for _, tt := range tests {
		if got := cal.IsBusinessDay(tt.on); got != tt.want {
			t.Errorf("IsBusinessDay(%s) = %v, want %v", tt.on, got, tt.want)
		}
	}
}

func TestAdjust(t *testing.T) {
	cal := NewCalendar("test", New(2023, time.January, 9))

	tests := []struct {
		on, want Date
	}{
		{New(2023, time.January, 5), New(2023, time.January, 5)},  // already open
		{New(2023, time.January, 7), New(2023, time.January, 10)}, // Saturday, Monday is a holiday
	}
	for _, tt := range tests {
		if got := Adjust(cal, tt.on); got != tt.want {
			t.Errorf("Adjust(%s) = %s, want %s", tt.on, got, tt.want)
		}
	}
}
