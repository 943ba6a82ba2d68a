package date

import (
	"testing"
	"time"
)

func TestHistoryAppendSorts(t *testing.T) {
	h := &History[float64]{}
	h.Append(New(2023, time.January, 27), 8690.0)
	h.Append(New(2023, time.January, 5), 9010.0)

	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}
	day, value := h.Latest()
	if day != New(2023, time.January, 27) || value != 8690.0 {
		t.Errorf("Latest() = %v %v, want 2023-01-27 8690", day, value)
	}
}

func TestHistoryAppendOverwrites(t *testing.T) {
	h := &History[float64]{}
	on := New(2023, time.January, 5)
	h.Append(on, 9010.0)
	h.Append(on, 9100.0)

	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	if v, ok := h.Get(on); !ok || v != 9100.0 {
		t.Errorf("Get() = %v %v, want 9100 true", v, ok)
	}
}

func TestHistoryGet(t *testing.T) {
	h := &History[float64]{}
	h.Append(New(2023, time.January, 5), 9010.0)

	if _, ok := h.Get(New(2023, time.January, 6)); ok {
		t.Error("Get() found a value on an unrecorded date")
	}
}

func TestHistoryValueAsOf(t *testing.T) {
	h := &History[float64]{}
	h.Append(New(2023, time.January, 5), 9010.0)
	h.Append(New(2023, time.January, 27), 8690.0)

	tests := []struct {
		on    Date
		want  float64
		found bool
	}{
		{New(2023, time.January, 4), 0, false},
		{New(2023, time.January, 5), 9010.0, true},
		{New(2023, time.January, 10), 9010.0, true},
		{New(2023, time.February, 1), 8690.0, true},
	}
	for _, tt := range tests {
		got, found := h.ValueAsOf(tt.on)
		if found != tt.found || got != tt.want {
			t.Errorf("ValueAsOf(%s) = %v %v, want %v %v", tt.on, got, found, tt.want, tt.found)
		}
	}
}

func TestHistoryClear(t *testing.T) {
	h := &History[float64]{}
	h.Append(New(2023, time.January, 5), 9010.0)
	h.Clear()
	if h.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", h.Len())
	}
}

func TestHistoryValues(t *testing.T) {
	h := &History[float64]{}
	h.Append(New(2023, time.January, 27), 8690.0)
	h.Append(New(2023, time.January, 5), 9010.0)

	var days []Date
	for on := range h.Values() {
		days = append(days, on)
	}
	if len(days) != 2 || !days[0].Before(days[1]) {
		t.Errorf("Values() order = %v, want chronological", days)
	}
}
