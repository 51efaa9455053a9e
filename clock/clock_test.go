package clock

import (
	"errors"
	"testing"
	"time"
)

func TestFromTime_MondayFirstRotation(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want CivilTime
	}{
		{
			name: "monday maps to index 0",
			t:    time.Date(2024, 3, 4, 9, 15, 0, 0, time.UTC),
			want: CivilTime{WeekdayIdx: 0, Hour: 9, Minute: 15},
		},
		{
			name: "friday maps to index 4",
			t:    time.Date(2024, 3, 8, 23, 59, 0, 0, time.UTC),
			want: CivilTime{WeekdayIdx: 4, Hour: 23, Minute: 59},
		},
		{
			name: "sunday maps to index 6",
			t:    time.Date(2024, 3, 10, 0, 0, 59, 0, time.UTC),
			want: CivilTime{WeekdayIdx: 6, Hour: 0, Minute: 0},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := FromTime(test.t); got != test.want {
				t.Errorf("FromTime(%v) = %+v, want %+v", test.t, got, test.want)
			}
		})
	}
}

func TestMinuteOfDay(t *testing.T) {
	if got := (CivilTime{Hour: 23, Minute: 59}).MinuteOfDay(); got != 1439 {
		t.Errorf("expected 1439, got %d", got)
	}
	if got := (CivilTime{}).MinuteOfDay(); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestNewZoneClock(t *testing.T) {
	clk, err := NewZoneClock("Asia/Tokyo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reading, err := clk.Now()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reading.WeekdayIdx < 0 || reading.WeekdayIdx > 6 {
		t.Errorf("weekday index out of range: %d", reading.WeekdayIdx)
	}

	if _, err := NewZoneClock("Not/AZone"); err == nil {
		t.Error("expected error for unknown timezone")
	}
}

func TestZoneClock_NotInitialized(t *testing.T) {
	var clk *ZoneClock
	if _, err := clk.Now(); err == nil {
		t.Error("expected error from nil clock")
	}
}

func TestMockClock(t *testing.T) {
	pinned := CivilTime{WeekdayIdx: 4, Hour: 23, Minute: 59}
	reading, err := MockClock{Reading: pinned}.Now()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reading != pinned {
		t.Errorf("expected %+v, got %+v", pinned, reading)
	}

	boom := errors.New("clock unavailable")
	if _, err := (MockClock{Err: boom}).Now(); !errors.Is(err, boom) {
		t.Errorf("expected pinned error, got %v", err)
	}
}
