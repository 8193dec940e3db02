package engine

import (
	"testing"
	"time"
)

func TestSystemClock(t *testing.T) {
	var clock SystemClock

	t1 := clock.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := clock.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
}

func TestMockClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockClock(start)

	if now := mock.Now(); !now.Equal(start) {
		t.Errorf("Expected initial time to be %v, got %v", start, now)
	}

	mock.Advance(16 * time.Millisecond)
	mock.Advance(16 * time.Millisecond)
	if want := start.Add(32 * time.Millisecond); !mock.Now().Equal(want) {
		t.Errorf("Expected time to be %v after advances, got %v", want, mock.Now())
	}

	later := start.Add(time.Hour)
	mock.SetTime(later)
	if !mock.Now().Equal(later) {
		t.Errorf("Expected time to be %v after SetTime, got %v", later, mock.Now())
	}
}
