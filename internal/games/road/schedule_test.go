package road

import (
	"testing"
	"time"
)

func TestSchedulerFiresInDueOrder(t *testing.T) {
	s := NewScheduler()
	s.Start(120*time.Millisecond, 50*time.Millisecond)

	var got []Task
	fired := s.Advance(300*time.Millisecond, func(task Task) { got = append(got, task) })

	// advance at 50,100,150,200,250,300; spawn at 120,240
	expected := []Task{TaskAdvance, TaskAdvance, TaskSpawn, TaskAdvance, TaskAdvance, TaskSpawn, TaskAdvance, TaskAdvance}
	if fired != len(expected) {
		t.Fatalf("fired %d tasks, expected %d: %v", fired, len(expected), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("task %d = %v, expected %v (all: %v)", i, got[i], expected[i], got)
		}
	}
	if s.Now() != 300*time.Millisecond {
		t.Errorf("Now() = %v, expected 300ms", s.Now())
	}
}

func TestSchedulerTieGoesToSpawn(t *testing.T) {
	s := NewScheduler()
	s.Start(100*time.Millisecond, 50*time.Millisecond)

	var got []Task
	s.Advance(100*time.Millisecond, func(task Task) { got = append(got, task) })

	expected := []Task{TaskAdvance, TaskSpawn, TaskAdvance}
	if len(got) != len(expected) {
		t.Fatalf("got %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("got %v, expected %v", got, expected)
			break
		}
	}
}

func TestSchedulerAccumulatesSmallSteps(t *testing.T) {
	s := NewScheduler()
	s.Start(0, 50*time.Millisecond)

	count := 0
	for i := 0; i < 100; i++ {
		s.Advance(10*time.Millisecond, func(Task) { count++ })
	}
	// One second of frames holds twenty 50ms ticks
	if count != 20 {
		t.Errorf("fired %d advance ticks in one second, expected 20", count)
	}
}

func TestSchedulerCancelInsideTaskStopsImmediately(t *testing.T) {
	s := NewScheduler()
	start := s.Start(10*time.Millisecond, 10*time.Millisecond)

	calls := 0
	fired := s.Advance(time.Second, func(Task) {
		calls++
		s.Cancel()
	})

	if fired != 1 || calls != 1 {
		t.Errorf("fired=%d calls=%d after cancel, expected 1", fired, calls)
	}
	if s.Active() {
		t.Error("scheduler should be inactive after Cancel")
	}
	if s.Valid(start) {
		t.Error("start token should be stale after Cancel")
	}
	if n := s.Advance(time.Second, func(Task) { calls++ }); n != 0 || calls != 1 {
		t.Error("cancelled scheduler must not fire late ticks")
	}
}

func TestSchedulerTokensChange(t *testing.T) {
	s := NewScheduler()
	idle := s.Token()

	t1 := s.Start(time.Second, time.Second)
	if t1 == idle || !s.Valid(t1) {
		t.Fatalf("Start should issue a fresh valid token")
	}

	s.Cancel()
	t2 := s.Start(time.Second, time.Second)
	if t2 == t1 || s.Valid(t1) || !s.Valid(t2) {
		t.Errorf("restart should invalidate the old token: t1=%d t2=%d current=%d", t1, t2, s.Token())
	}

	// Cancel on an idle scheduler is a no-op
	s.Cancel()
	tok := s.Token()
	s.Cancel()
	if s.Token() != tok {
		t.Error("second Cancel should not change the token")
	}
}

func TestSchedulerDisarmedInterval(t *testing.T) {
	s := NewScheduler()
	s.Start(0, 50*time.Millisecond)

	spawns := 0
	s.Advance(10*time.Second, func(task Task) {
		if task == TaskSpawn {
			spawns++
		}
	})
	if spawns != 0 {
		t.Errorf("zero interval should disarm spawning, got %d spawns", spawns)
	}
}
