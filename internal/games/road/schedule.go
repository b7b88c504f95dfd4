package road

import "time"

// Task identifies a periodic job driven by the scheduler.
type Task int

const (
	TaskSpawn   Task = iota // Add one obstacle
	TaskAdvance             // Move obstacles and collect the ones that left the field
)

// Token identifies one run of the scheduler. Every Start and Cancel issues a
// new token, so work tagged with an older token can be recognised as stale.
type Token uint64

type periodic struct {
	task  Task
	every time.Duration
	due   time.Duration
}

// Scheduler is a virtual clock running the spawn and advance timers.
// It never sleeps: the caller feeds it elapsed time with Advance.
type Scheduler struct {
	now    time.Duration
	tasks  []periodic
	token  Token
	active bool
}

// NewScheduler creates an idle scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Start resets the clock and arms both timers. The first spawn happens one
// full spawn interval after the start, like a browser interval timer.
// A non-positive interval leaves that task disarmed.
func (s *Scheduler) Start(spawnEvery, advanceEvery time.Duration) Token {
	s.token++
	s.now = 0
	s.active = true
	s.tasks = s.tasks[:0]
	for _, p := range []periodic{
		{task: TaskSpawn, every: spawnEvery},
		{task: TaskAdvance, every: advanceEvery},
	} {
		if p.every > 0 {
			p.due = p.every
			s.tasks = append(s.tasks, p)
		}
	}
	return s.token
}

// Cancel stops both timers. It takes effect immediately, even when called
// from inside a task fired by Advance.
func (s *Scheduler) Cancel() {
	if !s.active {
		return
	}
	s.active = false
	s.token++
	s.tasks = s.tasks[:0]
}

// Active reports whether the timers are armed.
func (s *Scheduler) Active() bool {
	return s.active
}

// Token returns the current run token.
func (s *Scheduler) Token() Token {
	return s.token
}

// Valid reports whether t belongs to the running timers.
func (s *Scheduler) Valid(t Token) bool {
	return s.active && t == s.token
}

// Now returns the simulated time since Start.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Advance moves the clock forward by d and fires every task that falls due,
// in due-time order. On equal due times the spawn task fires first.
// Returns the number of tasks fired.
func (s *Scheduler) Advance(d time.Duration, fire func(Task)) int {
	if !s.active || d <= 0 {
		return 0
	}

	token := s.token
	end := s.now + d
	fired := 0

	for {
		next := -1
		for i, p := range s.tasks {
			if p.due <= end && (next < 0 || p.due < s.tasks[next].due) {
				next = i
			}
		}
		if next < 0 {
			break
		}

		p := &s.tasks[next]
		s.now = p.due
		p.due += p.every
		fire(p.task)
		fired++

		if !s.Valid(token) {
			return fired
		}
	}

	s.now = end
	return fired
}
