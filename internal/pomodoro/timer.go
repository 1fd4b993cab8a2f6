package pomodoro

import "time"

// State is a snapshot of a Timer.
type State struct {
	Phase     Phase
	Cycle     int
	Remaining time.Duration
	Studied   time.Duration
	Total     time.Duration
	Running   bool
	Done      bool
}

// Transition reports a phase boundary crossed during Advance.
type Transition struct {
	From  Phase
	To    Phase
	Cycle int
	Done  bool
}

// Timer walks a schedule. It holds no clock: the caller feeds elapsed time
// through Advance, so a Timer is deterministic and not safe for concurrent use.
type Timer struct {
	segments  []Segment
	total     time.Duration
	idx       int
	remaining time.Duration
	studied   time.Duration
	running   bool
	done      bool
}

// NewTimer returns a paused timer at the start of the schedule for total.
func NewTimer(total time.Duration, cfg Config) (*Timer, error) {
	segments, err := Schedule(total, cfg)
	if err != nil {
		return nil, err
	}
	t := &Timer{segments: segments, total: total}
	t.Reset()
	return t, nil
}

// Start resumes the countdown. It has no effect once the schedule is done.
func (t *Timer) Start() {
	if !t.done {
		t.running = true
	}
}

// Pause stops the countdown, keeping the remaining time.
func (t *Timer) Pause() {
	t.running = false
}

// Reset rewinds to the first phase and pauses.
func (t *Timer) Reset() {
	t.idx = 0
	t.remaining = t.segments[0].Duration
	t.studied = 0
	t.running = false
	t.done = false
}

// Advance consumes elapsed time while running and returns the phase
// boundaries crossed, in order. Time left over after the last phase is dropped.
func (t *Timer) Advance(elapsed time.Duration) []Transition {
	var out []Transition

	for elapsed > 0 && t.running && !t.done {
		cur := t.segments[t.idx]

		if elapsed < t.remaining {
			t.remaining -= elapsed
			if cur.Phase == PhaseStudy {
				t.studied += elapsed
			}
			return out
		}

		elapsed -= t.remaining
		if cur.Phase == PhaseStudy {
			t.studied += t.remaining
		}

		if t.idx == len(t.segments)-1 {
			t.remaining = 0
			t.running = false
			t.done = true
			out = append(out, Transition{From: cur.Phase, Cycle: cur.Cycle, Done: true})
			return out
		}

		t.idx++
		next := t.segments[t.idx]
		t.remaining = next.Duration
		out = append(out, Transition{From: cur.Phase, To: next.Phase, Cycle: next.Cycle})
	}

	return out
}

// State returns the current snapshot.
func (t *Timer) State() State {
	seg := t.segments[t.idx]
	return State{
		Phase:     seg.Phase,
		Cycle:     seg.Cycle,
		Remaining: t.remaining,
		Studied:   t.studied,
		Total:     t.total,
		Running:   t.running,
		Done:      t.done,
	}
}

// StudiedMinutes returns the study time so far, rounded down to whole minutes.
func (t *Timer) StudiedMinutes() int {
	return int(t.studied / time.Minute)
}
