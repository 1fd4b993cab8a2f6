// Package pomodoro plans and runs study/break cycles for a focus session.
//
// A session shorter than Config.LongThreshold is a single study phase.
// Longer sessions open with a FirstStudy phase, then alternate Break phases
// with study phases of at most Study until the requested total is studied.
package pomodoro

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTotal is returned for a non-positive session length.
var ErrInvalidTotal = errors.New("pomodoro: total must be positive")

// Phase is the kind of a schedule segment.
type Phase string

const (
	PhaseStudy Phase = "study"
	PhaseBreak Phase = "break"
)

// Config holds the phase lengths.
type Config struct {
	LongThreshold time.Duration
	FirstStudy    time.Duration
	Study         time.Duration
	Break         time.Duration
}

// DefaultConfig returns a 60 minute opening phase followed by 50/10 cycles.
func DefaultConfig() Config {
	return Config{
		LongThreshold: 60 * time.Minute,
		FirstStudy:    60 * time.Minute,
		Study:         50 * time.Minute,
		Break:         10 * time.Minute,
	}
}

func (c Config) validate() error {
	if c.FirstStudy <= 0 || c.Study <= 0 || c.Break <= 0 {
		return fmt.Errorf("pomodoro: phase lengths must be positive: %+v", c)
	}
	return nil
}

// Segment is one phase of a schedule. Cycle counts study phases from 1; a
// break carries the cycle of the study phase before it.
type Segment struct {
	Phase    Phase
	Cycle    int
	Duration time.Duration
}

// Schedule splits total study time into alternating phases.
func Schedule(total time.Duration, cfg Config) ([]Segment, error) {
	if total <= 0 {
		return nil, ErrInvalidTotal
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if total < cfg.LongThreshold {
		return []Segment{{Phase: PhaseStudy, Cycle: 1, Duration: total}}, nil
	}

	first := min(cfg.FirstStudy, total)
	segments := []Segment{{Phase: PhaseStudy, Cycle: 1, Duration: first}}
	studied := first

	for cycle := 2; studied < total; cycle++ {
		next := min(cfg.Study, total-studied)
		segments = append(segments,
			Segment{Phase: PhaseBreak, Cycle: cycle - 1, Duration: cfg.Break},
			Segment{Phase: PhaseStudy, Cycle: cycle, Duration: next},
		)
		studied += next
	}
	return segments, nil
}

// StudyTime sums the study phases of a schedule.
func StudyTime(segments []Segment) time.Duration {
	var d time.Duration
	for _, s := range segments {
		if s.Phase == PhaseStudy {
			d += s.Duration
		}
	}
	return d
}

// WallTime sums every phase of a schedule.
func WallTime(segments []Segment) time.Duration {
	var d time.Duration
	for _, s := range segments {
		d += s.Duration
	}
	return d
}
