// Package feedback runs the transient visual effects: press flashes,
// the active-clip blink and the playback progress sweep. Effects are
// cooperative goroutines; each one is pinned to a generation token and
// exits silently once a newer activity supersedes it.
package feedback

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/stagekit/stagehand/internal/display"
	"github.com/stagekit/stagehand/internal/pad"
)

// Canonical resolves the color a pad shows when no effect is in flight.
type Canonical interface {
	CanonicalColor(p pad.ID) pad.Color
}

// Scheduler coordinates all transient effects against a single display
// writer. At most one blink and one sweep run at a time, tied to the
// current activity token.
type Scheduler struct {
	disp  *display.Writer
	canon Canonical
	log   *logrus.Entry

	// Effect timings. Set by NewScheduler; tests shorten them.
	flashDuration time.Duration
	blinkPeriod   time.Duration
	sweepInterval time.Duration

	mu      sync.Mutex
	current uuid.UUID
	closed  bool
}

// NewScheduler creates a scheduler with production timings.
func NewScheduler(disp *display.Writer, canon Canonical) *Scheduler {
	return &Scheduler{
		disp:          disp,
		canon:         canon,
		log:           logrus.WithField("component", "feedback"),
		flashDuration: 500 * time.Millisecond,
		blinkPeriod:   500 * time.Millisecond,
		sweepInterval: 10 * time.Millisecond,
	}
}

// Begin supersedes any previous activity and returns the token the new
// activity's effects must carry. Running loops observe the flip within
// one of their own polling intervals.
func (s *Scheduler) Begin() uuid.UUID {
	tok := uuid.New()
	s.mu.Lock()
	s.current = tok
	s.mu.Unlock()
	return tok
}

// Cancel retires the current activity token without starting a new one.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	s.current = uuid.Nil
	s.mu.Unlock()
}

// Close retires every effect permanently; used at shutdown.
func (s *Scheduler) Close() {
	s.mu.Lock()
	s.current = uuid.Nil
	s.closed = true
	s.mu.Unlock()
}

func (s *Scheduler) active(tok uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed && s.current == tok
}

func (s *Scheduler) open() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed
}

// Flash highlights a pad briefly and restores its canonical color. Runs
// on every press, bound or not. The restore is sequenced after the
// highlight by the effect goroutine itself.
func (s *Scheduler) Flash(p pad.ID) {
	if !s.open() {
		return
	}
	restore := s.canon.CanonicalColor(p)
	go func() {
		s.disp.Set(p, pad.RedFull)
		time.Sleep(s.flashDuration)
		s.disp.Set(p, restore)
	}()
}

// Blink alternates the activity's pad between highlight and off while
// playing reports true and tok is still the current activity. On a
// natural end it restores the pad's canonical color and runs ended so
// the owner can retire its blinking-pad designation; when superseded it
// exits without writing, leaving the pad to the replacing activity.
func (s *Scheduler) Blink(tok uuid.UUID, p pad.ID, playing func() bool, ended func()) {
	go func() {
		for {
			if !s.active(tok) {
				return
			}
			if !playing() {
				break
			}
			s.disp.Set(p, pad.RedFull)
			time.Sleep(s.blinkPeriod)
			if !s.active(tok) {
				return
			}
			s.disp.Set(p, pad.Off)
			time.Sleep(s.blinkPeriod)
		}
		if s.active(tok) {
			s.disp.Set(p, s.canon.CanonicalColor(p))
			if ended != nil {
				ended()
			}
		}
	}()
}

// Sweep renders the progress bar across cells while the activity plays.
// position reports the normalized playback position and whether the
// activity has reached a terminal state. floor(pos * len(cells)) cells
// are lit; the rest stay off. On a natural end the cells are cleared;
// when superseded the loop exits without writing.
func (s *Scheduler) Sweep(tok uuid.UUID, cells []pad.ID, position func() (float64, bool)) {
	go func() {
		ticker := time.NewTicker(s.sweepInterval)
		defer ticker.Stop()
		for range ticker.C {
			if !s.active(tok) {
				return
			}
			pos, done := position()
			if done {
				break
			}
			lit := int(pos * float64(len(cells)))
			for i, c := range cells {
				if i < lit {
					s.disp.Set(c, pad.GreenFull)
				} else {
					s.disp.Set(c, pad.Off)
				}
			}
		}
		if s.active(tok) {
			for _, c := range cells {
				s.disp.Set(c, pad.Off)
			}
		}
	}()
}
