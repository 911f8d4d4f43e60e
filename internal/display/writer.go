// Package display serializes all pad color writes onto a single
// goroutine. The dispatch loop and any number of feedback effects post
// paint requests here instead of touching the hardware channel
// themselves, so no two writers ever interleave on the device.
package display

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/stagekit/stagehand/internal/pad"
)

// Output is the hardware-bound side of the writer.
type Output interface {
	// SetPad emits exactly one message setting a pad's color.
	SetPad(p pad.ID, c pad.Color) error
	// Reset turns every pad off.
	Reset() error
}

type opKind int

const (
	opSet opKind = iota
	opFill
	opReset
	opFlush
)

type op struct {
	kind  opKind
	pad   pad.ID
	color pad.Color
	ack   chan struct{}
}

// Writer owns the device output channel and the per-pad color cache.
// All methods are safe for concurrent use; calls after Close are no-ops.
type Writer struct {
	out Output
	log *logrus.Entry

	mu     sync.RWMutex
	closed bool
	ops    chan op
	done   chan struct{}
}

// NewWriter starts the writer goroutine over the given output.
func NewWriter(out Output) *Writer {
	w := &Writer{
		out:  out,
		log:  logrus.WithField("component", "display"),
		ops:  make(chan op, 256),
		done: make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *Writer) run() {
	defer close(w.done)

	// Cache of the last color written per pad. Writing the color a pad
	// already shows is suppressed, which makes Set idempotent on the wire.
	var cache [pad.Count]pad.Color

	for o := range w.ops {
		switch o.kind {
		case opSet:
			if cache[o.pad] == o.color {
				continue
			}
			cache[o.pad] = o.color
			if err := w.out.SetPad(o.pad, o.color); err != nil {
				w.log.WithError(err).Debugf("set pad %d dropped", o.pad)
			}
		case opFill:
			for p := 0; p < pad.Count; p++ {
				if cache[p] == o.color {
					continue
				}
				cache[p] = o.color
				if err := w.out.SetPad(pad.ID(p), o.color); err != nil {
					w.log.WithError(err).Debugf("set pad %d dropped", p)
				}
			}
		case opReset:
			cache = [pad.Count]pad.Color{}
			if err := w.out.Reset(); err != nil {
				w.log.WithError(err).Debug("reset dropped")
			}
		case opFlush:
			close(o.ack)
		}
	}
}

func (w *Writer) post(o op) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		if o.ack != nil {
			close(o.ack)
		}
		return
	}
	w.ops <- o
}

// Set queues a single pad color write.
func (w *Writer) Set(p pad.ID, c pad.Color) {
	w.post(op{kind: opSet, pad: p, color: c})
}

// Fill queues a write of the same color to every pad.
func (w *Writer) Fill(c pad.Color) {
	w.post(op{kind: opFill, color: c})
}

// Reset queues a full clear of the grid.
func (w *Writer) Reset() {
	w.post(op{kind: opReset})
}

// Flush blocks until every previously queued write has reached the device.
func (w *Writer) Flush() {
	ack := make(chan struct{})
	w.post(op{kind: opFlush, ack: ack})
	<-ack
}

// Close drains pending writes and stops the writer goroutine.
func (w *Writer) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	close(w.ops)
	w.mu.Unlock()
	<-w.done
}
