// Package device talks to the Launchpad over MIDI: port discovery,
// note-on color output and press/release input events.
package device

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // register rtmidi driver

	"github.com/stagekit/stagehand/internal/pad"
)

// ErrNotFound is returned by Open when no matching MIDI port exists.
var ErrNotFound = errors.New("controller not found")

// Event is one normalized input event. Velocity 0 is a release.
type Event struct {
	Pad      pad.ID
	Velocity uint8
}

// Launchpad holds an open input/output port pair.
type Launchpad struct {
	in   drivers.In
	out  drivers.Out
	send func(midi.Message) error
	stop func()
	log  *logrus.Entry
}

// Open finds the first input and output port whose names contain match
// and prepares them for use.
func Open(match string) (*Launchpad, error) {
	var in drivers.In
	for _, p := range midi.GetInPorts() {
		if containsFold(p.String(), match) {
			in = p
			break
		}
	}
	var out drivers.Out
	for _, p := range midi.GetOutPorts() {
		if containsFold(p.String(), match) {
			out = p
			break
		}
	}
	if in == nil || out == nil {
		return nil, fmt.Errorf("%w: no MIDI port matching %q", ErrNotFound, match)
	}

	send, err := midi.SendTo(out)
	if err != nil {
		return nil, fmt.Errorf("open output %q: %w", out.String(), err)
	}

	l := &Launchpad{
		in:   in,
		out:  out,
		send: send,
		log:  logrus.WithField("component", "device"),
	}
	l.log.Infof("connected to %s", in.String())
	return l, nil
}

// SetPad sets one pad to a velocity color code. One message per call.
func (l *Launchpad) SetPad(p pad.ID, c pad.Color) error {
	return l.send(midi.NoteOn(0, uint8(p), uint8(c)))
}

// Reset turns every pad off.
func (l *Launchpad) Reset() error {
	for p := 0; p < pad.Count; p++ {
		if err := l.send(midi.NoteOn(0, uint8(p), 0)); err != nil {
			return fmt.Errorf("reset pad %d: %w", p, err)
		}
	}
	return nil
}

// Listen registers fn for incoming note events. Note-off and zero
// velocity both arrive as Velocity 0.
func (l *Launchpad) Listen(fn func(Event)) error {
	stop, err := midi.ListenTo(l.in, func(msg midi.Message, _ int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteOn(&ch, &key, &vel):
			fn(Event{Pad: pad.ID(key), Velocity: vel})
		case msg.GetNoteOff(&ch, &key, &vel):
			fn(Event{Pad: pad.ID(key), Velocity: 0})
		}
	})
	if err != nil {
		return fmt.Errorf("listen on %q: %w", l.in.String(), err)
	}
	l.stop = stop
	return nil
}

// Close stops the listener and releases the MIDI driver.
func (l *Launchpad) Close() {
	if l.stop != nil {
		l.stop()
	}
	midi.CloseDriver()
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
