// Package audio plays show clips through the system speaker. One clip
// plays at a time; starting a new one replaces the old.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/sirupsen/logrus"
)

// State is the lifecycle of the current clip.
type State int

const (
	Stopped State = iota
	Playing
	Ended
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Ended:
		return "ended"
	default:
		return "stopped"
	}
}

const mixRate = beep.SampleRate(44100)

// clip is the streaming state of one loaded file. Fields written by the
// speaker goroutine are read under the speaker lock.
type clip struct {
	stream beep.StreamSeekCloser
	vol    *effects.Volume
	state  State
}

// Deck owns the speaker and the single current clip.
type Deck struct {
	log *logrus.Entry

	mu      sync.Mutex
	current *clip
	percent int
	muted   bool
}

// NewDeck initializes the speaker at the mix rate.
func NewDeck() (*Deck, error) {
	if err := speaker.Init(mixRate, mixRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Deck{
		log:     logrus.WithField("component", "audio"),
		percent: 100,
	}, nil
}

// Play loads path and starts it, replacing any running clip. A missing
// or undecodable file is an error to the caller, never fatal.
func (d *Deck) Play(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open clip: %w", err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		f.Close()
		return fmt.Errorf("unsupported clip format %q", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("decode clip: %w", err)
	}

	d.Stop()

	var src beep.Streamer = stream
	if format.SampleRate != mixRate {
		src = beep.Resample(4, format.SampleRate, mixRate, stream)
	}

	d.mu.Lock()
	c := &clip{
		stream: stream,
		vol: &effects.Volume{
			Streamer: src,
			Base:     2,
			Volume:   gain(d.percent),
			Silent:   d.muted || d.percent == 0,
		},
		state: Playing,
	}
	d.current = c
	d.mu.Unlock()

	speaker.Play(beep.Seq(c.vol, beep.Callback(func() {
		c.state = Ended
	})))
	d.log.Infof("playing %s", path)
	return nil
}

// Stop halts and releases the current clip, if any.
func (d *Deck) Stop() {
	d.mu.Lock()
	c := d.current
	d.current = nil
	d.mu.Unlock()
	if c == nil {
		return
	}
	speaker.Clear()
	speaker.Lock()
	c.state = Stopped
	speaker.Unlock()
	c.stream.Close()
	d.log.Info("playback stopped")
}

// State reports the current clip's lifecycle; Stopped when none loaded.
func (d *Deck) State() State {
	d.mu.Lock()
	c := d.current
	d.mu.Unlock()
	if c == nil {
		return Stopped
	}
	speaker.Lock()
	defer speaker.Unlock()
	return c.state
}

// Position is the normalized playback position in [0, 1].
func (d *Deck) Position() float64 {
	d.mu.Lock()
	c := d.current
	d.mu.Unlock()
	if c == nil {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	total := c.stream.Len()
	if total <= 0 {
		return 0
	}
	pos := float64(c.stream.Position()) / float64(total)
	if pos < 0 {
		return 0
	}
	if pos > 1 {
		return 1
	}
	return pos
}

// Volume returns the deck volume in percent.
func (d *Deck) Volume() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.percent
}

// SetVolume sets the deck volume, clamped to 0-100, and applies it to
// the running clip.
func (d *Deck) SetVolume(percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	d.mu.Lock()
	d.percent = percent
	c := d.current
	muted := d.muted
	d.mu.Unlock()
	if c != nil {
		speaker.Lock()
		c.vol.Volume = gain(percent)
		c.vol.Silent = muted || percent == 0
		speaker.Unlock()
	}
	d.log.Infof("volume: %d%%", percent)
}

// AdjustVolume steps the volume by delta percent and returns the result.
func (d *Deck) AdjustVolume(delta int) int {
	d.SetVolume(d.Volume() + delta)
	return d.Volume()
}

// Muted reports the deck mute state.
func (d *Deck) Muted() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.muted
}

// SetMute sets the mute state and applies it to the running clip.
func (d *Deck) SetMute(muted bool) {
	d.mu.Lock()
	d.muted = muted
	c := d.current
	percent := d.percent
	d.mu.Unlock()
	if c != nil {
		speaker.Lock()
		c.vol.Silent = muted || percent == 0
		speaker.Unlock()
	}
	if muted {
		d.log.Info("audio muted")
	} else {
		d.log.Info("audio unmuted")
	}
}

// ToggleMute flips the mute state and returns the new value.
func (d *Deck) ToggleMute() bool {
	muted := !d.Muted()
	d.SetMute(muted)
	return muted
}

// Close stops playback.
func (d *Deck) Close() {
	d.Stop()
}

// gain maps a 0-100 percent to a base-2 log volume: 100% is unity,
// each 20 points halve the level. 0% is handled by Silent.
func gain(percent int) float64 {
	return float64(percent-100) / 20
}
