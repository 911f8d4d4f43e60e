package controller

import (
	"fmt"

	"github.com/stagekit/stagehand/internal/audio"
	"github.com/stagekit/stagehand/internal/pad"
)

// SwitchScene resolves key against the configured scene table and sets
// the video mix. Implements action.SceneSwitcher.
func (c *Controller) SwitchScene(key string) error {
	name, ok := c.cfg.Scenes[key]
	if !ok {
		return fmt.Errorf("no scene configured for %q", key)
	}
	if err := c.mix.SetScene(name); err != nil {
		return err
	}
	c.mu.Lock()
	c.sceneKey = key
	c.mu.Unlock()
	return nil
}

// PlayClip starts the clip configured under key. The previous clip, if
// any, is stopped and its feedback cleared before the new blink and
// progress sweep begin. Implements action.Transport.
func (c *Controller) PlayClip(key string, p pad.ID) error {
	path, ok := c.cfg.Music[key]
	if !ok {
		return fmt.Errorf("no clip configured for %q", key)
	}

	c.StopPlayback()

	if err := c.deck.Play(path); err != nil {
		return err
	}

	tok := c.fx.Begin()
	c.mu.Lock()
	c.activeClip = key
	c.activePad = p
	c.mu.Unlock()

	c.fx.Blink(tok, p, func() bool {
		return c.deck.State() == audio.Playing
	}, func() {
		// Natural end of playback: retire the blinking-pad designation,
		// unless a newer clip already claimed the slot.
		c.mu.Lock()
		if c.activeClip == key && c.activePad == p {
			c.activeClip = ""
		}
		c.mu.Unlock()
	})
	c.fx.Sweep(tok, pad.ProgressCells(), func() (float64, bool) {
		return c.deck.Position(), c.deck.State() != audio.Playing
	})
	return nil
}

// StopPlayback stops the deck, retires the running effects and restores
// their pads to canonical colors. Safe to call with nothing playing.
func (c *Controller) StopPlayback() {
	// Flip the token first so blink/sweep loops observe obsolescence
	// within one polling interval and stop writing.
	c.fx.Cancel()
	c.deck.Stop()

	c.mu.Lock()
	blinkPad, had := c.activePad, c.activeClip != ""
	c.activeClip = ""
	c.mu.Unlock()

	for _, cell := range pad.ProgressCells() {
		c.disp.Set(cell, pad.Off)
	}
	if had {
		c.disp.Set(blinkPad, c.board.CanonicalColor(blinkPad))
	}
}

// AdjustVolume steps the deck volume. Implements action.Transport.
func (c *Controller) AdjustVolume(delta int) {
	c.deck.AdjustVolume(delta)
}

// ToggleMute flips the deck mute state. Implements action.Transport.
func (c *Controller) ToggleMute() {
	c.deck.ToggleMute()
}
