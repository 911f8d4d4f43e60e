package controller

import (
	"math/rand"
	"time"

	"github.com/stagekit/stagehand/internal/audio"
	"github.com/stagekit/stagehand/internal/menu"
	"github.com/stagekit/stagehand/internal/pad"
)

// Light shows paint the 8x8 grid (pads 0-63 by row) in the background
// and hand the surface back to the menu redraw when they finish. They
// are best-effort: a menu switch mid-show is repainted by the show's
// final redraw.

const gridRows = 8

func (c *Controller) paintGrid(color pad.Color) {
	for row := 0; row < gridRows; row++ {
		for col := 0; col < 8; col++ {
			c.disp.Set(pad.ID(row*16+col), color)
		}
	}
}

// FlashLights strobes the grid red three times. Implements action.Lights.
func (c *Controller) FlashLights() {
	c.log.Info("flash lights activated")
	go func() {
		for i := 0; i < 3; i++ {
			c.paintGrid(pad.RedFull)
			time.Sleep(100 * time.Millisecond)
			c.paintGrid(pad.Off)
			time.Sleep(100 * time.Millisecond)
		}
		c.board.Redraw()
	}()
}

// Celebration scatters random colors across the grid. Implements
// action.Lights.
func (c *Controller) Celebration() {
	c.log.Info("celebration mode activated")
	colors := []pad.Color{pad.RedFull, pad.GreenFull, pad.BlueFull, pad.YellowFull}
	go func() {
		for i := 0; i < 10; i++ {
			for row := 0; row < gridRows; row++ {
				for col := 0; col < 8; col++ {
					c.disp.Set(pad.ID(row*16+col), colors[rand.Intn(len(colors))])
				}
			}
			time.Sleep(200 * time.Millisecond)
		}
		c.board.Redraw()
	}()
}

// VotingPulse pulses the grid amber. Implements action.Lights.
func (c *Controller) VotingPulse() {
	c.log.Info("voting mode activated")
	go func() {
		for i := 0; i < 20; i++ {
			c.paintGrid(pad.AmberFull)
			time.Sleep(500 * time.Millisecond)
			c.paintGrid(pad.AmberLow)
			time.Sleep(500 * time.Millisecond)
		}
		c.board.Redraw()
	}()
}

// TechnicalBreak cuts to the backup scene and stops playback.
// Implements action.Panel.
func (c *Controller) TechnicalBreak() {
	if err := c.SwitchScene("backup"); err != nil {
		c.log.WithError(err).Error("technical break: scene switch failed")
	}
	c.StopPlayback()
	c.log.Info("technical break activated")
}

// ResetAll returns the panel to its startup state. Implements
// action.Panel.
func (c *Controller) ResetAll() {
	c.StopPlayback()
	if err := c.SwitchScene("intro"); err != nil {
		c.log.WithError(err).Error("reset: scene switch failed")
	}
	c.board.Switch(menu.Scenes)
	c.log.Info("system reset")
}

// TestMode is a diagnostic placeholder. Implements action.Panel.
func (c *Controller) TestMode() {
	c.log.Info("test mode")
}

// EmergencyStop kills playback, cuts to backup and rebuilds the grid
// from scratch. Implements action.Panel.
func (c *Controller) EmergencyStop() {
	c.StopPlayback()
	if err := c.SwitchScene("backup"); err != nil {
		c.log.WithError(err).Error("emergency stop: scene switch failed")
	}
	c.disp.Reset()
	c.board.Redraw()
	c.log.Warn("EMERGENCY STOP ACTIVATED")
}

// ShowStatus logs the current menu, scene and clip. Implements
// action.Panel.
func (c *Controller) ShowStatus() {
	c.mu.Lock()
	scene, clip := c.sceneKey, c.activeClip
	c.mu.Unlock()
	playing := c.deck.State() == audio.Playing
	c.log.Infof("status: menu=%s scene=%s clip=%s playing=%t",
		c.board.Current(), orNone(scene), orNone(clip), playing)
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
