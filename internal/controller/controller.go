// Package controller runs the dispatch loop: it resolves incoming pad
// events against the menu registry, invokes bound actions and owns the
// single timed-activity slot.
package controller

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stagekit/stagehand/internal/audio"
	"github.com/stagekit/stagehand/internal/config"
	"github.com/stagekit/stagehand/internal/device"
	"github.com/stagekit/stagehand/internal/display"
	"github.com/stagekit/stagehand/internal/feedback"
	"github.com/stagekit/stagehand/internal/menu"
	"github.com/stagekit/stagehand/internal/pad"
)

// Mixer is the video-mix collaborator.
type Mixer interface {
	SetScene(name string) error
}

// Player is the audio-playback collaborator.
type Player interface {
	Play(path string) error
	Stop()
	State() audio.State
	Position() float64
	AdjustVolume(delta int) int
	ToggleMute() bool
}

// Controller wires the board, feedback scheduler and collaborators
// together and consumes the input event stream on a single goroutine.
type Controller struct {
	log    *logrus.Entry
	cfg    *config.Config
	disp   *display.Writer
	board  *menu.Board
	fx     *feedback.Scheduler
	mix    Mixer
	deck   Player
	events <-chan device.Event

	// animate gates the startup color wipe; tests disable it.
	animate bool

	mu         sync.Mutex
	sceneKey   string
	activeClip string
	activePad  pad.ID
}

// New builds a controller with the default menu bindings.
func New(cfg *config.Config, disp *display.Writer, mix Mixer, deck Player, events <-chan device.Event) *Controller {
	c := &Controller{
		log:    logrus.WithField("component", "controller"),
		cfg:    cfg,
		disp:   disp,
		mix:    mix,
		deck:   deck,
		events: events,

		animate: true,
	}
	reg := menu.NewRegistry(c.bindings())
	c.board = menu.NewBoard(reg, disp)
	c.fx = feedback.NewScheduler(disp, c.board)
	return c
}

// CurrentMenu returns the active menu.
func (c *Controller) CurrentMenu() menu.Mode {
	return c.board.Current()
}

// Run draws the initial grid and consumes events until the context is
// canceled or the event stream ends. All exit paths leave shutdown to
// Close, which the caller must invoke.
func (c *Controller) Run(ctx context.Context) error {
	if c.animate {
		c.startupAnimation()
	}
	c.board.Redraw()
	c.log.Info("control panel running; selector buttons switch menus")

	for {
		select {
		case <-ctx.Done():
			c.log.Info("shutting down")
			return nil
		case ev, ok := <-c.events:
			if !ok {
				c.log.Warn("input stream ended")
				return nil
			}
			c.handle(ev)
		}
	}
}

// handle dispatches one input event. Releases are discarded; selector
// presses switch menus; anything else flashes and invokes its binding.
func (c *Controller) handle(ev device.Event) {
	if ev.Velocity == 0 {
		return
	}
	if pad.RoleOf(ev.Pad) == pad.ModeSelector {
		if mode, ok := menu.SelectorFor(ev.Pad); ok {
			c.board.Switch(mode)
		}
		return
	}

	c.fx.Flash(ev.Pad)

	act := c.board.ActionFor(ev.Pad)
	if act == nil {
		c.log.Infof("pad %d pressed: nothing bound in %s menu", ev.Pad, c.board.Current())
		return
	}
	if err := act.Invoke(); err != nil {
		c.log.WithError(err).Errorf("%s failed", act.Describe())
		return
	}
	c.log.Infof("%s", act.Describe())
}

// Close converges every exit path: stop playback, retire effects, clear
// the grid and release the display writer.
func (c *Controller) Close() {
	c.StopPlayback()
	c.fx.Close()
	c.disp.Reset()
	c.disp.Flush()
	c.disp.Close()
}

// startupAnimation wipes the grid through a few colors before the first
// redraw.
func (c *Controller) startupAnimation() {
	for _, color := range []pad.Color{pad.RedFull, pad.AmberFull, pad.GreenFull, pad.BlueFull} {
		c.disp.Fill(color)
		c.disp.Flush()
		time.Sleep(200 * time.Millisecond)
	}
	c.disp.Fill(pad.Off)
}
