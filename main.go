package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/stagekit/stagehand/internal/audio"
	"github.com/stagekit/stagehand/internal/config"
	"github.com/stagekit/stagehand/internal/controller"
	"github.com/stagekit/stagehand/internal/device"
	"github.com/stagekit/stagehand/internal/display"
	"github.com/stagekit/stagehand/internal/mixer"
)

func main() {
	os.Exit(run())
}

func run() int {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log := logrus.WithField("component", "main")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Warn("config unavailable, using built-in defaults")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	// Device absence is the only fatal startup error besides OBS.
	lp, err := device.Open(cfg.Device.PortMatch)
	if err != nil {
		log.WithError(err).Error("failed to initialize pad controller")
		return 1
	}
	defer lp.Close()

	mix, err := mixer.Connect(cfg.OBS.Host, cfg.OBS.Port, cfg.OBS.Password)
	if err != nil {
		log.WithError(err).Error("failed to connect to OBS")
		return 1
	}
	defer mix.Close()

	if scene, err := mix.CurrentScene(); err != nil {
		log.WithError(err).Warn("could not read current OBS scene")
	} else {
		log.Infof("OBS program scene: %s", scene)
	}

	deck, err := audio.NewDeck()
	if err != nil {
		log.WithError(err).Error("failed to initialize audio")
		return 1
	}
	defer deck.Close()

	disp := display.NewWriter(lp)
	disp.Reset()

	events := make(chan device.Event, 64)
	if err := lp.Listen(func(ev device.Event) {
		select {
		case events <- ev:
		default:
			log.Warnf("input overflow, dropping event for pad %d", ev.Pad)
		}
	}); err != nil {
		disp.Close()
		log.WithError(err).Error("failed to start input listener")
		return 1
	}

	ctrl := controller.New(cfg, disp, mix, deck, events)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := ctrl.Run(ctx); err != nil {
		log.WithError(err).Error("dispatch loop failed")
	}
	ctrl.Close()

	log.Info("stagehand stopped")
	return 0
}
