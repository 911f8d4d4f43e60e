// Package mixer switches the active program scene of an OBS Studio
// instance over its websocket API.
package mixer

import (
	"fmt"

	"github.com/andreykaipov/goobs"
	"github.com/andreykaipov/goobs/api/requests/scenes"
	"github.com/sirupsen/logrus"
)

// Client wraps an authenticated obs-websocket connection.
type Client struct {
	obs *goobs.Client
	log *logrus.Entry
}

// Connect dials OBS and verifies the connection by fetching its version.
func Connect(host string, port int, password string) (*Client, error) {
	obs, err := goobs.New(fmt.Sprintf("%s:%d", host, port), goobs.WithPassword(password))
	if err != nil {
		return nil, fmt.Errorf("connect to OBS at %s:%d: %w", host, port, err)
	}

	log := logrus.WithField("component", "mixer")
	version, err := obs.General.GetVersion()
	if err != nil {
		obs.Disconnect()
		return nil, fmt.Errorf("query OBS version: %w", err)
	}
	log.Infof("connected to OBS Studio %s", version.ObsVersion)

	return &Client{obs: obs, log: log}, nil
}

// SetScene makes name the current program scene.
func (c *Client) SetScene(name string) error {
	_, err := c.obs.Scenes.SetCurrentProgramScene(
		scenes.NewSetCurrentProgramSceneParams().WithSceneName(name))
	if err != nil {
		return fmt.Errorf("switch to scene %q: %w", name, err)
	}
	return nil
}

// CurrentScene returns the name of the current program scene.
func (c *Client) CurrentScene() (string, error) {
	resp, err := c.obs.Scenes.GetCurrentProgramScene()
	if err != nil {
		return "", fmt.Errorf("query current scene: %w", err)
	}
	return resp.CurrentProgramSceneName, nil
}

// Close disconnects from OBS.
func (c *Client) Close() error {
	return c.obs.Disconnect()
}
