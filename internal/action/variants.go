package action

import "github.com/stagekit/stagehand/internal/pad"

// SwitchScene sets the video mix to the scene configured under Key.
type SwitchScene struct {
	Mix SceneSwitcher
	Key string
}

func (a SwitchScene) Invoke() error    { return a.Mix.SwitchScene(a.Key) }
func (a SwitchScene) Describe() string { return "switch scene " + a.Key }

// PlayClip starts the audio clip configured under Key; Pad is the
// pressed pad, which carries the active-clip blink.
type PlayClip struct {
	Deck Transport
	Key  string
	Pad  pad.ID
}

func (a PlayClip) Invoke() error    { return a.Deck.PlayClip(a.Key, a.Pad) }
func (a PlayClip) Describe() string { return "play clip " + a.Key }

// StopPlayback stops the running clip and clears its feedback.
type StopPlayback struct {
	Deck Transport
}

func (a StopPlayback) Invoke() error {
	a.Deck.StopPlayback()
	return nil
}
func (a StopPlayback) Describe() string { return "stop playback" }

// AdjustVolume steps the deck volume by Delta percent.
type AdjustVolume struct {
	Deck  Transport
	Delta int
}

func (a AdjustVolume) Invoke() error {
	a.Deck.AdjustVolume(a.Delta)
	return nil
}

func (a AdjustVolume) Describe() string {
	if a.Delta >= 0 {
		return "volume up"
	}
	return "volume down"
}

// ToggleMute flips the deck mute state.
type ToggleMute struct {
	Deck Transport
}

func (a ToggleMute) Invoke() error {
	a.Deck.ToggleMute()
	return nil
}
func (a ToggleMute) Describe() string { return "toggle mute" }

// Show selects one of the built-in light shows.
type Show int

const (
	ShowFlash Show = iota
	ShowCelebration
	ShowVoting
)

// LightShow runs a background light show on the grid.
type LightShow struct {
	Lights Lights
	Show   Show
}

func (a LightShow) Invoke() error {
	switch a.Show {
	case ShowCelebration:
		a.Lights.Celebration()
	case ShowVoting:
		a.Lights.VotingPulse()
	default:
		a.Lights.FlashLights()
	}
	return nil
}

func (a LightShow) Describe() string {
	switch a.Show {
	case ShowCelebration:
		return "celebration mode"
	case ShowVoting:
		return "voting mode"
	default:
		return "flash lights"
	}
}

// TechnicalBreak cuts to the backup scene and stops playback.
type TechnicalBreak struct {
	Panel Panel
}

func (a TechnicalBreak) Invoke() error {
	a.Panel.TechnicalBreak()
	return nil
}
func (a TechnicalBreak) Describe() string { return "technical break" }

// ResetAll returns the whole panel to its startup state.
type ResetAll struct {
	Panel Panel
}

func (a ResetAll) Invoke() error {
	a.Panel.ResetAll()
	return nil
}
func (a ResetAll) Describe() string { return "reset all" }

// TestMode is a placeholder diagnostic.
type TestMode struct {
	Panel Panel
}

func (a TestMode) Invoke() error {
	a.Panel.TestMode()
	return nil
}
func (a TestMode) Describe() string { return "test mode" }

// EmergencyStop kills playback, cuts to backup and clears the grid.
type EmergencyStop struct {
	Panel Panel
}

func (a EmergencyStop) Invoke() error {
	a.Panel.EmergencyStop()
	return nil
}
func (a EmergencyStop) Describe() string { return "emergency stop" }

// ShowStatus logs the current menu, scene and clip.
type ShowStatus struct {
	Panel Panel
}

func (a ShowStatus) Invoke() error {
	a.Panel.ShowStatus()
	return nil
}
func (a ShowStatus) Describe() string { return "show status" }
