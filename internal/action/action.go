// Package action defines the operations a pad press can invoke. Each
// binding is a small value implementing Action over a narrow
// collaborator interface, so the dispatch loop never needs to know what
// a pad does.
package action

import "github.com/stagekit/stagehand/internal/pad"

// Action is a zero-argument operation bound to a pad within a menu.
type Action interface {
	// Invoke runs the operation. Errors are logged by the dispatcher and
	// never terminate the loop.
	Invoke() error
	// Describe names the operation for log lines.
	Describe() string
}

// SceneSwitcher changes the program scene of the video mix.
type SceneSwitcher interface {
	SwitchScene(key string) error
}

// Transport controls the audio clip deck.
type Transport interface {
	PlayClip(key string, p pad.ID) error
	StopPlayback()
	AdjustVolume(delta int)
	ToggleMute()
}

// Lights runs background light shows on the grid itself.
type Lights interface {
	FlashLights()
	Celebration()
	VotingPulse()
}

// Panel exposes whole-system operations of the control panel.
type Panel interface {
	TechnicalBreak()
	ResetAll()
	TestMode()
	EmergencyStop()
	ShowStatus()
}
