package action_test

import (
	"errors"
	"testing"

	"github.com/stagekit/stagehand/internal/action"
	"github.com/stagekit/stagehand/internal/pad"
)

// recorder implements every collaborator interface and logs calls.
type recorder struct {
	calls []string
	err   error
}

func (r *recorder) SwitchScene(key string) error {
	r.calls = append(r.calls, "scene:"+key)
	return r.err
}

func (r *recorder) PlayClip(key string, p pad.ID) error {
	r.calls = append(r.calls, "play:"+key)
	return r.err
}

func (r *recorder) StopPlayback() { r.calls = append(r.calls, "stop") }

func (r *recorder) AdjustVolume(delta int) {
	if delta >= 0 {
		r.calls = append(r.calls, "vol+")
	} else {
		r.calls = append(r.calls, "vol-")
	}
}

func (r *recorder) ToggleMute()     { r.calls = append(r.calls, "mute") }
func (r *recorder) FlashLights()    { r.calls = append(r.calls, "flash") }
func (r *recorder) Celebration()    { r.calls = append(r.calls, "celebration") }
func (r *recorder) VotingPulse()    { r.calls = append(r.calls, "voting") }
func (r *recorder) TechnicalBreak() { r.calls = append(r.calls, "break") }
func (r *recorder) ResetAll()       { r.calls = append(r.calls, "reset") }
func (r *recorder) TestMode()       { r.calls = append(r.calls, "test") }
func (r *recorder) EmergencyStop()  { r.calls = append(r.calls, "estop") }
func (r *recorder) ShowStatus()     { r.calls = append(r.calls, "status") }

func TestVariantsDispatch(t *testing.T) {
	r := &recorder{}
	tests := []struct {
		act  action.Action
		call string
		desc string
	}{
		{action.SwitchScene{Mix: r, Key: "intro"}, "scene:intro", "switch scene intro"},
		{action.PlayClip{Deck: r, Key: "hosts", Pad: 2}, "play:hosts", "play clip hosts"},
		{action.StopPlayback{Deck: r}, "stop", "stop playback"},
		{action.AdjustVolume{Deck: r, Delta: 10}, "vol+", "volume up"},
		{action.AdjustVolume{Deck: r, Delta: -10}, "vol-", "volume down"},
		{action.ToggleMute{Deck: r}, "mute", "toggle mute"},
		{action.LightShow{Lights: r, Show: action.ShowFlash}, "flash", "flash lights"},
		{action.LightShow{Lights: r, Show: action.ShowCelebration}, "celebration", "celebration mode"},
		{action.LightShow{Lights: r, Show: action.ShowVoting}, "voting", "voting mode"},
		{action.TechnicalBreak{Panel: r}, "break", "technical break"},
		{action.ResetAll{Panel: r}, "reset", "reset all"},
		{action.TestMode{Panel: r}, "test", "test mode"},
		{action.EmergencyStop{Panel: r}, "estop", "emergency stop"},
		{action.ShowStatus{Panel: r}, "status", "show status"},
	}

	for _, tt := range tests {
		r.calls = nil
		if err := tt.act.Invoke(); err != nil {
			t.Fatalf("%s: unexpected error %v", tt.desc, err)
		}
		if len(r.calls) != 1 || r.calls[0] != tt.call {
			t.Errorf("%s invoked %v, want [%s]", tt.desc, r.calls, tt.call)
		}
		if got := tt.act.Describe(); got != tt.desc {
			t.Errorf("Describe() = %q, want %q", got, tt.desc)
		}
	}
}

func TestErrorsPropagate(t *testing.T) {
	r := &recorder{err: errors.New("offline")}

	if err := (action.SwitchScene{Mix: r, Key: "intro"}).Invoke(); err == nil {
		t.Fatal("scene switch error swallowed")
	}
	if err := (action.PlayClip{Deck: r, Key: "hosts"}).Invoke(); err == nil {
		t.Fatal("play clip error swallowed")
	}
}
