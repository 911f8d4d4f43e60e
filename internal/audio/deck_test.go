package audio

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestGainMapping(t *testing.T) {
	tests := []struct {
		percent int
		want    float64
	}{
		{100, 0},  // unity
		{80, -1},  // one halving
		{60, -2},
		{0, -5}, // inaudible floor; Silent handles true zero
	}
	for _, tt := range tests {
		if got := gain(tt.percent); got != tt.want {
			t.Errorf("gain(%d) = %v, want %v", tt.percent, got, tt.want)
		}
	}
}

func TestSetMuteAndToggle(t *testing.T) {
	// No clip loaded, so the speaker is never touched.
	d := &Deck{log: logrus.WithField("component", "audio"), percent: 100}

	if d.Muted() {
		t.Fatal("deck starts muted")
	}

	d.SetMute(true)
	if !d.Muted() {
		t.Fatal("SetMute(true) not applied")
	}
	d.SetMute(true) // idempotent
	if !d.Muted() {
		t.Fatal("repeated SetMute(true) flipped the state")
	}

	if got := d.ToggleMute(); got {
		t.Fatalf("ToggleMute() = %t, want false after unmuting", got)
	}
	if d.Muted() {
		t.Fatal("toggle did not unmute")
	}
	if got := d.ToggleMute(); !got {
		t.Fatalf("ToggleMute() = %t, want true after muting", got)
	}
}

func TestStateString(t *testing.T) {
	if Stopped.String() != "stopped" || Playing.String() != "playing" || Ended.String() != "ended" {
		t.Fatal("state names wrong")
	}
}
