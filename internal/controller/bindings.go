package controller

import (
	"github.com/stagekit/stagehand/internal/action"
	"github.com/stagekit/stagehand/internal/menu"
	"github.com/stagekit/stagehand/internal/pad"
)

// bindings builds the four menu dispatch tables. The pad layout mirrors
// the printed overlay on the controller.
func (c *Controller) bindings() menu.Bindings {
	scene := func(key string) action.Action {
		return action.SwitchScene{Mix: c, Key: key}
	}
	clip := func(key string, p pad.ID) action.Action {
		return action.PlayClip{Deck: c, Key: key, Pad: p}
	}

	return menu.Bindings{
		menu.Scenes: {
			0:  scene("intro"),
			1:  scene("video"),
			6:  scene("backup"),
			7:  scene("break"),
			16: scene("stage1"),
			17: scene("stage2"),
			18: scene("stage3"),
			19: scene("stage4"),
			20: scene("stage5"),
			21: scene("stage6"),
			22: scene("stage7"),
			23: scene("stage8"),
			32: scene("greenroom1"),
			33: scene("greenroom2"),
			34: scene("greenroom3"),
			35: scene("greenroom4"),
			64: scene("scoreboard"),
			65: scene("winner"),
			66: scene("credits"),
		},
		menu.Music: {
			0:  clip("intro", 0),
			1:  clip("breakintro", 1),
			2:  clip("hosts", 2),
			3:  clip("greenroom", 3),
			4:  clip("interval", 4),
			5:  clip("tension", 5),
			6:  clip("winner", 6),
			7:  clip("credits", 7),
			32: action.StopPlayback{Deck: c},
			33: action.AdjustVolume{Deck: c, Delta: 10},
			34: action.AdjustVolume{Deck: c, Delta: -10},
			35: action.ToggleMute{Deck: c},
		},
		menu.Effects: {
			32: action.LightShow{Lights: c, Show: action.ShowFlash},
			33: action.LightShow{Lights: c, Show: action.ShowCelebration},
			34: action.LightShow{Lights: c, Show: action.ShowVoting},
			35: action.TechnicalBreak{Panel: c},
		},
		menu.Utility: {
			48: action.ResetAll{Panel: c},
			49: action.TestMode{Panel: c},
			50: action.EmergencyStop{Panel: c},
			51: action.ShowStatus{Panel: c},
		},
	}
}
