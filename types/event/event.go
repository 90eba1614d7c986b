package event

import "fmt"

// NormalStyle is the baseline movement style.
const NormalStyle = "Normal"

type Player struct {
	Name    string `json:"name"`
	SteamID string `json:"steam_id"`
}

// RunEvent describes a finished run that produced a personal best or server record.
type RunEvent struct {
	Player

	MapName        string `json:"map"`
	MapTier        string `json:"tier,omitempty"` // empty when unknown
	Bonus          int    `json:"bonus"`          // 0 is the main track
	Time           string `json:"time"`
	Placement      string `json:"placement,omitempty"`
	TimesFinished  int    `json:"times_finished"`
	ServerRecord   bool   `json:"server_record"`
	TimeDifference string `json:"time_difference,omitempty"` // empty on a first completion
	Style          string `json:"style"`
}

func (e RunEvent) FirstTime() bool {
	return len(e.TimeDifference) == 0
}

// IsNormalStyle treats a missing style as the baseline one.
func (e RunEvent) IsNormalStyle() bool {
	return len(e.Style) == 0 || e.Style == NormalStyle
}

func (e RunEvent) MapDisplayName() string {
	if e.Bonus == 0 {
		return e.MapName
	}
	return fmt.Sprintf("%s bonus #%d", e.MapName, e.Bonus)
}

// FlagEvent is raised by the anti-cheat when a player gets flagged.
type FlagEvent struct {
	Player

	Reason string `json:"reason"`
}
