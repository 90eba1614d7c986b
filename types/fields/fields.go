package fields

import (
	"strconv"

	"github.com/sharptimer/timerhook/types/config"
	"github.com/sharptimer/timerhook/types/event"
	"github.com/sharptimer/timerhook/utils"
)

// zero width space, renders as an empty cell
const blank = "\u200B"

const (
	NameMap           = "🗺️ Map:"
	NameTier          = "🔰 Tier:"
	NameTime          = "⌛ Time:"
	NameTimeChange    = "⏳ Time change:"
	NamePlacement     = "🎖️ Placement:"
	NameTimesFinished = "🔢 Times Finished:"
	NameSteamID       = "🛈 SteamID:"
	NameStyle         = "🛹 Style:"
	NameReason        = "Reason:"

	FirstTime = "First time!"
)

type Field struct {
	Name   string
	Value  string
	Inline bool
}

func Spacer() Field {
	return Field{Name: blank, Value: blank, Inline: true}
}

func inline(name, value string) Field {
	return Field{Name: name, Value: value, Inline: true}
}

// RecordFields lists the fields of a record notification in display order,
// leaving out the ones that are toggled off or have no data.
func RecordFields(ev event.RunEvent, settings config.Settings, profileBase string) []Field {
	fields := make([]Field, 0, 8)

	if len(ev.MapName) != 0 {
		fields = append(fields, inline(NameMap, ev.MapDisplayName()))
	}
	if settings.Tier && len(ev.MapTier) != 0 {
		fields = append(fields, inline(NameTier, ev.MapTier))
	}
	if len(ev.Time) != 0 {
		fields = append(fields, inline(NameTime, ev.Time))
	}
	if settings.TimeChange && !ev.FirstTime() {
		fields = append(fields, inline(NameTimeChange, ev.TimeDifference))
	}
	if settings.Placement && len(ev.Placement) != 0 {
		fields = append(fields, inline(NamePlacement, "#"+ev.Placement))
	}
	if settings.TimesFinished {
		finished := FirstTime
		if !ev.FirstTime() {
			finished = strconv.Itoa(ev.TimesFinished)
		}
		fields = append(fields, inline(NameTimesFinished, finished))
	}
	if settings.SteamLink && len(ev.SteamID) != 0 {
		fields = append(fields, inline(NameSteamID, utils.ProfileMarkdownLink(profileBase, ev.SteamID)))
	}
	if !settings.DisableStyleRecords && len(ev.Style) != 0 {
		fields = append(fields, inline(NameStyle, ev.Style))
	}

	return fields
}

func FlagFields(ev event.FlagEvent, settings config.Settings, profileBase string) []Field {
	fields := make([]Field, 0, 2)

	if settings.SteamLink && len(ev.SteamID) != 0 {
		fields = append(fields, inline(NameSteamID, utils.ProfileMarkdownLink(profileBase, ev.SteamID)))
	}
	fields = append(fields, inline(NameReason, ev.Reason))

	return fields
}

// ComposeRecord returns the record fields laid out in two columns.
func ComposeRecord(ev event.RunEvent, settings config.Settings, profileBase string) []Field {
	return Pad(RecordFields(ev, settings, profileBase))
}

func ComposeFlag(ev event.FlagEvent, settings config.Settings, profileBase string) []Field {
	return Pad(FlagFields(ev, settings, profileBase))
}

// Pad inserts a spacer after every second field, unless that field is the last one,
// and appends a trailing spacer when the field count is even.
// Discord renders up to three inline fields per row so this keeps two per row.
func Pad(fields []Field) []Field {
	padded := make([]Field, 0, len(fields)+len(fields)/2+1)
	for i, field := range fields {
		padded = append(padded, field)
		if (i+1)%2 == 0 && i != len(fields)-1 {
			padded = append(padded, Spacer())
		}
	}
	if len(fields)%2 == 0 {
		padded = append(padded, Spacer())
	}
	return padded
}
