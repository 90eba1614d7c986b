package config

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/sharptimer/timerhook/types"
)

const (
	DefaultBotName      = "SharpTimer"
	DefaultBotAvatarUrl = "https://cdn.discordapp.com/icons/1196646791450472488/634963a8207fdb1b30bf909d31f05e57.webp"
	DefaultMapImageRepo = "https://raw.githubusercontent.com/Letaryat/poor-sharptimermappics/main/pics/"
	DefaultRareGifOdds  = 10000
	DefaultColor        = 13369599

	// PlaceholderWebhookUrl is the value shipped in the sample config.
	PlaceholderWebhookUrl = "your_discord_webhook_url"
)

// Settings is an immutable snapshot of the webhook configuration.
// A reload produces a new value, it is never modified in place.
type Settings struct {
	BotName         string
	BotAvatarUrl    string
	MapImageRepoUrl string

	ACWebhookUrl      string
	PBWebhookUrl      string
	SRWebhookUrl      string
	PBBonusWebhookUrl string
	SRBonusWebhookUrl string

	Footer      string
	RareGifUrl  string
	RareGifOdds int
	Color       int

	SteamAvatar         bool
	Tier                bool
	TimeChange          bool
	TimesFinished       bool
	Placement           bool
	SteamLink           bool
	DisableStyleRecords bool
}

func DefaultSettings() Settings {
	return Settings{
		BotName:             DefaultBotName,
		BotAvatarUrl:        DefaultBotAvatarUrl,
		MapImageRepoUrl:     DefaultMapImageRepo,
		RareGifOdds:         DefaultRareGifOdds,
		Color:               DefaultColor,
		SteamAvatar:         true,
		Tier:                true,
		TimeChange:          true,
		TimesFinished:       true,
		Placement:           true,
		SteamLink:           true,
		DisableStyleRecords: true,
	}
}

// RecordWebhookUrl picks the destination for a personal best or server record.
func (s Settings) RecordWebhookUrl(serverRecord bool, bonus int) string {
	switch {
	case serverRecord && bonus != 0:
		return s.SRBonusWebhookUrl
	case serverRecord:
		return s.SRWebhookUrl
	case bonus != 0:
		return s.PBBonusWebhookUrl
	default:
		return s.PBWebhookUrl
	}
}

func IsWebhookUrlConfigured(url string) bool {
	return len(url) != 0 && url != PlaceholderWebhookUrl
}

var knownSettings = map[string]struct{}{
	"DiscordWebhookBotName": {}, "DiscordWebhookPFPUrl": {}, "DiscordWebhookMapImageRepoUrl": {},
	"DiscordACWebhookUrl": {}, "DiscordPBWebhookUrl": {}, "DiscordSRWebhookUrl": {},
	"DiscordPBBonusWebhookUrl": {}, "DiscordSRBonusWebhookUrl": {}, "DiscordFooterString": {},
	"DiscordRareGifUrl": {}, "DiscordRareGifOdds": {}, "DiscordWebhookColor": {},
	"DiscordWebhookSteamAvatar": {}, "DiscordWebhookTier": {}, "DiscordWebhookTimeChange": {},
	"DiscordWebhookTimesFinished": {}, "DiscordWebhookPlacement": {}, "DiscordWebhookSteamLink": {},
	"DiscordWebhookDisableStyleRecords": {},
}

// ResolveSettings never fails. Every setting falls back to its default on its own,
// and a nil source yields DefaultSettings.
func ResolveSettings(ctx context.Context, source Source) Settings {
	logger := zerolog.Ctx(ctx).With().Str("service", "settings").Logger()

	settings := DefaultSettings()
	if source == nil {
		logger.Error().Err(types.ErrSourceUnavailable).Msg("webhook settings could not be read, using defaults")
		return settings
	}

	r := resolver{source: source, logger: &logger}

	settings.BotName = r.str("DiscordWebhookBotName", settings.BotName)
	settings.BotAvatarUrl = r.str("DiscordWebhookPFPUrl", settings.BotAvatarUrl)
	settings.MapImageRepoUrl = r.str("DiscordWebhookMapImageRepoUrl", settings.MapImageRepoUrl)
	settings.ACWebhookUrl = r.str("DiscordACWebhookUrl", "")
	settings.PBWebhookUrl = r.str("DiscordPBWebhookUrl", "")
	settings.SRWebhookUrl = r.str("DiscordSRWebhookUrl", "")
	settings.PBBonusWebhookUrl = r.str("DiscordPBBonusWebhookUrl", "")
	settings.SRBonusWebhookUrl = r.str("DiscordSRBonusWebhookUrl", "")
	settings.Footer = r.str("DiscordFooterString", "")
	settings.RareGifUrl = r.str("DiscordRareGifUrl", "")

	settings.RareGifOdds = r.atLeast("DiscordRareGifOdds", settings.RareGifOdds, 1)
	settings.Color = r.integer("DiscordWebhookColor", settings.Color)

	settings.SteamAvatar = r.boolean("DiscordWebhookSteamAvatar", true)
	settings.Tier = r.boolean("DiscordWebhookTier", true)
	settings.TimeChange = r.boolean("DiscordWebhookTimeChange", true)
	settings.TimesFinished = r.boolean("DiscordWebhookTimesFinished", true)
	settings.Placement = r.boolean("DiscordWebhookPlacement", true)
	settings.SteamLink = r.boolean("DiscordWebhookSteamLink", true)
	settings.DisableStyleRecords = r.boolean("DiscordWebhookDisableStyleRecords", true)

	for _, key := range source.Keys() {
		if _, ok := knownSettings[key]; !ok {
			logger.Debug().Str("setting", key).Msg("ignoring unknown setting")
		}
	}

	return settings
}

type resolver struct {
	source Source
	logger *zerolog.Logger
}

func (r resolver) fallback(key string, err error) {
	if errors.Is(err, types.ErrSettingMissing) {
		r.logger.Warn().Str("setting", key).Msg("setting not found, using default")
		return
	}
	r.logger.Warn().Err(err).Str("setting", key).Msg("setting could not be parsed, using default")
}

func (r resolver) str(key, def string) string {
	value, err := r.source.String(key)
	if err != nil {
		r.fallback(key, err)
		return def
	}
	return value
}

func (r resolver) integer(key string, def int) int {
	value, err := r.source.Int(key)
	if err != nil {
		r.fallback(key, err)
		return def
	}
	return value
}

func (r resolver) atLeast(key string, def, min int) int {
	value := r.integer(key, def)
	if value < min {
		r.logger.Warn().Str("setting", key).Int("value", value).Int("min", min).Msg("setting is out of range, using default")
		return def
	}
	return value
}

func (r resolver) boolean(key string, def bool) bool {
	value, err := r.source.Bool(key)
	if err != nil {
		r.fallback(key, err)
		return def
	}
	return value
}
