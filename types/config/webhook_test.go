package config

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferedContext(buf *bytes.Buffer) context.Context {
	logger := zerolog.New(buf)
	return logger.WithContext(context.Background())
}

func TestResolveSettingsWithoutSource(t *testing.T) {
	var logs bytes.Buffer

	settings := ResolveSettings(bufferedContext(&logs), nil)

	assert.Equal(t, DefaultSettings(), settings)
	assert.Contains(t, logs.String(), `"level":"error"`)
}

func TestResolveSettingsDefaults(t *testing.T) {
	settings := DefaultSettings()

	assert.Equal(t, "SharpTimer", settings.BotName)
	assert.Equal(t, 10000, settings.RareGifOdds)
	assert.Equal(t, 13369599, settings.Color)
	assert.Empty(t, settings.PBWebhookUrl)
	assert.True(t, settings.SteamAvatar)
	assert.True(t, settings.DisableStyleRecords)
}

func TestResolveSettingsFieldIsolation(t *testing.T) {
	var logs bytes.Buffer

	source, err := ParseSource([]byte(`{
		"DiscordWebhookBotName": "Timer",
		"DiscordPBWebhookUrl": "https://example.com/pb",
		"DiscordWebhookColor": "not a number",
		"DiscordRareGifOdds": 0,
		"DiscordWebhookSteamLink": false,
		"DiscordWebhookPlacement": "false",
		"SomethingElse": true
	}`))
	require.NoError(t, err)

	settings := ResolveSettings(bufferedContext(&logs), source)

	assert.Equal(t, "Timer", settings.BotName)
	assert.Equal(t, "https://example.com/pb", settings.PBWebhookUrl)
	assert.Equal(t, DefaultColor, settings.Color)
	assert.Equal(t, DefaultRareGifOdds, settings.RareGifOdds)
	assert.False(t, settings.SteamLink)
	assert.True(t, settings.Placement)
	assert.Equal(t, DefaultBotAvatarUrl, settings.BotAvatarUrl)

	output := logs.String()
	assert.Contains(t, output, `"setting":"DiscordWebhookColor"`)
	assert.Contains(t, output, `"setting":"DiscordRareGifOdds"`)
	assert.Contains(t, output, `"setting":"DiscordWebhookPlacement"`)
	assert.Contains(t, output, `"setting":"DiscordSRWebhookUrl"`)
	assert.NotContains(t, output, `"setting":"DiscordWebhookBotName"`)
}

func TestResolveSettingsZeroColor(t *testing.T) {
	source, err := ParseSource([]byte(`{"DiscordWebhookColor": 0}`))
	require.NoError(t, err)

	settings := ResolveSettings(context.Background(), source)
	assert.Equal(t, 0, settings.Color)
}

func TestResolveSettingsNegativeColor(t *testing.T) {
	source, err := ParseSource([]byte(`{"DiscordWebhookColor": -1}`))
	require.NoError(t, err)

	settings := ResolveSettings(context.Background(), source)
	assert.Equal(t, -1, settings.Color)
}

func TestResolveSettingsEscapedUrls(t *testing.T) {
	source, err := ParseSource([]byte(`{
		"DiscordPBWebhookUrl": "https:\/\/discord.com\/api\/webhooks\/1\/abc",
		"DiscordSRWebhookUrl": "https://discord.com/api/webhooks/2/def"
	}`))
	require.NoError(t, err)

	settings := ResolveSettings(context.Background(), source)
	assert.Equal(t, "https://discord.com/api/webhooks/1/abc", settings.PBWebhookUrl)
	assert.Equal(t, "https://discord.com/api/webhooks/2/def", settings.SRWebhookUrl)
}

func TestRecordWebhookUrl(t *testing.T) {
	settings := Settings{
		PBWebhookUrl:      "pb",
		SRWebhookUrl:      "sr",
		PBBonusWebhookUrl: "pb-bonus",
		SRBonusWebhookUrl: "sr-bonus",
	}

	assert.Equal(t, "pb", settings.RecordWebhookUrl(false, 0))
	assert.Equal(t, "sr", settings.RecordWebhookUrl(true, 0))
	assert.Equal(t, "pb-bonus", settings.RecordWebhookUrl(false, 3))
	assert.Equal(t, "sr-bonus", settings.RecordWebhookUrl(true, 1))
}

func TestIsWebhookUrlConfigured(t *testing.T) {
	assert.False(t, IsWebhookUrlConfigured(""))
	assert.False(t, IsWebhookUrlConfigured(PlaceholderWebhookUrl))
	assert.True(t, IsWebhookUrlConfigured("https://discord.com/api/webhooks/1/abc"))
}
