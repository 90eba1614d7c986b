package config

import (
	"testing"

	"github.com/sharptimer/timerhook/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSourceJSON(t *testing.T) {
	source, err := ParseSource([]byte("{\n\t\"DiscordWebhookBotName\": \"Timer\",\n\t\"DiscordRareGifOdds\": 5,\n\t\"DiscordWebhookTier\": false,\n\t\"DiscordFooterString\": null\n}"))
	require.NoError(t, err)

	name, err := source.String("DiscordWebhookBotName")
	require.NoError(t, err)
	assert.Equal(t, "Timer", name)

	odds, err := source.Int("DiscordRareGifOdds")
	require.NoError(t, err)
	assert.Equal(t, 5, odds)

	tier, err := source.Bool("DiscordWebhookTier")
	require.NoError(t, err)
	assert.False(t, tier)

	_, err = source.String("DiscordFooterString")
	assert.ErrorIs(t, err, types.ErrSettingMissing)

	_, err = source.String("DiscordSRWebhookUrl")
	assert.ErrorIs(t, err, types.ErrSettingMissing)

	assert.Equal(t, []string{"DiscordFooterString", "DiscordRareGifOdds", "DiscordWebhookBotName", "DiscordWebhookTier"}, source.Keys())
}

func TestParseSourceTypeMismatch(t *testing.T) {
	source, err := ParseSource([]byte(`{"DiscordWebhookColor": "red", "DiscordWebhookBotName": 12, "DiscordWebhookTier": "yes", "DiscordRareGifOdds": 1.5}`))
	require.NoError(t, err)

	_, err = source.Int("DiscordWebhookColor")
	assert.ErrorIs(t, err, types.ErrSettingType)

	_, err = source.String("DiscordWebhookBotName")
	assert.ErrorIs(t, err, types.ErrSettingType)

	_, err = source.Bool("DiscordWebhookTier")
	assert.ErrorIs(t, err, types.ErrSettingType)

	_, err = source.Int("DiscordRareGifOdds")
	assert.ErrorIs(t, err, types.ErrSettingType)
}

func TestParseSourceYAML(t *testing.T) {
	source, err := ParseSource([]byte("DiscordWebhookColor: 0\nDiscordPBWebhookUrl: https://example.com/hook\n"))
	require.NoError(t, err)

	color, err := source.Int("DiscordWebhookColor")
	require.NoError(t, err)
	assert.Equal(t, 0, color)

	url, err := source.String("DiscordPBWebhookUrl")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/hook", url)
}

func TestParseSourceInvalid(t *testing.T) {
	for name, data := range map[string]string{
		"empty":  "   ",
		"list":   "[1, 2]",
		"broken": `{"DiscordWebhookColor": `,
		"scalar": "hello",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSource([]byte(data))
			assert.ErrorIs(t, err, types.ErrSourceUnavailable)
		})
	}
}

func TestParseSourceJSONEscapes(t *testing.T) {
	source, err := ParseSource([]byte(`{"DiscordPBWebhookUrl": "https:\/\/discord.com\/api\/webhooks\/1\/abc", "DiscordFooterString": "★ SharpTimer"}`))
	require.NoError(t, err)

	url, err := source.String("DiscordPBWebhookUrl")
	require.NoError(t, err)
	assert.Equal(t, "https://discord.com/api/webhooks/1/abc", url)

	footer, err := source.String("DiscordFooterString")
	require.NoError(t, err)
	assert.Equal(t, "★ SharpTimer", footer)
}

func TestParseSourceJSONIsStrict(t *testing.T) {
	_, err := ParseSource([]byte(`{"DiscordWebhookColor": 0xFF}`))
	assert.ErrorIs(t, err, types.ErrSourceUnavailable)

	source, err := ParseSource([]byte(`{"DiscordWebhookColor": 4294967296, "DiscordRareGifOdds": -5, "DiscordWebhookTier": 1}`))
	require.NoError(t, err)

	_, err = source.Int("DiscordWebhookColor")
	assert.ErrorIs(t, err, types.ErrSettingType)

	odds, err := source.Int("DiscordRareGifOdds")
	require.NoError(t, err)
	assert.Equal(t, -5, odds)

	_, err = source.Bool("DiscordWebhookTier")
	assert.ErrorIs(t, err, types.ErrSettingType)
}

func TestParseSourceDuplicateKeys(t *testing.T) {
	for name, data := range map[string]string{
		"json": `{"DiscordWebhookBotName": "first", "DiscordWebhookBotName": "second"}`,
		"yaml": "DiscordWebhookBotName: first\nDiscordWebhookBotName: second\n",
	} {
		t.Run(name, func(t *testing.T) {
			source, err := ParseSource([]byte(data))
			require.NoError(t, err)

			value, err := source.String("DiscordWebhookBotName")
			require.NoError(t, err)
			assert.Equal(t, "second", value)
		})
	}
}
