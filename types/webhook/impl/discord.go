package webhooks

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/json"
	"github.com/rs/zerolog"
	"github.com/sharptimer/timerhook/types"
)

// Message is the body posted to a webhook endpoint.
type Message struct {
	Content     *string                    `json:"content"`
	Embeds      []discord.Embed            `json:"embeds"`
	Username    string                     `json:"username"`
	AvatarURL   string                     `json:"avatar_url"`
	Attachments []discord.AttachmentCreate `json:"attachments"`
}

func NewMessage(embed discord.Embed, username string, avatarUrl string) Message {
	return Message{
		Embeds:      []discord.Embed{embed},
		Username:    username,
		AvatarURL:   avatarUrl,
		Attachments: []discord.AttachmentCreate{},
	}
}

type DiscordWebhook struct {
	client *http.Client
}

func NewDiscordWebhook(client *http.Client) *DiscordWebhook {
	return &DiscordWebhook{client: client}
}

// Deliver posts a single embed to url. Failures are logged and returned, never retried.
func (hook *DiscordWebhook) Deliver(ctx context.Context, url string, embed discord.Embed, username string, avatarUrl string) error {
	logger := zerolog.Ctx(ctx)

	if err := hook.post(ctx, url, NewMessage(embed, username, avatarUrl)); err != nil {
		logger.Err(err).Str("title", embed.Title).Msg("Encountered an error while sending a Discord Webhook")
		return err
	}

	logger.Debug().Str("title", embed.Title).Msg("Discord Webhook sent")
	return nil
}

func (hook *DiscordWebhook) post(ctx context.Context, url string, message Message) error {
	body, err := json.Marshal(message)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := hook.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %d %s", types.ErrDeliveryStatus, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
