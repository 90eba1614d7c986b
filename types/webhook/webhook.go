package webhook

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/disgoorg/disgo/discord"
	"github.com/rs/zerolog"
	"github.com/sharptimer/timerhook/types"
	"github.com/sharptimer/timerhook/types/config"
	"github.com/sharptimer/timerhook/types/event"
	"github.com/sharptimer/timerhook/types/fields"
	webhooks "github.com/sharptimer/timerhook/types/webhook/impl"
	"github.com/sharptimer/timerhook/utils"
)

const (
	TitlePersonalBest = "set a new Personal Best!"
	TitleServerRecord = "set a new Server Record!"
	TitleFlagged      = "Player Flagged"
)

type settingsProvider interface {
	Get() config.Settings
}

type mediaResolver interface {
	MapImage(ctx context.Context, mapName string, bonus int, settings config.Settings) string
	Avatar(ctx context.Context, documentUrl string) string
}

type deliverer interface {
	Deliver(ctx context.Context, url string, embed discord.Embed, username string, avatarUrl string) error
}

// Webhooks turns run and anti-cheat events into webhook messages.
// Every event works on the settings snapshot taken when it started.
type Webhooks struct {
	settings    settingsProvider
	media       mediaResolver
	delivery    deliverer
	profileBase string

	inflight sync.WaitGroup
}

func NewWebhookHandler(settings settingsProvider, media mediaResolver, delivery deliverer, profileBase string) *Webhooks {
	return &Webhooks{
		settings:    settings,
		media:       media,
		delivery:    delivery,
		profileBase: profileBase,
	}
}

// Record sends a personal best or server record notification.
func (w *Webhooks) Record(ctx context.Context, ev event.RunEvent) error {
	settings := w.settings.Get()

	logger := zerolog.Ctx(ctx).With().
		Str("service", "record_webhook").
		Str("player", ev.Name).
		Str("map", ev.MapName).
		Int("bonus", ev.Bonus).
		Bool("server_record", ev.ServerRecord).
		Logger()
	ctx = logger.WithContext(ctx)

	url := settings.RecordWebhookUrl(ev.ServerRecord, ev.Bonus)
	if !config.IsWebhookUrlConfigured(url) {
		logger.Error().Err(types.ErrEndpointNotConfigured).Msg("record webhook url was invalid")
		return types.ErrEndpointNotConfigured
	}

	title := TitlePersonalBest
	if ev.ServerRecord {
		title = TitleServerRecord
	}

	image := w.media.MapImage(ctx, ev.MapName, ev.Bonus, settings)
	composed := fields.ComposeRecord(ev, settings, w.profileBase)

	doc := w.startingDocument(ctx, settings, title, ev.Player)
	doc.Fields = composed
	doc.Image = image
	embed := webhooks.BuildEmbed(doc)

	// the style field is already hidden, non normal runs are not announced at all
	if settings.DisableStyleRecords && !ev.IsNormalStyle() {
		logger.Debug().Str("style", ev.Style).Msg("skipping style record")
		return types.ErrStyleRecordsDisabled
	}

	return w.delivery.Deliver(ctx, url, embed, settings.BotName, settings.BotAvatarUrl)
}

// Flag sends an anti-cheat notification.
func (w *Webhooks) Flag(ctx context.Context, ev event.FlagEvent) error {
	settings := w.settings.Get()

	logger := zerolog.Ctx(ctx).With().
		Str("service", "ac_webhook").
		Str("player", ev.Name).
		Logger()
	ctx = logger.WithContext(ctx)

	url := settings.ACWebhookUrl
	if !config.IsWebhookUrlConfigured(url) {
		logger.Error().Err(types.ErrEndpointNotConfigured).Msg("anti-cheat webhook url was invalid")
		return types.ErrEndpointNotConfigured
	}

	doc := w.startingDocument(ctx, settings, TitleFlagged, ev.Player)
	doc.Fields = fields.ComposeFlag(ev, settings, w.profileBase)

	return w.delivery.Deliver(ctx, url, webhooks.BuildEmbed(doc), settings.BotName, settings.BotAvatarUrl)
}

func (w *Webhooks) startingDocument(ctx context.Context, settings config.Settings, title string, player event.Player) webhooks.Document {
	doc := webhooks.Document{
		Title:      title,
		AuthorName: player.Name,
		AuthorUrl:  utils.ProfileUrl(w.profileBase, player.SteamID),
		FooterText: settings.Footer,
		FooterIcon: settings.BotAvatarUrl,
		Color:      settings.Color,
	}

	if settings.SteamAvatar {
		doc.Thumbnail = w.media.Avatar(ctx, utils.ProfileDocumentUrl(w.profileBase, player.SteamID))
	}
	return doc
}

// DispatchRecord runs Record in its own goroutine.
func (w *Webhooks) DispatchRecord(ctx context.Context, ev event.RunEvent) {
	w.dispatch(ctx, func(ctx context.Context) error {
		return w.Record(ctx, ev)
	})
}

// DispatchFlag runs Flag in its own goroutine.
func (w *Webhooks) DispatchFlag(ctx context.Context, ev event.FlagEvent) {
	w.dispatch(ctx, func(ctx context.Context) error {
		return w.Flag(ctx, ev)
	})
}

func (w *Webhooks) dispatch(ctx context.Context, send func(ctx context.Context) error) {
	w.inflight.Add(1)
	go func() {
		defer w.inflight.Done()
		defer func() {
			if r := recover(); r != nil {
				zerolog.Ctx(ctx).Error().Interface("panic", r).Str("stack", string(debug.Stack())).Msg("panic while sending webhook")
			}
		}()
		// outcomes are already logged by the pipeline
		_ = send(ctx)
	}()
}

// Wait blocks until every dispatched notification has finished.
func (w *Webhooks) Wait() {
	w.inflight.Wait()
}
