package media

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/sharptimer/timerhook/types"
	"github.com/sharptimer/timerhook/types/config"
)

const (
	RareGifFallback = "https://files.catbox.moe/q99x7v.gif"
	DefaultAvatar   = config.DefaultBotAvatarUrl

	// profile documents are a few KB, anything larger is not what we asked for
	maxProfileDocumentSize = 1 << 20
)

// RandSource is satisfied by *rand.Rand.
type RandSource interface {
	Intn(n int) int
}

type Resolver struct {
	client *http.Client

	randMu sync.Mutex
	rand   RandSource
}

// NewResolver creates a media resolver. A nil rnd uses a time seeded source.
func NewResolver(client *http.Client, rnd RandSource) *Resolver {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Resolver{
		client: client,
		rand:   rnd,
	}
}

// rare reports whether this draw hits the 1 in odds rare image.
func (r *Resolver) rare(odds int) bool {
	if odds < 1 {
		odds = 1
	}
	r.randMu.Lock()
	defer r.randMu.Unlock()
	return r.rand.Intn(odds) == 0
}

func MapImageUrl(repo string, mapName string, bonus int) string {
	if bonus == 0 {
		return fmt.Sprintf("%s%s.jpg", repo, mapName)
	}
	return fmt.Sprintf("%s%s_b%d.jpg", repo, mapName, bonus)
}

func NotFoundImageUrl(repo string, mapName string) string {
	switch {
	case strings.Contains(mapName, "surf_"):
		return repo + "surf404.jpg"
	case strings.Contains(mapName, "bhop_"):
		return repo + "bhop404.jpg"
	default:
		return repo + "404.jpg"
	}
}

// MapImage resolves the preview image for a map or one of its bonus tracks.
// It always returns a usable url.
func (r *Resolver) MapImage(ctx context.Context, mapName string, bonus int, settings config.Settings) string {
	if r.rare(settings.RareGifOdds) {
		if len(settings.RareGifUrl) == 0 {
			return RareGifFallback
		}
		return settings.RareGifUrl
	}

	logger := zerolog.Ctx(ctx)

	image := MapImageUrl(settings.MapImageRepoUrl, mapName, bonus)
	notFound := NotFoundImageUrl(settings.MapImageRepoUrl, mapName)

	exists, err := r.exists(ctx, image)
	if err != nil {
		logger.Warn().Err(err).Str("url", image).Msg("map image probe failed")
		return notFound
	}
	if !exists {
		logger.Debug().Str("url", image).Msg("map image not found")
		return notFound
	}
	return image
}

// exists sends a HEAD request, only 404 counts as missing.
func (r *Resolver) exists(ctx context.Context, url string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	return resp.StatusCode != http.StatusNotFound, nil
}

// Avatar fetches a profile document and returns the avatarFull url from it,
// or DefaultAvatar when that is not possible.
func (r *Resolver) Avatar(ctx context.Context, documentUrl string) string {
	logger := zerolog.Ctx(ctx)

	avatar, err := r.fetchAvatar(ctx, documentUrl)
	if err != nil {
		logger.Warn().Err(err).Str("url", documentUrl).Msg("resolving avatar failed, using default")
		return DefaultAvatar
	}
	return avatar
}

func (r *Resolver) fetchAvatar(ctx context.Context, documentUrl string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, documentUrl, nil)
	if err != nil {
		return "", err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("profile request returned status %d", resp.StatusCode)
	}

	return FindAvatarFull(io.LimitReader(resp.Body, maxProfileDocumentSize))
}

// FindAvatarFull returns the trimmed text of the first avatarFull element in the document.
func FindAvatarFull(document io.Reader) (string, error) {
	decoder := xml.NewDecoder(document)
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return "", types.ErrAvatarMissing
		}
		if err != nil {
			return "", err
		}

		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "avatarFull" {
			continue
		}

		var element struct {
			Text string `xml:",chardata"`
		}
		if err := decoder.DecodeElement(&element, &start); err != nil {
			return "", err
		}

		avatar := strings.TrimSpace(element.Text)
		if len(avatar) == 0 {
			return "", types.ErrAvatarMissing
		}
		return avatar, nil
	}
}
