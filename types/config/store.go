package config

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/opencontainers/go-digest"
	"github.com/rs/zerolog"
)

const watchDebounce = 250 * time.Millisecond

// SettingsStore holds the current Settings snapshot. Readers get a copy,
// reloads swap the whole snapshot so in-flight notifications keep the one they started with.
type SettingsStore struct {
	path    string
	current atomic.Pointer[Settings]

	// guards digest and serializes reloads
	mu     sync.Mutex
	digest digest.Digest
}

func NewSettingsStore(path string) *SettingsStore {
	store := &SettingsStore{path: path}
	defaults := DefaultSettings()
	store.current.Store(&defaults)
	return store
}

func (s *SettingsStore) Get() Settings {
	return *s.current.Load()
}

// Load re-reads the settings file and reports whether a new snapshot was stored.
// Unchanged content is detected by digest and skipped.
func (s *SettingsStore) Load(ctx context.Context) bool {
	logger := zerolog.Ctx(ctx).With().Str("service", "settings").Str("path", s.path).Logger()
	ctx = logger.WithContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	source, data, err := ReadSource(s.path)

	var sum digest.Digest
	if data != nil {
		sum = digest.FromBytes(data)
	}
	if len(sum) != 0 && sum == s.digest {
		logger.Debug().Str("digest", sum.Encoded()).Msg("settings unchanged, skipping reload")
		return false
	}

	if err != nil {
		logger.Err(err).Msg("reading webhook settings failed")
	}

	settings := ResolveSettings(ctx, source)
	s.current.Store(&settings)
	s.digest = sum

	logger.Info().Str("digest", sum.String()).Msg("webhook settings loaded")
	return true
}

// Watch reloads the settings whenever the file changes, until ctx is done.
// The containing directory is watched since editors tend to replace files instead of writing them.
func (s *SettingsStore) Watch(ctx context.Context) error {
	logger := zerolog.Ctx(ctx).With().Str("service", "settings_watch").Str("path", s.path).Logger()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir, file := filepath.Split(s.path)
	if len(dir) == 0 {
		dir = "."
	}
	if err := watcher.Add(dir); err != nil {
		return err
	}
	logger.Debug().Str("dir", dir).Msg("watching webhook settings")

	var (
		timerMu sync.Mutex
		timer   *time.Timer
	)
	defer func() {
		timerMu.Lock()
		if timer != nil {
			timer.Stop()
		}
		timerMu.Unlock()
	}()

	schedule := func() {
		timerMu.Lock()
		defer timerMu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(watchDebounce, func() {
			s.Load(ctx)
		})
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != file {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				logger.Debug().Str("op", ev.Op.String()).Msg("settings change detected")
				schedule()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("settings watch error")
		}
	}
}
