package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sharptimer/timerhook/types/config"
	"github.com/stretchr/testify/assert"
)

func runSchedule(t *testing.T, ctx context.Context, interval string) {
	t.Helper()
	store := config.NewSettingsStore(filepath.Join(t.TempDir(), "discordConfig.json"))

	done := make(chan struct{})
	go func() {
		defer close(done)
		reloadOnSchedule(ctx, store, interval)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("reload schedule did not return")
	}
}

func TestReloadOnScheduleStopsOnCancel(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs)
	ctx, cancel := context.WithCancel(logger.WithContext(context.Background()))
	cancel()

	runSchedule(t, ctx, "@hourly")

	assert.Contains(t, logs.String(), "next settings reload in")
}

func TestReloadOnScheduleInvalidInterval(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs)

	runSchedule(t, logger.WithContext(context.Background()), "every now and then")

	assert.Contains(t, logs.String(), "unknown error while calculating next reload time")
}
