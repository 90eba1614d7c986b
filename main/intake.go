package main

import (
	"bufio"
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/sharptimer/timerhook/types/event"
	"github.com/sharptimer/timerhook/types/webhook"
)

const maxEventLine = 64 * 1024

type Timerhook struct {
	Webhooks *webhook.Webhooks
}

// Run dispatches every event line read from input until EOF or ctx is done,
// then waits for the dispatched notifications to finish.
func (app Timerhook) Run(ctx context.Context, input io.Reader) error {
	logger := zerolog.Ctx(ctx).With().Str("service", "intake").Logger()

	lines := make(chan []byte)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(input)
		scanner.Buffer(make([]byte, 0, 4096), maxEventLine)
		for scanner.Scan() {
			line := append([]byte(nil), scanner.Bytes()...)
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	// shutdown stops intake but lets dispatched notifications finish
	sendCtx := context.WithoutCancel(ctx)

	count := 0
	defer func() {
		app.Webhooks.Wait()
		logger.Info().Int("count", count).Msg("intake finished")
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			if len(line) == 0 {
				continue
			}

			decoded, err := event.DecodeLine(line)
			if err != nil {
				logger.Warn().Err(err).Msg("skipping malformed event")
				continue
			}

			count++
			switch decoded.Kind {
			case event.KindRecord:
				app.Webhooks.DispatchRecord(sendCtx, *decoded.Record)
			case event.KindFlag:
				app.Webhooks.DispatchFlag(sendCtx, *decoded.Flag)
			}
		}
	}
}
