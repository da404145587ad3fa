package main

import (
	"bufio"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/delivery-orchestrator/internal/agent"
	"github.com/aliskhannn/delivery-orchestrator/internal/config"
)

// The headless agent reads one wake-up payload per line from stdin, as a device
// push daemon would hand them over, and logs what it shows.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()

	client := agent.NewClient(cfg.Agent.StatusBaseURL, cfg.Agent.StatusTimeout)
	a := agent.New(client, agent.LogRenderer{}, agent.Options{
		ForegroundTimeout: cfg.Agent.ForegroundTimeout,
		AckTimeout:        cfg.Agent.AckTimeout,
	})

	lines := make(chan []byte)
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := append([]byte(nil), scanner.Bytes()...)
			if len(line) == 0 {
				continue
			}

			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to read stdin")
		}
	}()

	for {
		select {
		case <-ctx.Done():
			a.Wait()
			return
		case raw, ok := <-lines:
			if !ok {
				a.Wait()
				return
			}

			decision, err := a.HandlePush(ctx, raw)
			if err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to render notification")
				continue
			}

			zlog.Logger.Debug().Str("decision", decision.String()).Msg("push handled")
		}
	}
}
