package agent

import (
	"context"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/delivery-orchestrator/internal/model"
)

// LogRenderer "shows" notifications by logging them. Used by the headless agent binary.
type LogRenderer struct{}

func (LogRenderer) Render(_ context.Context, n model.PushMessage) error {
	zlog.Logger.Info().
		Str("title", n.Title).
		Str("body", n.Body).
		Str("tag", n.Tag).
		Str("url", n.URL).
		Str("id", n.Identity()).
		Msg("notification shown")

	return nil
}
