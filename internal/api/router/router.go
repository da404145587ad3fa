package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/delivery-orchestrator/internal/api/handlers/job"
	"github.com/aliskhannn/delivery-orchestrator/internal/api/handlers/notification"
	"github.com/aliskhannn/delivery-orchestrator/internal/api/handlers/presence"
	"github.com/aliskhannn/delivery-orchestrator/internal/api/respond"
)

func New(
	notificationHandler *notification.Handler,
	presenceHandler *presence.Handler,
	jobHandler *job.Handler,
) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	e.GET("/health", func(c *ginext.Context) {
		respond.OK(c.Writer, "ok")
	})

	api := e.Group("/api")
	{
		api.POST("/jobs", jobHandler.Create)

		api.GET("/notifications/:id/status", notificationHandler.GetStatus)
		api.POST("/notifications/:id/ack", notificationHandler.Ack)
		api.POST("/notifications/:id/read", notificationHandler.MarkRead)

		api.POST("/presence/heartbeat", presenceHandler.Heartbeat)
		api.POST("/presence/connect", presenceHandler.Connect)
		api.POST("/presence/disconnect", presenceHandler.Disconnect)
		api.GET("/presence/users/:user", presenceHandler.GetUser)
		api.GET("/presence/online-count", presenceHandler.OnlineCount)
	}

	return e
}
