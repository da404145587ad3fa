package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	jobapi "github.com/aliskhannn/delivery-orchestrator/internal/api/handlers/job"
	notifapi "github.com/aliskhannn/delivery-orchestrator/internal/api/handlers/notification"
	presenceapi "github.com/aliskhannn/delivery-orchestrator/internal/api/handlers/presence"
	"github.com/aliskhannn/delivery-orchestrator/internal/api/router"
	"github.com/aliskhannn/delivery-orchestrator/internal/api/server"
	"github.com/aliskhannn/delivery-orchestrator/internal/config"
	"github.com/aliskhannn/delivery-orchestrator/internal/diagnostics"
	"github.com/aliskhannn/delivery-orchestrator/internal/pkg/clock"
	notifmsg "github.com/aliskhannn/delivery-orchestrator/internal/rabbitmq/handlers/notification"
	"github.com/aliskhannn/delivery-orchestrator/internal/rabbitmq/queue"
	notifrepo "github.com/aliskhannn/delivery-orchestrator/internal/repository/notification"
	subrepo "github.com/aliskhannn/delivery-orchestrator/internal/repository/subscription"
	userrepo "github.com/aliskhannn/delivery-orchestrator/internal/repository/user"
	"github.com/aliskhannn/delivery-orchestrator/internal/service/dispatch"
	"github.com/aliskhannn/delivery-orchestrator/internal/service/ledger"
	notifsvc "github.com/aliskhannn/delivery-orchestrator/internal/service/notification"
	"github.com/aliskhannn/delivery-orchestrator/internal/service/orchestrator"
	"github.com/aliskhannn/delivery-orchestrator/internal/service/presence"
	"github.com/aliskhannn/delivery-orchestrator/internal/service/push"
	"github.com/aliskhannn/delivery-orchestrator/internal/storage/redisstore"
	"github.com/aliskhannn/delivery-orchestrator/internal/transport/webpush"
	"github.com/aliskhannn/delivery-orchestrator/internal/worker"
	"github.com/aliskhannn/delivery-orchestrator/pkg/email"
	"github.com/aliskhannn/delivery-orchestrator/pkg/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()
	clk := clock.NewRealClock()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewNotificationQueue(ch, cfg.RabbitMQ)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create notification queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	notifications := notifrepo.NewRepository(db)
	subscriptions := subrepo.NewRepository(db)
	users := userrepo.NewRepository(db)

	livePublisher := redisstore.NewPublisher(rdb.Client)

	presenceService := presence.NewService(
		redisstore.NewPresenceStore(rdb.Client),
		users,
		livePublisher,
		clk,
		cfg.Presence.LivenessTTL,
		cfg.Presence.SessionTTL,
	)
	ledgerService := ledger.NewService(redisstore.NewLedgerStore(rdb.Client), clk, cfg.Ledger.TTL)

	transport, err := webpush.New(webpush.Config{
		VAPIDPublicKey:  cfg.Push.VAPIDPublicKey,
		VAPIDPrivateKey: cfg.Push.VAPIDPrivateKey,
		Subscriber:      cfg.Push.Subscriber,
		Timeout:         cfg.Push.Timeout,
		RatePerSecond:   cfg.Push.RatePerSecond,
		Burst:           cfg.Push.Burst,
	})
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("invalid web push configuration")
	}
	engine := push.NewEngine(subscriptions, transport, cfg.Push.MaxParallel)

	orch := orchestrator.NewService(
		presenceService,
		ledgerService,
		livePublisher,
		engine,
		notifications,
		clk,
		orchestrator.Options{DefaultTTL: cfg.Push.DefaultTTL, Icon: cfg.Push.Icon},
	)

	if cfg.Email.Enabled {
		smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
		}

		mailer := email.NewClient(
			cfg.Email.SMTPHost,
			smtpPort,
			cfg.Email.Username,
			cfg.Email.Password,
			cfg.Email.From,
		)
		orch.WithEmailFallback(users, mailer)
	}

	dispatcher := dispatch.NewService(orch, clk, cfg.Dispatch.JobTimeout)
	messageHandler := notifmsg.NewHandler(dispatcher, q, cfg.RabbitMQ.MaxAttempts)
	if cfg.Telegram.Enabled {
		messageHandler.WithOperatorAlerts(telegram.NewClient(cfg.Telegram.Token, cfg.Telegram.Timeout), cfg.Telegram.ChatID)
	}
	pool := worker.NewPool(q, messageHandler)

	poolDone := make(chan struct{})
	go func() {
		defer close(poolDone)
		pool.Run(ctx, cfg.Retry, cfg.Workers.Count)
	}()

	reporter, err := diagnostics.NewReporter(presenceService, cfg.Diagnostics.Schedule, 10*time.Second)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to schedule diagnostics")
	}
	reporter.Start()

	statusService := notifsvc.NewService(notifications, rdb, ledgerService, clk)

	r := router.New(
		notifapi.NewHandler(statusService, val, cfg),
		presenceapi.NewHandler(presenceService, val),
		jobapi.NewHandler(q, val, cfg, clk),
	)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	zlog.Logger.Info().Str("addr", cfg.Server.HTTPPort).Int("workers", cfg.Workers.Count).Msg("orchestrator started")

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Dispatch.JobTimeout+5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	reporter.Stop(shutdownCtx)

	select {
	case <-poolDone:
	case <-shutdownCtx.Done():
		zlog.Logger.Warn().Msg("timeout exceeded waiting for in-flight jobs, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := rdb.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close redis client")
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
