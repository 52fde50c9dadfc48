// Package main wires the HTTP server for the grade request service.
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	handlers_fiber "github.com/usf-cs272-fall2021/action-request-grade/internal/transport/http/server/handlers-fiber"
	"github.com/usf-cs272-fall2021/action-request-grade/internal/usecase"
	"github.com/usf-cs272-fall2021/action-request-grade/internal/usecase/domain"

	"github.com/usf-cs272-fall2021/action-request-grade/config"
	"github.com/usf-cs272-fall2021/action-request-grade/internal/gateway"
	"github.com/usf-cs272-fall2021/action-request-grade/internal/transport/http/middleware"
	"github.com/usf-cs272-fall2021/action-request-grade/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	zone, err := time.LoadLocation(cfg.Grading.Timezone)
	if err != nil {
		log.Errorw("invalid grading timezone", "timezone", cfg.Grading.Timezone, "error", err)
		return
	}

	gw, err := gateway.New(ctx, "github", log, cfg)
	if err != nil {
		log.Errorw("gateway initialization error", "error", err)
		return
	}
	if err := gw.OnStart(ctx); err != nil {
		log.Errorw("gateway start error", "error", err)
		return
	}
	defer func() {
		_ = gw.OnStop(context.Background())
	}()

	uc := usecase.New(log, ctx, gw, domain.Options{
		Timeout:      cfg.HTTP.RequestTimeout,
		Zone:         zone,
		Reviewer:     cfg.Grading.Reviewer,
		WorkflowFile: cfg.GitHub.WorkflowFile,
	})

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc)
	serv.Post("/grade-requests", h.PostGradeRequest)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
