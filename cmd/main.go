package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"liveusers/internal/config"
	"liveusers/internal/database"
	"liveusers/internal/handlers"
	"liveusers/internal/logger"
	"liveusers/internal/metrics"
	"liveusers/internal/repository"
	"liveusers/internal/routes"
	"liveusers/internal/service"
	"liveusers/internal/ws"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	logg, err := logger.New(cfg.App.Env)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer logg.Sync()

	metrics.Init()

	db, client, err := database.Connect(cfg.Mongo.URI, cfg.Mongo.Database, cfg.ConnectTimeout)
	if err != nil {
		logg.Fatal("failed to connect to MongoDB", zap.String("uri", cfg.Mongo.URI), zap.Error(err))
	}
	logg.Info("MongoDB connected", zap.String("database", cfg.Mongo.Database))

	userRepo := repository.NewMongoUserRepo(db, cfg.Mongo.Collection)

	hub := ws.NewHub(ws.GroupLiveUsers, logg)
	wsSrv := ws.NewServer(hub, cfg.PingInterval, cfg.WriteDeadline, cfg.WS.SendBufferSize, logg)

	regSvc := service.NewRegistrationService(userRepo, hub, logg)
	querySvc := service.NewQueryService(userRepo, logg)
	h := handlers.New(regSvc, querySvc, logg)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(fiberlogger.New())
	routes.Register(app, h, wsSrv)

	errs := make(chan error, 1)
	go func() {
		addr := ":" + cfg.App.PortString()
		logg.Info("server starting", zap.String("addr", addr))
		errs <- app.Listen(addr)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case e := <-errs:
		logg.Fatal("server error", zap.Error(e))
	case s := <-sig:
		logg.Info("signal received", zap.String("signal", s.String()))
	}

	if err := app.Shutdown(); err != nil {
		logg.Error("fiber shutdown", zap.Error(err))
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		logg.Error("mongo disconnect", zap.Error(err))
	}
	logg.Info("shutting down")
}
