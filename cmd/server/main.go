package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logisa-be/internal/address"
	"logisa-be/internal/api"
	"logisa-be/internal/cart"
	"logisa-be/internal/catalog"
	"logisa-be/internal/checkout"
	"logisa-be/internal/collection"
	"logisa-be/internal/config"
	"logisa-be/internal/db"
	"logisa-be/internal/logger"
	"logisa-be/internal/order"
	"logisa-be/internal/report"
	"logisa-be/internal/seed"
	"logisa-be/internal/shipment"
	"logisa-be/internal/store"
	"logisa-be/internal/user"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	var kv store.Store
	switch cfg.StoreBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer client.Close()
		kv = store.NewRedis(client)
		logger.L().Info("using redis store backend", zap.String("addr", cfg.RedisAddr))
	default:
		kv = store.NewPostgres(database)
		logger.L().Info("using postgres store backend")
	}

	if err := seed.New(kv).Run(context.Background()); err != nil {
		logger.L().Fatal("store seeding failed", zap.Error(err))
	}

	catalogSvc := catalog.NewService(catalog.NewRepository(database))
	userSvc := user.NewService(user.NewRepository(database))
	addressSvc := address.NewService(address.NewRepository(database))
	cartSvc := cart.NewService(kv, catalogSvc)
	orderSvc := order.NewService(order.NewRepository(kv))
	checkoutSvc := checkout.NewService(kv, cartSvc, orderSvc, catalogSvc, checkout.NewSimulatedGateway())
	shipmentSvc := shipment.NewService(shipment.NewRepository(kv), catalogSvc)
	collectionSvc := collection.NewService(collection.NewRepository(kv))
	reportSvc := report.NewService(orderSvc, catalogSvc)

	handlers := api.NewHandlers(api.Services{
		User:       userSvc,
		Catalog:    catalogSvc,
		Cart:       cartSvc,
		Checkout:   checkoutSvc,
		Order:      orderSvc,
		Address:    addressSvc,
		Shipment:   shipmentSvc,
		Collection: collectionSvc,
		Report:     reportSvc,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      api.NewRouter(cfg.AppEnv, handlers),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.L().Info("server starting", zap.String("port", cfg.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.L().Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Error("forced shutdown", zap.Error(err))
	}

	logger.L().Info("server exited")
}
