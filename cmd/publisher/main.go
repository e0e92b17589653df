package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"dealer-orders/internal/app"
	"dealer-orders/internal/configs"
	"dealer-orders/internal/delivery/kafka"
	"dealer-orders/internal/repository"
	"dealer-orders/internal/repository/cache"
	"dealer-orders/internal/service"
)

var exitCode int

// publisher replays every stored order onto the order events topic.
func main() {
	defer func() { os.Exit(exitCode) }()
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %s", err)
	}
	app.SetupLogger(cfg)
	logrus.Print("config loaded")

	brokers := cfg.KafkaBrokersSlice()
	if len(brokers) == 0 {
		logrus.Fatal("KAFKA_BROKERS is empty, nothing to publish to")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	orders, closeStore, err := app.OpenOrderStore(ctx, cfg)
	if err != nil {
		logrus.Fatalf("order store: %s", err)
	}
	defer closeStore()

	pub, err := kafka.NewPublisher(brokers, cfg.KafkaTopic)
	if err != nil {
		logrus.Fatalf("kafka publisher connect error: %s", err)
	}
	defer func() {
		if cerr := pub.Close(); cerr != nil {
			logrus.Errorf("publisher close: %v", cerr)
		}
	}()
	logrus.Print("connected to kafka")

	sessions := cache.NewSessionCache(cache.NewCache())
	svc := service.NewService(repository.NewRepository(orders, sessions), nil, service.WithEvents(pub))

	n, err := svc.ReplayOrderEvents(ctx)
	if err != nil {
		logrus.WithError(err).WithField("published", n).Error("replay failed")
		exitCode = 1
		return
	}
	logrus.Printf("successfully published %d order snapshots to %s", n, cfg.KafkaTopic)
}
