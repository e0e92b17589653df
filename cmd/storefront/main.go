package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"dealer-orders/internal/app"
	"dealer-orders/internal/configs"
	httpdelivery "dealer-orders/internal/delivery/http"
	"dealer-orders/internal/delivery/kafka"
	"dealer-orders/internal/notify"
	"dealer-orders/internal/repository"
	"dealer-orders/internal/repository/cache"
	redisrepo "dealer-orders/internal/repository/redis"
	"dealer-orders/internal/service"
)

// @title dealership order service
// @version 1.0
// @description Checkout, order tracking and back-office order management for the dealership storefront.

// @host localhost:8080
// @basePath /

// @contact.name Dealership back office

func main() {
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}
	app.SetupLogger(cfg)
	logrus.Print("config parsed")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	orders, closeStore, err := app.OpenOrderStore(ctx, cfg)
	if err != nil {
		logrus.Fatalf("order store: %s", err)
	}
	defer closeStore()

	var sessions repository.SessionStore
	if cfg.RedisURL != "" {
		rdb, err := redisrepo.Connect(ctx, cfg.RedisURL)
		if err != nil {
			logrus.Fatalf("redis connect: %s", err)
		}
		defer func() {
			if cerr := rdb.Close(); cerr != nil {
				logrus.Errorf("redis close: %v", cerr)
			}
		}()
		sessions = redisrepo.NewSessionRedis(rdb)
		logrus.Print("admin sessions stored in redis")
	} else {
		cch := cache.NewCache(cache.WithJanitor(time.Minute))
		defer cch.Close()
		sessions = cache.NewSessionCache(cch)
		logrus.Print("admin sessions stored in memory")
	}

	mailer, err := notify.NewSMTPMailer(notify.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
		Timeout:  cfg.MailTimeout,
	})
	if err != nil {
		logrus.Fatalf("smtp: %s", err)
	}
	dispatcher, err := notify.NewDispatcher(mailer, cfg.OperatorMail, notify.BankDetails{
		Name:          cfg.BankName,
		AccountName:   cfg.BankAccountName,
		AccountNumber: cfg.BankAccountNumber,
		RoutingNumber: cfg.BankRoutingNumber,
	})
	if err != nil {
		logrus.Fatalf("mail templates: %s", err)
	}

	opts := []service.Option{
		service.WithAdminPassword(cfg.AdminPassword),
		service.WithSessionTTL(cfg.AdminSessionTTL),
	}
	if brokers := cfg.KafkaBrokersSlice(); len(brokers) > 0 {
		pub, err := kafka.NewPublisher(brokers, cfg.KafkaTopic)
		if err != nil {
			logrus.Fatalf("kafka publisher: %s", err)
		}
		defer func() {
			if cerr := pub.Close(); cerr != nil {
				logrus.Errorf("publisher close: %v", cerr)
			}
		}()
		opts = append(opts, service.WithEvents(pub))
		logrus.Printf("publishing order events to %s", cfg.KafkaTopic)
	}

	repo := repository.NewRepository(orders, sessions)
	svc := service.NewService(repo, dispatcher, opts...)

	h := httpdelivery.NewHandler(svc, svc, svc)
	h.SecureCookies = cfg.SecureCookies
	srv := new(httpdelivery.Server)

	go func() {
		if err := srv.Run(cfg.HTTPAddr, h.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Errorf("http run: %v", err)
			cancel()
		}
	}()
	logrus.Printf("http server started on %s", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-quit:
		logrus.Print("shutdown signal received")
	case <-ctx.Done():
		logrus.Print("context canceled, shutting down")
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("http shutdown: %s", err)
	}

	logrus.Print("service stopped")
}
