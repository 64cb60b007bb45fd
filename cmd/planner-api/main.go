package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/nhle/planner/internal/credential"
	"github.com/nhle/planner/internal/model"
	"github.com/nhle/planner/internal/seed"
	"github.com/nhle/planner/internal/server"
	"github.com/nhle/planner/internal/store"
)

const (
	SEVERITY    = "severity"
	MESSAGE     = "message"
	TIMESTAMP   = "timestamp"
	COMPONENT   = "component"
	SERVICENAME = "planner-api"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using environment variables")
	}

	configPath := flag.String("config", model.DefaultConfigPath(), "path to config.yaml")
	storeSecret := flag.String("store-token-secret", "", "save the token secret to the OS keyring and exit")
	flag.Parse()

	if *storeSecret != "" {
		if err := credential.Set(credential.TokenSecretKey, *storeSecret); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("token secret saved to keyring")
		return
	}

	cfg, err := model.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Log)
	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Fatal("planner-api stopped")
	}
}

func newLogger(cfg model.LogConfig) *logrus.Entry {
	if cfg.Format == "text" {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  TIMESTAMP,
				logrus.FieldKeyLevel: SEVERITY,
				logrus.FieldKeyMsg:   MESSAGE,
			},
		})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	return logrus.WithField(COMPONENT, SERVICENAME)
}

func run(cfg *model.AppConfig, logger *logrus.Entry) error {
	secret, err := credential.TokenSecret(cfg.Auth.TokenSecret)
	if err != nil {
		return fmt.Errorf("loading token secret: %w", err)
	}

	st, err := store.NewSQLStore(cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()

	srv := server.New(st, seed.New(st, logger), secret, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.WithFields(logrus.Fields{
			"addr":   cfg.Server.Addr,
			"driver": cfg.Database.Driver,
		}).Info("starting HTTP server")
		errCh <- srv.Start(cfg.Server.Addr)
	}()

	exit := make(chan os.Signal, 1)
	signal.Notify(exit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-exit:
		logger.WithField("signal", sig.String()).Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
