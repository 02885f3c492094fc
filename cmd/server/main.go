// @title           Plantcare API
// @version         1.0
// @description     Personal plant-care tracker backend.
// @description     Provides user authentication and per-user plant records.

// @host      localhost:3000
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
//
// Package main содержит точку входа серверного приложения plantcare.
//
// Пакет отвечает за инициализацию и жизненный цикл HTTP(S)-сервера, а именно:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации сервера из файла ./configs/server.yaml;
//   - инициализацию подключения к базе данных и запуск миграций;
//   - создание репозиториев, сервисов, middleware и HTTP-обработчиков;
//   - настройку и запуск HTTP(S)-сервера с заданными таймаутами;
//   - обработку системных сигналов завершения (SIGINT, SIGTERM, SIGQUIT);
//   - корректное (graceful) завершение работы сервера с таймаутом.
//
// Пакет не содержит бизнес-логики и не предназначен для unit-тестирования.
// HTTP API сервера реализовано в пакете internal/server/api и документируется с помощью OpenAPI (Swagger).
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/Aditya-Angaj/plantcare/internal/server/api"
	"github.com/Aditya-Angaj/plantcare/internal/server/config"
	"github.com/Aditya-Angaj/plantcare/internal/server/middleware"
	h "github.com/Aditya-Angaj/plantcare/internal/server/net/http"
	"github.com/Aditya-Angaj/plantcare/internal/server/repository"
	"github.com/Aditya-Angaj/plantcare/internal/server/service"
	"github.com/Aditya-Angaj/plantcare/internal/shared/logger"

	_ "github.com/Aditya-Angaj/plantcare/swagger/docs"
)

func main() {
	sugar := logger.NewHTTPLogger().Logger.Sugar()
	httpLogger := logger.NewHTTPLogger()

	if err := godotenv.Load(); err != nil {
		sugar.Warnf("no .env file loaded, error: %v", err)
	}

	cfg, err := config.Load("./configs/server.yaml")
	if err != nil {
		sugar.Fatal(err)
	}
	cfg.ApplyEnvOverrides()

	// подключаем базу данных
	db, err := config.OpenDB(cfg)
	if err != nil {
		sugar.Fatal(err)
	}
	defer db.Close()

	// создаём репы
	usersRepo := repository.NewUsersRepository(db)
	plantsRepo := repository.NewPlantsRepository(db)
	// складываем в репозиторий
	repos := service.Repositories{
		Users:  usersRepo,
		Plants: plantsRepo,
	}
	// создаём сервис
	svc := service.NewServices(repos, cfg)
	// создаём jwt
	verifier := middleware.NewJWTVerifier(
		cfg.Auth.JWT.SigningKey,
		cfg.Auth.Issuer,
		cfg.Auth.Audience,
	)
	// создаём хандлер
	handler := api.NewHandler(svc, httpLogger, verifier)
	// создаём роутер
	router := h.NewRouter(handler)
	// создаём сервер
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// создаём контекст и errgroup
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// запускаем сервер
	g.Go(func() error {
		sugar.Infof("server started on %s", addr)

		var err error
		if cfg.TLS.Enabled {
			err = server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			cfg.Server.ShutdownTimeout,
		)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	// ожидание и единая обработка ошибок
	if err := g.Wait(); err != nil {
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}
