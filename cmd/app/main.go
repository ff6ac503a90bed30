package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"teamchat/internal/app/config"
	httpapi "teamchat/internal/app/http"
	"teamchat/internal/app/http/handler"
	"teamchat/internal/domain/member"
	"teamchat/internal/domain/preference"
	"teamchat/internal/infrastructure/async"
	"teamchat/internal/infrastructure/db/pg"
	"teamchat/internal/infrastructure/logging"
	"teamchat/internal/infrastructure/remote"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("db open error", zap.Error(err))
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("db ping error", zap.Error(err))
	}

	if err := pg.Migrate(db, cfg.MigrationsDir); err != nil {
		log.Fatal("migrations error", zap.Error(err))
	}

	uow := pg.NewTxManager(db)

	eventBus := async.NewAsyncEventBus(ctx, cfg.EventWorkers, log)
	defer eventBus.Close()

	chat := remote.NewClient(cfg.ChatAPIURL, cfg.ChatAPIToken, cfg.ChatTimeout, log)

	stateRepo := pg.NewStateRepository(db)
	memberRepo := pg.NewMemberRepository(db)
	prefRepo := pg.NewPreferenceRepository(db)

	memberSvc := member.NewService(uow, chat, memberRepo, eventBus)
	prefSvc := preference.NewService(uow, chat, prefRepo, eventBus)

	h := handler.New(memberSvc, prefSvc, stateRepo, memberRepo, log)
	router := httpapi.NewRouter(h, log)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.ChatTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("chat_api", cfg.ChatAPIURL),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
}
