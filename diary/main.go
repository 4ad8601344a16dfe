package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mooddiary/diary/config"
	"mooddiary/diary/controllers"
	"mooddiary/diary/routes"
	"mooddiary/diary/sources/psql"
	"mooddiary/diary/sources/psql/dao"
	"mooddiary/diary/utils/dates"
	"mooddiary/diary/utils/logging"
	"mooddiary/diary/web"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	if err := logging.InitLogger(cfg.LogDir); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logging.Sync()

	loc, err := dates.LoadLocation(cfg.Timezone)
	if err != nil {
		logging.ErrorLogger.Error("timezone config error", zap.Error(err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		logging.AppLogger.Error("database connection error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	moodCtrl := controllers.NewMoodController(dao.NewMoodDAO(db.DB), loc)
	r := routes.NewRouter(moodCtrl, web.Static())

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("mood diary listening",
			zap.String("addr", srv.Addr),
			zap.String("timezone", loc.String()),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
			logging.AppLogger.Error("server listen error", zap.Error(err))
			os.Exit(1)
		}
	}()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logging.AppLogger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
