package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"holiday-planner/internal/config"
	"holiday-planner/internal/handler"
	"holiday-planner/internal/repository"
	"holiday-planner/internal/service"
	"holiday-planner/pkg/notify"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	seed := flag.Bool("seed", false, "create the default team and members on startup")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	logger.Info("Initializing config...")
	cfg := config.GetServerConfig()

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get database instance:", err)
	}
	if _, err = sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		logger.Infof("Warning: Failed to enable foreign keys: %v", err)
	}

	teamRepo, err := repository.NewGormTeamRepository(db)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create team repository")
	}
	employeeRepo, err := repository.NewGormEmployeeRepository(db)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create employee repository")
	}
	vacationRepo, err := repository.NewGormVacationRepository(db)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create vacation repository")
	}

	var notifier service.Notifier
	if cfg.TelegramToken != "" && cfg.NotifyChatID != 0 {
		tg, err := notify.NewTelegramNotifier(cfg.TelegramToken, cfg.NotifyChatID, logger)
		if err != nil {
			logger.WithError(err).Fatal("Failed to create Telegram notifier")
		}
		notifier = tg
		logger.Info("Telegram notifications enabled")
	}

	teamService := service.NewTeamService(teamRepo, employeeRepo, vacationRepo, logger)
	employeeService := service.NewEmployeeService(employeeRepo, teamRepo, vacationRepo, logger)
	vacationService := service.NewVacationService(vacationRepo, employeeRepo, notifier, logger)

	if *seed {
		if err := service.SeedDefaults(teamService, employeeService, vacationService); err != nil {
			logger.WithError(err).Fatal("Failed to seed default data")
		}
		logger.Info("Default data seeded")
	}

	h := handler.NewHandler(teamService, employeeService, vacationService, cfg.BaseYear, logger)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: h.Router(),
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Infof("Server listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed:", err)
		}
	}()

	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Infof("Error shutting down server: %v", err)
	}

	if err := sqlDB.Close(); err != nil {
		logger.Infof("Error closing database: %v", err)
	}

	logger.Info("Server stopped gracefully")
}
