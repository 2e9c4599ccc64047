package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// ServerConfig holds settings for the holiday planner API server.
type ServerConfig struct {
	Addr          string
	DatabaseURL   string
	BaseYear      int
	TelegramToken string
	NotifyChatID  int64
}

// PlannerConfig holds settings for the planner CLI client.
type PlannerConfig struct {
	APIBaseURL string
	BaseYear   int
}

var (
	serverInstance *ServerConfig
	serverOnce     sync.Once

	plannerInstance *PlannerConfig
	plannerOnce     sync.Once
)

func GetServerConfig() *ServerConfig {
	serverOnce.Do(func() {
		loadDotenv()

		serverInstance = &ServerConfig{
			Addr:          getEnv("HTTP_ADDR", ":8000"),
			DatabaseURL:   getEnv("DATABASE_URL", "holidays.db"),
			BaseYear:      int(getEnvAsInt("BASE_YEAR", 2025)),
			TelegramToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
			NotifyChatID:  getEnvAsInt("NOTIFY_CHAT_ID", 0),
		}

		if serverInstance.DatabaseURL == "" {
			logrus.Fatal("could not get database url")
		}
	})

	return serverInstance
}

func GetPlannerConfig() *PlannerConfig {
	plannerOnce.Do(func() {
		loadDotenv()

		plannerInstance = &PlannerConfig{
			APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8000"),
			BaseYear:   int(getEnvAsInt("BASE_YEAR", 2025)),
		}
	})

	return plannerInstance
}

func loadDotenv() {
	// A missing .env is fine, the environment itself may carry everything.
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env file loaded: %s", err.Error())
	}
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return int64(val)
	}

	return defaultVal
}
