package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DBDriver       string
	DBUser         string
	DBPassword     string
	DBHost         string
	DBPort         string
	DBName         string
	DBMaxOpenConns int
	Timezone       string
	LogDir         string
}

// LoadConfig reads the process environment, after merging an optional .env
// file from the working directory. Missing keys fall back to defaults.
func LoadConfig() Config {
	// a missing .env is fine, variables may come from the environment
	_ = godotenv.Load()

	driver := getEnv("DB_DRIVER", "mysql")
	return Config{
		Port:           getEnv("PORT", "3000"),
		DBDriver:       driver,
		DBUser:         getEnv("DB_USER", "root"),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", defaultDBPort(driver)),
		DBName:         getEnv("DB_NAME", "daily_mood"),
		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),
		Timezone:       getEnv("APP_TIMEZONE", "Asia/Shanghai"),
		LogDir:         getEnv("LOG_DIR", "./logs"),
	}
}

func defaultDBPort(driver string) string {
	switch driver {
	case "postgres":
		return "5432"
	case "mysql":
		return "3306"
	}
	return ""
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
