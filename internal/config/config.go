package config

import "os"

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	DatabasePath       string
	Port               string
	LogLevel           string
	Environment        string
	CycleCronSpec      string
	SweepCronSpec      string
	SlackRatePerSec    int
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./dutyrota.db"),
		Port:               getEnv("PORT", "3000"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		// The cycle runs every 15 minutes; eligibility catch-up makes the
		// exact phase irrelevant.
		CycleCronSpec:   getEnv("CYCLE_CRON_SPEC", "*/15 * * * *"),
		SweepCronSpec:   getEnv("SWEEP_CRON_SPEC", "0 */6 * * *"),
		SlackRatePerSec: 1,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
