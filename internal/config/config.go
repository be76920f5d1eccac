package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Host             string
	Port             string
	MinimumSpeedKPH  float64
	EstimateOdometer bool
	SimulateGeozones bool
	AlsoCheckRawID   bool
	RedisURL         string
}

func LoadConfig() *Config {
	return &Config{
		Host:             getEnv("HOST", "0.0.0.0"),
		Port:             getEnv("PORT", "8000"),
		MinimumSpeedKPH:  getEnvFloat("MINIMUM_SPEED_KPH", 4.0),
		EstimateOdometer: getEnvBool("ESTIMATE_ODOMETER", false),
		SimulateGeozones: getEnvBool("SIMULATE_GEOZONES", false),
		AlsoCheckRawID:   getEnvBool("ALSO_CHECK_RAW_ID", false),
		RedisURL:         os.Getenv("REDIS_URL"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return strings.TrimSpace(value)
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}
