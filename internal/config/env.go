package config

import (
	"os"
	"strconv"
)

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// ApplyEnvOverrides применяет переменные окружения поверх конфига (env переопределяет YAML)
func ApplyEnvOverrides(cfg *YamlConfig) {
	if v := getEnv("SEED_STORE_DRIVER", ""); v != "" {
		cfg.Store.Driver = v
	}
	if v := getEnv("SUPABASE_URL", ""); v != "" {
		cfg.Store.URL = v
	}
	if v := getEnv("SUPABASE_SERVICE_ROLE_KEY", ""); v != "" {
		cfg.Store.ServiceKey = v
	}
	if v := getEnv("SEED_TABLE", ""); v != "" {
		cfg.Store.Table = v
	}
	if p := getEnvInt("SEED_TIMEOUT_SEC", 0); p > 0 {
		cfg.Store.TimeoutSec = p
	}

	if v := getEnv("DB_HOST", ""); v != "" {
		cfg.Database.Host = v
	}
	if p := getEnvInt("DB_PORT", 0); p != 0 {
		cfg.Database.Port = p
	}
	if v := getEnv("DB_USER", ""); v != "" {
		cfg.Database.User = v
	}
	if v := getEnv("DB_PASSWORD", ""); v != "" {
		cfg.Database.Password = v
	}
	if v := getEnv("DB_NAME", ""); v != "" {
		cfg.Database.Name = v
	}
	if v := getEnv("DB_SSLMODE", ""); v != "" {
		cfg.Database.SSLMode = v
	}

	if v := getEnv("SQLITE_PATH", ""); v != "" {
		cfg.SQLite.Path = v
	}

	if v := getEnv("SEED_PASSWORD", ""); v != "" {
		cfg.Seed.Password = v
	}
	if p := getEnvInt("SEED_BCRYPT_COST", 0); p > 0 {
		cfg.Seed.BcryptCost = p
	}

	if v := getEnv("LOG_LEVEL", ""); v != "" {
		cfg.Logging.Level = v
	}
	if v := getEnv("LOG_FORMAT", ""); v != "" {
		cfg.Logging.Format = v
	}

	if v := getEnv("MIGRATIONS_PATH", ""); v != "" {
		cfg.Migrations.Path = v
	}
}

// LoadConfigFromEnv собирает конфиг только из переменных окружения (для работы без YAML)
func LoadConfigFromEnv() *YamlConfig {
	cfg := GetDefaultYamlConfig()
	ApplyEnvOverrides(cfg)
	return cfg
}
