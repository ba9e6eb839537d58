package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	apperrors "github.com/psds-microservice/seeder/internal/errors"
	"github.com/psds-microservice/seeder/pkg/constants"
)

// DefaultSeedPassword — общий пароль сидируемых учёток
const DefaultSeedPassword = "Password123!"

// DefaultBcryptCost — cost bcrypt для хэша пароля
const DefaultBcryptCost = 10

// Config — алиас для YamlConfig
type Config = YamlConfig

// LoadConfig загружает конфигурацию: сначала YAML (если файл есть), затем применяет переопределения из .env
// Если файла нет — конфиг собирается целиком из env (LoadConfigFromEnv).
// Битый или нечитаемый файл — ошибка: молча уйти на дефолтный драйвер нельзя.
func LoadConfig(path string) (*Config, error) {
	cfg, err := LoadYamlConfig(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return LoadConfigFromEnv(), nil
		}
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	ApplyEnvOverrides(cfg)
	return cfg, nil
}

// Option — переопределение поверх загруженного конфига (флаги CLI)
type Option func(*Config)

// WithSeedPassword задаёт общий пароль сидов; пустое значение игнорируется
func WithSeedPassword(password string) Option {
	return func(c *Config) {
		if password != "" {
			c.Seed.Password = password
		}
	}
}

// LoadSeedConfig загружает конфигурацию сидера, применяет opts и проверяет результат.
// Возвращает ErrConfigurationMissing до любых сетевых вызовов.
func LoadSeedConfig(path string, opts ...Option) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetDefaultConfig возвращает конфигурацию по умолчанию
func GetDefaultConfig() *Config {
	return GetDefaultYamlConfig()
}

// Validate проверяет обязательные значения для выбранного драйвера
func (c *YamlConfig) Validate() error {
	var missing []string
	switch c.Store.Driver {
	case constants.StoreDriverREST:
		if strings.TrimSpace(c.Store.URL) == "" {
			missing = append(missing, "SUPABASE_URL")
		}
		if strings.TrimSpace(c.Store.ServiceKey) == "" {
			missing = append(missing, "SUPABASE_SERVICE_ROLE_KEY")
		}
	case constants.StoreDriverPostgres:
		if c.Database.Host == "" || c.Database.Name == "" {
			missing = append(missing, "DB_HOST", "DB_NAME")
		}
	case constants.StoreDriverSQLite:
		if c.SQLite.Path == "" {
			missing = append(missing, "SQLITE_PATH")
		}
	default:
		return fmt.Errorf("%w: unknown store driver %q", apperrors.ErrConfigurationMissing, c.Store.Driver)
	}
	if c.Store.Table == "" {
		missing = append(missing, "SEED_TABLE")
	}
	if c.Seed.Password == "" {
		missing = append(missing, "SEED_PASSWORD")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrConfigurationMissing, strings.Join(missing, ", "))
	}
	return nil
}

// ValidateMigrate проверяет конфиг для migrate: миграции есть только у postgres
func (c *YamlConfig) ValidateMigrate() error {
	if c.Store.Driver != constants.StoreDriverPostgres {
		return fmt.Errorf("%w: migrate requires store driver %q, got %q",
			apperrors.ErrConfigurationMissing, constants.StoreDriverPostgres, c.Store.Driver)
	}
	if c.Migrations.Path == "" {
		return fmt.Errorf("%w: MIGRATIONS_PATH", apperrors.ErrConfigurationMissing)
	}
	return c.Validate()
}

// String — представление конфига без секретов
func (c *YamlConfig) String() string {
	return fmt.Sprintf("Config{driver: %s, url: %s, table: %s, service_key: *** (masked) ***}",
		c.Store.Driver, c.Store.URL, c.Store.Table)
}
