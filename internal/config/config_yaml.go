package config

import (
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/psds-microservice/seeder/pkg/constants"
)

// YamlConfig представляет конфигурацию сидера из YAML
type YamlConfig struct {
	Store struct {
		Driver     string `yaml:"driver"`
		URL        string `yaml:"url"`
		ServiceKey string `yaml:"service_key"`
		Table      string `yaml:"table"`
		TimeoutSec int    `yaml:"timeout_sec"`
	} `yaml:"store"`

	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
		SSLMode  string `yaml:"ssl_mode"`
	} `yaml:"database"`

	SQLite struct {
		Path string `yaml:"path"`
	} `yaml:"sqlite"`

	Seed struct {
		Password   string `yaml:"password"`
		BcryptCost int    `yaml:"bcrypt_cost"`
	} `yaml:"seed"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`

	Migrations struct {
		Path string `yaml:"path"`
	} `yaml:"migrations"`
}

// LoadYamlConfig загружает конфигурацию из YAML файла
func LoadYamlConfig(path string) (*YamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := GetDefaultYamlConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GetDefaultYamlConfig возвращает конфигурацию по умолчанию.
// URL и ключ хранилища не имеют дефолтов: их отсутствие — ошибка конфигурации.
func GetDefaultYamlConfig() *YamlConfig {
	cfg := &YamlConfig{}
	cfg.Store.Driver = constants.StoreDriverREST
	cfg.Store.Table = constants.TableUsers
	cfg.Store.TimeoutSec = 10
	cfg.Database.Host = "localhost"
	cfg.Database.Port = 5432
	cfg.Database.User = "postgres"
	cfg.Database.Password = "postgres"
	cfg.Database.Name = "app"
	cfg.Database.SSLMode = "disable"
	cfg.SQLite.Path = "seeder.db"
	cfg.Seed.Password = DefaultSeedPassword
	cfg.Seed.BcryptCost = DefaultBcryptCost
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "console"
	cfg.Migrations.Path = "database/migrations"
	return cfg
}

// DSN возвращает connection string для lib/pq
func (c *YamlConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host, c.Database.Port, c.Database.User, c.Database.Password, c.Database.Name, c.Database.SSLMode)
}

// DatabaseURL возвращает postgres URL для golang-migrate
func (c *YamlConfig) DatabaseURL() string {
	pass := url.QueryEscape(c.Database.Password)
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User, pass, c.Database.Host, c.Database.Port, c.Database.Name, c.Database.SSLMode)
}

// MigrationsURL возвращает source URL миграций для golang-migrate
func (c *YamlConfig) MigrationsURL() string {
	return "file://" + c.Migrations.Path
}
