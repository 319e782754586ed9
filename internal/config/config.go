package config

import (
	"fmt"
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Port            string        `env:"PORT" env-default:"3002"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type Database struct {
	Host            string        `env:"DB_HOST" env-default:"localhost"`
	Port            string        `env:"DB_PORT" env-default:"5432"`
	User            string        `env:"DB_USER" env-required:"true"`
	Password        string        `env:"DB_PASSWORD" env-required:"true"`
	Name            string        `env:"DB_NAME" env-required:"true"`
	SSLMode         string        `env:"DB_SSLMODE" env-default:"disable"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" env-default:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" env-default:"2m"`
}

type UserService struct {
	BaseURL string        `env:"USER_SERVICE_URL" env-default:"http://localhost:3001"`
	Timeout time.Duration `env:"USER_SERVICE_TIMEOUT" env-default:"5s"`
}

type Inventory struct {
	// Data-layer floor on stock adjustments. When set, a delta that would
	// drive stock below zero is refused instead of applied.
	EnforceNonNegativeStock bool `env:"ENFORCE_NON_NEGATIVE_STOCK" env-default:"true"`
	LowStockThreshold       int  `env:"LOW_STOCK_THRESHOLD" env-default:"10"`
}

type Config struct {
	Env         string `env:"ENV" env-default:"development"`
	HTTPServer  HTTPServer
	Database    Database
	UserService UserService
	Inventory   Inventory
}

func MustLoad() *Config {

	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("can not read configuration from environment: %s", err.Error())
	}

	return &cfg
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}
