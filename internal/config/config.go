// Package config предоставляет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env                     string                   `yaml:"env" env-default:"local"`
	StorageConnectionString string                   `yaml:"storage_connection_string"`
	MigrationsPath          string                   `yaml:"migrations_path" env-default:"./migrations"`
	SubscriptionTiers       map[string]time.Duration `yaml:"subscription_tiers"`
	RedisConnection         `yaml:"redis_connection"`
	RabbitConnection        `yaml:"rabbit_connection"`
	HTTPServer              `yaml:"http_server"`
	JWTToken                `yaml:"jwttoken"`
	PaymentProvider         `yaml:"payment_provider"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:"localhost:8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RedisConnection структура для настройки подключения к redis
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis"`
	Password     string        `yaml:"password"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries" env-default:"3"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env-default:"5s"`
	TimeoutRedis time.Duration `yaml:"timeoutredis" env-default:"3s"`
}

// RabbitConnection структура для настройки подключения к rabbitmq
type RabbitConnection struct {
	AddressRabbit string        `yaml:"addressrabbit"`
	RetriesRabbit int           `yaml:"retries" env-default:"5"`
	DelayRabbit   time.Duration `yaml:"delay" env-default:"2s"`
}

// JWTToken структура для работы с токеном идентичности
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET_KEY"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"8760h"`
}

// PaymentProvider структура для настройки клиента платёжного провайдера
type PaymentProvider struct {
	PaymentAPIKey string `yaml:"payment_api_key" env:"PAYMENT_API_KEY"`
	PaymentAPIURL string `yaml:"payment_api_url" env-default:"https://api.stripe.com/v1"`
}

// MustLoad функция для загрузки конфига, путь берётся из CONFIG_PATH
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	if len(cfg.SubscriptionTiers) == 0 {
		cfg.SubscriptionTiers = DefaultSubscriptionTiers()
	}
	return &cfg
}

// DefaultSubscriptionTiers возвращает тарифы подписки по умолчанию.
func DefaultSubscriptionTiers() map[string]time.Duration {
	return map[string]time.Duration{
		"1min":   time.Minute,
		"5days":  5 * 24 * time.Hour,
		"10days": 10 * 24 * time.Hour,
	}
}
