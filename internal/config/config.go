package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Cache Cache `validate:"required"`

	Payments Payments `validate:"required"`

	SMTP SMTP `validate:"required"`

	Outbox Outbox `validate:"required"`

	AdminToken string `validate:"required,min=16"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`
	// DLQTopic принимает уведомления, которые не удалось отправить.
	DLQTopic string `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Cache struct {
	Driver   string        `validate:"required,oneof=lru redis"`
	Capacity int           `validate:"gt=0"`
	TTL      time.Duration `validate:"gt=0"`
	// WarmUp - сколько последних завершённых заказов загрузить в кэш при старте.
	WarmUp    int    `validate:"gte=0"`
	RedisAddr string `validate:"required_if=Driver redis"`
	RedisDB   int    `validate:"gte=0"`
}

type Payments struct {
	Timeout   time.Duration `validate:"gt=0"`
	Freshness time.Duration `validate:"gt=0"`

	Mpesa  Mpesa
	Hosted Hosted
}

type Mpesa struct {
	BaseURL          string `validate:"required,url"`
	ConsumerKey      string
	ConsumerSecret   string
	ShortCode        string
	Passkey          string
	CallbackURL      string `validate:"omitempty,url"`
	CallbackSecret   string
	AccountReference string
}

type Hosted struct {
	BaseURL       string `validate:"required,url"`
	SecretKey     string
	WebhookSecret string
	CallbackURL   string `validate:"omitempty,url"`
	Currency      string `validate:"required,len=3"`
}

type SMTP struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	Username string
	Password string
	From     string `validate:"required,email"`
	TLS      bool
}

type Outbox struct {
	Interval  time.Duration `validate:"gt=0"`
	BatchSize int           `validate:"gt=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID:  env("KAFKA_GROUP_ID", "storefront-mailer"),
			Topic:    env("KAFKA_TOPIC", "order-notifications"),
			DLQTopic: env("KAFKA_DLQ_TOPIC", "order-notifications-dlq"),
			Brokers:  strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "storefront"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Cache: Cache{
			Driver:    env("CACHE_DRIVER", "lru"),
			Capacity:  envInt("CACHE_CAPACITY", 1000),
			TTL:       envDuration("CACHE_TTL", time.Hour),
			WarmUp:    envInt("CACHE_WARM_UP", 100),
			RedisAddr: env("REDIS_ADDR", ""),
			RedisDB:   envInt("REDIS_DB", 0),
		},

		Payments: Payments{
			Timeout:   envDuration("PAYMENT_PROVIDER_TIMEOUT", 15*time.Second),
			Freshness: envDuration("PAYMENT_FRESHNESS_WINDOW", 2*time.Minute),

			Mpesa: Mpesa{
				BaseURL:          env("MPESA_BASE_URL", "https://sandbox.safaricom.co.ke"),
				ConsumerKey:      env("MPESA_CONSUMER_KEY", ""),
				ConsumerSecret:   env("MPESA_CONSUMER_SECRET", ""),
				ShortCode:        env("MPESA_SHORTCODE", "174379"),
				Passkey:          env("MPESA_PASSKEY", ""),
				CallbackURL:      env("MPESA_CALLBACK_URL", ""),
				CallbackSecret:   env("MPESA_CALLBACK_SECRET", ""),
				AccountReference: env("MPESA_ACCOUNT_REFERENCE", "Storefront"),
			},

			Hosted: Hosted{
				BaseURL:       env("HOSTED_BASE_URL", "https://api.paystack.co"),
				SecretKey:     env("HOSTED_SECRET_KEY", ""),
				WebhookSecret: env("HOSTED_WEBHOOK_SECRET", ""),
				CallbackURL:   env("HOSTED_CALLBACK_URL", ""),
				Currency:      env("HOSTED_CURRENCY", "KES"),
			},
		},

		SMTP: SMTP{
			Host:     env("SMTP_HOST", "localhost"),
			Port:     envInt("SMTP_PORT", 587),
			Username: env("SMTP_USERNAME", ""),
			Password: env("SMTP_PASSWORD", ""),
			From:     env("SMTP_FROM", "orders@storefront.local"),
			TLS:      envBool("SMTP_TLS", true),
		},

		Outbox: Outbox{
			Interval:  envDuration("OUTBOX_INTERVAL", time.Second),
			BatchSize: envInt("OUTBOX_BATCH_SIZE", 100),
		},

		AdminToken: env("ADMIN_TOKEN", ""),
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
