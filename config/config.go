package config

import (
    "fmt"
    "log"
    "os"
    "strconv"

    "github.com/joho/godotenv"

    "payment-authorizenet-api/database"
    "payment-authorizenet-api/services/email"
)

type Config struct {
    Database database.DatabaseConfig
    AuthNet  AuthNetConfig
    SMTP     email.SMTPConfig
    Server   ServerConfig
    Redis    RedisConfig
    Session  SessionConfig
    Auth     AuthConfig
}

// AuthNetConfig carries the merchant credentials and the environment flag
// that selects between the sandbox and production endpoints.
type AuthNetConfig struct {
    APILoginID     string
    TransactionKey string
    Environment    string
}

type ServerConfig struct {
    Port string
}

type RedisConfig struct {
    URL               string
    WorkerConcurrency int
}

type SessionConfig struct {
    Secret string
}

type AuthConfig struct {
    JWTSecret string
    APIKey    string
    Issuer    string
}

// Load reads configuration from the environment (.env supported). The
// Authorize.net credentials are required: a missing login ID, transaction
// key or environment is a configuration error surfaced here rather than
// discovered on the first gateway call.
func Load() (*Config, error) {
    if err := godotenv.Load(); err != nil {
        log.Printf("Warning: Error loading .env file: %v", err)
    }

    authnet := AuthNetConfig{
        APILoginID:     os.Getenv("AUTHNET_API_LOGIN_ID"),
        TransactionKey: os.Getenv("AUTHNET_TRANSACTION_KEY"),
        Environment:    os.Getenv("AUTHNET_ENVIRONMENT"),
    }

    if authnet.APILoginID == "" {
        return nil, fmt.Errorf("missing required setting AUTHNET_API_LOGIN_ID")
    }
    if authnet.TransactionKey == "" {
        return nil, fmt.Errorf("missing required setting AUTHNET_TRANSACTION_KEY")
    }
    if authnet.Environment == "" {
        return nil, fmt.Errorf("missing required setting AUTHNET_ENVIRONMENT")
    }

    workerConcurrency := 2
    if v := os.Getenv("WORKER_CONCURRENCY"); v != "" {
        if n, err := strconv.Atoi(v); err == nil && n > 0 {
            workerConcurrency = n
        }
    }

    cfg := &Config{
        Database: database.DatabaseConfig{
            Host:     os.Getenv("DB_HOST"),
            User:     os.Getenv("DB_USER"),
            Password: os.Getenv("DB_PASSWORD"),
            DBName:   os.Getenv("DB_NAME"),
        },
        AuthNet: authnet,
        SMTP: email.SMTPConfig{
            Host:     os.Getenv("SMTP_HOST"),
            Port:     os.Getenv("SMTP_PORT"),
            Username: os.Getenv("SMTP_USER"),
            Password: os.Getenv("SMTP_PASSWORD"),
            From:     os.Getenv("SMTP_FROM"),
        },
        Server: ServerConfig{
            Port: os.Getenv("SERVER_PORT"),
        },
        Redis: RedisConfig{
            URL:               os.Getenv("REDIS_URL"),
            WorkerConcurrency: workerConcurrency,
        },
        Session: SessionConfig{
            Secret: os.Getenv("SESSION_SECRET"),
        },
        Auth: AuthConfig{
            JWTSecret: os.Getenv("JWT_SECRET"),
            APIKey:    os.Getenv("ADMIN_API_KEY"),
            Issuer:    "payment-authorizenet-api",
        },
    }

    if cfg.Server.Port == "" {
        cfg.Server.Port = "8080"
    }

    if cfg.Redis.URL == "" {
        cfg.Redis.URL = "redis://localhost:6379/0"
        log.Printf("Warning: REDIS_URL not set, using default: %s", cfg.Redis.URL)
    }

    return cfg, nil
}
