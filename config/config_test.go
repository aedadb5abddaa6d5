package config

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
    t.Setenv("AUTHNET_API_LOGIN_ID", "login")
    t.Setenv("AUTHNET_TRANSACTION_KEY", "key")
    t.Setenv("AUTHNET_ENVIRONMENT", "sandbox")
}

func TestLoadRequiresGatewayCredentials(t *testing.T) {
    t.Setenv("AUTHNET_API_LOGIN_ID", "")
    t.Setenv("AUTHNET_TRANSACTION_KEY", "")
    t.Setenv("AUTHNET_ENVIRONMENT", "")

    _, err := Load()
    require.Error(t, err)
    assert.Contains(t, err.Error(), "AUTHNET_API_LOGIN_ID")
}

func TestLoadDefaults(t *testing.T) {
    setRequiredEnv(t)
    t.Setenv("SERVER_PORT", "")
    t.Setenv("REDIS_URL", "")
    t.Setenv("WORKER_CONCURRENCY", "")

    cfg, err := Load()
    require.NoError(t, err)

    assert.Equal(t, "8080", cfg.Server.Port)
    assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
    assert.Equal(t, 2, cfg.Redis.WorkerConcurrency)
    assert.Equal(t, "payment-authorizenet-api", cfg.Auth.Issuer)
}

func TestLoadWorkerConcurrency(t *testing.T) {
    setRequiredEnv(t)

    t.Setenv("WORKER_CONCURRENCY", "6")
    cfg, err := Load()
    require.NoError(t, err)
    assert.Equal(t, 6, cfg.Redis.WorkerConcurrency)

    // Garbage keeps the default instead of failing startup.
    t.Setenv("WORKER_CONCURRENCY", "many")
    cfg, err = Load()
    require.NoError(t, err)
    assert.Equal(t, 2, cfg.Redis.WorkerConcurrency)
}
