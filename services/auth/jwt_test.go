package auth

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
    return NewJWTService("test-signing-secret", "admin-api-key", "payment-api")
}

func TestAuthenticate(t *testing.T) {
    svc := newTestService()

    resp, err := svc.Authenticate("admin-api-key")
    require.NoError(t, err)
    assert.NotEmpty(t, resp.Token)
    assert.WithinDuration(t, time.Now().Add(AccessTokenDuration), resp.ExpiresAt, 5*time.Second)
}

func TestAuthenticateRejectsWrongKey(t *testing.T) {
    svc := newTestService()

    _, err := svc.Authenticate("not-the-key")
    assert.ErrorIs(t, err, ErrInvalidCredentials)

    _, err = svc.Authenticate("")
    assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRoundtrip(t *testing.T) {
    svc := newTestService()

    resp, err := svc.Authenticate("admin-api-key")
    require.NoError(t, err)

    claims, err := svc.ValidateToken(resp.Token)
    require.NoError(t, err)
    assert.Equal(t, "access", claims.TokenType)
    assert.Equal(t, "admin", claims.Subject)
    assert.Equal(t, "payment-api", claims.Issuer)
}

func TestValidateTokenExpired(t *testing.T) {
    svc := newTestService()

    token, err := svc.GenerateToken(-time.Minute)
    require.NoError(t, err)

    _, err = svc.ValidateToken(token)
    assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateTokenWrongSecret(t *testing.T) {
    token, err := newTestService().GenerateToken(time.Minute)
    require.NoError(t, err)

    other := NewJWTService("a-different-secret", "admin-api-key", "payment-api")
    _, err = other.ValidateToken(token)
    assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenGarbage(t *testing.T) {
    _, err := newTestService().ValidateToken("not.a.jwt")
    assert.ErrorIs(t, err, ErrInvalidToken)
}
