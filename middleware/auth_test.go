package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "payment-authorizenet-api/services/auth"
)

func protectedEndpoint(t *testing.T, svc *auth.JWTService) http.Handler {
    t.Helper()
    next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        claims := GetClaimsFromContext(r.Context())
        require.NotNil(t, claims)
        assert.Equal(t, "admin", claims.Subject)
        w.WriteHeader(http.StatusNoContent)
    })
    return AuthMiddleware(svc)(next)
}

func TestAuthMiddlewareAllowsValidToken(t *testing.T) {
    svc := auth.NewJWTService("signing-secret", "admin-api-key", "payment-api")
    token, err := svc.GenerateToken(time.Minute)
    require.NoError(t, err)

    req := httptest.NewRequest("GET", "/admin/accounts", nil)
    req.Header.Set("Authorization", "Bearer "+token)
    rec := httptest.NewRecorder()

    protectedEndpoint(t, svc).ServeHTTP(rec, req)
    assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthMiddlewareRejections(t *testing.T) {
    svc := auth.NewJWTService("signing-secret", "admin-api-key", "payment-api")

    tests := []struct {
        name   string
        header string
    }{
        {"missing header", ""},
        {"not bearer", "Basic abc123"},
        {"malformed", "Bearer"},
        {"garbage token", "Bearer not.a.jwt"},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            req := httptest.NewRequest("GET", "/admin/accounts", nil)
            if tt.header != "" {
                req.Header.Set("Authorization", tt.header)
            }
            rec := httptest.NewRecorder()

            handler := AuthMiddleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
                t.Fatal("handler must not run")
            }))
            handler.ServeHTTP(rec, req)
            assert.Equal(t, http.StatusUnauthorized, rec.Code)
        })
    }
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
    svc := auth.NewJWTService("signing-secret", "admin-api-key", "payment-api")
    token, err := svc.GenerateToken(-time.Minute)
    require.NoError(t, err)

    req := httptest.NewRequest("GET", "/admin/accounts", nil)
    req.Header.Set("Authorization", "Bearer "+token)
    rec := httptest.NewRecorder()

    handler := AuthMiddleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        t.Fatal("handler must not run")
    }))
    handler.ServeHTTP(rec, req)

    assert.Equal(t, http.StatusUnauthorized, rec.Code)
    assert.Contains(t, rec.Body.String(), "Token expired")
}

func TestGetClaimsFromContextWithoutAuth(t *testing.T) {
    req := httptest.NewRequest("GET", "/", nil)
    assert.Nil(t, GetClaimsFromContext(req.Context()))
}

func TestGetClientIP(t *testing.T) {
    req := httptest.NewRequest("GET", "/", nil)
    req.RemoteAddr = "10.0.0.1:52331"
    assert.Equal(t, "10.0.0.1", getClientIP(req))

    req.Header.Set("X-Real-IP", "203.0.113.7")
    assert.Equal(t, "203.0.113.7", getClientIP(req))

    req.Header.Set("X-Forwarded-For", "198.51.100.2, 10.0.0.1")
    assert.Equal(t, "198.51.100.2", getClientIP(req))
}

func TestSecurityHeadersMiddleware(t *testing.T) {
    handler := SecurityHeadersMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusOK)
    }))

    req := httptest.NewRequest("GET", "/api/v1/accounts", nil)
    rec := httptest.NewRecorder()
    handler.ServeHTTP(rec, req)

    assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
    assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
    assert.NotEmpty(t, rec.Header().Get("Cache-Control"))
}
