package auth

import (
    "crypto/sha256"
    "crypto/subtle"
    "errors"
    "fmt"
    "time"

    "github.com/golang-jwt/jwt/v5"
)

const AccessTokenDuration = 15 * time.Minute

var (
    ErrInvalidCredentials = errors.New("invalid API key")
    ErrTokenExpired       = errors.New("token expired")
    ErrInvalidToken       = errors.New("invalid token")
)

// JWTService exchanges the admin API key for short-lived access tokens and
// validates them on protected endpoints.
type JWTService struct {
    secretKey []byte
    apiKeySum [32]byte
    issuer    string
}

type Claims struct {
    TokenType string `json:"token_type"`
    jwt.RegisteredClaims
}

type AuthResponse struct {
    Token     string    `json:"token"`
    ExpiresAt time.Time `json:"expires_at"`
}

func NewJWTService(secretKey, apiKey, issuer string) *JWTService {
    return &JWTService{
        secretKey: []byte(secretKey),
        apiKeySum: sha256.Sum256([]byte(apiKey)),
        issuer:    issuer,
    }
}

// Authenticate verifies the presented API key and issues an access token.
func (j *JWTService) Authenticate(apiKey string) (*AuthResponse, error) {
    sum := sha256.Sum256([]byte(apiKey))
    if subtle.ConstantTimeCompare(sum[:], j.apiKeySum[:]) != 1 {
        return nil, ErrInvalidCredentials
    }

    token, err := j.GenerateToken(AccessTokenDuration)
    if err != nil {
        return nil, fmt.Errorf("error generating access token: %v", err)
    }

    return &AuthResponse{
        Token:     token,
        ExpiresAt: time.Now().Add(AccessTokenDuration),
    }, nil
}

func (j *JWTService) GenerateToken(duration time.Duration) (string, error) {
    now := time.Now()
    claims := Claims{
        TokenType: "access",
        RegisteredClaims: jwt.RegisteredClaims{
            Subject:   "admin",
            Issuer:    j.issuer,
            IssuedAt:  jwt.NewNumericDate(now),
            ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
            NotBefore: jwt.NewNumericDate(now),
        },
    }

    token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    return token.SignedString(j.secretKey)
}

// ValidateToken checks signature, expiry and token type.
func (j *JWTService) ValidateToken(tokenString string) (*Claims, error) {
    token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
        if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
        }
        return j.secretKey, nil
    })

    if err != nil {
        if errors.Is(err, jwt.ErrTokenExpired) {
            return nil, ErrTokenExpired
        }
        return nil, ErrInvalidToken
    }

    claims, ok := token.Claims.(*Claims)
    if !ok || !token.Valid {
        return nil, ErrInvalidToken
    }

    if claims.TokenType != "access" {
        return nil, ErrInvalidToken
    }

    return claims, nil
}
