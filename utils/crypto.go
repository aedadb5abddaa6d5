package utils

import (
    "crypto/rand"
    "math/big"
)

func GenerateRandomString(length int) string {
    const charset = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
    result := make([]byte, length)
    for i := range result {
        n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
        result[i] = charset[n.Int64()]
    }
    return string(result)
}

// GenerateReferenceID produces a merchant reference ID short enough for the
// gateway's refId field.
func GenerateReferenceID() string {
    return GenerateRandomString(20)
}
