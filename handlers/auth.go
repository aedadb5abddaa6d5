package handlers

import (
    "encoding/json"
    "log"
    "net/http"

    "payment-authorizenet-api/models"
    "payment-authorizenet-api/services/auth"
    "payment-authorizenet-api/utils"
)

type AuthHandler struct {
    jwtService *auth.JWTService
}

func NewAuthHandler(jwtService *auth.JWTService) *AuthHandler {
    return &AuthHandler{jwtService: jwtService}
}

type tokenRequest struct {
    APIKey string `json:"api_key"`
}

// Token exchanges the admin API key for a short-lived Bearer token. The key
// may come in the body or in the X-API-Key header.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
    apiKey := r.Header.Get("X-API-Key")

    if apiKey == "" {
        var req tokenRequest
        if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
            apiKey = req.APIKey
        }
    }

    if apiKey == "" {
        utils.SendErrorResponse(w, http.StatusBadRequest, "Missing API key")
        return
    }

    resp, err := h.jwtService.Authenticate(apiKey)
    if err != nil {
        log.Printf("Token request rejected from %s: %v", r.RemoteAddr, err)
        utils.SendErrorResponse(w, http.StatusUnauthorized, "Invalid API key")
        return
    }

    utils.SendSuccessResponse(w, models.APIResponse{
        Status: "success",
        Data:   resp,
    })
}
