package handlers

import (
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "payment-authorizenet-api/config"
    "payment-authorizenet-api/services/auth"
)

func TestAuthTokenFromHeader(t *testing.T) {
    h := NewAuthHandler(auth.NewJWTService("signing-secret", "admin-api-key", "payment-api"))

    req := httptest.NewRequest("POST", "/auth/token", nil)
    req.Header.Set("X-API-Key", "admin-api-key")
    rec := httptest.NewRecorder()

    h.Token(rec, req)

    require.Equal(t, http.StatusOK, rec.Code)

    var body struct {
        Status string `json:"status"`
        Data   struct {
            Token string `json:"token"`
        } `json:"data"`
    }
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
    assert.Equal(t, "success", body.Status)
    assert.NotEmpty(t, body.Data.Token)
}

func TestAuthTokenFromBody(t *testing.T) {
    h := NewAuthHandler(auth.NewJWTService("signing-secret", "admin-api-key", "payment-api"))

    req := httptest.NewRequest("POST", "/auth/token", strings.NewReader(`{"api_key": "admin-api-key"}`))
    rec := httptest.NewRecorder()

    h.Token(rec, req)
    assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthTokenRejections(t *testing.T) {
    h := NewAuthHandler(auth.NewJWTService("signing-secret", "admin-api-key", "payment-api"))

    t.Run("missing key", func(t *testing.T) {
        req := httptest.NewRequest("POST", "/auth/token", strings.NewReader(`{}`))
        rec := httptest.NewRecorder()
        h.Token(rec, req)
        assert.Equal(t, http.StatusBadRequest, rec.Code)
    })

    t.Run("wrong key", func(t *testing.T) {
        req := httptest.NewRequest("POST", "/auth/token", nil)
        req.Header.Set("X-API-Key", "not-the-key")
        rec := httptest.NewRecorder()
        h.Token(rec, req)
        assert.Equal(t, http.StatusUnauthorized, rec.Code)
    })
}

func TestChoices(t *testing.T) {
    h := NewChoicesHandler()

    req := httptest.NewRequest("GET", "/api/v1/forms/choices", nil)
    rec := httptest.NewRecorder()

    h.Choices(rec, req)

    require.Equal(t, http.StatusOK, rec.Code)

    var body struct {
        Data map[string]json.RawMessage `json:"data"`
    }
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
    for _, key := range []string{"customer_types", "account_types", "echeck_types", "expiration_months", "expiration_years"} {
        assert.Contains(t, body.Data, key)
    }
}

func newFormHandler() *PaymentProfileHandler {
    cfg := &config.Config{}
    cfg.Session.Secret = "session-secret"
    return NewPaymentProfileHandler(nil, nil, cfg)
}

// issueToken runs the token endpoint and returns the token plus the
// session cookies to replay on the submit request.
func issueToken(t *testing.T, h *PaymentProfileHandler) (string, []*http.Cookie) {
    t.Helper()

    req := httptest.NewRequest("GET", "/api/v1/forms/token", nil)
    rec := httptest.NewRecorder()
    h.NewSubmissionToken(rec, req)
    require.Equal(t, http.StatusOK, rec.Code)

    var body struct {
        Data map[string]string `json:"data"`
    }
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
    require.NotEmpty(t, body.Data["submission_token"])

    return body.Data["submission_token"], rec.Result().Cookies()
}

func postCardForm(h *PaymentProfileHandler, payload string, cookies []*http.Cookie) *httptest.ResponseRecorder {
    req := httptest.NewRequest("POST", "/api/v1/accounts/acct-1/payment-profiles/card", strings.NewReader(payload))
    for _, c := range cookies {
        req.AddCookie(c)
    }
    rec := httptest.NewRecorder()
    h.CreateCreditCard(rec, req)
    return rec
}

func TestCardFormRequiresCardPayload(t *testing.T) {
    h := newFormHandler()
    rec := postCardForm(h, `{"submission_token": "x"}`, nil)
    assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCardFormRejectsUnknownToken(t *testing.T) {
    h := newFormHandler()
    rec := postCardForm(h, `{"submission_token": "forged", "credit_card": {}}`, nil)
    assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCardFormValidationErrors(t *testing.T) {
    h := newFormHandler()
    token, cookies := issueToken(t, h)

    rec := postCardForm(h, `{"submission_token": "`+token+`", "credit_card": {"credit_card_number": "1234"}}`, cookies)
    require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

    var body paymentFormResponse
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
    assert.Equal(t, "error", body.Status)
    assert.Contains(t, body.FieldErrors, "credit_card_number")
    require.NotEmpty(t, body.FieldOrder)
    assert.Equal(t, "credit_card_number", body.FieldOrder[0])
}

func TestCardFormTokenBurnsOnUse(t *testing.T) {
    h := newFormHandler()
    token, cookies := issueToken(t, h)

    first := postCardForm(h, `{"submission_token": "`+token+`", "credit_card": {}}`, cookies)
    require.Equal(t, http.StatusUnprocessableEntity, first.Code)

    // The failed validation still burned the token; update the session
    // cookie from the response and replay.
    replayCookies := first.Result().Cookies()
    if len(replayCookies) == 0 {
        replayCookies = cookies
    }
    second := postCardForm(h, `{"submission_token": "`+token+`", "credit_card": {}}`, replayCookies)
    assert.Equal(t, http.StatusConflict, second.Code)
}

func TestECheckFormRequiresPayload(t *testing.T) {
    h := newFormHandler()

    req := httptest.NewRequest("POST", "/api/v1/accounts/acct-1/payment-profiles/echeck", strings.NewReader(`{}`))
    rec := httptest.NewRecorder()
    h.CreateECheck(rec, req)
    assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIsNumeric(t *testing.T) {
    assert.True(t, isNumeric("28821903"))
    assert.False(t, isNumeric(""))
    assert.False(t, isNumeric("E00039"))
    assert.False(t, isNumeric("123 "))
}
