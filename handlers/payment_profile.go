package handlers

import (
    "encoding/json"
    "log"
    "net/http"
    "time"

    "github.com/gorilla/mux"
    "github.com/gorilla/sessions"

    "payment-authorizenet-api/config"
    "payment-authorizenet-api/database"
    "payment-authorizenet-api/forms"
    "payment-authorizenet-api/models"
    "payment-authorizenet-api/services/payment"
    "payment-authorizenet-api/utils"
)

// PaymentProfileHandler serves the card and eCheck entry forms. A cookie
// session carries a one-shot submission token so a double-click cannot
// store the same payment method twice.
type PaymentProfileHandler struct {
    db             *database.Connection
    paymentService *payment.Service
    store          *sessions.CookieStore
}

func NewPaymentProfileHandler(db *database.Connection, ps *payment.Service, cfg *config.Config) *PaymentProfileHandler {
    store := sessions.NewCookieStore([]byte(cfg.Session.Secret))
    store.Options = &sessions.Options{
        Path:     "/",
        MaxAge:   1800,
        Secure:   true,
        HttpOnly: true,
        SameSite: http.SameSiteLaxMode,
    }
    return &PaymentProfileHandler{db: db, paymentService: ps, store: store}
}

const sessionName = "payment-form-session"

type paymentFormRequest struct {
    SubmissionToken string `json:"submission_token"`

    CreditCard *forms.CreditCardForm `json:"credit_card,omitempty"`
    ECheck     *forms.ECheckForm     `json:"echeck,omitempty"`
}

type paymentFormResponse struct {
    Status           string            `json:"status"`
    PaymentProfileID string            `json:"payment_profile_id,omitempty"`
    GatewayMessage   string            `json:"gateway_message,omitempty"`
    FieldErrors      forms.FieldErrors `json:"field_errors,omitempty"`
    FieldOrder       []string          `json:"field_order,omitempty"`
}

// NewSubmissionToken hands out the token the form must echo back on
// submit.
func (h *PaymentProfileHandler) NewSubmissionToken(w http.ResponseWriter, r *http.Request) {
    session, _ := h.store.Get(r, sessionName)

    token := utils.GenerateRandomString(32)
    session.Values["submission_token"] = token

    if err := session.Save(r, w); err != nil {
        log.Printf("Error saving session: %v", err)
        utils.SendErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
        return
    }

    utils.SendSuccessResponse(w, models.APIResponse{
        Status: "success",
        Data:   map[string]string{"submission_token": token},
    })
}

// consumeSubmissionToken checks and burns the one-shot token. A missing or
// reused token fails the check.
func (h *PaymentProfileHandler) consumeSubmissionToken(w http.ResponseWriter, r *http.Request, presented string) bool {
    session, _ := h.store.Get(r, sessionName)

    stored, _ := session.Values["submission_token"].(string)
    if stored == "" || presented == "" || stored != presented {
        return false
    }

    delete(session.Values, "submission_token")
    if err := session.Save(r, w); err != nil {
        log.Printf("Error clearing submission token: %v", err)
    }
    return true
}

func (h *PaymentProfileHandler) profileFor(w http.ResponseWriter, r *http.Request) (*payment.CustomerProfile, bool) {
    reference := mux.Vars(r)["reference"]

    account, err := h.db.GetAccountByReference(r.Context(), reference)
    if err != nil {
        utils.SendErrorResponse(w, http.StatusNotFound, "Account not found")
        return nil, false
    }

    profile, err := h.paymentService.Profile(account)
    if err != nil {
        log.Printf("Error building customer profile for %s: %v", reference, err)
        utils.SendErrorResponse(w, http.StatusInternalServerError, "Failed to initialize payment profile")
        return nil, false
    }

    return profile, true
}

// CreateCreditCard validates the card form and stores a new credit card
// payment profile.
func (h *PaymentProfileHandler) CreateCreditCard(w http.ResponseWriter, r *http.Request) {
    h.handleCardForm(w, r, "")
}

// UpdateCreditCard validates the card form and replaces an existing
// payment profile.
func (h *PaymentProfileHandler) UpdateCreditCard(w http.ResponseWriter, r *http.Request) {
    h.handleCardForm(w, r, mux.Vars(r)["paymentProfileID"])
}

func (h *PaymentProfileHandler) handleCardForm(w http.ResponseWriter, r *http.Request, paymentProfileID string) {
    var req paymentFormRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CreditCard == nil {
        utils.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body: credit_card is required")
        return
    }

    if !h.consumeSubmissionToken(w, r, req.SubmissionToken) {
        utils.SendErrorResponse(w, http.StatusConflict, "Invalid or already used submission token")
        return
    }

    form := req.CreditCard
    if fe := form.Validate(time.Now()); fe.HasErrors() {
        utils.SendJSONResponse(w, http.StatusUnprocessableEntity, paymentFormResponse{
            Status:      "error",
            FieldErrors: fe,
            FieldOrder:  form.FieldOrder(),
        })
        return
    }

    profile, ok := h.profileFor(w, r)
    if !ok {
        return
    }

    var result string
    var err error
    if paymentProfileID == "" {
        result, err = form.CreatePaymentProfile(r.Context(), profile)
    } else {
        result, err = form.UpdatePaymentProfile(r.Context(), profile, paymentProfileID)
    }

    h.sendFormResult(w, result, err)
}

// CreateECheck validates the eCheck form and stores a new bank account
// payment profile.
func (h *PaymentProfileHandler) CreateECheck(w http.ResponseWriter, r *http.Request) {
    h.handleECheckForm(w, r, "")
}

// UpdateECheck validates the eCheck form and replaces an existing payment
// profile.
func (h *PaymentProfileHandler) UpdateECheck(w http.ResponseWriter, r *http.Request) {
    h.handleECheckForm(w, r, mux.Vars(r)["paymentProfileID"])
}

func (h *PaymentProfileHandler) handleECheckForm(w http.ResponseWriter, r *http.Request, paymentProfileID string) {
    var req paymentFormRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ECheck == nil {
        utils.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body: echeck is required")
        return
    }

    if !h.consumeSubmissionToken(w, r, req.SubmissionToken) {
        utils.SendErrorResponse(w, http.StatusConflict, "Invalid or already used submission token")
        return
    }

    form := req.ECheck
    if fe := form.Validate(); fe.HasErrors() {
        utils.SendJSONResponse(w, http.StatusUnprocessableEntity, paymentFormResponse{
            Status:      "error",
            FieldErrors: fe,
            FieldOrder:  form.FieldOrder(),
        })
        return
    }

    profile, ok := h.profileFor(w, r)
    if !ok {
        return
    }

    var result string
    var err error
    if paymentProfileID == "" {
        result, err = form.CreatePaymentProfile(r.Context(), profile)
    } else {
        result, err = form.UpdatePaymentProfile(r.Context(), profile, paymentProfileID)
    }

    h.sendFormResult(w, result, err)
}

// sendFormResult maps the forms' return convention onto HTTP: a numeric
// profile ID means success, any other string is the gateway's rejection
// message, and an error is a local failure.
func (h *PaymentProfileHandler) sendFormResult(w http.ResponseWriter, result string, err error) {
    if err != nil {
        log.Printf("Error processing payment form: %v", err)
        utils.SendErrorResponse(w, http.StatusInternalServerError, "Failed to process payment form")
        return
    }

    if !isNumeric(result) {
        utils.SendJSONResponse(w, http.StatusBadGateway, paymentFormResponse{
            Status:         "error",
            GatewayMessage: result,
        })
        return
    }

    utils.SendJSONResponse(w, http.StatusCreated, paymentFormResponse{
        Status:           "success",
        PaymentProfileID: result,
    })
}

func isNumeric(s string) bool {
    if s == "" {
        return false
    }
    for _, r := range s {
        if r < '0' || r > '9' {
            return false
        }
    }
    return true
}
