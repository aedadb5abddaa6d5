package handlers

import (
    "encoding/json"
    "errors"
    "io"
    "log"
    "net/http"

    "github.com/gorilla/mux"

    "payment-authorizenet-api/database"
    "payment-authorizenet-api/models"
    "payment-authorizenet-api/queue"
    "payment-authorizenet-api/services/payment"
    "payment-authorizenet-api/services/payment/authorizenet"
    "payment-authorizenet-api/utils"
)

type CustomerProfileHandler struct {
    db             *database.Connection
    paymentService *payment.Service
    jobQueue       *queue.Queue
}

func NewCustomerProfileHandler(db *database.Connection, ps *payment.Service, q *queue.Queue) *CustomerProfileHandler {
    return &CustomerProfileHandler{
        db:             db,
        paymentService: ps,
        jobQueue:       q,
    }
}

func (h *CustomerProfileHandler) profileFor(w http.ResponseWriter, r *http.Request) (*payment.CustomerProfile, *database.Account, bool) {
    reference := mux.Vars(r)["reference"]

    account, err := h.db.GetAccountByReference(r.Context(), reference)
    if err != nil {
        utils.SendErrorResponse(w, http.StatusNotFound, "Account not found")
        return nil, nil, false
    }

    profile, err := h.paymentService.Profile(account)
    if err != nil {
        log.Printf("Error building customer profile for %s: %v", reference, err)
        utils.SendErrorResponse(w, http.StatusInternalServerError, "Failed to initialize payment profile")
        return nil, nil, false
    }

    return profile, account, true
}

type createProfileRequest struct {
    Email string `json:"email"`
}

// CreateProfile registers the account with the gateway. The email defaults
// to the account's stored address.
func (h *CustomerProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
    profile, account, ok := h.profileFor(w, r)
    if !ok {
        return
    }

    // An empty body is fine; the account email is used then.
    var req createProfileRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
        utils.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
        return
    }
    if req.Email == "" {
        req.Email = account.Email
    }

    if err := profile.CreateCustomerProfile(r.Context(), req.Email); err != nil {
        h.sendProfileError(w, account.ReferenceID, "create customer profile", err)
        return
    }

    utils.SendJSONResponse(w, http.StatusCreated, models.APIResponse{
        Status: "success",
        Data: map[string]interface{}{
            "customer_profile_id": account.CustomerProfileID(),
        },
    })
}

// GetProfile fetches the gateway-side profile with its stored payment
// methods.
func (h *CustomerProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
    profile, account, ok := h.profileFor(w, r)
    if !ok {
        return
    }

    info, err := profile.GetCustomerProfile(r.Context())
    if err != nil {
        h.sendProfileError(w, account.ReferenceID, "get customer profile", err)
        return
    }

    utils.SendSuccessResponse(w, models.APIResponse{
        Status: "success",
        Data:   info,
    })
}

// DeleteProfile removes the gateway-side profile. With ?async=true the
// deletion happens in the background.
func (h *CustomerProfileHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
    profile, account, ok := h.profileFor(w, r)
    if !ok {
        return
    }

    if r.URL.Query().Get("async") == "true" {
        err := h.jobQueue.Enqueue(r.Context(), queue.JobTypeDeleteProfile, map[string]interface{}{
            "account_reference": account.ReferenceID,
        })
        if err != nil {
            log.Printf("Error enqueueing profile deletion for %s: %v", account.ReferenceID, err)
            utils.SendErrorResponse(w, http.StatusInternalServerError, "Failed to schedule deletion")
            return
        }

        utils.SendJSONResponse(w, http.StatusAccepted, models.APIResponse{
            Status:  "success",
            Message: "Profile deletion scheduled",
        })
        return
    }

    if err := profile.DeleteCustomerProfile(r.Context()); err != nil {
        h.sendProfileError(w, account.ReferenceID, "delete customer profile", err)
        return
    }

    utils.SendSuccessResponse(w, models.APIResponse{
        Status:  "success",
        Message: "Customer profile deleted",
    })
}

// DeletePaymentProfile removes a single stored payment method.
func (h *CustomerProfileHandler) DeletePaymentProfile(w http.ResponseWriter, r *http.Request) {
    profile, account, ok := h.profileFor(w, r)
    if !ok {
        return
    }

    paymentProfileID := mux.Vars(r)["paymentProfileID"]

    if err := profile.DeleteCustomerPaymentProfile(r.Context(), paymentProfileID); err != nil {
        h.sendProfileError(w, account.ReferenceID, "delete payment profile", err)
        return
    }

    utils.SendSuccessResponse(w, models.APIResponse{
        Status:  "success",
        Message: "Payment profile deleted",
    })
}

func (h *CustomerProfileHandler) sendProfileError(w http.ResponseWriter, reference, op string, err error) {
    log.Printf("Error on %s for account %s: %v", op, reference, err)

    if errors.Is(err, payment.ErrValidation) {
        utils.SendErrorResponse(w, http.StatusBadRequest, err.Error())
        return
    }
    if errors.Is(err, authorizenet.ErrProfileNotFound) {
        utils.SendErrorResponse(w, http.StatusNotFound, "Customer profile not found")
        return
    }
    if ge, ok := authorizenet.IsGatewayError(err); ok {
        utils.SendErrorResponse(w, http.StatusBadGateway, ge.Error())
        return
    }

    utils.SendErrorResponse(w, http.StatusInternalServerError, "Payment gateway request failed")
}
