package handlers

import (
    "encoding/json"
    "errors"
    "log"
    "net/http"
    "strconv"

    "github.com/gorilla/mux"

    "payment-authorizenet-api/database"
    "payment-authorizenet-api/models"
    "payment-authorizenet-api/queue"
    "payment-authorizenet-api/services/payment"
    "payment-authorizenet-api/utils"
)

type ChargeHandler struct {
    db             *database.Connection
    paymentService *payment.Service
    jobQueue       *queue.Queue
}

func NewChargeHandler(db *database.Connection, ps *payment.Service, q *queue.Queue) *ChargeHandler {
    return &ChargeHandler{
        db:             db,
        paymentService: ps,
        jobQueue:       q,
    }
}

type chargeRequest struct {
    // PaymentProfileID may be empty, in which case the account's default
    // payment profile is charged.
    PaymentProfileID string `json:"payment_profile_id"`
    Amount           string `json:"amount"`
    RefID            string `json:"ref_id"`
    Async            bool   `json:"async"`
}

// Charge bills a stored payment profile. With async=true the charge is
// queued and processed by the worker; the receipt email follows an
// approved charge either way.
func (h *ChargeHandler) Charge(w http.ResponseWriter, r *http.Request) {
    reference := mux.Vars(r)["reference"]

    var req chargeRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        utils.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
        return
    }

    amount, err := utils.ParseAmount(req.Amount)
    if err != nil {
        utils.SendErrorResponse(w, http.StatusBadRequest, err.Error())
        return
    }

    account, err := h.db.GetAccountByReference(r.Context(), reference)
    if err != nil {
        utils.SendErrorResponse(w, http.StatusNotFound, "Account not found")
        return
    }

    if req.PaymentProfileID == "" {
        if account.DefaultPaymentProfileID() == 0 {
            utils.SendErrorResponse(w, http.StatusBadRequest, "No payment_profile_id given and no default payment profile on the account")
            return
        }
        req.PaymentProfileID = strconv.FormatInt(account.DefaultPaymentProfileID(), 10)
    }

    if req.RefID == "" {
        req.RefID = utils.GenerateReferenceID()
    }

    if req.Async {
        err := h.jobQueue.Enqueue(r.Context(), queue.JobTypeChargeProfile, map[string]interface{}{
            "account_reference":  account.ReferenceID,
            "payment_profile_id": req.PaymentProfileID,
            "amount":             utils.FormatAmount(amount),
            "ref_id":             req.RefID,
        })
        if err != nil {
            log.Printf("Error enqueueing charge for %s: %v", reference, err)
            utils.SendErrorResponse(w, http.StatusInternalServerError, "Failed to schedule charge")
            return
        }

        utils.SendJSONResponse(w, http.StatusAccepted, models.APIResponse{
            Status:  "success",
            Message: "Charge scheduled",
            Data:    map[string]string{"ref_id": req.RefID},
        })
        return
    }

    profile, err := h.paymentService.Profile(account)
    if err != nil {
        log.Printf("Error building customer profile for %s: %v", reference, err)
        utils.SendErrorResponse(w, http.StatusInternalServerError, "Failed to initialize payment profile")
        return
    }

    txn, err := profile.ChargeCustomerProfile(r.Context(), req.PaymentProfileID, amount, req.RefID)
    if err != nil {
        log.Printf("Error charging account %s: %v", reference, err)
        if errors.Is(err, payment.ErrValidation) {
            utils.SendErrorResponse(w, http.StatusBadRequest, err.Error())
            return
        }
        utils.SendErrorResponse(w, http.StatusInternalServerError, "Charge could not be processed")
        return
    }

    resp := models.ChargeResponse{
        Success: txn.Approved(),
        Result:  string(txn.Result),
        Error:   txn.ErrorText,
    }
    if txn.Response != nil {
        resp.TransactionID = txn.Response.TransactionID
        if len(txn.Response.Errors) > 0 {
            resp.Message = txn.Response.Errors[0].ErrorText
        }
    }

    status := http.StatusOK
    if !txn.Approved() {
        status = http.StatusPaymentRequired
    }

    utils.SendJSONResponse(w, status, resp)
}
