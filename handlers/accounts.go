package handlers

import (
    "encoding/json"
    "log"
    "net/http"

    "github.com/gorilla/mux"

    "payment-authorizenet-api/database"
    "payment-authorizenet-api/models"
    "payment-authorizenet-api/utils"
)

type AccountHandler struct {
    db *database.Connection
}

func NewAccountHandler(db *database.Connection) *AccountHandler {
    return &AccountHandler{db: db}
}

type createAccountRequest struct {
    Email       string `json:"email"`
    FirstName   string `json:"first_name"`
    LastName    string `json:"last_name"`
    CompanyName string `json:"company_name"`
    Address     string `json:"address"`
    Address2    string `json:"address2"`
    City        string `json:"city"`
    State       string `json:"state"`
    ZipCode     string `json:"zip_code"`
    Phone       string `json:"phone"`
}

func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
    var req createAccountRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        utils.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
        return
    }

    if req.Email == "" {
        utils.SendErrorResponse(w, http.StatusBadRequest, "email is required")
        return
    }
    if req.FirstName == "" && req.CompanyName == "" {
        utils.SendErrorResponse(w, http.StatusBadRequest, "either first_name or company_name is required")
        return
    }

    account := &database.Account{
        Email:       req.Email,
        FirstName:   req.FirstName,
        LastName:    req.LastName,
        CompanyName: req.CompanyName,
        Address:     req.Address,
        Address2:    req.Address2,
        City:        req.City,
        State:       req.State,
        ZipCode:     req.ZipCode,
        Phone:       req.Phone,
    }

    if err := h.db.CreateAccount(r.Context(), account); err != nil {
        log.Printf("Error creating billing account: %v", err)
        utils.SendErrorResponse(w, http.StatusInternalServerError, "Failed to create account")
        return
    }

    utils.SendJSONResponse(w, http.StatusCreated, models.APIResponse{
        Status: "success",
        Data:   account,
    })
}

func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
    reference := mux.Vars(r)["reference"]

    account, err := h.db.GetAccountByReference(r.Context(), reference)
    if err != nil {
        utils.SendErrorResponse(w, http.StatusNotFound, "Account not found")
        return
    }

    utils.SendSuccessResponse(w, models.APIResponse{
        Status: "success",
        Data:   account,
    })
}
