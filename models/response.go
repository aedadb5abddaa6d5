package models

type APIResponse struct {
    Status  string      `json:"status"`
    Message string      `json:"message"`
    Data    interface{} `json:"data,omitempty"`
}

// ChargeResponse is the handler-level wrapper around a charge attempt.
type ChargeResponse struct {
    Success       bool   `json:"success"`
    Result        string `json:"result,omitempty"`
    TransactionID string `json:"transaction_id,omitempty"`
    Message       string `json:"message,omitempty"`
    Error         string `json:"error,omitempty"`
}
