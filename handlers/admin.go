package handlers

import (
    "log"
    "net/http"
    "strconv"

    "github.com/gorilla/mux"

    "payment-authorizenet-api/database"
    "payment-authorizenet-api/models"
    "payment-authorizenet-api/queue"
    "payment-authorizenet-api/utils"
)

// AdminHandler serves the JWT-protected operational endpoints.
type AdminHandler struct {
    db       *database.Connection
    jobQueue *queue.Queue
}

func NewAdminHandler(db *database.Connection, q *queue.Queue) *AdminHandler {
    return &AdminHandler{db: db, jobQueue: q}
}

func (h *AdminHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
    limit := 50
    offset := 0

    if v := r.URL.Query().Get("limit"); v != "" {
        if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
            limit = n
        }
    }
    if v := r.URL.Query().Get("offset"); v != "" {
        if n, err := strconv.Atoi(v); err == nil && n >= 0 {
            offset = n
        }
    }

    accounts, err := h.db.ListAccounts(r.Context(), limit, offset)
    if err != nil {
        log.Printf("Error listing accounts: %v", err)
        utils.SendErrorResponse(w, http.StatusInternalServerError, "Failed to list accounts")
        return
    }

    total, err := h.db.CountAccounts(r.Context())
    if err != nil {
        log.Printf("Error counting accounts: %v", err)
        utils.SendErrorResponse(w, http.StatusInternalServerError, "Failed to count accounts")
        return
    }

    utils.SendSuccessResponse(w, models.APIResponse{
        Status: "success",
        Data: map[string]interface{}{
            "accounts": accounts,
            "total":    total,
            "limit":    limit,
            "offset":   offset,
        },
    })
}

func (h *AdminHandler) AccountStats(w http.ResponseWriter, r *http.Request) {
    stats, err := h.db.GetAccountStats(r.Context())
    if err != nil {
        log.Printf("Error getting account stats: %v", err)
        utils.SendErrorResponse(w, http.StatusInternalServerError, "Failed to get account stats")
        return
    }

    utils.SendSuccessResponse(w, models.APIResponse{
        Status: "success",
        Data:   stats,
    })
}

// RetryJob requeues a failed background job.
func (h *AdminHandler) RetryJob(w http.ResponseWriter, r *http.Request) {
    jobID := mux.Vars(r)["jobID"]

    if err := h.jobQueue.RetryJob(r.Context(), jobID); err != nil {
        log.Printf("Error retrying job %s: %v", jobID, err)
        utils.SendErrorResponse(w, http.StatusNotFound, err.Error())
        return
    }

    utils.SendSuccessResponse(w, models.APIResponse{
        Status:  "success",
        Message: "Job requeued",
    })
}
