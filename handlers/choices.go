package handlers

import (
    "net/http"
    "time"

    "payment-authorizenet-api/forms"
    "payment-authorizenet-api/models"
    "payment-authorizenet-api/utils"
)

type ChoicesHandler struct{}

func NewChoicesHandler() *ChoicesHandler {
    return &ChoicesHandler{}
}

// Choices exposes the selectable values the payment forms render:
// customer and bank account types, eCheck types, and card expiration
// month/year options.
func (h *ChoicesHandler) Choices(w http.ResponseWriter, r *http.Request) {
    now := time.Now()

    utils.SendSuccessResponse(w, models.APIResponse{
        Status: "success",
        Data: map[string]interface{}{
            "customer_types":    models.CustomerTypeChoices(),
            "account_types":     models.AccountTypeChoices(),
            "echeck_types":      models.ECheckTypeChoices(),
            "expiration_months": forms.ExpirationMonthChoices(),
            "expiration_years":  forms.ExpirationYearChoices(now),
        },
    })
}
