package payment

import (
    "payment-authorizenet-api/models"
    "payment-authorizenet-api/services/payment/authorizenet"
    "payment-authorizenet-api/services/payment/responsecodes"
)

// Service bundles the gateway client with the response-code source and
// hands out per-account CustomerProfile handles.
type Service struct {
    client *authorizenet.Client
    codes  responsecodes.Source
}

func NewService(apiLoginID, transactionKey, environment string, codes responsecodes.Source) *Service {
    return &Service{
        client: authorizenet.NewClient(apiLoginID, transactionKey, environment),
        codes:  codes,
    }
}

// NewServiceWithClient exists for tests running against a fake gateway.
func NewServiceWithClient(client *authorizenet.Client, codes responsecodes.Source) *Service {
    return &Service{client: client, codes: codes}
}

// Profile binds the gateway operations to one billing account.
func (s *Service) Profile(account models.BillingAccount) (*CustomerProfile, error) {
    return NewCustomerProfile(s.client, s.codes, account)
}
