package authorizenet

import (
    "context"
    "log"
    "strconv"
    "time"

    "payment-authorizenet-api/models"
)

// ChargeCustomerProfile issues an auth+capture transaction against a
// stored payment profile. Gateway-level declines are not errors here: the
// flattened response carries them and the caller classifies the outcome.
// A nil response with a nil error means the gateway answered without a
// transaction payload.
func (c *Client) ChargeCustomerProfile(ctx context.Context, customerProfileID, paymentProfileID, amount, refID string) (*models.TransactionResponse, error) {
    startTime := time.Now()

    request := createTransactionRequestWrapper{
        CreateTransactionRequest: createTransactionRequest{
            MerchantAuthentication: c.merchantAuthentication(),
            RefID:                  refID,
            TransactionRequest: transactionRequestType{
                TransactionType: "authCaptureTransaction",
                Amount:          amount,
                Profile: &customerProfilePaymentType{
                    CustomerProfileID: customerProfileID,
                    PaymentProfile:    profileRefType{PaymentProfileID: paymentProfileID},
                },
            },
        },
    }

    var response createTransactionResponse
    if err := c.post(ctx, request, &response); err != nil {
        return nil, err
    }

    log.Printf("Charge response received in %v for profile %s/%s",
        time.Since(startTime), customerProfileID, paymentProfileID)

    return mapTransactionResponse(response.TransactionResponse), nil
}

// mapTransactionResponse flattens the gateway transaction payload onto the
// domain shape. Absent fields keep their zero value.
func mapTransactionResponse(tr *transactionResponseType) *models.TransactionResponse {
    if tr == nil {
        return nil
    }

    resp := &models.TransactionResponse{
        AuthCode:               tr.AuthCode,
        AVSResultCode:          tr.AVSResultCode,
        CVVResultCode:          tr.CVVResultCode,
        CAVVResultCode:         tr.CAVVResultCode,
        TransactionID:          tr.TransID,
        ReferenceTransactionID: tr.RefTransID,
        TransactionHash:        tr.TransHash,
        TestRequest:            tr.TestRequest,
        AccountNumber:          tr.AccountNumber,
        AccountType:            tr.AccountType,
        TransactionHashSHA2:    tr.TransHashSha2,
    }
    resp.ResponseCode, _ = strconv.Atoi(tr.ResponseCode)

    for _, e := range tr.Errors {
        resp.Errors = append(resp.Errors, models.TransactionError{
            ErrorCode: e.ErrorCode,
            ErrorText: e.ErrorText,
        })
    }
    if tr.Profile != nil {
        resp.Profile = &models.TransactionProfile{
            CustomerProfileID:        tr.Profile.CustomerProfileID,
            CustomerPaymentProfileID: tr.Profile.CustomerPaymentProfileID,
        }
    }

    return resp
}
