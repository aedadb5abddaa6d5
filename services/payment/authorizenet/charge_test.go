package authorizenet

import (
    "context"
    "encoding/json"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestChargeCustomerProfile(t *testing.T) {
    srv := fakeGateway(t, func(body map[string]json.RawMessage) string {
        raw, ok := body["createTransactionRequest"]
        require.True(t, ok)

        var req createTransactionRequest
        require.NoError(t, json.Unmarshal(raw, &req))
        assert.Equal(t, "authCaptureTransaction", req.TransactionRequest.TransactionType)
        assert.Equal(t, "49.95", req.TransactionRequest.Amount)
        require.NotNil(t, req.TransactionRequest.Profile)
        assert.Equal(t, "1512977809", req.TransactionRequest.Profile.CustomerProfileID)
        assert.Equal(t, "28821903", req.TransactionRequest.Profile.PaymentProfile.PaymentProfileID)
        assert.Equal(t, "order-42", req.RefID)

        return `{
            "transactionResponse": {
                "responseCode": "1",
                "authCode": "HH5414",
                "avsResultCode": "Y",
                "cvvResultCode": "P",
                "transId": "2149186848",
                "accountNumber": "XXXX1111",
                "accountType": "Visa",
                "profile": {"customerProfileId": "1512977809", "customerPaymentProfileId": "28821903"}
            },
            ` + okMessages() + `}`
    })
    defer srv.Close()

    client := NewClientWithEndpoint("login", "key", srv.URL)

    resp, err := client.ChargeCustomerProfile(context.Background(), "1512977809", "28821903", "49.95", "order-42")
    require.NoError(t, err)
    require.NotNil(t, resp)

    assert.Equal(t, 1, resp.ResponseCode)
    assert.Equal(t, "HH5414", resp.AuthCode)
    assert.Equal(t, "2149186848", resp.TransactionID)
    assert.Equal(t, "XXXX1111", resp.AccountNumber)
    require.NotNil(t, resp.Profile)
    assert.Equal(t, "28821903", resp.Profile.CustomerPaymentProfileID)
    assert.Empty(t, resp.Errors)
}

func TestChargeCustomerProfileDeclined(t *testing.T) {
    srv := fakeGateway(t, func(map[string]json.RawMessage) string {
        return `{
            "transactionResponse": {
                "responseCode": "2",
                "transId": "0",
                "errors": [{"errorCode": "2", "errorText": "This transaction has been declined."}]
            },
            "messages": {"resultCode": "Error", "message": [{"code": "E00027", "text": "The transaction was unsuccessful."}]}
        }`
    })
    defer srv.Close()

    client := NewClientWithEndpoint("login", "key", srv.URL)

    resp, err := client.ChargeCustomerProfile(context.Background(), "1512977809", "28821903", "49.95", "")
    require.NoError(t, err)
    require.NotNil(t, resp)

    assert.Equal(t, 2, resp.ResponseCode)
    require.Len(t, resp.Errors, 1)
    assert.Equal(t, "This transaction has been declined.", resp.Errors[0].ErrorText)
}

func TestChargeCustomerProfileNoTransactionPayload(t *testing.T) {
    srv := fakeGateway(t, func(map[string]json.RawMessage) string {
        return `{"messages": {"resultCode": "Error", "message": [{"code": "E00040", "text": "The record cannot be found."}]}}`
    })
    defer srv.Close()

    client := NewClientWithEndpoint("login", "key", srv.URL)

    resp, err := client.ChargeCustomerProfile(context.Background(), "1512977809", "28821903", "49.95", "")
    require.NoError(t, err)
    assert.Nil(t, resp)
}

func TestMapTransactionResponseNil(t *testing.T) {
    assert.Nil(t, mapTransactionResponse(nil))
}
