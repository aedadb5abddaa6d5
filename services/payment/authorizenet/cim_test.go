package authorizenet

import (
    "context"
    "encoding/json"
    "errors"
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "payment-authorizenet-api/models"
)

// fakeGateway answers every operation with the configured JSON body,
// prefixed with the UTF-8 BOM the real endpoint emits.
func fakeGateway(t *testing.T, handler func(body map[string]json.RawMessage) string) *httptest.Server {
    t.Helper()
    return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        var body map[string]json.RawMessage
        require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

        w.Header().Set("Content-Type", "application/json")
        w.Write([]byte("\ufeff" + handler(body)))
    }))
}

func okMessages() string {
    return `"messages": {"resultCode": "Ok", "message": [{"code": "I00001", "text": "Successful."}]}`
}

func TestCreateCustomerProfile(t *testing.T) {
    srv := fakeGateway(t, func(body map[string]json.RawMessage) string {
        _, ok := body["createCustomerProfileRequest"]
        require.True(t, ok, "wrong operation sent")
        return `{"customerProfileId": "1512977809", ` + okMessages() + `}`
    })
    defer srv.Close()

    client := NewClientWithEndpoint("login", "key", srv.URL)

    id, err := client.CreateCustomerProfile(context.Background(), "ref-1", "Jane Doe", "jane@example.com")
    require.NoError(t, err)
    assert.Equal(t, "1512977809", id)
}

func TestCreateCustomerProfileDuplicateRecovered(t *testing.T) {
    srv := fakeGateway(t, func(map[string]json.RawMessage) string {
        return `{"customerProfileId": "", "messages": {"resultCode": "Error", "message": [
            {"code": "E00039", "text": "A duplicate record with ID 1512977809 already exists."}]}}`
    })
    defer srv.Close()

    client := NewClientWithEndpoint("login", "key", srv.URL)

    id, err := client.CreateCustomerProfile(context.Background(), "ref-1", "Jane Doe", "jane@example.com")
    require.NoError(t, err)
    assert.Equal(t, "1512977809", id)
}

func TestCreateCustomerProfileDuplicateUnrecognizedMessage(t *testing.T) {
    // Reworded duplicate message must not be recovered from.
    srv := fakeGateway(t, func(map[string]json.RawMessage) string {
        return `{"customerProfileId": "", "messages": {"resultCode": "Error", "message": [
            {"code": "E00039", "text": "Record 1512977809 is already on file."}]}}`
    })
    defer srv.Close()

    client := NewClientWithEndpoint("login", "key", srv.URL)

    _, err := client.CreateCustomerProfile(context.Background(), "ref-1", "Jane Doe", "jane@example.com")
    require.Error(t, err)

    ge, ok := IsGatewayError(err)
    require.True(t, ok)
    assert.Equal(t, "E00039", ge.Code)
}

func TestCreateCustomerProfileGatewayError(t *testing.T) {
    srv := fakeGateway(t, func(map[string]json.RawMessage) string {
        return `{"customerProfileId": "", "messages": {"resultCode": "Error", "message": [
            {"code": "E00003", "text": "The element is invalid."}]}}`
    })
    defer srv.Close()

    client := NewClientWithEndpoint("login", "key", srv.URL)

    _, err := client.CreateCustomerProfile(context.Background(), "ref-1", "Jane Doe", "jane@example.com")
    require.Error(t, err)

    ge, ok := IsGatewayError(err)
    require.True(t, ok)
    assert.Equal(t, "E00003", ge.Code)
    assert.Equal(t, "The element is invalid.", ge.Error())
}

func TestExtractDuplicateProfileID(t *testing.T) {
    tests := []struct {
        name    string
        message string
        wantID  string
        wantOK  bool
    }{
        {
            name:    "standard message",
            message: "A duplicate record with ID 1512977809 already exists.",
            wantID:  "1512977809",
            wantOK:  true,
        },
        {
            name:    "reworded message",
            message: "Duplicate record 1512977809 found.",
            wantOK:  false,
        },
        {
            name:    "wrong digit count",
            message: "A duplicate record with ID 123 already exists.",
            wantOK:  false,
        },
        {
            name:    "no id at all",
            message: "A duplicate record with ID  already exists.",
            wantOK:  false,
        },
    }

    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            id, ok := extractDuplicateProfileID(tt.message)
            assert.Equal(t, tt.wantOK, ok)
            if tt.wantOK {
                assert.Equal(t, tt.wantID, id)
            }
        })
    }
}

func TestCreateCustomerPaymentProfile(t *testing.T) {
    srv := fakeGateway(t, func(body map[string]json.RawMessage) string {
        _, ok := body["createCustomerPaymentProfileRequest"]
        require.True(t, ok)
        return `{"customerPaymentProfileId": "28821903", ` + okMessages() + `}`
    })
    defer srv.Close()

    client := NewClientWithEndpoint("login", "key", srv.URL)

    id, err := client.CreateCustomerPaymentProfile(context.Background(), "1512977809", PaymentProfileParams{
        CustomerType:   "individual",
        BillTo:         BillTo("Jane", "Doe", "", "1 Main St", "Springfield", "IL", "62701", "US", "555-0100"),
        Payment:        NewCreditCardPayment("4111111111111111", "2030-12", "123"),
        ValidationMode: "testMode",
    })
    require.NoError(t, err)
    assert.Equal(t, "28821903", id)
}

func TestUpdateCustomerPaymentProfile(t *testing.T) {
    srv := fakeGateway(t, func(body map[string]json.RawMessage) string {
        raw, ok := body["updateCustomerPaymentProfileRequest"]
        require.True(t, ok)

        var req updateCustomerPaymentProfileRequest
        require.NoError(t, json.Unmarshal(raw, &req))
        assert.Equal(t, "28821903", req.PaymentProfile.CustomerPaymentProfileID)

        return `{` + okMessages() + `}`
    })
    defer srv.Close()

    client := NewClientWithEndpoint("login", "key", srv.URL)

    err := client.UpdateCustomerPaymentProfile(context.Background(), "1512977809", "28821903", PaymentProfileParams{
        Payment: NewBankAccountPayment("checking", "122000661", "123456789", "Jane Doe", "Test Bank"),
    })
    require.NoError(t, err)
}

func TestGetCustomerProfile(t *testing.T) {
    srv := fakeGateway(t, func(map[string]json.RawMessage) string {
        return `{
            "profile": {
                "customerProfileId": "1512977809",
                "email": "jane@example.com",
                "description": "Jane Doe",
                "paymentProfiles": [
                    {
                        "customerPaymentProfileId": "28821903",
                        "payment": {"creditCard": {"cardNumber": "XXXX1111", "expirationDate": "XXXX", "cardType": "Visa"}}
                    },
                    {
                        "customerPaymentProfileId": "28821904",
                        "payment": {"bankAccount": {"accountType": "checking", "routingNumber": "XXXX0661", "accountNumber": "XXXX6789", "nameOnAccount": "Jane Doe"}}
                    }
                ]
            },
            ` + okMessages() + `}`
    })
    defer srv.Close()

    client := NewClientWithEndpoint("login", "key", srv.URL)

    info, err := client.GetCustomerProfile(context.Background(), "1512977809")
    require.NoError(t, err)

    assert.Equal(t, "1512977809", info.CustomerProfileID)
    assert.Equal(t, "jane@example.com", info.Email)
    require.Len(t, info.PaymentProfiles, 2)

    card := info.PaymentProfiles[0]
    assert.Equal(t, models.PaymentMethodCreditCard, card.Method)
    require.NotNil(t, card.CreditCard)
    assert.Equal(t, "XXXX1111", card.CreditCard.CardNumber)
    assert.Nil(t, card.BankAccount)

    bank := info.PaymentProfiles[1]
    assert.Equal(t, models.PaymentMethodBankAccount, bank.Method)
    require.NotNil(t, bank.BankAccount)
    assert.Equal(t, "checking", bank.BankAccount.AccountType)

    require.Len(t, info.PaymentProfileMap, 2)
    assert.Equal(t, card, info.PaymentProfileMap["28821903"])
    assert.Equal(t, bank, info.PaymentProfileMap["28821904"])
}

func TestGetCustomerProfileMalformedPayment(t *testing.T) {
    srv := fakeGateway(t, func(map[string]json.RawMessage) string {
        return `{
            "profile": {
                "customerProfileId": "1512977809",
                "paymentProfiles": [{"customerPaymentProfileId": "28821903", "payment": {}}]
            },
            ` + okMessages() + `}`
    })
    defer srv.Close()

    client := NewClientWithEndpoint("login", "key", srv.URL)

    _, err := client.GetCustomerProfile(context.Background(), "1512977809")
    require.Error(t, err)
    assert.True(t, errors.Is(err, ErrMalformedResponse))
}

func TestGetCustomerProfileMissingMessages(t *testing.T) {
    srv := fakeGateway(t, func(map[string]json.RawMessage) string {
        return `{}`
    })
    defer srv.Close()

    client := NewClientWithEndpoint("login", "key", srv.URL)

    _, err := client.GetCustomerProfile(context.Background(), "1512977809")
    assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestDeleteCustomerProfile(t *testing.T) {
    srv := fakeGateway(t, func(body map[string]json.RawMessage) string {
        _, ok := body["deleteCustomerProfileRequest"]
        require.True(t, ok)
        return `{` + okMessages() + `}`
    })
    defer srv.Close()

    client := NewClientWithEndpoint("login", "key", srv.URL)
    require.NoError(t, client.DeleteCustomerProfile(context.Background(), "1512977809"))
}

func TestDeleteCustomerPaymentProfile(t *testing.T) {
    srv := fakeGateway(t, func(body map[string]json.RawMessage) string {
        raw, ok := body["deleteCustomerPaymentProfileRequest"]
        require.True(t, ok)

        var req deleteCustomerPaymentProfileRequest
        require.NoError(t, json.Unmarshal(raw, &req))
        assert.Equal(t, "28821903", req.CustomerPaymentProfileID)

        return `{` + okMessages() + `}`
    })
    defer srv.Close()

    client := NewClientWithEndpoint("login", "key", srv.URL)
    require.NoError(t, client.DeleteCustomerPaymentProfile(context.Background(), "1512977809", "28821903"))
}

func TestEndpointSelection(t *testing.T) {
    assert.Equal(t, ProductionEndpoint, NewClient("l", "k", "production").Endpoint())
    assert.Equal(t, SandboxEndpoint, NewClient("l", "k", "sandbox").Endpoint())
    assert.Equal(t, SandboxEndpoint, NewClient("l", "k", "Production").Endpoint())
    assert.Equal(t, SandboxEndpoint, NewClient("l", "k", "").Endpoint())
}
