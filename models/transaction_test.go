package models

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestNewTransactionApproved(t *testing.T) {
    resp := &TransactionResponse{ResponseCode: 1, TransactionID: "2149186848"}

    txn := NewTransaction(resp, 1)

    assert.Equal(t, TransactionApproved, txn.Result)
    assert.True(t, txn.Approved())
    assert.Equal(t, 1, txn.ApprovalCode)
    assert.Same(t, resp, txn.Response)
    assert.Empty(t, txn.ErrorText)
}

func TestNewTransactionFailure(t *testing.T) {
    resp := &TransactionResponse{
        ResponseCode: 2,
        Errors:       []TransactionError{{ErrorCode: "2", ErrorText: "This transaction has been declined."}},
    }

    txn := NewTransaction(resp, 1)

    assert.Equal(t, TransactionFailure, txn.Result)
    assert.False(t, txn.Approved())
    assert.Empty(t, txn.ErrorText)
}

func TestNewTransactionNilResponse(t *testing.T) {
    txn := NewTransaction(nil, 1)

    require.Nil(t, txn.Response)
    assert.Equal(t, NullResponseError, txn.ErrorText)
    assert.False(t, txn.Approved())
    assert.Empty(t, txn.Result)
}

func TestPaymentProfileString(t *testing.T) {
    pp := PaymentProfile{CustomerPaymentProfileID: "28821903", Method: PaymentMethodCreditCard}
    assert.Equal(t, "28821903: Credit Card", pp.String())
}
