package models

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestCustomerType(t *testing.T) {
    assert.True(t, CustomerTypeIndividual.IsValid())
    assert.True(t, CustomerTypeBusiness.IsValid())
    assert.False(t, CustomerType("person").IsValid())
    assert.False(t, CustomerType("").IsValid())

    assert.Equal(t, "individual, business", CustomerTypeList())

    withAll := CustomerTypeChoicesWithAll()
    assert.Len(t, withAll, 3)
    assert.Equal(t, Choice{Name: "all", Label: "All"}, withAll[2])
}

func TestAccountType(t *testing.T) {
    assert.True(t, AccountTypeChecking.IsValid())
    assert.True(t, AccountTypeSavings.IsValid())
    assert.True(t, AccountTypeBusinessChecking.IsValid())
    assert.False(t, AccountType("offshore").IsValid())

    assert.Equal(t, "checking, savings, businessChecking", AccountTypeList())
}

func TestECheckType(t *testing.T) {
    assert.True(t, ECheckTypeWEB.IsValid())
    assert.False(t, ECheckType("TEL").IsValid())
    assert.Equal(t, "PPD, WEB, CCD", ECheckTypeList())
}

func TestValidationMode(t *testing.T) {
    assert.True(t, ValidationModeTest.IsValid())
    assert.True(t, ValidationModeLive.IsValid())
    assert.False(t, ValidationMode("dryRun").IsValid())
}

func TestPaymentMethodKind(t *testing.T) {
    assert.Equal(t, "Credit Card", PaymentMethodCreditCard.String())
    assert.Equal(t, "Bank Account", PaymentMethodBankAccount.String())
    assert.Equal(t, "Not set", PaymentMethodUnset.String())

    assert.True(t, PaymentMethodCreditCard.IsValid())
    assert.False(t, PaymentMethodUnset.IsValid())
}

func TestServerMode(t *testing.T) {
    assert.True(t, ServerModeSandbox.IsValid())
    assert.True(t, ServerModeProduction.IsValid())
    // Case matters: only the exact value selects production.
    assert.False(t, ServerMode("Production").IsValid())
}
