package models

import "fmt"

// CreditCardDetails holds the masked card data the gateway returns for a
// stored credit card profile.
type CreditCardDetails struct {
    CardNumber     string `json:"card_number"`
    ExpirationDate string `json:"expiration_date"`
    CardType       string `json:"card_type"`
    IssuerNumber   string `json:"issuer_number,omitempty"`
}

// BankAccountDetails holds the masked bank data the gateway returns for a
// stored eCheck profile.
type BankAccountDetails struct {
    AccountType   string `json:"account_type"`
    RoutingNumber string `json:"routing_number"`
    AccountNumber string `json:"account_number"`
    NameOnAccount string `json:"name_on_account"`
    ECheckType    string `json:"echeck_type"`
    BankName      string `json:"bank_name,omitempty"`
}

// PaymentProfile is a single stored payment method attached to a customer
// profile. Method tags which branch is populated; the other branch is nil.
type PaymentProfile struct {
    CustomerPaymentProfileID string              `json:"customer_payment_profile_id"`
    Method                   PaymentMethodKind   `json:"method"`
    CreditCard               *CreditCardDetails  `json:"credit_card,omitempty"`
    BankAccount              *BankAccountDetails `json:"bank_account,omitempty"`
}

func (pp PaymentProfile) String() string {
    return fmt.Sprintf("%s: %s", pp.CustomerPaymentProfileID, pp.Method)
}

// CustomerProfileInfo is the retrieved view of a CIM profile: the payment
// profile list in gateway order plus the same entries keyed by payment
// profile ID.
type CustomerProfileInfo struct {
    CustomerProfileID string                    `json:"customer_profile_id"`
    Email             string                    `json:"email,omitempty"`
    Description       string                    `json:"description,omitempty"`
    PaymentProfiles   []PaymentProfile          `json:"payment_profiles"`
    PaymentProfileMap map[string]PaymentProfile `json:"-"`
}
