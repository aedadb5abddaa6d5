package types

// ContactInfo carries the billing contact details attached to a payment
// profile. Either supplied explicitly by the caller or copied from the
// billing account's stored address.
type ContactInfo struct {
    Address string `json:"address"`
    City    string `json:"city"`
    State   string `json:"state"`
    ZipCode string `json:"zip_code"`
    Phone   string `json:"phone"`
}

// CreditCardInput is the caller-supplied credit card detail used when
// creating or updating a payment profile.
type CreditCardInput struct {
    CardNumber     string `json:"card_number"`
    ExpirationDate string `json:"expiration_date"` // YYYY-MM
    CardCode       string `json:"card_code"`
}

// BankAccountInput is the caller-supplied eCheck detail used when creating
// or updating a payment profile.
type BankAccountInput struct {
    AccountType   string `json:"account_type"`
    RoutingNumber string `json:"routing_number"`
    AccountNumber string `json:"account_number"`
    NameOnAccount string `json:"name_on_account"`
    BankName      string `json:"bank_name"`
}
