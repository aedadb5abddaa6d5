// Package forms collects and validates payment detail entry before it is
// handed to the customer profile operations.
package forms

import (
    "context"
    "errors"
    "fmt"
    "strconv"
    "time"

    "payment-authorizenet-api/models"
    "payment-authorizenet-api/services/payment"
    "payment-authorizenet-api/services/payment/authorizenet"
    "payment-authorizenet-api/types"
)

// ErrNotValidated is returned when a profile-creating method runs on a
// form that has not passed Validate.
var ErrNotValidated = errors.New("create_payment_profile may only be run on validated forms")

// FieldErrors maps field names to their validation failures.
type FieldErrors map[string][]string

func (fe FieldErrors) add(field, message string) {
    if message != "" {
        fe[field] = append(fe[field], message)
    }
}

// HasErrors reports whether any field failed validation.
func (fe FieldErrors) HasErrors() bool { return len(fe) > 0 }

// ContactForm holds the contact and address fields required of any
// payment profile.
type ContactForm struct {
    CustomerType string `json:"customer_type"`
    FirstName    string `json:"first_name"`
    LastName     string `json:"last_name"`
    CompanyName  string `json:"company_name"`
    Address      string `json:"address"`
    City         string `json:"city"`
    State        string `json:"state"`
    ZipCode      string `json:"zip_code"`
    Country      string `json:"country"`
    PhoneNumber  string `json:"phone_number"`

    // DefaultMethod marks the new payment profile as the account default.
    DefaultMethod bool `json:"default_method"`

    validated bool
}

// contactFieldOrder is the shared tail of every form's field order.
var contactFieldOrder = []string{
    "customer_type",
    "first_name",
    "last_name",
    "company_name",
    "address",
    "city",
    "state",
    "zip_code",
    "country",
    "phone_number",
    "default_method",
}

// FieldOrder lists the form fields in presentation order.
func (f *ContactForm) FieldOrder() []string {
    out := make([]string, len(contactFieldOrder))
    copy(out, contactFieldOrder)
    return out
}

// Validate checks the contact fields and records whether the form passed.
func (f *ContactForm) Validate() FieldErrors {
    fe := FieldErrors{}

    if !models.CustomerType(f.CustomerType).IsValid() {
        fe.add("customer_type", fmt.Sprintf("must be one of [%s]", models.CustomerTypeList()))
    }

    f.validateField(fe, "first_name", f.FirstName, Required, MaxLength(MaxFirstNameChars))
    f.validateField(fe, "last_name", f.LastName, Required, MaxLength(MaxLastNameChars))
    f.validateField(fe, "company_name", f.CompanyName, MaxLength(MaxCompanyNameChars))
    f.validateField(fe, "address", f.Address, Required, MaxLength(MaxAddressChars))
    f.validateField(fe, "city", f.City, Required, MaxLength(MaxCityChars))
    f.validateField(fe, "state", f.State, Required, MaxLength(MaxStateChars))
    f.validateField(fe, "zip_code", f.ZipCode, Required, MaxLength(MaxZipCodeChars))
    f.validateField(fe, "country", f.Country, MaxLength(MaxCountryChars))
    f.validateField(fe, "phone_number", f.PhoneNumber, Required, MaxLength(MaxPhoneNumberChars))

    f.validated = !fe.HasErrors()
    return fe
}

func (f *ContactForm) validateField(fe FieldErrors, name, value string, validators ...Validator) {
    for _, v := range validators {
        if msg := v(value); msg != "" {
            fe.add(name, msg)
            return
        }
    }
}

// contactInfo stages the contact dictionary for the client call. The form
// must have been validated first.
func (f *ContactForm) contactInfo() (types.ContactInfo, error) {
    if !f.validated {
        return types.ContactInfo{}, ErrNotValidated
    }
    return types.ContactInfo{
        Address: f.Address,
        City:    f.City,
        State:   f.State,
        ZipCode: f.ZipCode,
        Phone:   f.PhoneNumber,
    }, nil
}

// profileOptions builds the shared options of a payment profile call from
// the validated form fields.
func (f *ContactForm) profileOptions() (payment.ProfileOptions, error) {
    contact, err := f.contactInfo()
    if err != nil {
        return payment.ProfileOptions{}, err
    }
    return payment.ProfileOptions{
        CustomerType: models.CustomerType(f.CustomerType),
        FirstName:    f.FirstName,
        LastName:     f.LastName,
        CompanyName:  f.CompanyName,
        Contact:      &contact,
        SetAsDefault: f.DefaultMethod,
    }, nil
}

// CreditCardForm extends ContactForm with the card entry fields.
type CreditCardForm struct {
    ContactForm

    CreditCardNumber string `json:"credit_card_number"`
    ExpirationMonth  string `json:"expiration_month"` // two digits, "01".."12"
    ExpirationYear   string `json:"expiration_year"`
    CardCode         string `json:"card_code"`
}

// FieldOrder puts the card fields in front of the contact fields.
func (f *CreditCardForm) FieldOrder() []string {
    front := []string{"credit_card_number", "expiration_month", "expiration_year", "card_code"}
    return append(front, contactFieldOrder...)
}

// Validate runs the contact checks plus the card number, code and expiry
// checks. The expiration must be the current month/year or later as of
// now.
func (f *CreditCardForm) Validate(now time.Time) FieldErrors {
    fe := f.ContactForm.Validate()

    f.validateField(fe, "credit_card_number", f.CreditCardNumber,
        LengthRange(MinCreditCardDigits, MaxCreditCardDigits), IsInteger, Luhn)
    f.validateField(fe, "card_code", f.CardCode,
        LengthRange(MinCardCodeDigits, MaxCardCodeDigits), IsInteger)

    month, year, ok := f.expiration()
    if !ok {
        fe.add("expiration_month", "expiration month and year must be numeric")
    } else {
        currentYear := now.Year()
        currentMonth := int(now.Month())

        if year < currentYear {
            fe.add("expiration_year", fmt.Sprintf("the expiration year must be >= %d", currentYear))
        }
        if year == currentYear && currentMonth > month {
            fe.add("expiration_month", fmt.Sprintf(
                "the card is past its expiration month. The card expired in %s, but it's currently %s",
                time.Month(month), time.Month(currentMonth)))
        }
        if month < 1 || month > 12 {
            fe.add("expiration_month", "expiration month must be between 01 and 12")
        }
    }

    f.validated = !fe.HasErrors()
    return fe
}

func (f *CreditCardForm) expiration() (month, year int, ok bool) {
    var err error
    if month, err = parseInt(f.ExpirationMonth); err != nil {
        return 0, 0, false
    }
    if year, err = parseInt(f.ExpirationYear); err != nil {
        return 0, 0, false
    }
    return month, year, true
}

// CreatePaymentProfile creates a credit card payment profile through the
// bound customer profile. The returned string is either the new payment
// profile ID or, when the gateway rejected the request, the vendor's own
// error message; errors are reserved for local failures.
func (f *CreditCardForm) CreatePaymentProfile(ctx context.Context, cp *payment.CustomerProfile) (string, error) {
    opts, err := f.profileOptions()
    if err != nil {
        return "", err
    }

    card := types.CreditCardInput{
        CardNumber:     f.CreditCardNumber,
        ExpirationDate: fmt.Sprintf("%s-%s", f.ExpirationYear, f.ExpirationMonth),
        CardCode:       f.CardCode,
    }

    profileID, err := cp.CreateCustomerPaymentProfileCreditCard(ctx, card, opts)
    if err != nil {
        if ge, ok := authorizenet.IsGatewayError(err); ok {
            return ge.Error(), nil
        }
        return "", err
    }
    return profileID, nil
}

// UpdatePaymentProfile replaces an existing payment profile's card through
// the bound customer profile, with the same return convention as
// CreatePaymentProfile.
func (f *CreditCardForm) UpdatePaymentProfile(ctx context.Context, cp *payment.CustomerProfile, paymentProfileID string) (string, error) {
    opts, err := f.profileOptions()
    if err != nil {
        return "", err
    }

    card := types.CreditCardInput{
        CardNumber:     f.CreditCardNumber,
        ExpirationDate: fmt.Sprintf("%s-%s", f.ExpirationYear, f.ExpirationMonth),
        CardCode:       f.CardCode,
    }

    profileID, err := cp.UpdateCustomerPaymentProfileCreditCard(ctx, paymentProfileID, card, opts)
    if err != nil {
        if ge, ok := authorizenet.IsGatewayError(err); ok {
            return ge.Error(), nil
        }
        return "", err
    }
    return profileID, nil
}

// ECheckForm extends ContactForm with the bank account entry fields.
type ECheckForm struct {
    ContactForm

    AccountType   string `json:"account_type"`
    RoutingNumber string `json:"routing_number"`
    AccountNumber string `json:"account_number"`
    NameOnAccount string `json:"name_on_account"`
    BankName      string `json:"bank_name"`
}

// FieldOrder puts the bank fields in front of the contact fields.
func (f *ECheckForm) FieldOrder() []string {
    front := []string{"account_type", "routing_number", "account_number", "name_on_account", "bank_name"}
    return append(front, contactFieldOrder...)
}

// Validate runs the contact checks plus the bank account checks.
func (f *ECheckForm) Validate() FieldErrors {
    fe := f.ContactForm.Validate()

    if !models.AccountType(f.AccountType).IsValid() {
        fe.add("account_type", fmt.Sprintf("must be one of [%s]", models.AccountTypeList()))
    }
    f.validateField(fe, "routing_number", f.RoutingNumber, ExactLength(ABADigits), IsInteger)
    f.validateField(fe, "account_number", f.AccountNumber, Required, IsInteger)
    f.validateField(fe, "name_on_account", f.NameOnAccount, Required, MaxLength(MaxNameOnAccountChars))
    f.validateField(fe, "bank_name", f.BankName, MaxLength(MaxBankNameChars))

    f.validated = !fe.HasErrors()
    return fe
}

// CreatePaymentProfile creates an eCheck payment profile through the
// bound customer profile, with the same return convention as the credit
// card form.
func (f *ECheckForm) CreatePaymentProfile(ctx context.Context, cp *payment.CustomerProfile) (string, error) {
    opts, err := f.profileOptions()
    if err != nil {
        return "", err
    }

    bank := types.BankAccountInput{
        AccountType:   f.AccountType,
        RoutingNumber: f.RoutingNumber,
        AccountNumber: f.AccountNumber,
        NameOnAccount: f.NameOnAccount,
        BankName:      f.BankName,
    }

    profileID, err := cp.CreateCustomerPaymentProfileECheck(ctx, bank, opts)
    if err != nil {
        if ge, ok := authorizenet.IsGatewayError(err); ok {
            return ge.Error(), nil
        }
        return "", err
    }
    return profileID, nil
}

// UpdatePaymentProfile replaces an existing payment profile's bank account
// through the bound customer profile, with the same return convention as
// CreatePaymentProfile.
func (f *ECheckForm) UpdatePaymentProfile(ctx context.Context, cp *payment.CustomerProfile, paymentProfileID string) (string, error) {
    opts, err := f.profileOptions()
    if err != nil {
        return "", err
    }

    bank := types.BankAccountInput{
        AccountType:   f.AccountType,
        RoutingNumber: f.RoutingNumber,
        AccountNumber: f.AccountNumber,
        NameOnAccount: f.NameOnAccount,
        BankName:      f.BankName,
    }

    profileID, err := cp.UpdateCustomerPaymentProfileECheck(ctx, paymentProfileID, bank, opts)
    if err != nil {
        if ge, ok := authorizenet.IsGatewayError(err); ok {
            return ge.Error(), nil
        }
        return "", err
    }
    return profileID, nil
}

// ExpirationMonthChoices lists the selectable expiration months as
// two-digit values labeled with month names.
func ExpirationMonthChoices() []models.Choice {
    choices := make([]models.Choice, 0, 12)
    for m := 1; m <= 12; m++ {
        choices = append(choices, models.Choice{
            Name:  fmt.Sprintf("%02d", m),
            Label: time.Month(m).String(),
        })
    }
    return choices
}

// ExpirationYearChoices lists the current year and the next 49.
func ExpirationYearChoices(now time.Time) []models.Choice {
    choices := make([]models.Choice, 0, 50)
    for y := now.Year(); y < now.Year()+50; y++ {
        choices = append(choices, models.Choice{
            Name:  fmt.Sprintf("%d", y),
            Label: fmt.Sprintf("%d", y),
        })
    }
    return choices
}

func parseInt(s string) (int, error) {
    return strconv.Atoi(s)
}
