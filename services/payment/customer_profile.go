package payment

import (
    "context"
    "fmt"
    "log"
    "strconv"

    "github.com/shopspring/decimal"

    "payment-authorizenet-api/models"
    "payment-authorizenet-api/services/payment/authorizenet"
    "payment-authorizenet-api/services/payment/responsecodes"
    "payment-authorizenet-api/types"
)

// Gateway field limits.
const (
    maxMerchantCustomerIDChars = 20
    maxDescriptionChars        = 255
    maxRefIDChars              = 20
)

// billing addresses are US-only for now
const billingCountry = "US"

// CustomerProfile relates one billing account to its CIM profile on the
// gateway. Every operation is a single blocking round trip; the only
// local state mutated is the two cached ID fields on the account, which
// are persisted through the account's own Save.
type CustomerProfile struct {
    client  *authorizenet.Client
    codes   responsecodes.Source
    account models.BillingAccount

    // Populated by GetCustomerProfile.
    PaymentProfiles   []models.PaymentProfile
    PaymentProfileMap map[string]models.PaymentProfile
}

func NewCustomerProfile(client *authorizenet.Client, codes responsecodes.Source, account models.BillingAccount) (*CustomerProfile, error) {
    if account == nil {
        return nil, validationErrorf("a billing account carrying the customer profile id fields is required")
    }
    return &CustomerProfile{
        client:  client,
        codes:   codes,
        account: account,
    }, nil
}

// Account returns the bound billing account.
func (cp *CustomerProfile) Account() models.BillingAccount { return cp.account }

func truncate(s string, max int) string {
    if len(s) > max {
        return s[:max]
    }
    return s
}

// CreateCustomerProfile creates the CIM profile for the bound account and
// persists the returned numeric ID. When the gateway reports the profile
// as a duplicate, the existing ID is recovered from the error text and
// persisted exactly as a fresh one would be.
func (cp *CustomerProfile) CreateCustomerProfile(ctx context.Context, email string) error {
    merchantCustomerID := truncate(cp.account.Reference(), maxMerchantCustomerIDChars)
    description := truncate(cp.account.DisplayName(), maxDescriptionChars)

    profileID, err := cp.client.CreateCustomerProfile(ctx, merchantCustomerID, description, email)
    if err != nil {
        return err
    }

    id, err := strconv.ParseInt(profileID, 10, 64)
    if err != nil {
        return fmt.Errorf("gateway returned non-numeric customer profile id %q: %v", profileID, err)
    }

    cp.account.SetCustomerProfileID(id)
    if err := cp.account.Save(ctx); err != nil {
        return fmt.Errorf("customer profile %d created but not persisted: %v", id, err)
    }

    log.Printf("Saved customer profile id %d on account %s", id, cp.account.Reference())
    return nil
}

// ProfileOptions carries the shared arguments of the payment profile
// create/update operations.
type ProfileOptions struct {
    CustomerType models.CustomerType
    FirstName    string
    LastName     string
    CompanyName  string

    // Contact supplies the billing address explicitly. When
    // UseAccountAddress is set, Contact is ignored and the account's
    // stored address is used instead.
    Contact           *types.ContactInfo
    UseAccountAddress bool

    SetAsDefault   bool
    ValidationMode models.ValidationMode
}

// contactInfo resolves the billing address for a payment profile, from the
// options or from the account record.
func (cp *CustomerProfile) contactInfo(opts ProfileOptions) (types.ContactInfo, error) {
    if !opts.UseAccountAddress {
        if opts.Contact == nil {
            return types.ContactInfo{}, validationErrorf("contact details are required when not using the account address")
        }
        return *opts.Contact, nil
    }

    contact, ok := cp.account.ContactInfo()
    if !ok {
        return types.ContactInfo{}, validationErrorf("account %s has no billing address on file", cp.account.Reference())
    }
    return contact, nil
}

// createPaymentProfile adds one payment method to the CIM profile. Called
// by the credit-card and eCheck wrappers, not intended for direct use.
func (cp *CustomerProfile) createPaymentProfile(ctx context.Context, paymentMethod *authorizenet.PaymentType, opts ProfileOptions) (string, error) {
    if !opts.CustomerType.IsValid() {
        return "", validationErrorf("customer_type must be one of [%s], got %q", models.CustomerTypeList(), opts.CustomerType)
    }

    contact, err := cp.contactInfo(opts)
    if err != nil {
        return "", err
    }

    validationMode := opts.ValidationMode
    if validationMode == "" {
        validationMode = models.ValidationModeLive
    }

    params := authorizenet.PaymentProfileParams{
        CustomerType: opts.CustomerType.String(),
        BillTo: authorizenet.BillTo(
            opts.FirstName, opts.LastName, opts.CompanyName,
            contact.Address, contact.City, contact.State,
            contact.ZipCode, billingCountry, contact.Phone),
        Payment:        paymentMethod,
        ValidationMode: validationMode.String(),
    }

    profileID, err := cp.client.CreateCustomerPaymentProfile(ctx, cp.customerProfileIDString(), params)
    if err != nil {
        return "", err
    }

    if opts.SetAsDefault {
        if err := cp.persistDefault(ctx, profileID); err != nil {
            return "", err
        }
    }

    return profileID, nil
}

// CreateCustomerPaymentProfileCreditCard adds a credit card payment
// profile. expiration_date on the card input uses the YYYY-MM format.
func (cp *CustomerProfile) CreateCustomerPaymentProfileCreditCard(ctx context.Context, card types.CreditCardInput, opts ProfileOptions) (string, error) {
    payment := authorizenet.NewCreditCardPayment(card.CardNumber, card.ExpirationDate, card.CardCode)
    return cp.createPaymentProfile(ctx, payment, opts)
}

// CreateCustomerPaymentProfileECheck adds a bank account payment profile.
func (cp *CustomerProfile) CreateCustomerPaymentProfileECheck(ctx context.Context, bank types.BankAccountInput, opts ProfileOptions) (string, error) {
    if !models.AccountType(bank.AccountType).IsValid() {
        return "", validationErrorf("account_type must be one of [%s], got %q", models.AccountTypeList(), bank.AccountType)
    }
    payment := authorizenet.NewBankAccountPayment(
        bank.AccountType, bank.RoutingNumber, bank.AccountNumber,
        bank.NameOnAccount, bank.BankName)
    return cp.createPaymentProfile(ctx, payment, opts)
}

// updatePaymentProfile mirrors createPaymentProfile against an existing
// payment profile ID.
func (cp *CustomerProfile) updatePaymentProfile(ctx context.Context, paymentProfileID string, paymentMethod *authorizenet.PaymentType, opts ProfileOptions) (string, error) {
    if !opts.CustomerType.IsValid() {
        return "", validationErrorf("customer_type must be one of [%s], got %q", models.CustomerTypeList(), opts.CustomerType)
    }

    contact, err := cp.contactInfo(opts)
    if err != nil {
        return "", err
    }

    validationMode := opts.ValidationMode
    if validationMode == "" {
        validationMode = models.ValidationModeLive
    }

    params := authorizenet.PaymentProfileParams{
        CustomerType: opts.CustomerType.String(),
        BillTo: authorizenet.BillTo(
            opts.FirstName, opts.LastName, opts.CompanyName,
            contact.Address, contact.City, contact.State,
            contact.ZipCode, billingCountry, contact.Phone),
        Payment:        paymentMethod,
        ValidationMode: validationMode.String(),
    }

    if err := cp.client.UpdateCustomerPaymentProfile(ctx, cp.customerProfileIDString(), paymentProfileID, params); err != nil {
        return "", err
    }

    if opts.SetAsDefault {
        if err := cp.persistDefault(ctx, paymentProfileID); err != nil {
            return "", err
        }
    }

    return paymentProfileID, nil
}

// UpdateCustomerPaymentProfileCreditCard replaces an existing payment
// profile with new credit card details.
func (cp *CustomerProfile) UpdateCustomerPaymentProfileCreditCard(ctx context.Context, paymentProfileID string, card types.CreditCardInput, opts ProfileOptions) (string, error) {
    payment := authorizenet.NewCreditCardPayment(card.CardNumber, card.ExpirationDate, card.CardCode)
    return cp.updatePaymentProfile(ctx, paymentProfileID, payment, opts)
}

// UpdateCustomerPaymentProfileECheck replaces an existing payment profile
// with new bank account details. eCheck validation does not support
// liveMode, so an unset validation mode defaults to testMode here.
func (cp *CustomerProfile) UpdateCustomerPaymentProfileECheck(ctx context.Context, paymentProfileID string, bank types.BankAccountInput, opts ProfileOptions) (string, error) {
    if !models.AccountType(bank.AccountType).IsValid() {
        return "", validationErrorf("account_type must be one of [%s], got %q", models.AccountTypeList(), bank.AccountType)
    }
    if opts.ValidationMode == "" {
        opts.ValidationMode = models.ValidationModeTest
    }
    payment := authorizenet.NewBankAccountPayment(
        bank.AccountType, bank.RoutingNumber, bank.AccountNumber,
        bank.NameOnAccount, bank.BankName)
    return cp.updatePaymentProfile(ctx, paymentProfileID, payment, opts)
}

// persistDefault records a payment profile as the account default.
func (cp *CustomerProfile) persistDefault(ctx context.Context, paymentProfileID string) error {
    id, err := strconv.ParseInt(paymentProfileID, 10, 64)
    if err != nil {
        return fmt.Errorf("gateway returned non-numeric payment profile id %q: %v", paymentProfileID, err)
    }

    cp.account.SetDefaultPaymentProfileID(id)
    if err := cp.account.Save(ctx); err != nil {
        return fmt.Errorf("payment profile %d created but default not persisted: %v", id, err)
    }

    log.Printf("Saved payment profile %d as default on account %s", id, cp.account.Reference())
    return nil
}

// ChargeCustomerProfile runs an auth+capture charge against a stored
// payment profile. Gateway declines and transport failures both come back
// inside the Transaction: a decline classifies as Failure, an unusable
// response becomes the fixed null-response error shape. The returned
// error is reserved for charges that could not be classified at all,
// which happens only when the response-code reference fetch fails.
func (cp *CustomerProfile) ChargeCustomerProfile(ctx context.Context, paymentProfileID string, amount decimal.Decimal, refID string) (*models.Transaction, error) {
    if cp.account.CustomerProfileID() == 0 {
        return nil, validationErrorf("no customer profile id has been set on account %s", cp.account.Reference())
    }

    refID = truncate(refID, maxRefIDChars)

    resp, err := cp.client.ChargeCustomerProfile(ctx,
        cp.customerProfileIDString(), paymentProfileID, amount.StringFixed(2), refID)
    if err != nil {
        log.Printf("Charge transport failure for account %s: %v", cp.account.Reference(), err)
        return models.NewTransaction(nil, 0), nil
    }
    if resp == nil {
        return models.NewTransaction(nil, 0), nil
    }

    approvalCode, err := cp.codes.ApprovalCode(ctx)
    if err != nil {
        return nil, fmt.Errorf("unable to classify transaction: %v", err)
    }

    transaction := models.NewTransaction(resp, approvalCode)
    log.Printf("Charge result for account %s: %s", cp.account.Reference(), transaction.Result)
    return transaction, nil
}

// GetCustomerProfile retrieves the CIM profile and caches the payment
// profile list and the by-ID map on this handle.
func (cp *CustomerProfile) GetCustomerProfile(ctx context.Context) (*models.CustomerProfileInfo, error) {
    if cp.account.CustomerProfileID() == 0 {
        return nil, validationErrorf("no customer profile id has been set on account %s", cp.account.Reference())
    }

    info, err := cp.client.GetCustomerProfile(ctx, cp.customerProfileIDString())
    if err != nil {
        return nil, err
    }

    cp.PaymentProfiles = info.PaymentProfiles
    cp.PaymentProfileMap = info.PaymentProfileMap
    return info, nil
}

// DeleteCustomerProfile removes the CIM profile and clears the cached ID
// on the account. When no ID is cached, the account is refreshed first in
// case another writer saved one since this record was loaded.
func (cp *CustomerProfile) DeleteCustomerProfile(ctx context.Context) error {
    if cp.account.CustomerProfileID() == 0 {
        if err := cp.account.Refresh(ctx); err != nil {
            return fmt.Errorf("error refreshing account %s: %v", cp.account.Reference(), err)
        }
        if cp.account.CustomerProfileID() == 0 {
            return validationErrorf("cannot delete: no customer profile id is saved on account %s", cp.account.Reference())
        }
    }

    if err := cp.client.DeleteCustomerProfile(ctx, cp.customerProfileIDString()); err != nil {
        return err
    }

    cp.account.SetCustomerProfileID(0)
    if err := cp.account.Save(ctx); err != nil {
        return fmt.Errorf("customer profile deleted but account %s not persisted: %v", cp.account.Reference(), err)
    }
    return nil
}

// DeleteCustomerPaymentProfile removes one payment profile by ID.
func (cp *CustomerProfile) DeleteCustomerPaymentProfile(ctx context.Context, paymentProfileID string) error {
    return cp.client.DeleteCustomerPaymentProfile(ctx, cp.customerProfileIDString(), paymentProfileID)
}

func (cp *CustomerProfile) customerProfileIDString() string {
    return strconv.FormatInt(cp.account.CustomerProfileID(), 10)
}
