package authorizenet

import (
    "context"
    "fmt"
    "log"
    "regexp"
    "strings"
    "unicode"

    "payment-authorizenet-api/models"
)

// NewCreditCardPayment builds the payment union for a credit card.
func NewCreditCardPayment(cardNumber, expirationDate, cardCode string) *PaymentType {
    return &PaymentType{
        CreditCard: &CreditCardType{
            CardNumber:     cardNumber,
            ExpirationDate: expirationDate,
            CardCode:       cardCode,
        },
    }
}

// NewBankAccountPayment builds the payment union for an eCheck.
func NewBankAccountPayment(accountType, routingNumber, accountNumber, nameOnAccount, bankName string) *PaymentType {
    return &PaymentType{
        BankAccount: &BankAccountType{
            AccountType:   accountType,
            RoutingNumber: routingNumber,
            AccountNumber: accountNumber,
            NameOnAccount: nameOnAccount,
            BankName:      bankName,
        },
    }
}

// BillTo assembles the billing address block attached to a payment
// profile.
func BillTo(firstName, lastName, company, address, city, state, zip, country, phone string) *CustomerAddressType {
    return &CustomerAddressType{
        FirstName:   firstName,
        LastName:    lastName,
        Company:     company,
        Address:     address,
        City:        city,
        State:       state,
        Zip:         zip,
        Country:     country,
        PhoneNumber: phone,
    }
}

// PaymentProfileParams carries everything needed to create or update one
// payment profile on an existing customer profile.
type PaymentProfileParams struct {
    CustomerType   string
    BillTo         *CustomerAddressType
    Payment        *PaymentType
    ValidationMode string
}

// duplicateProfileText is the vendor's duplicate-record message with the
// digits removed. The match is exact: if the vendor rewords the message,
// recovery fails and the error surfaces as a GatewayError.
const duplicateProfileText = "A duplicate record with ID  already exists."

const duplicateProfileCode = "E00039"

var profileIDPattern = regexp.MustCompile(`\D(\d{10})\D`)

// extractDuplicateProfileID recovers the existing customer profile ID from
// a duplicate-record error message. It succeeds only when the digit-free
// message matches the known wording and exactly one 10-digit ID is
// present.
func extractDuplicateProfileID(message string) (string, bool) {
    stripped := strings.Map(func(r rune) rune {
        if unicode.IsDigit(r) {
            return -1
        }
        return r
    }, message)

    if stripped != duplicateProfileText {
        return "", false
    }

    matches := profileIDPattern.FindAllStringSubmatch(message, -1)
    if len(matches) != 1 {
        return "", false
    }
    return matches[0][1], true
}

// CreateCustomerProfile creates a CIM profile and returns its numeric ID
// as a string. A duplicate-record failure is recovered locally: the
// existing profile ID is extracted from the vendor's error text and
// returned as if the creation had succeeded.
func (c *Client) CreateCustomerProfile(ctx context.Context, merchantCustomerID, description, email string) (string, error) {
    request := createCustomerProfileRequestWrapper{
        CreateCustomerProfileRequest: createCustomerProfileRequest{
            MerchantAuthentication: c.merchantAuthentication(),
            Profile: customerProfileType{
                MerchantCustomerID: merchantCustomerID,
                Description:        description,
                Email:              email,
            },
        },
    }

    var response createCustomerProfileResponse
    if err := c.post(ctx, request, &response); err != nil {
        return "", err
    }

    if response.Messages.ResultCode == ResultOK {
        log.Printf("Successfully created customer profile with id: %s", response.CustomerProfileID)
        return response.CustomerProfileID, nil
    }

    ge := newGatewayError(response.Messages)
    if ge.Code == duplicateProfileCode {
        if existingID, ok := extractDuplicateProfileID(ge.Message); ok {
            log.Printf("Duplicate customer profile detected, recovered existing id: %s", existingID)
            return existingID, nil
        }
    }
    return "", ge
}

// CreateCustomerPaymentProfile attaches one payment profile to an existing
// customer profile and returns the new payment profile ID.
func (c *Client) CreateCustomerPaymentProfile(ctx context.Context, customerProfileID string, params PaymentProfileParams) (string, error) {
    request := createCustomerPaymentProfileRequestWrapper{
        CreateCustomerPaymentProfileRequest: createCustomerPaymentProfileRequest{
            MerchantAuthentication: c.merchantAuthentication(),
            CustomerProfileID:      customerProfileID,
            PaymentProfile: customerPaymentProfileType{
                CustomerType: params.CustomerType,
                BillTo:       params.BillTo,
                Payment:      params.Payment,
            },
            ValidationMode: params.ValidationMode,
        },
    }

    var response createCustomerPaymentProfileResponse
    if err := c.post(ctx, request, &response); err != nil {
        return "", err
    }

    if response.Messages.ResultCode != ResultOK {
        return "", newGatewayError(response.Messages)
    }

    log.Printf("Successfully created customer payment profile with id: %s", response.CustomerPaymentProfileID)
    return response.CustomerPaymentProfileID, nil
}

// UpdateCustomerPaymentProfile replaces the payment method and billing
// address of an existing payment profile.
func (c *Client) UpdateCustomerPaymentProfile(ctx context.Context, customerProfileID, paymentProfileID string, params PaymentProfileParams) error {
    request := updateCustomerPaymentProfileRequestWrapper{
        UpdateCustomerPaymentProfileRequest: updateCustomerPaymentProfileRequest{
            MerchantAuthentication: c.merchantAuthentication(),
            CustomerProfileID:      customerProfileID,
            PaymentProfile: customerPaymentProfileExType{
                CustomerType:             params.CustomerType,
                BillTo:                   params.BillTo,
                Payment:                  params.Payment,
                CustomerPaymentProfileID: paymentProfileID,
            },
            ValidationMode: params.ValidationMode,
        },
    }

    var response updateCustomerPaymentProfileResponse
    if err := c.post(ctx, request, &response); err != nil {
        return err
    }

    if response.Messages.ResultCode != ResultOK {
        return newGatewayError(response.Messages)
    }

    log.Printf("Successfully updated customer payment profile: %s/%s", customerProfileID, paymentProfileID)
    return nil
}

// decodePaymentProfile maps one gateway payment profile onto the domain
// shape. A profile whose payment union holds neither branch is malformed
// rather than silently skipped.
func decodePaymentProfile(pp paymentProfileResponseType) (models.PaymentProfile, error) {
    profile := models.PaymentProfile{
        CustomerPaymentProfileID: pp.CustomerPaymentProfileID,
    }

    switch {
    case pp.Payment != nil && pp.Payment.CreditCard != nil:
        cc := pp.Payment.CreditCard
        profile.Method = models.PaymentMethodCreditCard
        profile.CreditCard = &models.CreditCardDetails{
            CardNumber:     cc.CardNumber,
            ExpirationDate: cc.ExpirationDate,
            CardType:       cc.CardType,
            IssuerNumber:   cc.IssuerNumber,
        }
    case pp.Payment != nil && pp.Payment.BankAccount != nil:
        ba := pp.Payment.BankAccount
        profile.Method = models.PaymentMethodBankAccount
        profile.BankAccount = &models.BankAccountDetails{
            AccountType:   ba.AccountType,
            RoutingNumber: ba.RoutingNumber,
            AccountNumber: ba.AccountNumber,
            NameOnAccount: ba.NameOnAccount,
            ECheckType:    ba.ECheckType,
            BankName:      ba.BankName,
        }
    default:
        return profile, fmt.Errorf("payment profile %s: %w", pp.CustomerPaymentProfileID, ErrMalformedResponse)
    }

    return profile, nil
}

// GetCustomerProfile fetches a CIM profile with its payment profiles. A
// response without the messages block means the gateway was unreachable or
// returned garbage and maps to ErrProfileNotFound.
func (c *Client) GetCustomerProfile(ctx context.Context, customerProfileID string) (*models.CustomerProfileInfo, error) {
    request := getCustomerProfileRequestWrapper{
        GetCustomerProfileRequest: getCustomerProfileRequest{
            MerchantAuthentication: c.merchantAuthentication(),
            CustomerProfileID:      customerProfileID,
        },
    }

    var response getCustomerProfileResponse
    if err := c.post(ctx, request, &response); err != nil {
        return nil, err
    }

    if response.Messages == nil {
        return nil, ErrProfileNotFound
    }

    if response.Messages.ResultCode != ResultOK {
        return nil, newGatewayError(*response.Messages)
    }

    info := &models.CustomerProfileInfo{CustomerProfileID: customerProfileID}
    if response.Profile == nil {
        return info, nil
    }

    info.CustomerProfileID = response.Profile.CustomerProfileID
    info.Email = response.Profile.Email
    info.Description = response.Profile.Description
    info.PaymentProfileMap = make(map[string]models.PaymentProfile, len(response.Profile.PaymentProfiles))

    for _, pp := range response.Profile.PaymentProfiles {
        profile, err := decodePaymentProfile(pp)
        if err != nil {
            return nil, err
        }
        info.PaymentProfiles = append(info.PaymentProfiles, profile)
        info.PaymentProfileMap[profile.CustomerPaymentProfileID] = profile
    }

    return info, nil
}

// DeleteCustomerProfile removes an entire CIM profile.
func (c *Client) DeleteCustomerProfile(ctx context.Context, customerProfileID string) error {
    request := deleteCustomerProfileRequestWrapper{
        DeleteCustomerProfileRequest: deleteCustomerProfileRequest{
            MerchantAuthentication: c.merchantAuthentication(),
            CustomerProfileID:      customerProfileID,
        },
    }

    var response deleteResponse
    if err := c.post(ctx, request, &response); err != nil {
        return err
    }

    if response.Messages.ResultCode != ResultOK {
        return newGatewayError(response.Messages)
    }

    log.Printf("Deleted customer profile %s", customerProfileID)
    return nil
}

// DeleteCustomerPaymentProfile removes one payment profile from a customer
// profile.
func (c *Client) DeleteCustomerPaymentProfile(ctx context.Context, customerProfileID, paymentProfileID string) error {
    request := deleteCustomerPaymentProfileRequestWrapper{
        DeleteCustomerPaymentProfileRequest: deleteCustomerPaymentProfileRequest{
            MerchantAuthentication:   c.merchantAuthentication(),
            CustomerProfileID:        customerProfileID,
            CustomerPaymentProfileID: paymentProfileID,
        },
    }

    var response deleteResponse
    if err := c.post(ctx, request, &response); err != nil {
        return err
    }

    if response.Messages.ResultCode != ResultOK {
        return newGatewayError(response.Messages)
    }

    log.Printf("Deleted customer payment profile %s/%s", customerProfileID, paymentProfileID)
    return nil
}
