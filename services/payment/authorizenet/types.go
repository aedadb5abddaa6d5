package authorizenet

type merchantAuthenticationType struct {
    Name           string `json:"name"`
    TransactionKey string `json:"transactionKey"`
}

type MessageType struct {
    Code        string `json:"code"`
    Text        string `json:"text"`
    Description string `json:"description,omitempty"`
}

type MessagesType struct {
    ResultCode string        `json:"resultCode"`
    Message    []MessageType `json:"message"`
}

// CreditCardType carries card data on requests and the masked echo of it
// on responses.
type CreditCardType struct {
    CardNumber     string `json:"cardNumber"`
    ExpirationDate string `json:"expirationDate"`
    CardCode       string `json:"cardCode,omitempty"`
    CardType       string `json:"cardType,omitempty"`
    IssuerNumber   string `json:"issuerNumber,omitempty"`
}

type BankAccountType struct {
    AccountType   string `json:"accountType"`
    RoutingNumber string `json:"routingNumber"`
    AccountNumber string `json:"accountNumber"`
    NameOnAccount string `json:"nameOnAccount"`
    ECheckType    string `json:"echeckType,omitempty"`
    BankName      string `json:"bankName,omitempty"`
}

// PaymentType is the credit-card/bank-account union of the API. Exactly
// one branch is populated on a well-formed payload.
type PaymentType struct {
    CreditCard  *CreditCardType  `json:"creditCard,omitempty"`
    BankAccount *BankAccountType `json:"bankAccount,omitempty"`
}

type CustomerAddressType struct {
    FirstName   string `json:"firstName,omitempty"`
    LastName    string `json:"lastName,omitempty"`
    Company     string `json:"company,omitempty"`
    Address     string `json:"address,omitempty"`
    City        string `json:"city,omitempty"`
    State       string `json:"state,omitempty"`
    Zip         string `json:"zip,omitempty"`
    Country     string `json:"country,omitempty"`
    PhoneNumber string `json:"phoneNumber,omitempty"`
}

// createCustomerProfileRequest

type customerProfileType struct {
    MerchantCustomerID string `json:"merchantCustomerId,omitempty"`
    Description        string `json:"description,omitempty"`
    Email              string `json:"email"`
}

type createCustomerProfileRequest struct {
    MerchantAuthentication merchantAuthenticationType `json:"merchantAuthentication"`
    Profile                customerProfileType        `json:"profile"`
}

type createCustomerProfileRequestWrapper struct {
    CreateCustomerProfileRequest createCustomerProfileRequest `json:"createCustomerProfileRequest"`
}

type createCustomerProfileResponse struct {
    CustomerProfileID            string       `json:"customerProfileId"`
    CustomerPaymentProfileIDList []string     `json:"customerPaymentProfileIdList"`
    Messages                     MessagesType `json:"messages"`
}

// createCustomerPaymentProfileRequest

type customerPaymentProfileType struct {
    CustomerType string               `json:"customerType,omitempty"`
    BillTo       *CustomerAddressType `json:"billTo,omitempty"`
    Payment      *PaymentType         `json:"payment,omitempty"`
}

type createCustomerPaymentProfileRequest struct {
    MerchantAuthentication merchantAuthenticationType `json:"merchantAuthentication"`
    CustomerProfileID      string                     `json:"customerProfileId"`
    PaymentProfile         customerPaymentProfileType `json:"paymentProfile"`
    ValidationMode         string                     `json:"validationMode,omitempty"`
}

type createCustomerPaymentProfileRequestWrapper struct {
    CreateCustomerPaymentProfileRequest createCustomerPaymentProfileRequest `json:"createCustomerPaymentProfileRequest"`
}

type createCustomerPaymentProfileResponse struct {
    CustomerPaymentProfileID string       `json:"customerPaymentProfileId"`
    ValidationDirectResponse string       `json:"validationDirectResponse,omitempty"`
    Messages                 MessagesType `json:"messages"`
}

// updateCustomerPaymentProfileRequest

type customerPaymentProfileExType struct {
    CustomerType             string               `json:"customerType,omitempty"`
    BillTo                   *CustomerAddressType `json:"billTo,omitempty"`
    Payment                  *PaymentType         `json:"payment,omitempty"`
    CustomerPaymentProfileID string               `json:"customerPaymentProfileId"`
}

type updateCustomerPaymentProfileRequest struct {
    MerchantAuthentication merchantAuthenticationType   `json:"merchantAuthentication"`
    CustomerProfileID      string                       `json:"customerProfileId"`
    PaymentProfile         customerPaymentProfileExType `json:"paymentProfile"`
    ValidationMode         string                       `json:"validationMode,omitempty"`
}

type updateCustomerPaymentProfileRequestWrapper struct {
    UpdateCustomerPaymentProfileRequest updateCustomerPaymentProfileRequest `json:"updateCustomerPaymentProfileRequest"`
}

type updateCustomerPaymentProfileResponse struct {
    Messages MessagesType `json:"messages"`
}

// getCustomerProfileRequest

type getCustomerProfileRequest struct {
    MerchantAuthentication merchantAuthenticationType `json:"merchantAuthentication"`
    CustomerProfileID      string                     `json:"customerProfileId"`
}

type getCustomerProfileRequestWrapper struct {
    GetCustomerProfileRequest getCustomerProfileRequest `json:"getCustomerProfileRequest"`
}

type paymentProfileResponseType struct {
    CustomerPaymentProfileID string       `json:"customerPaymentProfileId"`
    Payment                  *PaymentType `json:"payment,omitempty"`
}

type customerProfileMaskedType struct {
    CustomerProfileID  string                       `json:"customerProfileId"`
    MerchantCustomerID string                       `json:"merchantCustomerId,omitempty"`
    Description        string                       `json:"description,omitempty"`
    Email              string                       `json:"email,omitempty"`
    PaymentProfiles    []paymentProfileResponseType `json:"paymentProfiles,omitempty"`
}

type getCustomerProfileResponse struct {
    Profile  *customerProfileMaskedType `json:"profile,omitempty"`
    Messages *MessagesType              `json:"messages,omitempty"`
}

// deleteCustomerProfileRequest / deleteCustomerPaymentProfileRequest

type deleteCustomerProfileRequest struct {
    MerchantAuthentication merchantAuthenticationType `json:"merchantAuthentication"`
    CustomerProfileID      string                     `json:"customerProfileId"`
}

type deleteCustomerProfileRequestWrapper struct {
    DeleteCustomerProfileRequest deleteCustomerProfileRequest `json:"deleteCustomerProfileRequest"`
}

type deleteCustomerPaymentProfileRequest struct {
    MerchantAuthentication merchantAuthenticationType `json:"merchantAuthentication"`
    CustomerProfileID      string                     `json:"customerProfileId"`
    CustomerPaymentProfileID string                   `json:"customerPaymentProfileId"`
}

type deleteCustomerPaymentProfileRequestWrapper struct {
    DeleteCustomerPaymentProfileRequest deleteCustomerPaymentProfileRequest `json:"deleteCustomerPaymentProfileRequest"`
}

type deleteResponse struct {
    Messages MessagesType `json:"messages"`
}

// createTransactionRequest (charge against a stored profile)

type profileRefType struct {
    PaymentProfileID string `json:"paymentProfileId"`
}

type customerProfilePaymentType struct {
    CustomerProfileID string         `json:"customerProfileId"`
    PaymentProfile    profileRefType `json:"paymentProfile"`
}

type transactionRequestType struct {
    TransactionType string                      `json:"transactionType"`
    Amount          string                      `json:"amount,omitempty"`
    Profile         *customerProfilePaymentType `json:"profile,omitempty"`
}

type createTransactionRequest struct {
    MerchantAuthentication merchantAuthenticationType `json:"merchantAuthentication"`
    RefID                  string                     `json:"refId,omitempty"`
    TransactionRequest     transactionRequestType     `json:"transactionRequest"`
}

type createTransactionRequestWrapper struct {
    CreateTransactionRequest createTransactionRequest `json:"createTransactionRequest"`
}

type transactionErrorType struct {
    ErrorCode string `json:"errorCode"`
    ErrorText string `json:"errorText"`
}

type transactionProfileType struct {
    CustomerProfileID        string `json:"customerProfileId,omitempty"`
    CustomerPaymentProfileID string `json:"customerPaymentProfileId,omitempty"`
}

type transactionResponseType struct {
    ResponseCode   string                  `json:"responseCode"`
    AuthCode       string                  `json:"authCode"`
    AVSResultCode  string                  `json:"avsResultCode"`
    CVVResultCode  string                  `json:"cvvResultCode"`
    CAVVResultCode string                  `json:"cavvResultCode"`
    TransID        string                  `json:"transId"`
    RefTransID     string                  `json:"refTransID"`
    TransHash      string                  `json:"transHash"`
    TestRequest    string                  `json:"testRequest"`
    AccountNumber  string                  `json:"accountNumber"`
    AccountType    string                  `json:"accountType"`
    TransHashSha2  string                  `json:"transHashSha2"`
    Errors         []transactionErrorType  `json:"errors,omitempty"`
    Profile        *transactionProfileType `json:"profile,omitempty"`
    Messages       []MessageType           `json:"messages,omitempty"`
}

type createTransactionResponse struct {
    TransactionResponse *transactionResponseType `json:"transactionResponse,omitempty"`
    Messages            MessagesType             `json:"messages"`
}
