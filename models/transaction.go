package models

// TransactionResult classifies a charge attempt. A transaction is Approved
// exactly when its numeric response code equals the approval code taken
// from the published response-code reference table.
type TransactionResult string

const (
    TransactionApproved TransactionResult = "Approved"
    TransactionFailure  TransactionResult = "Failure"
)

// TransactionError is one error entry reported inside a transaction
// response.
type TransactionError struct {
    ErrorCode string `json:"error_code,omitempty"`
    ErrorText string `json:"error_text,omitempty"`
}

// TransactionProfile is the customer/payment profile info the gateway
// echoes back on a charge against a stored profile.
type TransactionProfile struct {
    CustomerProfileID        string `json:"customer_profile_id,omitempty"`
    CustomerPaymentProfileID string `json:"customer_payment_profile_id,omitempty"`
}

// TransactionResponse is the flattened transaction payload of a charge.
// Fields the gateway omitted stay at their zero value.
type TransactionResponse struct {
    ResponseCode             int                 `json:"response_code"`
    AuthCode                 string              `json:"auth_code,omitempty"`
    AVSResultCode            string              `json:"avs_result_code,omitempty"`
    CVVResultCode            string              `json:"cvv_result_code,omitempty"`
    CAVVResultCode           string              `json:"cavv_result_code,omitempty"`
    TransactionID            string              `json:"transaction_id,omitempty"`
    ReferenceTransactionID   string              `json:"reference_transaction_id,omitempty"`
    TransactionHash          string              `json:"transaction_hash,omitempty"`
    TestRequest              string              `json:"test_request,omitempty"`
    AccountNumber            string              `json:"account_number,omitempty"`
    AccountType              string              `json:"account_type,omitempty"`
    TransactionHashSHA2      string              `json:"transaction_hash_sha2,omitempty"`
    Errors                   []TransactionError  `json:"errors,omitempty"`
    Profile                  *TransactionProfile `json:"profile,omitempty"`
}

// NullResponseError is the fixed message set on a Transaction when the
// gateway produced no usable response object.
const NullResponseError = "Null response from Authorize.net"

// Transaction is the ephemeral result of a charge attempt. When the
// gateway answered, Response is set and Result holds the classification;
// when it did not, ErrorText carries NullResponseError and Response is nil.
type Transaction struct {
    Result       TransactionResult    `json:"result,omitempty"`
    ApprovalCode int                  `json:"approval_code,omitempty"`
    Response     *TransactionResponse `json:"response,omitempty"`
    ErrorText    string               `json:"error_text,omitempty"`
}

// NewTransaction classifies a transaction response against the approval
// code looked up from the reference table. A nil response yields the error
// shape instead of a classification.
func NewTransaction(resp *TransactionResponse, approvalCode int) *Transaction {
    if resp == nil {
        return &Transaction{ErrorText: NullResponseError}
    }

    t := &Transaction{
        Response:     resp,
        ApprovalCode: approvalCode,
    }
    if resp.ResponseCode == approvalCode {
        t.Result = TransactionApproved
    } else {
        t.Result = TransactionFailure
    }
    return t
}

// Approved reports whether the charge classified as approved.
func (t *Transaction) Approved() bool {
    return t.Result == TransactionApproved
}
