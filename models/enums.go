// models/enums.go - closed value sets used by createCustomerPaymentProfileRequest
package models

import "strings"

// Choice is a (name, label) pair suitable for rendering a select field.
type Choice struct {
    Name  string `json:"name"`
    Label string `json:"label"`
}

func choiceList(choices []Choice) string {
    labels := make([]string, 0, len(choices))
    for _, c := range choices {
        labels = append(labels, c.Label)
    }
    return strings.Join(labels, ", ")
}

func choicesWithAll(choices []Choice) []Choice {
    out := make([]Choice, len(choices), len(choices)+1)
    copy(out, choices)
    return append(out, Choice{Name: "all", Label: "All"})
}

// CustomerType distinguishes personal from business customers on a payment
// profile.
type CustomerType string

const (
    CustomerTypeIndividual CustomerType = "individual"
    CustomerTypeBusiness   CustomerType = "business"
)

func (ct CustomerType) IsValid() bool {
    return ct == CustomerTypeIndividual || ct == CustomerTypeBusiness
}

func (ct CustomerType) String() string { return string(ct) }

func CustomerTypeChoices() []Choice {
    return []Choice{
        {Name: "individual", Label: "individual"},
        {Name: "business", Label: "business"},
    }
}

func CustomerTypeChoicesWithAll() []Choice { return choicesWithAll(CustomerTypeChoices()) }

func CustomerTypeList() string { return choiceList(CustomerTypeChoices()) }

// AccountType is the kind of bank account behind an eCheck payment profile.
type AccountType string

const (
    AccountTypeChecking         AccountType = "checking"
    AccountTypeSavings          AccountType = "savings"
    AccountTypeBusinessChecking AccountType = "businessChecking"
)

func (at AccountType) IsValid() bool {
    return at == AccountTypeChecking || at == AccountTypeSavings || at == AccountTypeBusinessChecking
}

func (at AccountType) String() string { return string(at) }

func AccountTypeChoices() []Choice {
    return []Choice{
        {Name: "checking", Label: "checking"},
        {Name: "savings", Label: "savings"},
        {Name: "businessChecking", Label: "businessChecking"},
    }
}

func AccountTypeChoicesWithAll() []Choice { return choicesWithAll(AccountTypeChoices()) }

func AccountTypeList() string { return choiceList(AccountTypeChoices()) }

// ECheckType is the ACH transaction class of an eCheck.
type ECheckType string

const (
    ECheckTypePPD ECheckType = "PPD"
    ECheckTypeWEB ECheckType = "WEB"
    ECheckTypeCCD ECheckType = "CCD"
)

func (et ECheckType) IsValid() bool {
    return et == ECheckTypePPD || et == ECheckTypeWEB || et == ECheckTypeCCD
}

func (et ECheckType) String() string { return string(et) }

func ECheckTypeChoices() []Choice {
    return []Choice{
        {Name: "PPD", Label: "PPD"},
        {Name: "WEB", Label: "WEB"},
        {Name: "CCD", Label: "CCD"},
    }
}

func ECheckTypeList() string { return choiceList(ECheckTypeChoices()) }

// ValidationMode controls whether the gateway verifies a new payment
// profile against a live processor or only schema-checks it.
type ValidationMode string

const (
    ValidationModeTest ValidationMode = "testMode"
    ValidationModeLive ValidationMode = "liveMode"
)

func (vm ValidationMode) IsValid() bool {
    return vm == ValidationModeTest || vm == ValidationModeLive
}

func (vm ValidationMode) String() string { return string(vm) }

func ValidationModeChoices() []Choice {
    return []Choice{
        {Name: "testMode", Label: "testMode"},
        {Name: "liveMode", Label: "liveMode"},
    }
}

func ValidationModeList() string { return choiceList(ValidationModeChoices()) }

// PaymentMethodKind tags which branch of a stored payment profile is
// populated. Exactly one branch is set on a well-formed profile; the unset
// state exists so a half-decoded profile is representable without shared
// defaults.
type PaymentMethodKind string

const (
    PaymentMethodUnset       PaymentMethodKind = ""
    PaymentMethodCreditCard  PaymentMethodKind = "creditCard"
    PaymentMethodBankAccount PaymentMethodKind = "bankAccount"
)

func (pm PaymentMethodKind) IsValid() bool {
    return pm == PaymentMethodCreditCard || pm == PaymentMethodBankAccount
}

func (pm PaymentMethodKind) String() string {
    switch pm {
    case PaymentMethodCreditCard:
        return "Credit Card"
    case PaymentMethodBankAccount:
        return "Bank Account"
    default:
        return "Not set"
    }
}

func PaymentMethodChoices() []Choice {
    return []Choice{
        {Name: "creditCard", Label: "Credit Card"},
        {Name: "bankAccount", Label: "Bank Account"},
    }
}

func PaymentMethodList() string { return choiceList(PaymentMethodChoices()) }

// ServerMode selects the gateway endpoint.
type ServerMode string

const (
    ServerModeSandbox    ServerMode = "sandbox"
    ServerModeProduction ServerMode = "production"
)

func (sm ServerMode) IsValid() bool {
    return sm == ServerModeSandbox || sm == ServerModeProduction
}

func (sm ServerMode) String() string { return string(sm) }

func ServerModeChoices() []Choice {
    return []Choice{
        {Name: "sandbox", Label: "sandbox"},
        {Name: "production", Label: "production"},
    }
}

func ServerModeList() string { return choiceList(ServerModeChoices()) }
