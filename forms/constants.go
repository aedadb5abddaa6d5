// forms/constants.go - gateway field limits enforced before a request is built
package forms

const (
    MaxFirstNameChars     = 50
    MaxLastNameChars      = 50
    MaxCompanyNameChars   = 50
    MaxAddressChars       = 60
    MaxCityChars          = 40
    MaxStateChars         = 40
    MaxZipCodeChars       = 20
    MaxCountryChars       = 60
    MaxPhoneNumberChars   = 25
    MaxNameOnAccountChars = 22
    MaxBankNameChars      = 50

    MinCreditCardDigits = 13
    MaxCreditCardDigits = 16
    MinCardCodeDigits   = 3
    MaxCardCodeDigits   = 4

    // ABADigits is the fixed length of a US bank routing number.
    ABADigits = 9
)
