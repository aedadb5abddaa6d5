package models

import (
    "context"

    "payment-authorizenet-api/types"
)

// BillingAccount is the host record a customer profile is attached to. Any
// persisted entity carrying the two Authorize.net ID fields can back the
// profile operations; this service only reads and mutates those two fields
// and, optionally, the stored billing address.
//
// A zero ID means "not set". Save persists the current ID fields; Refresh
// re-reads them from the backing store.
type BillingAccount interface {
    // Reference is the stable identifier sent to the gateway as the
    // merchant customer ID.
    Reference() string

    // DisplayName becomes the profile description on the gateway side.
    DisplayName() string

    CustomerProfileID() int64
    SetCustomerProfileID(id int64)

    DefaultPaymentProfileID() int64
    SetDefaultPaymentProfileID(id int64)

    // ContactInfo returns the account's stored billing address. ok is
    // false when the account has no usable address on file, in which case
    // callers must supply contact details explicitly.
    ContactInfo() (types.ContactInfo, bool)

    Save(ctx context.Context) error
    Refresh(ctx context.Context) error
}
