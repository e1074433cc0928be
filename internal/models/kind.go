package models

import "fmt"

// RecordKind selects the collection targeted by a delete-by-kind request.
type RecordKind string

const (
	KindCustomer RecordKind = "customer"
	KindEmployee RecordKind = "employee"
	KindMerchant RecordKind = "merchant"
	KindParcel   RecordKind = "parcel"
)

// ParseRecordKind accepts exactly the four deletable kinds.
func ParseRecordKind(s string) (RecordKind, error) {
	switch k := RecordKind(s); k {
	case KindCustomer, KindEmployee, KindMerchant, KindParcel:
		return k, nil
	}
	return "", fmt.Errorf("unknown record kind: %q", s)
}

// AccountType returns the user account type a kind deletes, if it targets
// the users collection.
func (k RecordKind) AccountType() (AccountType, bool) {
	switch k {
	case KindEmployee:
		return AccountEmployee, true
	case KindMerchant:
		return AccountMerchant, true
	}
	return "", false
}
