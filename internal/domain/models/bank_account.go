package models

import (
	"strings"
	"time"

	pkgerrors "github.com/Awolacademy/omnipay-total-apps-gateway/pkg/errors"
	"github.com/Awolacademy/omnipay-total-apps-gateway/pkg/timeutil"
)

// ACHAccountType represents the type of bank account
type ACHAccountType string

const (
	AccountTypeChecking ACHAccountType = "checking"
	AccountTypeSavings  ACHAccountType = "savings"
)

// ACHHolderType classifies the account owner
type ACHHolderType string

const (
	HolderTypeBusiness ACHHolderType = "business"
	HolderTypePersonal ACHHolderType = "personal"
)

// contact holds one side (billing or shipping) of the customer address book.
// BankAccount and CreditCard both embed two of these.
type contact struct {
	firstName string
	lastName  string
	company   string
	address1  string
	address2  string
	city      string
	state     string
	postcode  string
	country   string
	phone     string
	fax       string
}

// BankAccount is a mutable parameter container for an ACH funding source.
// It is constructed per request, mutated only through its own setters, and
// never shared between goroutines. Setters normalize input and always
// succeed; enum membership is checked only by Validate.
type BankAccount struct {
	accountNumber string
	routingNumber string
	accountType   string
	holderType    string
	bankName      string
	bankPhone     string
	bankAddress   string
	billing       contact
	shipping      contact
	email         string
	birthday      time.Time
	gender        string
	issueNumber   string
}

// NewBankAccount builds a bank account from a parameter map.
// Unknown keys are ignored silently.
func NewBankAccount(params map[string]string) *BankAccount {
	b := &BankAccount{}
	return b.Initialize(params)
}

// Initialize resets every field from the given mapping.
func (b *BankAccount) Initialize(params map[string]string) *BankAccount {
	*b = BankAccount{}
	for key, value := range params {
		b.applyParam(key, value)
	}
	return b
}

func (b *BankAccount) applyParam(key, value string) {
	switch key {
	case "accountNumber":
		b.SetAccountNumber(value)
	case "routingNumber":
		b.SetRoutingNumber(value)
	case "bankAccountType":
		b.SetAccountType(value)
	case "bankHolderAccountType":
		b.SetHolderType(value)
	case "bankName":
		b.SetBankName(value)
	case "bankPhone":
		b.SetBankPhone(value)
	case "bankAddress":
		b.SetBankAddress(value)
	case "name":
		b.SetName(value)
	case "firstName":
		b.SetFirstName(value)
	case "lastName":
		b.SetLastName(value)
	case "company":
		b.SetCompany(value)
	case "address1":
		b.SetAddress1(value)
	case "address2":
		b.SetAddress2(value)
	case "city":
		b.SetCity(value)
	case "state":
		b.SetState(value)
	case "postcode":
		b.SetPostcode(value)
	case "country":
		b.SetCountry(value)
	case "phone":
		b.SetPhone(value)
	case "fax":
		b.SetFax(value)
	case "billingFirstName":
		b.SetBillingFirstName(value)
	case "billingLastName":
		b.SetBillingLastName(value)
	case "billingCompany":
		b.SetBillingCompany(value)
	case "billingAddress1":
		b.SetBillingAddress1(value)
	case "billingAddress2":
		b.SetBillingAddress2(value)
	case "billingCity":
		b.SetBillingCity(value)
	case "billingState":
		b.SetBillingState(value)
	case "billingPostcode":
		b.SetBillingPostcode(value)
	case "billingCountry":
		b.SetBillingCountry(value)
	case "billingPhone":
		b.SetBillingPhone(value)
	case "billingFax":
		b.SetBillingFax(value)
	case "shippingFirstName":
		b.SetShippingFirstName(value)
	case "shippingLastName":
		b.SetShippingLastName(value)
	case "shippingCompany":
		b.SetShippingCompany(value)
	case "shippingAddress1":
		b.SetShippingAddress1(value)
	case "shippingAddress2":
		b.SetShippingAddress2(value)
	case "shippingCity":
		b.SetShippingCity(value)
	case "shippingState":
		b.SetShippingState(value)
	case "shippingPostcode":
		b.SetShippingPostcode(value)
	case "shippingCountry":
		b.SetShippingCountry(value)
	case "shippingPhone":
		b.SetShippingPhone(value)
	case "shippingFax":
		b.SetShippingFax(value)
	case "email":
		b.SetEmail(value)
	case "birthday":
		if t, err := timeutil.ParseDate("2006-01-02", value); err == nil {
			b.SetBirthday(t)
		}
	case "gender":
		b.SetGender(value)
	case "issueNumber":
		b.SetIssueNumber(value)
	}
}

// digitsOnly strips every non-digit character
func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// alphanumericOnly strips every character outside [0-9A-Za-z]
func alphanumericOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			return r
		}
		return -1
	}, s)
}

// SupportedAccountTypes returns the account types accepted by Validate.
// Also used for UI hinting.
func (b *BankAccount) SupportedAccountTypes() []ACHAccountType {
	return []ACHAccountType{AccountTypeChecking, AccountTypeSavings}
}

// SupportedHolderTypes returns the holder types accepted by Validate
func (b *BankAccount) SupportedHolderTypes() []ACHHolderType {
	return []ACHHolderType{HolderTypeBusiness, HolderTypePersonal}
}

// AccountNumber returns the account number, digits only
func (b *BankAccount) AccountNumber() string { return b.accountNumber }

// SetAccountNumber stores the account number with all non-digits stripped
func (b *BankAccount) SetAccountNumber(v string) *BankAccount {
	b.accountNumber = digitsOnly(v)
	return b
}

// NumberLastFour returns the trailing four digits of the account number,
// or empty when fewer than four digits are stored
func (b *BankAccount) NumberLastFour() string {
	if len(b.accountNumber) < 4 {
		return ""
	}
	return b.accountNumber[len(b.accountNumber)-4:]
}

// RoutingNumber returns the routing number, alphanumerics only
func (b *BankAccount) RoutingNumber() string { return b.routingNumber }

// SetRoutingNumber stores the routing number with non-alphanumerics stripped
func (b *BankAccount) SetRoutingNumber(v string) *BankAccount {
	b.routingNumber = alphanumericOnly(v)
	return b
}

// AccountType returns the raw account type value.
// Membership in SupportedAccountTypes is enforced by Validate, not here.
func (b *BankAccount) AccountType() string { return b.accountType }

func (b *BankAccount) SetAccountType(v string) *BankAccount {
	b.accountType = v
	return b
}

// HolderType returns the raw holder type value
func (b *BankAccount) HolderType() string { return b.holderType }

func (b *BankAccount) SetHolderType(v string) *BankAccount {
	b.holderType = v
	return b
}

func (b *BankAccount) BankName() string { return b.bankName }

func (b *BankAccount) SetBankName(v string) *BankAccount {
	b.bankName = v
	return b
}

func (b *BankAccount) BankPhone() string { return b.bankPhone }

func (b *BankAccount) SetBankPhone(v string) *BankAccount {
	b.bankPhone = v
	return b
}

func (b *BankAccount) BankAddress() string { return b.bankAddress }

func (b *BankAccount) SetBankAddress(v string) *BankAccount {
	b.bankAddress = v
	return b
}

// Name returns the billing first and last name joined with a space
func (b *BankAccount) Name() string {
	return strings.TrimSpace(b.billing.firstName + " " + b.billing.lastName)
}

// SetName splits on the first space into first and last name and assigns
// both the billing and shipping variants. A value with no space yields an
// empty last name.
func (b *BankAccount) SetName(v string) *BankAccount {
	first, last := splitName(v)
	b.billing.firstName = first
	b.billing.lastName = last
	b.shipping.firstName = first
	b.shipping.lastName = last
	return b
}

func splitName(v string) (first, last string) {
	if idx := strings.Index(v, " "); idx >= 0 {
		return v[:idx], v[idx+1:]
	}
	return v, ""
}

// FirstName returns the billing first name
func (b *BankAccount) FirstName() string { return b.billing.firstName }

// SetFirstName sets both billing and shipping first names
func (b *BankAccount) SetFirstName(v string) *BankAccount {
	b.billing.firstName = v
	b.shipping.firstName = v
	return b
}

// LastName returns the billing last name
func (b *BankAccount) LastName() string { return b.billing.lastName }

// SetLastName sets both billing and shipping last names
func (b *BankAccount) SetLastName(v string) *BankAccount {
	b.billing.lastName = v
	b.shipping.lastName = v
	return b
}

// Combined accessors: writing fans out to billing and shipping, reading
// returns the billing variant only.

func (b *BankAccount) Company() string { return b.billing.company }

func (b *BankAccount) SetCompany(v string) *BankAccount {
	b.billing.company = v
	b.shipping.company = v
	return b
}

func (b *BankAccount) Address1() string { return b.billing.address1 }

func (b *BankAccount) SetAddress1(v string) *BankAccount {
	b.billing.address1 = v
	b.shipping.address1 = v
	return b
}

func (b *BankAccount) Address2() string { return b.billing.address2 }

func (b *BankAccount) SetAddress2(v string) *BankAccount {
	b.billing.address2 = v
	b.shipping.address2 = v
	return b
}

func (b *BankAccount) City() string { return b.billing.city }

func (b *BankAccount) SetCity(v string) *BankAccount {
	b.billing.city = v
	b.shipping.city = v
	return b
}

func (b *BankAccount) State() string { return b.billing.state }

func (b *BankAccount) SetState(v string) *BankAccount {
	b.billing.state = v
	b.shipping.state = v
	return b
}

func (b *BankAccount) Postcode() string { return b.billing.postcode }

func (b *BankAccount) SetPostcode(v string) *BankAccount {
	b.billing.postcode = v
	b.shipping.postcode = v
	return b
}

func (b *BankAccount) Country() string { return b.billing.country }

func (b *BankAccount) SetCountry(v string) *BankAccount {
	b.billing.country = v
	b.shipping.country = v
	return b
}

func (b *BankAccount) Phone() string { return b.billing.phone }

func (b *BankAccount) SetPhone(v string) *BankAccount {
	b.billing.phone = digitsOnly(v)
	b.shipping.phone = b.billing.phone
	return b
}

func (b *BankAccount) Fax() string { return b.billing.fax }

func (b *BankAccount) SetFax(v string) *BankAccount {
	b.billing.fax = digitsOnly(v)
	b.shipping.fax = b.billing.fax
	return b
}

// Billing accessors

func (b *BankAccount) BillingName() string {
	return strings.TrimSpace(b.billing.firstName + " " + b.billing.lastName)
}

func (b *BankAccount) SetBillingName(v string) *BankAccount {
	b.billing.firstName, b.billing.lastName = splitName(v)
	return b
}

func (b *BankAccount) BillingFirstName() string { return b.billing.firstName }

func (b *BankAccount) SetBillingFirstName(v string) *BankAccount {
	b.billing.firstName = v
	return b
}

func (b *BankAccount) BillingLastName() string { return b.billing.lastName }

func (b *BankAccount) SetBillingLastName(v string) *BankAccount {
	b.billing.lastName = v
	return b
}

func (b *BankAccount) BillingCompany() string { return b.billing.company }

func (b *BankAccount) SetBillingCompany(v string) *BankAccount {
	b.billing.company = v
	return b
}

func (b *BankAccount) BillingAddress1() string { return b.billing.address1 }

func (b *BankAccount) SetBillingAddress1(v string) *BankAccount {
	b.billing.address1 = v
	return b
}

func (b *BankAccount) BillingAddress2() string { return b.billing.address2 }

func (b *BankAccount) SetBillingAddress2(v string) *BankAccount {
	b.billing.address2 = v
	return b
}

func (b *BankAccount) BillingCity() string { return b.billing.city }

func (b *BankAccount) SetBillingCity(v string) *BankAccount {
	b.billing.city = v
	return b
}

func (b *BankAccount) BillingState() string { return b.billing.state }

func (b *BankAccount) SetBillingState(v string) *BankAccount {
	b.billing.state = v
	return b
}

func (b *BankAccount) BillingPostcode() string { return b.billing.postcode }

func (b *BankAccount) SetBillingPostcode(v string) *BankAccount {
	b.billing.postcode = v
	return b
}

func (b *BankAccount) BillingCountry() string { return b.billing.country }

func (b *BankAccount) SetBillingCountry(v string) *BankAccount {
	b.billing.country = v
	return b
}

func (b *BankAccount) BillingPhone() string { return b.billing.phone }

func (b *BankAccount) SetBillingPhone(v string) *BankAccount {
	b.billing.phone = digitsOnly(v)
	return b
}

func (b *BankAccount) BillingFax() string { return b.billing.fax }

func (b *BankAccount) SetBillingFax(v string) *BankAccount {
	b.billing.fax = digitsOnly(v)
	return b
}

// Shipping accessors

func (b *BankAccount) ShippingName() string {
	return strings.TrimSpace(b.shipping.firstName + " " + b.shipping.lastName)
}

func (b *BankAccount) SetShippingName(v string) *BankAccount {
	b.shipping.firstName, b.shipping.lastName = splitName(v)
	return b
}

func (b *BankAccount) ShippingFirstName() string { return b.shipping.firstName }

func (b *BankAccount) SetShippingFirstName(v string) *BankAccount {
	b.shipping.firstName = v
	return b
}

func (b *BankAccount) ShippingLastName() string { return b.shipping.lastName }

func (b *BankAccount) SetShippingLastName(v string) *BankAccount {
	b.shipping.lastName = v
	return b
}

func (b *BankAccount) ShippingCompany() string { return b.shipping.company }

func (b *BankAccount) SetShippingCompany(v string) *BankAccount {
	b.shipping.company = v
	return b
}

func (b *BankAccount) ShippingAddress1() string { return b.shipping.address1 }

func (b *BankAccount) SetShippingAddress1(v string) *BankAccount {
	b.shipping.address1 = v
	return b
}

func (b *BankAccount) ShippingAddress2() string { return b.shipping.address2 }

func (b *BankAccount) SetShippingAddress2(v string) *BankAccount {
	b.shipping.address2 = v
	return b
}

func (b *BankAccount) ShippingCity() string { return b.shipping.city }

func (b *BankAccount) SetShippingCity(v string) *BankAccount {
	b.shipping.city = v
	return b
}

func (b *BankAccount) ShippingState() string { return b.shipping.state }

func (b *BankAccount) SetShippingState(v string) *BankAccount {
	b.shipping.state = v
	return b
}

func (b *BankAccount) ShippingPostcode() string { return b.shipping.postcode }

func (b *BankAccount) SetShippingPostcode(v string) *BankAccount {
	b.shipping.postcode = v
	return b
}

func (b *BankAccount) ShippingCountry() string { return b.shipping.country }

func (b *BankAccount) SetShippingCountry(v string) *BankAccount {
	b.shipping.country = v
	return b
}

func (b *BankAccount) ShippingPhone() string { return b.shipping.phone }

func (b *BankAccount) SetShippingPhone(v string) *BankAccount {
	b.shipping.phone = digitsOnly(v)
	return b
}

func (b *BankAccount) ShippingFax() string { return b.shipping.fax }

func (b *BankAccount) SetShippingFax(v string) *BankAccount {
	b.shipping.fax = digitsOnly(v)
	return b
}

func (b *BankAccount) Email() string { return b.email }

func (b *BankAccount) SetEmail(v string) *BankAccount {
	b.email = v
	return b
}

// Birthday formats the stored birthday with the given layout,
// or returns empty when no birthday is set
func (b *BankAccount) Birthday(layout string) string {
	if b.birthday.IsZero() {
		return ""
	}
	return b.birthday.Format(layout)
}

// SetBirthday stores the date portion of t in UTC
func (b *BankAccount) SetBirthday(t time.Time) *BankAccount {
	b.birthday = timeutil.DateOnly(t)
	return b
}

func (b *BankAccount) Gender() string { return b.gender }

func (b *BankAccount) SetGender(v string) *BankAccount {
	b.gender = v
	return b
}

// IssueNumber is vestigial (card-era field) but kept for parameter
// compatibility with callers that still send it.
func (b *BankAccount) IssueNumber() string { return b.issueNumber }

func (b *BankAccount) SetIssueNumber(v string) *BankAccount {
	b.issueNumber = v
	return b
}

// fieldValue resolves an extra required-key name for Validate
func (b *BankAccount) fieldValue(key string) string {
	switch key {
	case "accountNumber":
		return b.accountNumber
	case "routingNumber":
		return b.routingNumber
	case "bankAccountType":
		return b.accountType
	case "bankHolderAccountType":
		return b.holderType
	case "bankName":
		return b.bankName
	case "bankPhone":
		return b.bankPhone
	case "bankAddress":
		return b.bankAddress
	case "name":
		return b.Name()
	case "firstName":
		return b.billing.firstName
	case "lastName":
		return b.billing.lastName
	case "company":
		return b.billing.company
	case "address1":
		return b.billing.address1
	case "address2":
		return b.billing.address2
	case "city":
		return b.billing.city
	case "state":
		return b.billing.state
	case "postcode":
		return b.billing.postcode
	case "country":
		return b.billing.country
	case "phone":
		return b.billing.phone
	case "fax":
		return b.billing.fax
	case "email":
		return b.email
	case "gender":
		return b.gender
	case "issueNumber":
		return b.issueNumber
	case "birthday":
		return b.Birthday("2006-01-02")
	default:
		return ""
	}
}

// Validate checks required conditions in a fixed order and returns a
// validation error for the first one that fails. Callers must not assume
// all violations are reported; only the first is.
//
// Order: account type, holder type, account number, routing number, name,
// bank name, then each extra required key in the order given.
func (b *BankAccount) Validate(required ...string) error {
	if !b.accountTypeSupported() {
		return pkgerrors.NewValidationError("bankAccountType", "bank account type is not in the supported list")
	}
	if !b.holderTypeSupported() {
		return pkgerrors.NewValidationError("bankHolderAccountType", "bank holder account type is not in the supported list")
	}
	if b.accountNumber == "" {
		return pkgerrors.NewValidationError("accountNumber", "account number is required")
	}
	if b.routingNumber == "" {
		return pkgerrors.NewValidationError("routingNumber", "routing number is required")
	}
	if b.Name() == "" {
		return pkgerrors.NewValidationError("name", "name is required")
	}
	if b.bankName == "" {
		return pkgerrors.NewValidationError("bankName", "bank name is required")
	}
	for _, key := range required {
		if b.fieldValue(key) == "" {
			return pkgerrors.NewValidationError(key, key+" is required")
		}
	}
	return nil
}

func (b *BankAccount) accountTypeSupported() bool {
	for _, t := range b.SupportedAccountTypes() {
		if b.accountType == string(t) {
			return true
		}
	}
	return false
}

func (b *BankAccount) holderTypeSupported() bool {
	for _, t := range b.SupportedHolderTypes() {
		if b.holderType == string(t) {
			return true
		}
	}
	return false
}
