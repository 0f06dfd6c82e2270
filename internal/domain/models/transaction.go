package models

// TransactionType is the operation tag sent as the wire "type" key
type TransactionType string

const (
	TransactionTypeAuth    TransactionType = "auth"    // authorization only
	TransactionTypeSale    TransactionType = "sale"    // combined auth + capture (purchase)
	TransactionTypeCapture TransactionType = "capture" // capture a prior auth
	TransactionTypeRefund  TransactionType = "refund"  // return funds against a prior sale
	TransactionTypeVoid    TransactionType = "void"    // cancel before settlement
	TransactionTypeCredit  TransactionType = "credit"  // push funds without a prior sale
)

// VaultAction is the customer-vault operation tag. Vault requests replace
// the generic "type" key with one of these plus a vault id.
type VaultAction string

const (
	VaultActionStore  VaultAction = "add_customer"
	VaultActionUpdate VaultAction = "update_customer"
	VaultActionDelete VaultAction = "delete_customer"
)

// TransactionStatus represents the normalized gateway outcome
type TransactionStatus string

const (
	StatusApproved TransactionStatus = "approved" // response=1
	StatusDeclined TransactionStatus = "declined" // response=2
	StatusError    TransactionStatus = "error"    // response=3
)

// PaymentMethodType is the wire "payment" key value
type PaymentMethodType string

const (
	PaymentMethodTypeCreditCard PaymentMethodType = "creditcard"
	PaymentMethodTypeCheck      PaymentMethodType = "check"
)

// SECCode represents Standard Entry Class codes for ACH
type SECCode string

const (
	SECCodePPD SECCode = "PPD" // Prearranged Payment and Deposit
	SECCodeWEB SECCode = "WEB" // Internet-Initiated Entry
	SECCodeCCD SECCode = "CCD" // Corporate Credit or Debit
	SECCodeTEL SECCode = "TEL" // Telephone-Initiated Entry
)
