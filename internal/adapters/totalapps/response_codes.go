package totalapps

import (
	pkgerrors "github.com/Awolacademy/omnipay-total-apps-gateway/pkg/errors"
)

// ResponseCodeInfo contains detailed information about a processor result code
type ResponseCodeInfo struct {
	Code               string
	Display            string
	Description        string
	IsApproved         bool
	IsDeclined         bool
	IsRetriable        bool
	RequiresUserAction bool
	Category           pkgerrors.ErrorCategory
	UserMessage        string
}

// Result code table for the transaction API. The processor uses the same
// code space for card and ACH transactions.
var responseCodes = map[string]ResponseCodeInfo{
	"100": {
		Code:        "100",
		Display:     "APPROVED",
		Description: "Transaction was approved",
		IsApproved:  true,
		Category:    pkgerrors.CategoryApproved,
		UserMessage: "Payment successful",
	},
	"200": {
		Code:               "200",
		Display:            "DECLINED",
		Description:        "Transaction was declined by processor",
		IsDeclined:         true,
		IsRetriable:        false,
		RequiresUserAction: true,
		Category:           pkgerrors.CategoryDeclined,
		UserMessage:        "Transaction declined. Please contact your bank or use a different payment method.",
	},
	"201": {
		Code:               "201",
		Display:            "DO NOT HONOR",
		Description:        "Do not honor",
		IsDeclined:         true,
		IsRetriable:        false,
		RequiresUserAction: true,
		Category:           pkgerrors.CategoryDeclined,
		UserMessage:        "Transaction declined by your bank. Please contact your bank.",
	},
	"202": {
		Code:               "202",
		Display:            "INSUFF FUNDS",
		Description:        "Insufficient funds",
		IsDeclined:         true,
		IsRetriable:        true,
		RequiresUserAction: true,
		Category:           pkgerrors.CategoryInsufficientFunds,
		UserMessage:        "Insufficient funds. Please use a different payment method or add funds to your account.",
	},
	"223": {
		Code:               "223",
		Display:            "EXPIRED CARD",
		Description:        "Expired card",
		IsDeclined:         true,
		IsRetriable:        false,
		RequiresUserAction: true,
		Category:           pkgerrors.CategoryExpiredCard,
		UserMessage:        "Your card has expired. Please use a different payment method.",
	},
	"224": {
		Code:               "224",
		Display:            "INVALID EXP",
		Description:        "Invalid expiration date",
		IsDeclined:         true,
		IsRetriable:        false,
		RequiresUserAction: true,
		Category:           pkgerrors.CategoryInvalidAccount,
		UserMessage:        "Invalid expiration date. Please check your card details.",
	},
	"225": {
		Code:               "225",
		Display:            "INVALID CVV",
		Description:        "Invalid card security code",
		IsDeclined:         true,
		IsRetriable:        false,
		RequiresUserAction: true,
		Category:           pkgerrors.CategoryInvalidAccount,
		UserMessage:        "Incorrect security code. Please check the code on your card.",
	},
	"240": {
		Code:        "240",
		Display:     "CALL ISSUER",
		Description: "Call issuer for further information",
		IsDeclined:  true,
		IsRetriable: false,
		Category:    pkgerrors.CategoryDeclined,
		UserMessage: "Transaction declined. Please contact your bank.",
	},
	"250": {
		Code:               "250",
		Display:            "PICKUP CARD",
		Description:        "Pickup card",
		IsDeclined:         true,
		IsRetriable:        false,
		RequiresUserAction: true,
		Category:           pkgerrors.CategoryFraud,
		UserMessage:        "Transaction declined for security reasons. Please contact your bank.",
	},
	"300": {
		Code:        "300",
		Display:     "REJECTED",
		Description: "Transaction was rejected by gateway",
		IsDeclined:  true,
		IsRetriable: false,
		Category:    pkgerrors.CategoryInvalidRequest,
		UserMessage: "Transaction rejected. Please check the request details.",
	},
	"400": {
		Code:        "400",
		Display:     "ERROR",
		Description: "Transaction error returned by processor",
		IsDeclined:  true,
		IsRetriable: true,
		Category:    pkgerrors.CategorySystemError,
		UserMessage: "Processor error. Please try again in a few moments.",
	},
	"410": {
		Code:        "410",
		Display:     "INVALID MERCHANT CONFIG",
		Description: "Invalid merchant configuration",
		IsDeclined:  true,
		IsRetriable: false,
		Category:    pkgerrors.CategoryInvalidRequest,
		UserMessage: "Merchant configuration error. Please contact support.",
	},
	"420": {
		Code:        "420",
		Display:     "COMM ERROR",
		Description: "Communication error with processor",
		IsDeclined:  true,
		IsRetriable: true,
		Category:    pkgerrors.CategorySystemError,
		UserMessage: "System error. Please try again in a few moments.",
	},
}

// GetResponseCode retrieves result code information, with a safe default
// for codes not in the table
func GetResponseCode(code string) ResponseCodeInfo {
	if info, exists := responseCodes[code]; exists {
		return info
	}
	return ResponseCodeInfo{
		Code:        code,
		Display:     "UNKNOWN",
		Description: "Unknown response code",
		IsDeclined:  true,
		IsRetriable: false,
		Category:    pkgerrors.CategoryDeclined,
		UserMessage: "Transaction declined. Please try a different payment method or contact support.",
	}
}

// ToPaymentError converts a result code to a PaymentError
func (r ResponseCodeInfo) ToPaymentError(gatewayMessage string) *pkgerrors.PaymentError {
	return &pkgerrors.PaymentError{
		Code:           r.Code,
		Message:        r.UserMessage,
		GatewayMessage: gatewayMessage,
		IsRetriable:    r.IsRetriable,
		Category:       r.Category,
		Details:        map[string]interface{}{"display": r.Display, "description": r.Description},
	}
}
