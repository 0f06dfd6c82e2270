package models

import (
	"fmt"
	"strings"
	"time"

	pkgerrors "github.com/Awolacademy/omnipay-total-apps-gateway/pkg/errors"
)

// CreditCard is a mutable parameter container for a card funding source,
// in the same accessor style as BankAccount. The number is stripped to
// digits on write; expiry checks happen only in Validate.
type CreditCard struct {
	number      string
	expiryMonth int
	expiryYear  int
	cvv         string
	billing     contact
	shipping    contact
	email       string
}

// NewCreditCard builds a credit card from a parameter map.
// Unknown keys are ignored silently.
func NewCreditCard(params map[string]string) *CreditCard {
	c := &CreditCard{}
	return c.Initialize(params)
}

// Initialize resets every field from the given mapping.
func (c *CreditCard) Initialize(params map[string]string) *CreditCard {
	*c = CreditCard{}
	for key, value := range params {
		switch key {
		case "number":
			c.SetNumber(value)
		case "expiryMonth":
			var m int
			fmt.Sscanf(value, "%d", &m)
			c.SetExpiryMonth(m)
		case "expiryYear":
			var y int
			fmt.Sscanf(value, "%d", &y)
			c.SetExpiryYear(y)
		case "cvv":
			c.SetCVV(value)
		case "name":
			c.SetName(value)
		case "firstName":
			c.SetFirstName(value)
		case "lastName":
			c.SetLastName(value)
		case "company":
			c.SetCompany(value)
		case "address1":
			c.SetAddress1(value)
		case "address2":
			c.SetAddress2(value)
		case "city":
			c.SetCity(value)
		case "state":
			c.SetState(value)
		case "postcode":
			c.SetPostcode(value)
		case "country":
			c.SetCountry(value)
		case "phone":
			c.SetPhone(value)
		case "email":
			c.SetEmail(value)
		}
	}
	return c
}

// Number returns the card number, digits only
func (c *CreditCard) Number() string { return c.number }

// SetNumber stores the card number with all non-digits stripped
func (c *CreditCard) SetNumber(v string) *CreditCard {
	c.number = digitsOnly(v)
	return c
}

// NumberLastFour returns the trailing four digits of the card number,
// or empty when fewer than four digits are stored
func (c *CreditCard) NumberLastFour() string {
	if len(c.number) < 4 {
		return ""
	}
	return c.number[len(c.number)-4:]
}

// MaskedNumber returns the number with all but the last four digits masked
func (c *CreditCard) MaskedNumber() string {
	last := c.NumberLastFour()
	if last == "" {
		return ""
	}
	return strings.Repeat("*", len(c.number)-4) + last
}

func (c *CreditCard) ExpiryMonth() int { return c.expiryMonth }

func (c *CreditCard) SetExpiryMonth(v int) *CreditCard {
	c.expiryMonth = v
	return c
}

func (c *CreditCard) ExpiryYear() int { return c.expiryYear }

func (c *CreditCard) SetExpiryYear(v int) *CreditCard {
	c.expiryYear = v
	return c
}

// ExpiryDate returns the expiry formatted as MMYY, the wire format the
// processor expects, or empty when either part is unset
func (c *CreditCard) ExpiryDate() string {
	if c.expiryMonth == 0 || c.expiryYear == 0 {
		return ""
	}
	return fmt.Sprintf("%02d%02d", c.expiryMonth, c.expiryYear%100)
}

func (c *CreditCard) CVV() string { return c.cvv }

func (c *CreditCard) SetCVV(v string) *CreditCard {
	c.cvv = digitsOnly(v)
	return c
}

// Name returns the billing first and last name joined with a space
func (c *CreditCard) Name() string {
	return strings.TrimSpace(c.billing.firstName + " " + c.billing.lastName)
}

// SetName splits on the first space and assigns both billing and shipping
func (c *CreditCard) SetName(v string) *CreditCard {
	first, last := splitName(v)
	c.billing.firstName = first
	c.billing.lastName = last
	c.shipping.firstName = first
	c.shipping.lastName = last
	return c
}

func (c *CreditCard) FirstName() string { return c.billing.firstName }

func (c *CreditCard) SetFirstName(v string) *CreditCard {
	c.billing.firstName = v
	c.shipping.firstName = v
	return c
}

func (c *CreditCard) LastName() string { return c.billing.lastName }

func (c *CreditCard) SetLastName(v string) *CreditCard {
	c.billing.lastName = v
	c.shipping.lastName = v
	return c
}

func (c *CreditCard) Company() string { return c.billing.company }

func (c *CreditCard) SetCompany(v string) *CreditCard {
	c.billing.company = v
	c.shipping.company = v
	return c
}

func (c *CreditCard) Address1() string { return c.billing.address1 }

func (c *CreditCard) SetAddress1(v string) *CreditCard {
	c.billing.address1 = v
	c.shipping.address1 = v
	return c
}

func (c *CreditCard) Address2() string { return c.billing.address2 }

func (c *CreditCard) SetAddress2(v string) *CreditCard {
	c.billing.address2 = v
	c.shipping.address2 = v
	return c
}

func (c *CreditCard) City() string { return c.billing.city }

func (c *CreditCard) SetCity(v string) *CreditCard {
	c.billing.city = v
	c.shipping.city = v
	return c
}

func (c *CreditCard) State() string { return c.billing.state }

func (c *CreditCard) SetState(v string) *CreditCard {
	c.billing.state = v
	c.shipping.state = v
	return c
}

func (c *CreditCard) Postcode() string { return c.billing.postcode }

func (c *CreditCard) SetPostcode(v string) *CreditCard {
	c.billing.postcode = v
	c.shipping.postcode = v
	return c
}

func (c *CreditCard) Country() string { return c.billing.country }

func (c *CreditCard) SetCountry(v string) *CreditCard {
	c.billing.country = v
	c.shipping.country = v
	return c
}

func (c *CreditCard) Phone() string { return c.billing.phone }

func (c *CreditCard) SetPhone(v string) *CreditCard {
	c.billing.phone = digitsOnly(v)
	c.shipping.phone = c.billing.phone
	return c
}

func (c *CreditCard) Email() string { return c.email }

func (c *CreditCard) SetEmail(v string) *CreditCard {
	c.email = v
	return c
}

// Shipping accessors

func (c *CreditCard) ShippingFirstName() string { return c.shipping.firstName }

func (c *CreditCard) SetShippingFirstName(v string) *CreditCard {
	c.shipping.firstName = v
	return c
}

func (c *CreditCard) ShippingLastName() string { return c.shipping.lastName }

func (c *CreditCard) SetShippingLastName(v string) *CreditCard {
	c.shipping.lastName = v
	return c
}

func (c *CreditCard) ShippingAddress1() string { return c.shipping.address1 }

func (c *CreditCard) SetShippingAddress1(v string) *CreditCard {
	c.shipping.address1 = v
	return c
}

func (c *CreditCard) ShippingCity() string { return c.shipping.city }

func (c *CreditCard) SetShippingCity(v string) *CreditCard {
	c.shipping.city = v
	return c
}

func (c *CreditCard) ShippingState() string { return c.shipping.state }

func (c *CreditCard) SetShippingState(v string) *CreditCard {
	c.shipping.state = v
	return c
}

func (c *CreditCard) ShippingPostcode() string { return c.shipping.postcode }

func (c *CreditCard) SetShippingPostcode(v string) *CreditCard {
	c.shipping.postcode = v
	return c
}

func (c *CreditCard) ShippingCountry() string { return c.shipping.country }

func (c *CreditCard) SetShippingCountry(v string) *CreditCard {
	c.shipping.country = v
	return c
}

// IsExpired reports whether the expiry date has passed.
// Unset expiry is not considered expired; Validate catches that case.
func (c *CreditCard) IsExpired() bool {
	if c.expiryYear == 0 || c.expiryMonth == 0 {
		return false
	}
	now := time.Now()
	if c.expiryYear < now.Year() {
		return true
	}
	return c.expiryYear == now.Year() && c.expiryMonth < int(now.Month())
}

// Validate checks required conditions in a fixed order and returns a
// validation error for the first one that fails.
//
// Order: number, expiry month, expiry year, name, then each extra
// required key in the order given.
func (c *CreditCard) Validate(required ...string) error {
	if c.number == "" {
		return pkgerrors.NewValidationError("number", "card number is required")
	}
	if c.expiryMonth < 1 || c.expiryMonth > 12 {
		return pkgerrors.NewValidationError("expiryMonth", "expiry month must be between 1 and 12")
	}
	if c.expiryYear == 0 {
		return pkgerrors.NewValidationError("expiryYear", "expiry year is required")
	}
	if c.Name() == "" {
		return pkgerrors.NewValidationError("name", "name is required")
	}
	for _, key := range required {
		if c.cardFieldValue(key) == "" {
			return pkgerrors.NewValidationError(key, key+" is required")
		}
	}
	return nil
}

func (c *CreditCard) cardFieldValue(key string) string {
	switch key {
	case "number":
		return c.number
	case "cvv":
		return c.cvv
	case "name":
		return c.Name()
	case "firstName":
		return c.billing.firstName
	case "lastName":
		return c.billing.lastName
	case "company":
		return c.billing.company
	case "address1":
		return c.billing.address1
	case "city":
		return c.billing.city
	case "state":
		return c.billing.state
	case "postcode":
		return c.billing.postcode
	case "country":
		return c.billing.country
	case "phone":
		return c.billing.phone
	case "email":
		return c.email
	default:
		return ""
	}
}
