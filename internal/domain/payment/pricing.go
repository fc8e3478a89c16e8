package payment

import "github.com/barshopapp/barshop-api/internal/httperr"

// ===============================
// Customer Types / Pricing
// ===============================

type CustomerType string

const (
	CustomerStudent      CustomerType = "student"
	CustomerProfessional CustomerType = "professional"
)

// Fixed tiers. The amount is fully determined by the customer type; there is
// no override or partial payment.
const (
	StudentAmount      = 10.0
	ProfessionalAmount = 15.0
)

func AmountFor(ct CustomerType) (float64, error) {
	switch ct {
	case CustomerStudent:
		return StudentAmount, nil
	case CustomerProfessional:
		return ProfessionalAmount, nil
	}
	return 0, httperr.ErrBusiness("invalid_customer_type")
}

// ===============================
// Payment Method / Status
// ===============================

const (
	MethodCash  = "cash"
	MethodCard  = "card"
	MethodOther = "other"
)

func IsValidMethod(m string) bool {
	switch m {
	case MethodCash, MethodCard, MethodOther:
		return true
	}
	return false
}

const (
	StatusCompleted = "completed"
	StatusRefunded  = "refunded"
)
