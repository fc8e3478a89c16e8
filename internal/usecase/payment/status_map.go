package payment

import (
	"context"
	"time"

	domain "github.com/barshopapp/barshop-api/internal/domain/payment"
)

type PaymentStatusEntry struct {
	CustomerType  string    `json:"customerType"`
	Amount        float64   `json:"amount"`
	PaymentDate   time.Time `json:"paymentDate"`
	PaymentStatus string    `json:"paymentStatus"`
}

type GetStatusMap struct {
	repo domain.Repository
}

func NewGetStatusMap(repo domain.Repository) *GetStatusMap {
	return &GetStatusMap{repo: repo}
}

// Execute returns appointmentID -> payment info for every recorded payment,
// so the appointment list can show paid/unpaid at a glance.
func (uc *GetStatusMap) Execute(
	ctx context.Context,
) (map[string]PaymentStatusEntry, error) {

	payments, err := uc.repo.ListPayments(ctx)
	if err != nil {
		return nil, err
	}

	statusMap := make(map[string]PaymentStatusEntry, len(payments))
	for _, p := range payments {
		statusMap[p.AppointmentID.String()] = PaymentStatusEntry{
			CustomerType:  p.CustomerType,
			Amount:        p.Amount,
			PaymentDate:   p.PaymentDate,
			PaymentStatus: "paid",
		}
	}

	return statusMap, nil
}
