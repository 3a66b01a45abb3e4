package request

import (
	"car-rental-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type RecordPaymentRequest struct {
	RentalID      uuid.UUID `json:"rental_id" binding:"required"`
	AmountCents   int64     `json:"amount_cents" binding:"required"`
	Method        string    `json:"method" binding:"required"`
	TransactionID *string   `json:"transaction_id,omitempty"`
	Status        string    `json:"status"`
	Kind          string    `json:"kind" binding:"required"`
}

func (r RecordPaymentRequest) ToCommand() commands.RecordPaymentRequest {
	return commands.RecordPaymentRequest{
		RentalID:      r.RentalID,
		AmountCents:   r.AmountCents,
		Method:        r.Method,
		TransactionID: r.TransactionID,
		Status:        r.Status,
		Kind:          r.Kind,
	}
}
