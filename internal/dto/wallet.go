package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type WalletResponseDTO struct {
	Balance       decimal.Decimal `json:"balance" swaggertype:"string" example:"1500.50"`
	CreditLimit   decimal.Decimal `json:"credit_limit" swaggertype:"string" example:"100000"`
	BorrowedTotal decimal.Decimal `json:"borrowed_total" swaggertype:"string" example:"100000"`
	IsFrozen      bool            `json:"is_frozen" example:"false"`
}

type WalletTopUpRequestDTO struct {
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"500"`
	Reference string          `json:"reference" example:"2377225624"`
}

type WalletFreezeRequestDTO struct {
	UserID int `json:"user_id" example:"42"`
}

type TransactionResponseDTO struct {
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"500"`
	Type      string          `json:"type" example:"FACILITY_CREDIT"`
	Status    string          `json:"status" example:"COMPLETED"`
	CreatedAt time.Time       `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}
