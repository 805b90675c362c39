package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreditRequestDTO struct {
	Amount         decimal.Decimal `json:"amount" swaggertype:"string" example:"300000"`
	Purpose        string          `json:"purpose" example:"inputs"`
	RepaymentWeeks int             `json:"repayment_period_weeks" example:"6"`
	AcceptTerms    bool            `json:"accept_terms" example:"true"`
}

type CreditDecideRequestDTO struct {
	RequestID      int              `json:"request_id" example:"1"`
	Approve        bool             `json:"approve" example:"true"`
	ApprovedAmount *decimal.Decimal `json:"approved_amount,omitempty" swaggertype:"string" example:"300000"`
}

type CreditRequestResponseDTO struct {
	ID              string          `json:"id" example:"7b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"`
	Amount          decimal.Decimal `json:"amount" swaggertype:"string" example:"300000"`
	Purpose         string          `json:"purpose" example:"inputs"`
	RepaymentWeeks  int             `json:"repayment_period_weeks" example:"6"`
	Status          string          `json:"status" example:"pending"`
	ApprovedAmount  decimal.Decimal `json:"approved_amount" swaggertype:"string" example:"300000"`
	CreditStartDate *time.Time      `json:"credit_start_date,omitempty"`
	CreditEndDate   *time.Time      `json:"credit_end_date,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

type DisbursementResponseDTO struct {
	Phase       int             `json:"phase" example:"1"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"100000"`
	ScheduledAt time.Time       `json:"scheduled_at" example:"2020-12-09T16:09:57+03:00"`
	Completed   bool            `json:"completed" example:"true"`
}

type EligibilityResponseDTO struct {
	Eligible      bool            `json:"eligible" example:"true"`
	Score         int             `json:"score" example:"700"`
	MaxAmount     decimal.Decimal `json:"max_amount,omitempty" swaggertype:"string" example:"100000"`
	InterestRate  decimal.Decimal `json:"interest_rate,omitempty" swaggertype:"string" example:"8"`
	RepaymentRate decimal.Decimal `json:"repayment_rate" swaggertype:"string" example:"85.71"`
	Reason        string          `json:"reason" example:"eligible with score 700 from 5 completed orders"`
}
