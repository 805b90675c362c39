package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
}

// Order is the slice of the marketplace order history consumed by the
// eligibility scorer. Orders themselves are owned by the catalog service.
type Order struct {
	ID         int             `db:"id"`
	UserID     int             `db:"user_id"`
	Status     string          `db:"status"`
	TotalPrice decimal.Decimal `db:"total_price"`
	CreatedAt  time.Time       `db:"created_at"`
}

const (
	OrderStatusPending   string = "PENDING"
	OrderStatusCompleted string = "COMPLETED"
	OrderStatusCancelled string = "CANCELLED"
	OrderStatusReturned  string = "RETURNED"
)

// Wallet holds spendable funds for one user. Balance is never assigned
// directly: every change goes through a ledger mutation that also appends
// a WalletTransaction row. BorrowedTotal is cumulative credit ever
// disbursed; it is not reduced by repayments.
type Wallet struct {
	ID            int             `db:"id"`
	UserID        int             `db:"user_id"`
	Balance       decimal.Decimal `db:"balance"`
	CreditLimit   decimal.Decimal `db:"credit_limit"`
	BorrowedTotal decimal.Decimal `db:"borrowed_total"`
	IsFrozen      bool            `db:"is_frozen"`
}

const (
	TxTypeCredit         string = "CREDIT"
	TxTypeDebit          string = "DEBIT"
	TxTypeFacilityCredit string = "FACILITY_CREDIT"

	TxStatusPending   string = "PENDING"
	TxStatusCompleted string = "COMPLETED"
)

// WalletTransaction is one append-only ledger row. Amounts are always
// positive; the type carries the direction.
type WalletTransaction struct {
	ID        int             `db:"id"`
	UserID    int             `db:"user_id"`
	WalletID  int             `db:"wallet_id"`
	Amount    decimal.Decimal `db:"amount"`
	Type      string          `db:"transaction_type"`
	Status    string          `db:"status"`
	CreatedAt time.Time       `db:"created_at"`
}

const (
	FacilityStatusPending  string = "pending"
	FacilityStatusApproved string = "approved"
	FacilityStatusRejected string = "rejected"
)

// CreditFacilityRequest is the request/approval state machine record.
// pending transitions to exactly one of approved/rejected, never back.
type CreditFacilityRequest struct {
	ID                int             `db:"id"`
	PublicID          string          `db:"public_id"`
	UserID            int             `db:"user_id"`
	RequestedAmount   decimal.Decimal `db:"requested_amount"`
	Purpose           string          `db:"purpose"`
	RepaymentWeeks    int             `db:"repayment_weeks"`
	AcceptTerms       bool            `db:"accept_terms"`
	Status            string          `db:"status"`
	ApprovedAmount    decimal.Decimal `db:"approved_amount"`
	ApprovedAt        *time.Time      `db:"approved_at"`
	CreditStartDate   *time.Time      `db:"credit_start_date"`
	CreditEndDate     *time.Time      `db:"credit_end_date"`
	ApprovedByAdminID *int            `db:"approved_by_admin_id"`
	CreatedAt         time.Time       `db:"created_at"`
}

// Disbursement is one of the three scheduled payouts of an approved
// facility. Completed rows are terminal and are never re-processed.
type Disbursement struct {
	ID          int             `db:"id"`
	FacilityID  int             `db:"credit_facility_id"`
	UserID      int             `db:"user_id"`
	Amount      decimal.Decimal `db:"amount"`
	Phase       int             `db:"phase"`
	ScheduledAt time.Time       `db:"scheduled_at"`
	Completed   bool            `db:"completed"`
}

// CreditAssessment is the append-only audit record written by the
// eligibility scorer on every run, eligible or not.
type CreditAssessment struct {
	ID            int             `db:"id"`
	UserID        int             `db:"user_id"`
	TotalSpending decimal.Decimal `db:"total_spending"`
	RepaymentRate decimal.Decimal `db:"repayment_rate"`
	IsEligible    bool            `db:"is_eligible"`
	Comments      string          `db:"comments"`
	CreatedAt     time.Time       `db:"created_at"`
}
