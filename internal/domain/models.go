package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const CurrencyUSDT = "USDT"

// RecognizedCurrency reports whether the core accepts the currency tag.
// Amounts are carried as opaque USDT values; no conversion happens anywhere.
func RecognizedCurrency(currency string) bool {
	return currency == CurrencyUSDT
}

const (
	DepositStatusPending   = "pending"
	DepositStatusConfirmed = "confirmed"
	DepositStatusRejected  = "rejected"
)

const (
	WithdrawalStatusPending = "pending"
	WithdrawalStatusConfirm = "confirm"
	WithdrawalStatusReject  = "reject"
)

type User struct {
	ID             int        `db:"id"`
	Name           string     `db:"name"`
	Email          string     `db:"email"`
	PasswordHash   string     `db:"password_hash"`
	DailyStreak    int        `db:"daily_streak"`
	LastStreakDate *time.Time `db:"last_streak_date"`
	CreatedAt      time.Time  `db:"created_at"`
}

type Session struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

// Deposit is immutable after creation except for status, which an admin
// actor flips out-of-band. The core only ever reads it.
type Deposit struct {
	ID              int             `db:"id"`
	UserID          int             `db:"user_id"`
	Amount          decimal.Decimal `db:"amount"`
	Currency        string          `db:"currency"`
	TransactionHash string          `db:"transaction_hash"`
	PaymentProofURL string          `db:"payment_proof_url"`
	Status          string          `db:"status"`
	CreatedAt       time.Time       `db:"created_at"`
}

// PlanProgress accumulates profit and round state per (user, tier) pair.
// At most one row exists per pair; profit never goes negative.
type PlanProgress struct {
	ID            int             `db:"id"`
	UserID        int             `db:"user_id"`
	PlanAmount    int             `db:"plan_amount"`
	Profit        decimal.Decimal `db:"profit"`
	RoundCount    int             `db:"round_count"`
	LastRoundDate *time.Time      `db:"last_round_date"`
	CanWithdraw   bool            `db:"can_withdraw"`
}

type Withdrawal struct {
	ID               int             `db:"id"`
	UserID           int             `db:"user_id"`
	Amount           decimal.Decimal `db:"amount"`
	Currency         string          `db:"currency"`
	RecipientAddress string          `db:"recipient_address"`
	Status           string          `db:"status"`
	CreatedAt        time.Time       `db:"created_at"`
}

// StatusStats aggregates history rows per status for a user.
type StatusStats struct {
	Total       int             `db:"total"`
	Pending     int             `db:"pending"`
	Completed   int             `db:"completed"`
	Rejected    int             `db:"rejected"`
	TotalAmount decimal.Decimal `db:"total_amount"`
}

type FileUpload struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	FileName  string    `db:"file_name"`
	FileType  string    `db:"file_type"`
	FileSize  int64     `db:"file_size"`
	FileData  string    `db:"file_data"`
	CreatedAt time.Time `db:"created_at"`
}
