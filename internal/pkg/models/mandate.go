package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StandingOrder represents a recurring outgoing payment under an account.
// The remote side provides no stable id, so the (reference, payee) pair is
// used as the natural key. Two distinct orders sharing both fields would
// collide; the risk is inherited from the source data.
type StandingOrder struct {
	ID        uuid.UUID `db:"id" json:"id"`
	AccountID uuid.UUID `db:"account_id" json:"account_id"`
	Reference string    `db:"reference" json:"reference"`
	Payee     string    `db:"payee" json:"payee"`
	Frequency string    `db:"frequency" json:"frequency"`
	Status    string    `db:"status" json:"status"`
	Currency  string    `db:"currency" json:"currency"`

	NextPaymentDate    *time.Time      `db:"next_payment_date" json:"next_payment_date,omitempty"`
	NextPaymentAmount  decimal.Decimal `db:"next_payment_amount" json:"next_payment_amount"`
	FirstPaymentDate   *time.Time      `db:"first_payment_date" json:"first_payment_date,omitempty"`
	FirstPaymentAmount decimal.Decimal `db:"first_payment_amount" json:"first_payment_amount"`
	FinalPaymentDate   *time.Time      `db:"final_payment_date" json:"final_payment_date,omitempty"`
	FinalPaymentAmount decimal.Decimal `db:"final_payment_amount" json:"final_payment_amount"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// DirectDebit represents a direct debit mandate under an account, keyed by the
// provider-supplied direct debit id.
type DirectDebit struct {
	ID         uuid.UUID `db:"id" json:"id"`
	AccountID  uuid.UUID `db:"account_id" json:"account_id"`
	ExternalID string    `db:"external_id" json:"external_id"`
	Name       string    `db:"name" json:"name"`
	Status     string    `db:"status" json:"status"`
	Currency   string    `db:"currency" json:"currency"`

	PreviousPaymentAt     *time.Time      `db:"previous_payment_at" json:"previous_payment_at,omitempty"`
	PreviousPaymentAmount decimal.Decimal `db:"previous_payment_amount" json:"previous_payment_amount"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
