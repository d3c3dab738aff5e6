package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TokenResponse is the result of an authorization code exchange or a refresh
// token exchange against the provider's auth endpoint.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}

// RemoteAccount is an account as returned by the remote banking API.
type RemoteAccount struct {
	ExternalID  string `json:"account_id"`
	Type        string `json:"account_type"`
	DisplayName string `json:"display_name"`
	Currency    string `json:"currency"`
}

// RemoteBalance is a balance snapshot as returned by the remote banking API.
type RemoteBalance struct {
	Currency  string          `json:"currency"`
	Available decimal.Decimal `json:"available"`
	Current   decimal.Decimal `json:"current"`
}

// RemoteTransaction is a transaction as returned by the remote banking API.
// Pending is set by the client adapter depending on which endpoint produced it.
type RemoteTransaction struct {
	ExternalID  string          `json:"transaction_id"`
	Description string          `json:"description"`
	Type        string          `json:"transaction_type"`
	Category    string          `json:"transaction_category"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	OccurredAt  time.Time       `json:"timestamp"`
	Tags        []string        `json:"classification"`
	Pending     bool            `json:"-"`
}

// RemoteStandingOrder is a standing order as returned by the remote banking API.
type RemoteStandingOrder struct {
	Reference string `json:"reference"`
	Payee     string `json:"payee"`
	Frequency string `json:"frequency"`
	Status    string `json:"status"`
	Currency  string `json:"currency"`

	NextPaymentDate    *time.Time      `json:"next_payment_date"`
	NextPaymentAmount  decimal.Decimal `json:"next_payment_amount"`
	FirstPaymentDate   *time.Time      `json:"first_payment_date"`
	FirstPaymentAmount decimal.Decimal `json:"first_payment_amount"`
	FinalPaymentDate   *time.Time      `json:"final_payment_date"`
	FinalPaymentAmount decimal.Decimal `json:"final_payment_amount"`
}

// RemoteDirectDebit is a direct debit as returned by the remote banking API.
type RemoteDirectDebit struct {
	ExternalID string `json:"direct_debit_id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	Currency   string `json:"currency"`

	PreviousPaymentAt     *time.Time      `json:"previous_payment_timestamp"`
	PreviousPaymentAmount decimal.Decimal `json:"previous_payment_amount"`
}
