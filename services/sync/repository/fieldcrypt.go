package repository

import (
	"fmt"
	"time"

	"github.com/finmirror/finmirror/internal/pkg/models"
	"github.com/google/uuid"
)

// Explicit field-level encryption registry: every entity has one row type and
// one converter pair, listing exactly which columns are stored as ciphertext.
// Amounts, display names, payees, descriptions and credentials are encrypted;
// natural keys used only for equality survive encryption because the codec is
// deterministic. Dates and type/status enums stay plaintext so the reporting
// views can filter and sort on them.

type providerRow struct {
	ID                uuid.UUID `db:"id"`
	UserID            uuid.UUID `db:"user_id"`
	Name              string    `db:"name"`
	AuthorizationCode string    `db:"authorization_code"` // encrypted
	LogoURL           string    `db:"logo_url"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

func (r *SyncRepo) decryptProvider(row *providerRow) (*models.Provider, error) {
	code, err := r.codec.Decrypt(row.AuthorizationCode)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt provider %s authorization code: %w", row.ID, err)
	}
	return &models.Provider{
		ID:                row.ID,
		UserID:            row.UserID,
		Name:              row.Name,
		AuthorizationCode: code,
		LogoURL:           row.LogoURL,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}, nil
}

type accountRow struct {
	ID         uuid.UUID `db:"id"`
	ProviderID uuid.UUID `db:"provider_id"`
	ExternalID string    `db:"external_id"`
	Name       string    `db:"name"` // encrypted
	Type       string    `db:"type"`
	Currency   string    `db:"currency"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r *SyncRepo) encryptAccount(a *models.Account) (*accountRow, error) {
	name, err := r.codec.Encrypt(a.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt account name: %w", err)
	}
	return &accountRow{
		ID:         a.ID,
		ProviderID: a.ProviderID,
		ExternalID: a.ExternalID,
		Name:       name,
		Type:       a.Type,
		Currency:   a.Currency,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}, nil
}

func (r *SyncRepo) decryptAccount(row *accountRow) (*models.Account, error) {
	name, err := r.codec.Decrypt(row.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt account %s name: %w", row.ID, err)
	}
	return &models.Account{
		ID:         row.ID,
		ProviderID: row.ProviderID,
		ExternalID: row.ExternalID,
		Name:       name,
		Type:       row.Type,
		Currency:   row.Currency,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}, nil
}

type balanceRow struct {
	ID        uuid.UUID `db:"id"`
	AccountID uuid.UUID `db:"account_id"`
	Currency  string    `db:"currency"`
	Available string    `db:"available"` // encrypted
	Current   string    `db:"current"`   // encrypted
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *SyncRepo) encryptBalance(b *models.AccountBalance) (*balanceRow, error) {
	available, err := r.codec.EncryptDecimal(b.Available)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt available balance: %w", err)
	}
	current, err := r.codec.EncryptDecimal(b.Current)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt current balance: %w", err)
	}
	return &balanceRow{
		ID:        b.ID,
		AccountID: b.AccountID,
		Currency:  b.Currency,
		Available: available,
		Current:   current,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}, nil
}

func (r *SyncRepo) decryptBalance(row *balanceRow) (*models.AccountBalance, error) {
	available, err := r.codec.DecryptDecimal(row.Available)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt balance %s: %w", row.ID, err)
	}
	current, err := r.codec.DecryptDecimal(row.Current)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt balance %s: %w", row.ID, err)
	}
	return &models.AccountBalance{
		ID:        row.ID,
		AccountID: row.AccountID,
		Currency:  row.Currency,
		Available: available,
		Current:   current,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

type transactionRow struct {
	ID          uuid.UUID `db:"id"`
	ProviderID  uuid.UUID `db:"provider_id"`
	AccountID   uuid.UUID `db:"account_id"`
	ExternalID  string    `db:"external_id"`
	Description string    `db:"description"` // encrypted
	Type        string    `db:"type"`
	Category    string    `db:"category"`
	Amount      string    `db:"amount"` // encrypted
	Currency    string    `db:"currency"`
	OccurredAt  time.Time `db:"occurred_at"`
	Pending     bool      `db:"pending"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r *SyncRepo) encryptTransaction(t *models.Transaction) (*transactionRow, error) {
	description, err := r.codec.Encrypt(t.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt transaction description: %w", err)
	}
	amount, err := r.codec.EncryptDecimal(t.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt transaction amount: %w", err)
	}
	return &transactionRow{
		ID:          t.ID,
		ProviderID:  t.ProviderID,
		AccountID:   t.AccountID,
		ExternalID:  t.ExternalID,
		Description: description,
		Type:        t.Type,
		Category:    t.Category,
		Amount:      amount,
		Currency:    t.Currency,
		OccurredAt:  t.OccurredAt,
		Pending:     t.Pending,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}, nil
}

func (r *SyncRepo) decryptTransaction(row *transactionRow) (*models.Transaction, error) {
	description, err := r.codec.Decrypt(row.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt transaction %s: %w", row.ID, err)
	}
	amount, err := r.codec.DecryptDecimal(row.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt transaction %s: %w", row.ID, err)
	}
	return &models.Transaction{
		ID:          row.ID,
		ProviderID:  row.ProviderID,
		AccountID:   row.AccountID,
		ExternalID:  row.ExternalID,
		Description: description,
		Type:        row.Type,
		Category:    row.Category,
		Amount:      amount,
		Currency:    row.Currency,
		OccurredAt:  row.OccurredAt,
		Pending:     row.Pending,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

type standingOrderRow struct {
	ID        uuid.UUID `db:"id"`
	AccountID uuid.UUID `db:"account_id"`
	Reference string    `db:"reference"`
	Payee     string    `db:"payee"` // encrypted
	Frequency string    `db:"frequency"`
	Status    string    `db:"status"`
	Currency  string    `db:"currency"`

	NextPaymentDate    *time.Time `db:"next_payment_date"`
	NextPaymentAmount  string     `db:"next_payment_amount"` // encrypted
	FirstPaymentDate   *time.Time `db:"first_payment_date"`
	FirstPaymentAmount string     `db:"first_payment_amount"` // encrypted
	FinalPaymentDate   *time.Time `db:"final_payment_date"`
	FinalPaymentAmount string     `db:"final_payment_amount"` // encrypted

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *SyncRepo) encryptStandingOrder(s *models.StandingOrder) (*standingOrderRow, error) {
	payee, err := r.codec.Encrypt(s.Payee)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt standing order payee: %w", err)
	}
	next, err := r.codec.EncryptDecimal(s.NextPaymentAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt standing order amount: %w", err)
	}
	first, err := r.codec.EncryptDecimal(s.FirstPaymentAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt standing order amount: %w", err)
	}
	final, err := r.codec.EncryptDecimal(s.FinalPaymentAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt standing order amount: %w", err)
	}
	return &standingOrderRow{
		ID:                 s.ID,
		AccountID:          s.AccountID,
		Reference:          s.Reference,
		Payee:              payee,
		Frequency:          s.Frequency,
		Status:             s.Status,
		Currency:           s.Currency,
		NextPaymentDate:    s.NextPaymentDate,
		NextPaymentAmount:  next,
		FirstPaymentDate:   s.FirstPaymentDate,
		FirstPaymentAmount: first,
		FinalPaymentDate:   s.FinalPaymentDate,
		FinalPaymentAmount: final,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}, nil
}

func (r *SyncRepo) decryptStandingOrder(row *standingOrderRow) (*models.StandingOrder, error) {
	payee, err := r.codec.Decrypt(row.Payee)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt standing order %s: %w", row.ID, err)
	}
	next, err := r.codec.DecryptDecimal(row.NextPaymentAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt standing order %s: %w", row.ID, err)
	}
	first, err := r.codec.DecryptDecimal(row.FirstPaymentAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt standing order %s: %w", row.ID, err)
	}
	final, err := r.codec.DecryptDecimal(row.FinalPaymentAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt standing order %s: %w", row.ID, err)
	}
	return &models.StandingOrder{
		ID:                 row.ID,
		AccountID:          row.AccountID,
		Reference:          row.Reference,
		Payee:              payee,
		Frequency:          row.Frequency,
		Status:             row.Status,
		Currency:           row.Currency,
		NextPaymentDate:    row.NextPaymentDate,
		NextPaymentAmount:  next,
		FirstPaymentDate:   row.FirstPaymentDate,
		FirstPaymentAmount: first,
		FinalPaymentDate:   row.FinalPaymentDate,
		FinalPaymentAmount: final,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}, nil
}

type directDebitRow struct {
	ID         uuid.UUID `db:"id"`
	AccountID  uuid.UUID `db:"account_id"`
	ExternalID string    `db:"external_id"`
	Name       string    `db:"name"` // encrypted
	Status     string    `db:"status"`
	Currency   string    `db:"currency"`

	PreviousPaymentAt     *time.Time `db:"previous_payment_at"`
	PreviousPaymentAmount string     `db:"previous_payment_amount"` // encrypted

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *SyncRepo) encryptDirectDebit(d *models.DirectDebit) (*directDebitRow, error) {
	name, err := r.codec.Encrypt(d.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt direct debit name: %w", err)
	}
	amount, err := r.codec.EncryptDecimal(d.PreviousPaymentAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt direct debit amount: %w", err)
	}
	return &directDebitRow{
		ID:                    d.ID,
		AccountID:             d.AccountID,
		ExternalID:            d.ExternalID,
		Name:                  name,
		Status:                d.Status,
		Currency:              d.Currency,
		PreviousPaymentAt:     d.PreviousPaymentAt,
		PreviousPaymentAmount: amount,
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
	}, nil
}

func (r *SyncRepo) decryptDirectDebit(row *directDebitRow) (*models.DirectDebit, error) {
	name, err := r.codec.Decrypt(row.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt direct debit %s: %w", row.ID, err)
	}
	amount, err := r.codec.DecryptDecimal(row.PreviousPaymentAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt direct debit %s: %w", row.ID, err)
	}
	return &models.DirectDebit{
		ID:                    row.ID,
		AccountID:             row.AccountID,
		ExternalID:            row.ExternalID,
		Name:                  name,
		Status:                row.Status,
		Currency:              row.Currency,
		PreviousPaymentAt:     row.PreviousPaymentAt,
		PreviousPaymentAmount: amount,
		CreatedAt:             row.CreatedAt,
		UpdatedAt:             row.UpdatedAt,
	}, nil
}

type accessTokenRow struct {
	ID           uuid.UUID `db:"id"`
	ProviderID   uuid.UUID `db:"provider_id"`
	Token        string    `db:"token"`         // encrypted
	RefreshToken string    `db:"refresh_token"` // encrypted
	ExpiresIn    int64     `db:"expires_in"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r *SyncRepo) encryptAccessToken(t *models.AccessToken) (*accessTokenRow, error) {
	token, err := r.codec.Encrypt(t.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt access token: %w", err)
	}
	refresh, err := r.codec.Encrypt(t.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt refresh token: %w", err)
	}
	return &accessTokenRow{
		ID:           t.ID,
		ProviderID:   t.ProviderID,
		Token:        token,
		RefreshToken: refresh,
		ExpiresIn:    t.ExpiresIn,
		CreatedAt:    t.CreatedAt,
	}, nil
}

func (r *SyncRepo) decryptAccessToken(row *accessTokenRow) (*models.AccessToken, error) {
	token, err := r.codec.Decrypt(row.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt access token %s: %w", row.ID, err)
	}
	refresh, err := r.codec.Decrypt(row.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt refresh token %s: %w", row.ID, err)
	}
	return &models.AccessToken{
		ID:           row.ID,
		ProviderID:   row.ProviderID,
		Token:        token,
		RefreshToken: refresh,
		ExpiresIn:    row.ExpiresIn,
		CreatedAt:    row.CreatedAt,
	}, nil
}
