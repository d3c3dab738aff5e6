package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/finmirror/finmirror/internal/pkg/models"
	"github.com/google/uuid"
)

// GetProviderGraph loads the provider and everything it owns in one round of
// queries and decrypts the sensitive columns. The usecase reconciles against
// this in memory, so it must be complete: accounts, balances, transactions,
// standing orders, direct debits, recent sync records and the newest token.
func (r *SyncRepo) GetProviderGraph(ctx context.Context, providerID uuid.UUID) (*models.ProviderGraph, error) {
	var pRow providerRow
	err := r.db.GetContext(ctx, &pRow, `
		SELECT id, user_id, name, authorization_code, logo_url, created_at, updated_at
		FROM providers
		WHERE id = $1`, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}

	provider, err := r.decryptProvider(&pRow)
	if err != nil {
		return nil, err
	}

	err = r.db.SelectContext(ctx, &provider.Scopes, `
		SELECT scope FROM provider_scopes WHERE provider_id = $1 ORDER BY scope`, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get provider scopes: %w", err)
	}

	graph := &models.ProviderGraph{Provider: provider}

	var accountRows []*accountRow
	err = r.db.SelectContext(ctx, &accountRows, `
		SELECT id, provider_id, external_id, name, type, currency, created_at, updated_at
		FROM accounts
		WHERE provider_id = $1`, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	for _, row := range accountRows {
		account, err := r.decryptAccount(row)
		if err != nil {
			return nil, err
		}
		graph.Accounts = append(graph.Accounts, account)
	}

	var balanceRows []*balanceRow
	err = r.db.SelectContext(ctx, &balanceRows, `
		SELECT b.id, b.account_id, b.currency, b.available, b.current, b.created_at, b.updated_at
		FROM account_balances b
		JOIN accounts a ON a.id = b.account_id
		WHERE a.provider_id = $1`, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get balances: %w", err)
	}
	for _, row := range balanceRows {
		balance, err := r.decryptBalance(row)
		if err != nil {
			return nil, err
		}
		graph.Balances = append(graph.Balances, balance)
	}

	var transactionRows []*transactionRow
	err = r.db.SelectContext(ctx, &transactionRows, `
		SELECT id, provider_id, account_id, external_id, description, type, category,
		       amount, currency, occurred_at, pending, created_at, updated_at
		FROM transactions
		WHERE provider_id = $1`, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	for _, row := range transactionRows {
		txn, err := r.decryptTransaction(row)
		if err != nil {
			return nil, err
		}
		graph.Transactions = append(graph.Transactions, txn)
	}

	var orderRows []*standingOrderRow
	err = r.db.SelectContext(ctx, &orderRows, `
		SELECT s.id, s.account_id, s.reference, s.payee, s.frequency, s.status, s.currency,
		       s.next_payment_date, s.next_payment_amount,
		       s.first_payment_date, s.first_payment_amount,
		       s.final_payment_date, s.final_payment_amount,
		       s.created_at, s.updated_at
		FROM standing_orders s
		JOIN accounts a ON a.id = s.account_id
		WHERE a.provider_id = $1`, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get standing orders: %w", err)
	}
	for _, row := range orderRows {
		order, err := r.decryptStandingOrder(row)
		if err != nil {
			return nil, err
		}
		graph.StandingOrders = append(graph.StandingOrders, order)
	}

	var debitRows []*directDebitRow
	err = r.db.SelectContext(ctx, &debitRows, `
		SELECT d.id, d.account_id, d.external_id, d.name, d.status, d.currency,
		       d.previous_payment_at, d.previous_payment_amount, d.created_at, d.updated_at
		FROM direct_debits d
		JOIN accounts a ON a.id = d.account_id
		WHERE a.provider_id = $1`, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get direct debits: %w", err)
	}
	for _, row := range debitRows {
		debit, err := r.decryptDirectDebit(row)
		if err != nil {
			return nil, err
		}
		graph.DirectDebits = append(graph.DirectDebits, debit)
	}

	// Only the last day of records matters for freshness gating
	graph.SyncRecords, err = r.GetSyncRecords(ctx, providerID, time.Now().Add(-24*time.Hour))
	if err != nil {
		return nil, err
	}

	var tokenRows []*accessTokenRow
	err = r.db.SelectContext(ctx, &tokenRows, `
		SELECT id, provider_id, token, refresh_token, expires_in, created_at
		FROM access_tokens
		WHERE provider_id = $1
		ORDER BY created_at DESC
		LIMIT 1`, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get access token: %w", err)
	}
	if len(tokenRows) > 0 {
		graph.LatestToken, err = r.decryptAccessToken(tokenRows[0])
		if err != nil {
			return nil, err
		}
	}

	return graph, nil
}

// GetSyncRecords returns the provider's sync records created at or after the
// given time, newest first.
func (r *SyncRepo) GetSyncRecords(ctx context.Context, providerID uuid.UUID, since time.Time) ([]*models.SyncRecord, error) {
	var records []*models.SyncRecord
	err := r.db.SelectContext(ctx, &records, `
		SELECT id, provider_id, account_id, resource_type, created_at
		FROM sync_records
		WHERE provider_id = $1 AND created_at >= $2
		ORDER BY created_at DESC`, providerID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get sync records: %w", err)
	}
	return records, nil
}

// SaveAccessToken persists a token row immediately, outside the batch
// transaction. A consumed authorization code or refresh token must survive a
// later pass failure.
func (r *SyncRepo) SaveAccessToken(ctx context.Context, token *models.AccessToken) error {
	row, err := r.encryptAccessToken(token)
	if err != nil {
		return err
	}

	_, err = r.db.NamedExecContext(ctx, `
		INSERT INTO access_tokens (id, provider_id, token, refresh_token, expires_in, created_at)
		VALUES (:id, :provider_id, :token, :refresh_token, :expires_in, :created_at)`, row)
	if err != nil {
		return fmt.Errorf("failed to save access token: %w", err)
	}
	return nil
}
