package repository

import (
	"context"
	"fmt"

	"github.com/finmirror/finmirror/internal/pkg/models"
)

// CommitSyncBatch writes one pass's staged output in a single transaction.
// Either every staged entity and every sync record lands, or none do. Upserts
// match the natural keys used by reconciliation, and update branches touch
// exactly the fields reconciliation is allowed to change.
func (r *SyncRepo) CommitSyncBatch(ctx context.Context, batch *models.SyncBatch) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin sync batch transaction: %w", err)
	}
	defer tx.Rollback()

	// Accounts go first so child rows resolve their foreign keys
	for _, account := range batch.Accounts {
		row, err := r.encryptAccount(account)
		if err != nil {
			return err
		}
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO accounts (id, provider_id, external_id, name, type, currency, created_at, updated_at)
			VALUES (:id, :provider_id, :external_id, :name, :type, :currency, :created_at, :updated_at)
			ON CONFLICT (provider_id, external_id) DO UPDATE
			SET updated_at = EXCLUDED.updated_at`, row)
		if err != nil {
			return fmt.Errorf("failed to upsert account: %w", err)
		}
	}

	for _, balance := range batch.Balances {
		row, err := r.encryptBalance(balance)
		if err != nil {
			return err
		}
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO account_balances (id, account_id, currency, available, current, created_at, updated_at)
			VALUES (:id, :account_id, :currency, :available, :current, :created_at, :updated_at)
			ON CONFLICT (account_id) DO UPDATE
			SET available = EXCLUDED.available,
			    current = EXCLUDED.current,
			    updated_at = EXCLUDED.updated_at`, row)
		if err != nil {
			return fmt.Errorf("failed to upsert balance: %w", err)
		}
	}

	for _, order := range batch.StandingOrders {
		row, err := r.encryptStandingOrder(order)
		if err != nil {
			return err
		}
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO standing_orders (id, account_id, reference, payee, frequency, status, currency,
				next_payment_date, next_payment_amount,
				first_payment_date, first_payment_amount,
				final_payment_date, final_payment_amount,
				created_at, updated_at)
			VALUES (:id, :account_id, :reference, :payee, :frequency, :status, :currency,
				:next_payment_date, :next_payment_amount,
				:first_payment_date, :first_payment_amount,
				:final_payment_date, :final_payment_amount,
				:created_at, :updated_at)
			ON CONFLICT (account_id, reference, payee) DO UPDATE
			SET frequency = EXCLUDED.frequency,
			    status = EXCLUDED.status,
			    currency = EXCLUDED.currency,
			    next_payment_date = EXCLUDED.next_payment_date,
			    next_payment_amount = EXCLUDED.next_payment_amount,
			    first_payment_date = EXCLUDED.first_payment_date,
			    first_payment_amount = EXCLUDED.first_payment_amount,
			    final_payment_date = EXCLUDED.final_payment_date,
			    final_payment_amount = EXCLUDED.final_payment_amount,
			    updated_at = EXCLUDED.updated_at`, row)
		if err != nil {
			return fmt.Errorf("failed to upsert standing order: %w", err)
		}
	}

	for _, debit := range batch.DirectDebits {
		row, err := r.encryptDirectDebit(debit)
		if err != nil {
			return err
		}
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO direct_debits (id, account_id, external_id, name, status, currency,
				previous_payment_at, previous_payment_amount, created_at, updated_at)
			VALUES (:id, :account_id, :external_id, :name, :status, :currency,
				:previous_payment_at, :previous_payment_amount, :created_at, :updated_at)
			ON CONFLICT (account_id, external_id) DO UPDATE
			SET name = EXCLUDED.name,
			    status = EXCLUDED.status,
			    currency = EXCLUDED.currency,
			    previous_payment_at = EXCLUDED.previous_payment_at,
			    previous_payment_amount = EXCLUDED.previous_payment_amount,
			    updated_at = EXCLUDED.updated_at`, row)
		if err != nil {
			return fmt.Errorf("failed to upsert direct debit: %w", err)
		}
	}

	for _, txn := range batch.Transactions {
		row, err := r.encryptTransaction(txn)
		if err != nil {
			return err
		}
		// Amount and description are write-once: a transaction's value never
		// changes locally after it has been recorded
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO transactions (id, provider_id, account_id, external_id, description, type,
				category, amount, currency, occurred_at, pending, created_at, updated_at)
			VALUES (:id, :provider_id, :account_id, :external_id, :description, :type,
				:category, :amount, :currency, :occurred_at, :pending, :created_at, :updated_at)
			ON CONFLICT (provider_id, external_id) DO UPDATE
			SET type = EXCLUDED.type,
			    category = EXCLUDED.category,
			    currency = EXCLUDED.currency,
			    pending = EXCLUDED.pending,
			    occurred_at = EXCLUDED.occurred_at,
			    updated_at = EXCLUDED.updated_at`, row)
		if err != nil {
			return fmt.Errorf("failed to upsert transaction: %w", err)
		}

		for _, classification := range txn.Classifications {
			_, err = tx.NamedExecContext(ctx, `
				INSERT INTO classifications (id, transaction_id, name, custom, created_at)
				VALUES (:id, :transaction_id, :name, :custom, :created_at)
				ON CONFLICT (transaction_id, name) DO NOTHING`, classification)
			if err != nil {
				return fmt.Errorf("failed to insert classification: %w", err)
			}
		}
	}

	// Records are appended last so they are only ever visible alongside the
	// data they vouch for
	for _, record := range batch.SyncRecords {
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO sync_records (id, provider_id, account_id, resource_type, created_at)
			VALUES (:id, :provider_id, :account_id, :resource_type, :created_at)`, record)
		if err != nil {
			return fmt.Errorf("failed to insert sync record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit sync batch: %w", err)
	}
	return nil
}
