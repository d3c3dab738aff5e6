package usecase

import (
	"time"

	"github.com/finmirror/finmirror/internal/pkg/models"
	"github.com/google/uuid"
)

// Reconciliation merges freshly fetched remote records against the previously
// persisted state using natural keys. Every merge returns the entity to stage
// and whether it was newly created. Create branches assign a fresh identity
// and set created-at; update branches only ever touch updated-at and the
// fields listed per entity.

// mergeAccount matches by the external account id. The remote side owns
// type, currency and display name; they are copied on create only, so an
// update just bumps updated-at.
func mergeAccount(graph *models.ProviderGraph, remote *models.RemoteAccount, now time.Time) (*models.Account, bool) {
	if existing := graph.AccountForExternalID(remote.ExternalID); existing != nil {
		existing.UpdatedAt = now
		return existing, false
	}

	return &models.Account{
		ID:         uuid.New(),
		ProviderID: graph.Provider.ID,
		ExternalID: remote.ExternalID,
		Name:       remote.DisplayName,
		Type:       remote.Type,
		Currency:   remote.Currency,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, true
}

// mergeBalance matches 1:1 by account. Updates overwrite the two amounts in
// place; the invariant of at most one balance row per account holds because
// creation only happens when no row exists.
func mergeBalance(graph *models.ProviderGraph, account *models.Account, remote *models.RemoteBalance, now time.Time) (*models.AccountBalance, bool) {
	if existing := graph.BalanceForAccount(account.ID); existing != nil {
		existing.Available = remote.Available
		existing.Current = remote.Current
		existing.UpdatedAt = now
		return existing, false
	}

	return &models.AccountBalance{
		ID:        uuid.New(),
		AccountID: account.ID,
		Currency:  remote.Currency,
		Available: remote.Available,
		Current:   remote.Current,
		CreatedAt: now,
		UpdatedAt: now,
	}, true
}

// mergeTransaction matches by the provider-supplied transaction id. On update
// the amount and description are deliberately left untouched: once a
// transaction has been recorded its value never changes locally, only its
// type, category, currency, pending state and timestamp are refreshed.
// Classifications are attached on create only, one per remote tag.
func mergeTransaction(graph *models.ProviderGraph, account *models.Account, remote *models.RemoteTransaction, now time.Time) (*models.Transaction, bool) {
	for _, existing := range graph.Transactions {
		if existing.ExternalID == remote.ExternalID {
			existing.Type = remote.Type
			existing.Category = remote.Category
			existing.Currency = remote.Currency
			existing.Pending = remote.Pending
			existing.OccurredAt = remote.OccurredAt
			existing.UpdatedAt = now
			return existing, false
		}
	}

	txn := &models.Transaction{
		ID:          uuid.New(),
		ProviderID:  graph.Provider.ID,
		AccountID:   account.ID,
		ExternalID:  remote.ExternalID,
		Description: remote.Description,
		Type:        remote.Type,
		Category:    remote.Category,
		Amount:      remote.Amount,
		Currency:    remote.Currency,
		OccurredAt:  remote.OccurredAt,
		Pending:     remote.Pending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for _, tag := range remote.Tags {
		txn.Classifications = append(txn.Classifications, &models.Classification{
			ID:            uuid.New(),
			TransactionID: txn.ID,
			Name:          tag,
			Custom:        false,
			CreatedAt:     now,
		})
	}

	return txn, true
}

// mergeStandingOrder matches by the (reference, payee) pair, the only key the
// remote side exposes. Distinct orders sharing both fields will collide into
// one row. Updates overwrite every mutable field.
func mergeStandingOrder(graph *models.ProviderGraph, account *models.Account, remote *models.RemoteStandingOrder, now time.Time) (*models.StandingOrder, bool) {
	for _, existing := range graph.StandingOrders {
		if existing.AccountID == account.ID && existing.Reference == remote.Reference && existing.Payee == remote.Payee {
			existing.Frequency = remote.Frequency
			existing.Status = remote.Status
			existing.Currency = remote.Currency
			existing.NextPaymentDate = remote.NextPaymentDate
			existing.NextPaymentAmount = remote.NextPaymentAmount
			existing.FirstPaymentDate = remote.FirstPaymentDate
			existing.FirstPaymentAmount = remote.FirstPaymentAmount
			existing.FinalPaymentDate = remote.FinalPaymentDate
			existing.FinalPaymentAmount = remote.FinalPaymentAmount
			existing.UpdatedAt = now
			return existing, false
		}
	}

	return &models.StandingOrder{
		ID:                 uuid.New(),
		AccountID:          account.ID,
		Reference:          remote.Reference,
		Payee:              remote.Payee,
		Frequency:          remote.Frequency,
		Status:             remote.Status,
		Currency:           remote.Currency,
		NextPaymentDate:    remote.NextPaymentDate,
		NextPaymentAmount:  remote.NextPaymentAmount,
		FirstPaymentDate:   remote.FirstPaymentDate,
		FirstPaymentAmount: remote.FirstPaymentAmount,
		FinalPaymentDate:   remote.FinalPaymentDate,
		FinalPaymentAmount: remote.FinalPaymentAmount,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, true
}

// mergeDirectDebit matches by the provider-supplied direct debit id. Updates
// overwrite every field.
func mergeDirectDebit(graph *models.ProviderGraph, account *models.Account, remote *models.RemoteDirectDebit, now time.Time) (*models.DirectDebit, bool) {
	for _, existing := range graph.DirectDebits {
		if existing.AccountID == account.ID && existing.ExternalID == remote.ExternalID {
			existing.Name = remote.Name
			existing.Status = remote.Status
			existing.Currency = remote.Currency
			existing.PreviousPaymentAt = remote.PreviousPaymentAt
			existing.PreviousPaymentAmount = remote.PreviousPaymentAmount
			existing.UpdatedAt = now
			return existing, false
		}
	}

	return &models.DirectDebit{
		ID:                    uuid.New(),
		AccountID:             account.ID,
		ExternalID:            remote.ExternalID,
		Name:                  remote.Name,
		Status:                remote.Status,
		Currency:              remote.Currency,
		PreviousPaymentAt:     remote.PreviousPaymentAt,
		PreviousPaymentAmount: remote.PreviousPaymentAmount,
		CreatedAt:             now,
		UpdatedAt:             now,
	}, true
}
