package http

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/finmirror/finmirror/internal/pkg/httpclient"
	"github.com/finmirror/finmirror/internal/pkg/models"
)

// BankGW is the HTTP adapter for the remote open banking API. Data endpoints
// live on the API host and are authenticated with a bearer token; the token
// endpoints live on a separate auth host and use the client credentials.
type BankGW struct {
	cfg        models.BankConfig
	apiClient  *httpclient.Client
	authClient *httpclient.Client
}

// NewBankGW creates a new bank gateway instance
func NewBankGW(cfg models.BankConfig) *BankGW {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	return &BankGW{
		cfg:        cfg,
		apiClient:  httpclient.NewClient(cfg.BaseURL, timeout),
		authClient: httpclient.NewClient(cfg.AuthURL, timeout),
	}
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// resultsEnvelope matches the list shape every data endpoint responds with.
type resultsEnvelope[T any] struct {
	Results []T `json:"results"`
}

// ExchangeCodeForToken trades a one-time authorization code for a token pair.
func (g *BankGW) ExchangeCodeForToken(ctx context.Context, code string) (*models.TokenResponse, error) {
	values := url.Values{
		"grant_type":    {"authorization_code"},
		"client_id":     {g.cfg.ClientID},
		"client_secret": {g.cfg.ClientSecret},
		"code":          {code},
	}

	var resp models.TokenResponse
	if err := g.authClient.PostForm(ctx, "/connect/token", values, &resp); err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return &resp, nil
}

// RefreshToken trades a refresh token for a new token pair.
func (g *BankGW) RefreshToken(ctx context.Context, refreshToken string) (*models.TokenResponse, error) {
	values := url.Values{
		"grant_type":    {"refresh_token"},
		"client_id":     {g.cfg.ClientID},
		"client_secret": {g.cfg.ClientSecret},
		"refresh_token": {refreshToken},
	}

	var resp models.TokenResponse
	if err := g.authClient.PostForm(ctx, "/connect/token", values, &resp); err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}
	return &resp, nil
}

// ListAccounts returns every account visible through the connection.
func (g *BankGW) ListAccounts(ctx context.Context, token string) ([]*models.RemoteAccount, error) {
	var envelope resultsEnvelope[*models.RemoteAccount]
	if err := g.apiClient.GetJSON(ctx, "/data/v1/accounts", bearer(token), &envelope); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return envelope.Results, nil
}

// GetBalance returns the balance snapshot list for one account.
func (g *BankGW) GetBalance(ctx context.Context, accountID, token string) ([]*models.RemoteBalance, error) {
	endpoint := fmt.Sprintf("/data/v1/accounts/%s/balance", url.PathEscape(accountID))
	var envelope resultsEnvelope[*models.RemoteBalance]
	if err := g.apiClient.GetJSON(ctx, endpoint, bearer(token), &envelope); err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return envelope.Results, nil
}

// GetTransactions returns the booked transactions for one account, optionally
// bounded to those on or after since.
func (g *BankGW) GetTransactions(ctx context.Context, accountID, token string, since *time.Time) ([]*models.RemoteTransaction, error) {
	endpoint := fmt.Sprintf("/data/v1/accounts/%s/transactions", url.PathEscape(accountID))
	return g.getTransactions(ctx, endpoint, token, since)
}

// GetPendingTransactions returns the not-yet-booked transactions for one account.
func (g *BankGW) GetPendingTransactions(ctx context.Context, accountID, token string, since *time.Time) ([]*models.RemoteTransaction, error) {
	endpoint := fmt.Sprintf("/data/v1/accounts/%s/transactions/pending", url.PathEscape(accountID))
	return g.getTransactions(ctx, endpoint, token, since)
}

func (g *BankGW) getTransactions(ctx context.Context, endpoint, token string, since *time.Time) ([]*models.RemoteTransaction, error) {
	if since != nil {
		query := url.Values{"from": {since.UTC().Format(time.RFC3339)}}
		endpoint += "?" + query.Encode()
	}

	var envelope resultsEnvelope[*models.RemoteTransaction]
	if err := g.apiClient.GetJSON(ctx, endpoint, bearer(token), &envelope); err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return envelope.Results, nil
}

// GetStandingOrders returns the standing orders for one account.
func (g *BankGW) GetStandingOrders(ctx context.Context, accountID, token string) ([]*models.RemoteStandingOrder, error) {
	endpoint := fmt.Sprintf("/data/v1/accounts/%s/standing_orders", url.PathEscape(accountID))
	var envelope resultsEnvelope[*models.RemoteStandingOrder]
	if err := g.apiClient.GetJSON(ctx, endpoint, bearer(token), &envelope); err != nil {
		return nil, fmt.Errorf("failed to get standing orders: %w", err)
	}
	return envelope.Results, nil
}

// GetDirectDebits returns the direct debits for one account.
func (g *BankGW) GetDirectDebits(ctx context.Context, accountID, token string) ([]*models.RemoteDirectDebit, error) {
	endpoint := fmt.Sprintf("/data/v1/accounts/%s/direct_debits", url.PathEscape(accountID))
	var envelope resultsEnvelope[*models.RemoteDirectDebit]
	if err := g.apiClient.GetJSON(ctx, endpoint, bearer(token), &envelope); err != nil {
		return nil, fmt.Errorf("failed to get direct debits: %w", err)
	}
	return envelope.Results, nil
}
