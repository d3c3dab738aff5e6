package usecase

import (
	"context"
	"fmt"

	"github.com/finmirror/finmirror/internal/pkg/logger"
	"github.com/finmirror/finmirror/internal/pkg/models"
	"github.com/google/uuid"
)

// ensureAuthenticated exchanges the provider's stored authorization code for
// a first token pair when no access token row exists yet. Token rows are
// persisted immediately: a consumed authorization code or refresh token must
// survive a later pass failure.
func (u *SyncUC) ensureAuthenticated(ctx context.Context, graph *models.ProviderGraph) error {
	if graph.LatestToken != nil {
		return nil
	}
	if graph.Provider.AuthorizationCode == "" {
		return ErrNoAccessToken
	}

	resp, err := u.bankGW.ExchangeCodeForToken(ctx, graph.Provider.AuthorizationCode)
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	token, err := u.persistToken(ctx, graph.Provider.ID, resp)
	if err != nil {
		return err
	}

	graph.LatestToken = token
	logger.Info("Exchanged authorization code for access token",
		logger.String("provider_id", graph.Provider.ID.String()))
	return nil
}

// currentAccessToken returns a usable token value, refreshing via the refresh
// token when the most recent token has expired. Refresh failures propagate
// and abort the pass.
func (u *SyncUC) currentAccessToken(ctx context.Context, graph *models.ProviderGraph) (string, error) {
	token := graph.LatestToken
	if token == nil {
		return "", ErrNoAccessToken
	}

	if !token.Expired(u.now()) {
		return token.Token, nil
	}

	resp, err := u.bankGW.RefreshToken(ctx, token.RefreshToken)
	if err != nil {
		return "", fmt.Errorf("failed to refresh access token: %w", err)
	}

	refreshed, err := u.persistToken(ctx, graph.Provider.ID, resp)
	if err != nil {
		return "", err
	}

	graph.LatestToken = refreshed
	logger.Info("Refreshed expired access token",
		logger.String("provider_id", graph.Provider.ID.String()))
	return refreshed.Token, nil
}

func (u *SyncUC) persistToken(ctx context.Context, providerID uuid.UUID, resp *models.TokenResponse) (*models.AccessToken, error) {
	token := &models.AccessToken{
		ID:           uuid.New(),
		ProviderID:   providerID,
		Token:        resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
		CreatedAt:    u.now(),
	}

	if err := u.syncRepo.SaveAccessToken(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to persist access token: %w", err)
	}
	return token, nil
}
