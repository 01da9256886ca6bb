package usecase

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	"notion-gcal-sync/internal/credential"
	"notion-gcal-sync/internal/credential/repository"
	"notion-gcal-sync/internal/model"
)

// EnsureValid returns the stored access token while it has more than
// RefreshMargin left; otherwise it refreshes once and persists the result.
func (uc *implUseCase) EnsureValid(ctx context.Context, identity string) (model.UsableCredential, error) {
	rec, err := uc.repo.GetCredential(ctx, identity)
	if err != nil {
		uc.l.Errorf(ctx, "credential.EnsureValid GetCredential: %v", err)
		return model.UsableCredential{}, err
	}
	if !rec.Exists() {
		return model.UsableCredential{}, credential.ErrNotInitialized
	}

	now := uc.now()
	if rec.AccessExpiry.Sub(now) > credential.RefreshMargin {
		uc.l.Debugf(ctx, "credential.EnsureValid: reusing access token for %s (expires %s)", identity, rec.AccessExpiry)
		return toUsable(rec), nil
	}

	uc.l.Infof(ctx, "credential.EnsureValid: access token for %s expires %s, refreshing", identity, rec.AccessExpiry)

	// Only the refresh token is handed over so the token source cannot decide
	// the old access token is still good enough.
	tok, err := uc.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: rec.RefreshToken}).Token()
	if err != nil {
		uc.l.Errorf(ctx, "credential.EnsureValid refresh for %s: %v", identity, err)
		return model.UsableCredential{}, fmt.Errorf("%w: %w", credential.ErrCredentialRevoked, err)
	}

	expiry := tok.Expiry
	if expiry.IsZero() {
		expiry = now.Add(credential.DefaultAccessLifetime)
	}

	rotated := ""
	if tok.RefreshToken != "" && tok.RefreshToken != rec.RefreshToken {
		rotated = tok.RefreshToken
	}

	if err := uc.repo.UpdateAccessToken(ctx, repository.UpdateAccessTokenOptions{
		Identity:     identity,
		AccessToken:  tok.AccessToken,
		RefreshToken: rotated,
		AccessExpiry: expiry,
		UpdatedAt:    now,
	}); err != nil {
		uc.l.Errorf(ctx, "credential.EnsureValid UpdateAccessToken: %v", err)
		return model.UsableCredential{}, err
	}

	tokenType := tok.TokenType
	if tokenType == "" {
		tokenType = rec.TokenType
	}
	return model.UsableCredential{
		AccessToken: tok.AccessToken,
		TokenType:   tokenType,
		Expiry:      expiry,
	}, nil
}

func toUsable(rec model.CredentialRecord) model.UsableCredential {
	return model.UsableCredential{
		AccessToken: rec.AccessToken,
		TokenType:   rec.TokenType,
		Expiry:      rec.AccessExpiry,
	}
}
