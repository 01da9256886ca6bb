package usecase

import (
	"context"
	"strconv"
	"time"

	"golang.org/x/oauth2"

	"notion-gcal-sync/internal/credential"
	"notion-gcal-sync/internal/credential/repository"
)

// AuthURL builds the offline-access consent URL. Forcing the consent prompt
// makes Google return a refresh token on every authorization.
func (uc *implUseCase) AuthURL(state string) string {
	return uc.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// Bootstrap exchanges code for tokens and upserts the identity's record.
func (uc *implUseCase) Bootstrap(ctx context.Context, input credential.BootstrapInput) (credential.BootstrapOutput, error) {
	if input.Code == "" {
		return credential.BootstrapOutput{}, credential.ErrMissingCode
	}

	tok, err := uc.oauth.Exchange(ctx, input.Code)
	if err != nil {
		uc.l.Errorf(ctx, "credential.Bootstrap Exchange: %v", err)
		return credential.BootstrapOutput{}, err
	}

	refreshToken := tok.RefreshToken
	if refreshToken == "" {
		existing, err := uc.repo.GetCredential(ctx, input.Identity)
		if err != nil {
			return credential.BootstrapOutput{}, err
		}
		if existing.RefreshToken == "" {
			return credential.BootstrapOutput{}, credential.ErrNoRefreshToken
		}
		refreshToken = existing.RefreshToken
	}

	now := uc.now()
	expiry := tok.Expiry
	if expiry.IsZero() {
		expiry = now.Add(credential.DefaultAccessLifetime)
	}

	var refreshExpiry time.Time
	if secs := extraSeconds(tok, "refresh_token_expires_in"); secs > 0 {
		refreshExpiry = now.Add(time.Duration(secs) * time.Second)
	}

	scope, _ := tok.Extra("scope").(string)
	tokenType := tok.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}

	rec, err := uc.repo.UpsertCredential(ctx, repository.UpsertCredentialOptions{
		Identity:      input.Identity,
		AccessToken:   tok.AccessToken,
		RefreshToken:  refreshToken,
		AccessExpiry:  expiry,
		RefreshExpiry: refreshExpiry,
		Scope:         scope,
		TokenType:     tokenType,
		Now:           now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "credential.Bootstrap UpsertCredential: %v", err)
		return credential.BootstrapOutput{}, err
	}

	uc.l.Infof(ctx, "credential.Bootstrap: stored credential for %s (expires %s)", input.Identity, rec.AccessExpiry)
	return credential.BootstrapOutput{Record: rec}, nil
}

func extraSeconds(tok *oauth2.Token, key string) int64 {
	switch v := tok.Extra(key).(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	}
	return 0
}
