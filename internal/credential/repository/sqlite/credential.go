package sqlite

import (
	"context"
	"database/sql"
	"time"

	"notion-gcal-sync/internal/credential/repository"
	"notion-gcal-sync/internal/model"
)

// GetCredential loads the record for identity. Not found is a zero value, not an error.
func (r *implRepository) GetCredential(ctx context.Context, identity string) (model.CredentialRecord, error) {
	const query = `
		SELECT user_id, access_token, refresh_token, expiry_date, refresh_token_expiry,
		       scope, token_type, created_at, updated_at
		FROM google_oauth_tokens
		WHERE user_id = ?`

	var (
		rec                                     model.CredentialRecord
		expiry, refreshExpiry, created, updated int64
	)
	err := r.db.QueryRowContext(ctx, query, identity).Scan(
		&rec.Identity, &rec.AccessToken, &rec.RefreshToken, &expiry, &refreshExpiry,
		&rec.Scope, &rec.TokenType, &created, &updated,
	)
	if err == sql.ErrNoRows {
		return model.CredentialRecord{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetCredential"), err)
		return model.CredentialRecord{}, repository.ErrFailedToGet
	}

	rec.AccessExpiry = fromMillis(expiry)
	rec.RefreshExpiry = fromMillis(refreshExpiry)
	rec.CreatedAt = fromMillis(created)
	rec.UpdatedAt = fromMillis(updated)
	return rec, nil
}

// UpsertCredential writes a full record, keeping created_at of an existing row.
func (r *implRepository) UpsertCredential(ctx context.Context, opt repository.UpsertCredentialOptions) (model.CredentialRecord, error) {
	const query = `
		INSERT INTO google_oauth_tokens (user_id, access_token, refresh_token, expiry_date,
			refresh_token_expiry, scope, token_type, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			access_token = excluded.access_token,
			refresh_token = excluded.refresh_token,
			expiry_date = excluded.expiry_date,
			refresh_token_expiry = excluded.refresh_token_expiry,
			scope = excluded.scope,
			token_type = excluded.token_type,
			updated_at = excluded.updated_at`

	now := toMillis(opt.Now)
	_, err := r.db.ExecContext(ctx, query,
		opt.Identity, opt.AccessToken, opt.RefreshToken, toMillis(opt.AccessExpiry),
		toMillis(opt.RefreshExpiry), opt.Scope, opt.TokenType, now, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertCredential"), err)
		return model.CredentialRecord{}, repository.ErrFailedToUpsert
	}

	return r.GetCredential(ctx, opt.Identity)
}

// UpdateAccessToken stores a refreshed access token.
func (r *implRepository) UpdateAccessToken(ctx context.Context, opt repository.UpdateAccessTokenOptions) error {
	const query = `
		UPDATE google_oauth_tokens
		SET access_token = ?,
		    refresh_token = COALESCE(NULLIF(?, ''), refresh_token),
		    expiry_date = ?,
		    updated_at = ?
		WHERE user_id = ?`

	_, err := r.db.ExecContext(ctx, query,
		opt.AccessToken, opt.RefreshToken, toMillis(opt.AccessExpiry), toMillis(opt.UpdatedAt), opt.Identity,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateAccessToken"), err)
		return repository.ErrFailedToUpdate
	}
	return nil
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
