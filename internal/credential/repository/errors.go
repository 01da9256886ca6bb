package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get credential")
	ErrFailedToUpsert = errors.New("failed to upsert credential")
	ErrFailedToUpdate = errors.New("failed to update credential")
)
