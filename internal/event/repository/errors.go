package repository

import "errors"

var (
	ErrFailedToList   = errors.New("failed to list events")
	ErrFailedToGet    = errors.New("failed to get event")
	ErrFailedToInsert = errors.New("failed to insert event")
	ErrFailedToUpdate = errors.New("failed to update event")
	ErrFailedToDelete = errors.New("failed to delete event")
)
