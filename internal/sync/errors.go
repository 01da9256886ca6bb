package sync

import "errors"

var (
	ErrSourceFetchFailed      = errors.New("source fetch failed")
	ErrTargetMutationFailed   = errors.New("target calendar mutation failed")
	ErrCachePersistenceFailed = errors.New("event cache persistence failed")
	ErrSyncInProgress         = errors.New("a sync run is already in progress")
)
