package usecase

import (
	"time"

	"golang.org/x/oauth2"

	"notion-gcal-sync/internal/credential"
	"notion-gcal-sync/internal/credential/repository"
	pkgLog "notion-gcal-sync/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	oauth *oauth2.Config
	now   func() time.Time
}

var _ credential.UseCase = (*implUseCase)(nil)

// Option customises the use case.
type Option func(*implUseCase)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) { uc.now = now }
}

// New creates the credential lifecycle UseCase.
func New(l pkgLog.Logger, repo repository.Repository, oauth *oauth2.Config, opts ...Option) *implUseCase {
	uc := &implUseCase{
		l:     l,
		repo:  repo,
		oauth: oauth,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
