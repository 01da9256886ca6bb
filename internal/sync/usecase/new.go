package usecase

import (
	stdsync "sync"
	"time"

	"golang.org/x/time/rate"

	"notion-gcal-sync/internal/credential"
	"notion-gcal-sync/internal/event/repository"
	"notion-gcal-sync/internal/sync"
	pkgLog "notion-gcal-sync/pkg/log"
)

// Config holds the run parameters that do not change between runs.
type Config struct {
	Identity         string
	CalendarID       string
	DefaultTimezone  string
	DataSourceIDs    []string
	MutationInterval time.Duration // minimum gap between target calendar calls
}

type implUseCase struct {
	l       pkgLog.Logger
	credUC  credential.UseCase
	fetcher sync.SourceFetcher
	cache   repository.Repository
	target  repository.CalendarRepository
	cfg     Config
	pacer   *rate.Limiter
	running stdsync.Mutex
	notify  sync.Notifier
	now     func() time.Time
}

var _ sync.UseCase = (*implUseCase)(nil)

// Option customises the use case.
type Option func(*implUseCase)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) { uc.now = now }
}

// WithNotifier reports failed runs through n.
func WithNotifier(n sync.Notifier) Option {
	return func(uc *implUseCase) { uc.notify = n }
}

// New creates the reconciliation UseCase.
func New(
	l pkgLog.Logger,
	credUC credential.UseCase,
	fetcher sync.SourceFetcher,
	cache repository.Repository,
	target repository.CalendarRepository,
	cfg Config,
	opts ...Option,
) *implUseCase {
	limit := rate.Inf
	if cfg.MutationInterval > 0 {
		limit = rate.Every(cfg.MutationInterval)
	}

	uc := &implUseCase{
		l:       l,
		credUC:  credUC,
		fetcher: fetcher,
		cache:   cache,
		target:  target,
		cfg:     cfg,
		pacer:   rate.NewLimiter(limit, 1),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
