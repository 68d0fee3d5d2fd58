package repository

import (
	"context"
	"errors"
	"time"

	"github.com/kingrain94/rent-dashboard/internal/domain"
)

var (
	// ErrNotFound is returned when no row matches the query (including its owner filter).
	ErrNotFound = errors.New("record not found")
	// ErrMissingOwner is returned when an owner-scoped query is issued without an owner id.
	ErrMissingOwner = errors.New("owner id is required")
)

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	GetByID(ctx context.Context, id, ownerID string) (*domain.Tenant, error)
	Update(ctx context.Context, tenant *domain.Tenant) (int64, error)
	Delete(ctx context.Context, id, ownerID string) (int64, error)
	List(ctx context.Context, ownerID string) ([]domain.Tenant, error)
	ListActive(ctx context.Context, ownerID string) ([]domain.Tenant, error)
}

//go:generate mockery --name ProfileRepository --output ../mocks
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
}

//go:generate mockery --name FinanceRepository --output ../mocks
type FinanceRepository interface {
	// UtilitiesBetween returns utility charges with start <= period_end < end.
	UtilitiesBetween(ctx context.Context, ownerID string, start, end time.Time) ([]domain.Utility, error)
	// PaymentsSince returns payments with payment_date >= since.
	PaymentsSince(ctx context.Context, ownerID string, since time.Time) ([]domain.Payment, error)
	// RecentLedgerEntries returns the newest entries first, tenant name preloaded.
	RecentLedgerEntries(ctx context.Context, ownerID string, limit int) ([]domain.LedgerEntry, error)
	// LedgerEntriesBetween returns entries with start <= created_at < end, oldest first.
	LedgerEntriesBetween(ctx context.Context, ownerID string, start, end time.Time) ([]domain.LedgerEntry, error)
}

//go:generate mockery --name SessionRepository --output ../mocks
type SessionRepository interface {
	Save(ctx context.Context, session *domain.Session, ttl time.Duration) error
	GetOwnerID(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

//go:generate mockery --name SearchRepository --output ../mocks
type SearchRepository interface {
	IndexTenant(ctx context.Context, tenant *domain.Tenant) error
	DeleteTenant(ctx context.Context, ownerID, tenantID string) error
	SearchTenants(ctx context.Context, ownerID, query string, limit int) ([]domain.TenantSearchHit, error)
}

//go:generate mockery --name StatementStore --output ../mocks
type StatementStore interface {
	Put(ctx context.Context, key string, body []byte, metadata map[string]string) error
	PresignGet(ctx context.Context, key string) (string, error)
}

//go:generate mockery --name PostgresRepository --output ../mocks
type PostgresRepository interface {
	Tenant() TenantRepository
	Profile() ProfileRepository
	Finance() FinanceRepository
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	PostgresRepository
	Session() SessionRepository
	Search() SearchRepository
}
