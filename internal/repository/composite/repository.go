package composite

import (
	opensearchclient "github.com/opensearch-project/opensearch-go/v2"
	redisclient "github.com/redis/go-redis/v9"

	"github.com/kingrain94/rent-dashboard/internal/config"
	"github.com/kingrain94/rent-dashboard/internal/repository"
	"github.com/kingrain94/rent-dashboard/internal/repository/opensearch"
	"github.com/kingrain94/rent-dashboard/internal/repository/postgres"
	"github.com/kingrain94/rent-dashboard/internal/repository/redis"
)

type compositeRepository struct {
	postgresRepo repository.PostgresRepository
	sessionRepo  repository.SessionRepository
	searchRepo   repository.SearchRepository
}

func NewCompositeRepository(
	dbConnections *config.DatabaseConnections,
	redisClient *redisclient.Client,
	osClient *opensearchclient.Client,
	osConfig *config.OpenSearchConfig,
) repository.Repository {
	return &compositeRepository{
		postgresRepo: postgres.NewPostgresRepository(dbConnections),
		sessionRepo:  redis.NewSessionRepository(redisClient),
		searchRepo:   opensearch.NewTenantSearchRepository(osClient, osConfig),
	}
}

func (r *compositeRepository) Tenant() repository.TenantRepository {
	return r.postgresRepo.Tenant()
}

func (r *compositeRepository) Profile() repository.ProfileRepository {
	return r.postgresRepo.Profile()
}

func (r *compositeRepository) Finance() repository.FinanceRepository {
	return r.postgresRepo.Finance()
}

func (r *compositeRepository) Session() repository.SessionRepository {
	return r.sessionRepo
}

func (r *compositeRepository) Search() repository.SearchRepository {
	return r.searchRepo
}
